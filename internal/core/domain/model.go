package domain

// Message is an inbound chat message as seen by the command layer. Gateway adapters fill it
// from their platform events.
type Message struct {
	ID            string
	ChannelID     string
	AuthorID      string
	AuthorMention string
	AuthorName    string
	Text          string
}

// Invocation is a single command call. Args holds the whitespace separated tokens that followed
// the trigger.
type Invocation struct {
	Message *Message
	Args    []string
}

type BacklogStatus string

const (
	Unplayed BacklogStatus = "unplayed"
	Playing  BacklogStatus = "playing"
	Finished BacklogStatus = "finished"
)

type BacklogAction string

const (
	BacklogAdd      BacklogAction = "add"
	BacklogFinished BacklogAction = "finished"
	BacklogPlaying  BacklogAction = "playing"
	BacklogView     BacklogAction = "view"
	BacklogAll      BacklogAction = "all"
)
