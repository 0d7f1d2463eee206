package port

import (
	"context"
	"gamerbot/internal/core/domain"
)

type Command interface {
	// Execute runs the command for a single invocation and returns the reply text. A returned error is
	// sent to the chat as its Error() text.
	Execute(ctx context.Context, inv *domain.Invocation) (string, error)
	// GetCommand retrieves the trigger associated with a specific command, e.g. "!hello".
	GetCommand() string
	// MinArgs is the number of arguments that must follow the trigger.
	MinArgs() int
	// ArgNames are human-readable placeholder names used in usage texts.
	ArgNames() []string
	// Description is a one-line summary shown in the command listing.
	Description() string
}

// UsageFormatter is implemented by commands whose argument usage can't be rendered as a plain
// list of <arg> placeholders.
type UsageFormatter interface {
	Usage() string
}

type CommandRegistry interface {
	// Register adds a new command to the command registry.
	Register(cmd Command)
	// Get retrieves the first registered Command with the given trigger or returns an error if not found.
	Get(trigger string) (Command, error)
	// ListCommands returns all registered commands in registration order.
	ListCommands() []Command
}

// CommandLister is the read-only view of a registry handed to commands that describe other commands.
type CommandLister interface {
	ListCommands() []Command
}

type Dispatcher interface {
	// Dispatch runs the command named by the message, if any, and replies on the message's channel.
	Dispatch(ctx context.Context, message *domain.Message) error
}
