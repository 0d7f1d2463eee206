package command

import (
	"context"
	"gamerbot/internal/core/domain"
	"gamerbot/internal/core/port"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	backlogActions = "add/finished/playing/view"
	backlogGame    = "game"
)

type Backlog struct {
	store   port.BacklogStore
	command string
}

func NewBacklog(store port.BacklogStore, command string) *Backlog {
	return &Backlog{store: store, command: command}
}

func (b *Backlog) GetCommand() string {
	return b.command
}

func (b *Backlog) MinArgs() int {
	return 1
}

func (b *Backlog) ArgNames() []string {
	return []string{backlogActions, backlogGame}
}

func (b *Backlog) Description() string {
	return "Command to interact (add, finish, update, get) backlog items"
}

// Usage renders the action list unbracketed, e.g. "add/finished/playing/view <game>".
func (b *Backlog) Usage() string {
	return backlogActions + " <" + backlogGame + ">"
}

func (b *Backlog) Execute(ctx context.Context, inv *domain.Invocation) (string, error) {
	action := domain.BacklogAction(inv.Args[0])
	game := strings.Join(inv.Args[1:], " ")
	user := inv.Message.AuthorName

	log.Debug().
		Str("messageId", inv.Message.ID).
		Str("action", string(action)).
		Str("game", game).
		Str("user", user).
		Msg("backlog request")

	switch action {
	case domain.BacklogAdd:
		if game == "" {
			return "", b.missingGame(action)
		}
		return b.store.AddGame(ctx, user, game)
	case domain.BacklogFinished:
		if game == "" {
			return "", b.missingGame(action)
		}
		return b.store.UpdateStatus(ctx, user, game, domain.Finished)
	case domain.BacklogPlaying:
		if game == "" {
			return "", b.missingGame(action)
		}
		return b.store.UpdateStatus(ctx, user, game, domain.Playing)
	case domain.BacklogView:
		return b.store.View(ctx, user, game)
	case domain.BacklogAll:
		return "", domain.NewUnsupportedError(`backlog action "%s" is not supported yet`, action)
	default:
		return "", domain.NewUsageError(`unknown backlog action "%s", expected one of: %s`,
			action, strings.ReplaceAll(backlogActions, "/", ", "))
	}
}

func (b *Backlog) missingGame(action domain.BacklogAction) error {
	return domain.NewUsageError(`backlog action "%s" requires a game: "%s %s <%s>"`,
		action, b.command, action, backlogGame)
}
