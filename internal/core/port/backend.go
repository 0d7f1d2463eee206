package port

import (
	"context"
	"gamerbot/internal/core/domain"
)

type MemeFetcher interface {
	// RandomMeme returns a meme URL or text from the backend.
	RandomMeme(ctx context.Context) (string, error)
}

type BacklogStore interface {
	// AddGame adds a game to the user's backlog as unplayed.
	AddGame(ctx context.Context, user, game string) (string, error)
	// UpdateStatus changes the status of a game already in the user's backlog.
	UpdateStatus(ctx context.Context, user, game string, status domain.BacklogStatus) (string, error)
	// View returns the user's backlog entries, optionally narrowed to a game.
	View(ctx context.Context, user, game string) (string, error)
}

type TokenRefresher interface {
	// Refresh asks the backend to refresh the bearer token.
	Refresh(ctx context.Context) error
}
