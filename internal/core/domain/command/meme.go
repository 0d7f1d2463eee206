package command

import (
	"context"
	"gamerbot/internal/core/domain"
	"gamerbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Meme struct {
	fetcher port.MemeFetcher
	command string
}

func NewMeme(fetcher port.MemeFetcher, command string) *Meme {
	return &Meme{fetcher: fetcher, command: command}
}

func (m *Meme) GetCommand() string {
	return m.command
}

func (m *Meme) MinArgs() int {
	return 0
}

func (m *Meme) ArgNames() []string {
	return nil
}

func (m *Meme) Description() string {
	return "Sends a meme to user"
}

func (m *Meme) Execute(ctx context.Context, inv *domain.Invocation) (string, error) {
	meme, err := m.fetcher.RandomMeme(ctx)
	if err != nil {
		return "", err
	}

	log.Debug().Str("messageId", inv.Message.ID).Str("meme", meme).Msg("fetched meme")

	return meme, nil
}
