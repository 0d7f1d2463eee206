package sender

import (
	"context"
	"fmt"
	"gamerbot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const DiscordMessageLimit = 2000

type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Discord struct {
	session DiscordSession
}

func NewDiscord(session DiscordSession) *Discord {
	return &Discord{session: session}
}

func (s *Discord) SendMessage(ctx context.Context, channelID string, text string) error {
	chunks := splitMessage(text, DiscordMessageLimit)
	if len(chunks) == 0 {
		return domain.ErrEmptyMessage
	}

	for _, chunk := range chunks {
		_, err := s.session.ChannelMessageSend(channelID, chunk, discordgo.WithContext(ctx))
		if err != nil {
			log.Error().Err(err).Str("channelId", channelID).Msg("failed to send discord message")
			return fmt.Errorf("error sending discord message: %w", err)
		}
	}

	log.Debug().Str("channelId", channelID).Int("chunks", len(chunks)).Msg("sent discord message")

	return nil
}
