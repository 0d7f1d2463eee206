package handler

import (
	"context"
	"gamerbot/internal/core/domain"
	"gamerbot/internal/core/port"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Discord struct {
	dispatcher port.Dispatcher
}

func NewDiscord(dispatcher port.Dispatcher) *Discord {
	return &Discord{dispatcher: dispatcher}
}

// Handle dispatches a MessageCreate event. Messages written by the bot itself are ignored.
func (d *Discord) Handle(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil {
		return
	}

	if isOwnMessage(s, m) {
		return
	}

	log.Debug().Str("message", m.Content).Str("channelId", m.ChannelID).Msg("received message")

	err := d.dispatcher.Dispatch(ctx, &domain.Message{
		ID:            m.ID,
		ChannelID:     m.ChannelID,
		AuthorID:      m.Author.ID,
		AuthorMention: m.Author.Mention(),
		AuthorName:    getDisplayName(m),
		Text:          m.Content,
	})
	if err != nil {
		log.Err(err).Str("messageId", m.ID).Msg("failed to respond to message")
	}
}

func isOwnMessage(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if s == nil || s.State == nil || s.State.User == nil {
		return false
	}

	return m.Author.ID == s.State.User.ID
}

// getDisplayName prefers the guild nickname, then the global display name, then the account name.
func getDisplayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}

	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}

	return m.Author.Username
}
