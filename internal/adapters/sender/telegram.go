package sender

import (
	"context"
	"fmt"
	"gamerbot/internal/core/domain"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const TelegramMessageLimit = 4096

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

// SendMessage posts text to a chat. Numeric channel IDs are sent as chat IDs, anything else is passed on
// as a public channel username such as "@gamers".
func (s *Telegram) SendMessage(ctx context.Context, channelID string, text string) error {
	chunks := splitMessage(text, TelegramMessageLimit)
	if len(chunks) == 0 {
		return domain.ErrEmptyMessage
	}

	var chatID any = channelID
	if id, err := strconv.ParseInt(channelID, 10, 64); err == nil {
		chatID = id
	}

	for _, chunk := range chunks {
		_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   chunk,
		})
		if err != nil {
			log.Error().Err(err).Str("chatId", channelID).Msg("failed to send telegram message")
			return fmt.Errorf("error sending telegram message: %w", err)
		}
	}

	return nil
}
