package handler

import (
	"context"
	"gamerbot/internal/core/domain"
	"gamerbot/internal/core/port"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type Telegram struct {
	dispatcher port.Dispatcher
}

func NewTelegram(dispatcher port.Dispatcher) *Telegram {
	return &Telegram{dispatcher: dispatcher}
}

func (t *Telegram) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}

	message := update.Message

	log.Debug().Str("message", message.Text).Int64("chatId", message.Chat.ID).Msg("received message")

	msg := &domain.Message{
		ID:        strconv.Itoa(message.ID),
		ChannelID: strconv.FormatInt(message.Chat.ID, 10),
		Text:      message.Text,
	}

	if message.From != nil {
		msg.AuthorID = strconv.FormatInt(message.From.ID, 10)
		msg.AuthorMention = getUserNameOrFirstName(message.From)
		msg.AuthorName = getDisplayNameFromUser(message.From)
	}

	err := t.dispatcher.Dispatch(ctx, msg)
	if err != nil {
		log.Err(err).Int("messageId", message.ID).Msg("failed to respond to message")
	}
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}

func getDisplayNameFromUser(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return user.Username
}
