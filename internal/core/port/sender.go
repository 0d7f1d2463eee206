package port

import (
	"context"
)

type TextSender interface {
	// SendMessage sends text to the channel identified by channelID. Texts exceeding the platform limit are
	// split into several messages.
	SendMessage(ctx context.Context, channelID string, text string) error
}
