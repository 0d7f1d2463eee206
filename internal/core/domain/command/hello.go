package command

import (
	"context"
	"gamerbot/internal/core/domain"
)

type Hello struct {
	command string
}

func NewHello(command string) *Hello {
	return &Hello{command: command}
}

func (h *Hello) GetCommand() string {
	return h.command
}

func (h *Hello) MinArgs() int {
	return 0
}

func (h *Hello) ArgNames() []string {
	return nil
}

func (h *Hello) Description() string {
	return "Sends greetings to the user"
}

func (h *Hello) Execute(_ context.Context, inv *domain.Invocation) (string, error) {
	return "Hello " + inv.Message.AuthorMention, nil
}
