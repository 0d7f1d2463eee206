package command

import (
	"context"
	"fmt"
	"gamerbot/internal/core/domain"
)

const helpText = "Type in command as ```!<command>``` or type in ```%s``` for list of commands"

type Help struct {
	listCommand string
	command     string
}

// NewHelp creates the help command. listCommand is the trigger users are pointed to for the full listing.
func NewHelp(listCommand, command string) *Help {
	return &Help{listCommand: listCommand, command: command}
}

func (h *Help) GetCommand() string {
	return h.command
}

func (h *Help) MinArgs() int {
	return 0
}

func (h *Help) ArgNames() []string {
	return nil
}

func (h *Help) Description() string {
	return "Helps user"
}

func (h *Help) Execute(_ context.Context, _ *domain.Invocation) (string, error) {
	return fmt.Sprintf(helpText, h.listCommand), nil
}
