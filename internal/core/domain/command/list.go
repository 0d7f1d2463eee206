package command

import (
	"context"
	"fmt"
	"gamerbot/internal/core/domain"
	"gamerbot/internal/core/port"
	"strings"
)

type List struct {
	lister  port.CommandLister
	command string
}

func NewList(lister port.CommandLister, command string) *List {
	return &List{lister: lister, command: command}
}

func (l *List) GetCommand() string {
	return l.command
}

func (l *List) MinArgs() int {
	return 0
}

func (l *List) ArgNames() []string {
	return nil
}

func (l *List) Description() string {
	return "Lists commands"
}

func (l *List) Execute(_ context.Context, _ *domain.Invocation) (string, error) {
	sb := &strings.Builder{}

	sb.WriteString("Commands:\n```")

	for _, cmd := range l.lister.ListCommands() {
		_, err := fmt.Fprintf(sb, "%s%s: %s\n\n", cmd.GetCommand(), FormatUsage(cmd), cmd.Description())
		if err != nil {
			return "", fmt.Errorf("failed to construct response: %w", err)
		}
	}

	sb.WriteString("```")

	return sb.String(), nil
}
