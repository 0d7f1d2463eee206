package command

import (
	"gamerbot/internal/core/domain"
	"gamerbot/internal/core/port"
	"strings"

	"github.com/rs/zerolog/log"
)

// Registry keeps commands in registration order. It is filled once at startup and only read afterwards.
type Registry struct {
	commands []port.Command
}

func (r *Registry) Register(cmd port.Command) {
	log.Info().Str("command", cmd.GetCommand()).Msg("adding command to registry")
	r.commands = append(r.commands, cmd)
}

// Get returns the first registered command whose trigger equals trigger. Later commands with the same
// trigger are unreachable.
func (r *Registry) Get(trigger string) (port.Command, error) {
	log.Debug().Str("command", trigger).Msg("fetching command from registry")

	if len(r.commands) == 0 {
		return nil, domain.ErrRegistryEmpty
	}

	for _, cmd := range r.commands {
		if cmd.GetCommand() == trigger {
			return cmd, nil
		}
	}

	return nil, domain.ErrCommandNotFound
}

func (r *Registry) ListCommands() []port.Command {
	list := make([]port.Command, len(r.commands))
	copy(list, r.commands)

	return list
}

// ParseArgs splits text on whitespace and returns the trigger and the remaining arguments.
func ParseArgs(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil
	}

	return fields[0], fields[1:]
}

// FormatUsage renders the argument placeholders of cmd, e.g. " <add/finished/playing/view> <game>".
func FormatUsage(cmd port.Command) string {
	if f, ok := cmd.(port.UsageFormatter); ok {
		if usage := f.Usage(); usage != "" {
			return " " + usage
		}
		return ""
	}

	sb := &strings.Builder{}
	for _, arg := range cmd.ArgNames() {
		sb.WriteString(" <")
		sb.WriteString(arg)
		sb.WriteString(">")
	}

	return sb.String()
}
