package command

import (
	"context"
	"errors"
	"fmt"
	"gamerbot/internal/core/domain"
	"gamerbot/internal/core/port"
	"gamerbot/internal/metrics"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	usageTemplate     = `command "%s" requires %d argument(s): "%s"`
	throttledTemplate = "slow down %s, you are sending commands too fast"
	panicTemplate     = `something went wrong while running "%s"`
)

// Dispatcher maps an inbound message to at most one command and sends exactly one reply for every
// matched message, on the channel the message came from.
type Dispatcher struct {
	registry port.CommandRegistry
	sender   port.TextSender
	throttle port.Throttler
	recorder port.Recorder
	timeout  time.Duration
}

// NewDispatcher creates a Dispatcher. throttle and recorder may be nil. A zero timeout leaves command
// execution unbounded.
func NewDispatcher(registry port.CommandRegistry,
	sender port.TextSender,
	throttle port.Throttler,
	recorder port.Recorder,
	timeout time.Duration) *Dispatcher {
	if throttle == nil {
		throttle = allowAll{}
	}

	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &Dispatcher{
		registry: registry,
		sender:   sender,
		throttle: throttle,
		recorder: recorder,
		timeout:  timeout,
	}
}

// Dispatch runs the command named by the first token of message.Text. Messages that don't start with a
// registered trigger are ignored. The returned error only reports a failed reply.
func (d *Dispatcher) Dispatch(ctx context.Context, message *domain.Message) error {
	trigger, args := ParseArgs(message.Text)
	if trigger == "" {
		return nil
	}

	cmd, err := d.registry.Get(trigger)
	if err != nil {
		log.Debug().Str("command", trigger).Err(err).Msg("no command for trigger")
		return nil
	}

	l := log.With().
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("authorId", message.AuthorID).
		Str("command", trigger).
		Logger()

	l.Info().Msg("handling request")

	reply, outcome := d.run(ctx, l, cmd, message, args)
	d.recorder.CommandHandled(trigger, outcome)

	err = d.sender.SendMessage(ctx, message.ChannelID, reply)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

func (d *Dispatcher) run(ctx context.Context,
	l zerolog.Logger,
	cmd port.Command,
	message *domain.Message,
	args []string) (string, string) {
	if !d.throttle.Allow(message.AuthorID) {
		l.Debug().Msg("author throttled")
		return fmt.Sprintf(throttledTemplate, message.AuthorMention), metrics.OutcomeThrottled
	}

	if cmd.MinArgs() > 0 && len(args) < cmd.MinArgs() {
		l.Debug().Int("args", len(args)).Msg("not enough arguments")
		return fmt.Sprintf(usageTemplate, cmd.GetCommand(), cmd.MinArgs(),
			strings.Join(cmd.ArgNames(), ", ")), metrics.OutcomeUsage
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	reply, err := execute(ctx, cmd, &domain.Invocation{Message: message, Args: args})
	if err != nil {
		var cmdErr *domain.CommandError
		switch {
		case errors.As(err, &cmdErr) && cmdErr.Kind == domain.KindUsage:
			l.Debug().Err(err).Msg("command rejected arguments")
			return err.Error(), metrics.OutcomeUsage
		case domain.IsUserFacing(err):
			l.Warn().Err(err).Msg("command failed")
		default:
			l.Error().Err(err).Msg("command failed")
		}

		return err.Error(), metrics.OutcomeError
	}

	return reply, metrics.OutcomeOK
}

// execute calls the command and turns a panic into an error.
func execute(ctx context.Context, cmd port.Command, inv *domain.Invocation) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("command", cmd.GetCommand()).Msg("recovered from command panic")
			reply = ""
			err = fmt.Errorf(panicTemplate, cmd.GetCommand())
		}
	}()

	return cmd.Execute(ctx, inv)
}

type allowAll struct{}

func (allowAll) Allow(string) bool { return true }

type noopRecorder struct{}

func (noopRecorder) CommandHandled(string, string) {}

func (noopRecorder) BackendRequest(string, string, int) {}
