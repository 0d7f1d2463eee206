package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrRegistryEmpty      = errors.New("can't fetch command, registry not initialized")
	ErrCommandNotFound    = errors.New("command not found")
	ErrEmptyMessage       = errors.New("empty message")
)

type ErrorKind string

const (
	KindUsage        ErrorKind = "usage"
	KindUnauthorized ErrorKind = "unauthorized"
	KindAPI          ErrorKind = "api"
	KindTransport    ErrorKind = "transport"
	KindUnsupported  ErrorKind = "unsupported"
)

// CommandError is a failure a command reports back to the user. Message is the reply text.
type CommandError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func NewUsageError(format string, a ...any) *CommandError {
	return &CommandError{Kind: KindUsage, Message: fmt.Sprintf(format, a...)}
}

func NewUnsupportedError(format string, a ...any) *CommandError {
	return &CommandError{Kind: KindUnsupported, Message: fmt.Sprintf(format, a...)}
}

// NewTransportError reports a failed request or an unreadable response. The reply text is the
// cause's description.
func NewTransportError(err error) *CommandError {
	return &CommandError{Kind: KindTransport, Message: err.Error(), Err: err}
}

// IsUserFacing reports whether err is an expected, user caused or backend caused failure as
// opposed to a programming or infrastructure error.
func IsUserFacing(err error) bool {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}

	return cmdErr.Kind != KindTransport
}
