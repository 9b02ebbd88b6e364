package shipping

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a shipping error so callers can map it to transport
// semantics without string matching.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindPermission   Kind = "permission"
	KindRemote       Kind = "remote_service"
	KindIllegalState Kind = "illegal_state"
	KindNotFound     Kind = "not_found"
	KindInternal     Kind = "internal"
)

// Error is the structured error every shipping operation returns. Remote
// failures carry the provider messages verbatim.
type Error struct {
	Kind     Kind
	Message  string
	Messages []string
	Err      error
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Messages, "; "))
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the kind from err, or KindInternal when err is not a
// shipping error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func validationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func permissionError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindPermission, Message: fmt.Sprintf(format, args...)}
}

func notFoundError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func illegalStateError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindIllegalState, Message: fmt.Sprintf(format, args...)}
}

// remoteError wraps a failure from the carrier client with a step-specific
// message. The cause is kept for logging; provider messages ride in
// Messages.
func remoteError(step string, err error, messages ...string) *Error {
	return &Error{
		Kind:     KindRemote,
		Message:  "failed to " + step,
		Messages: messages,
		Err:      err,
	}
}

func internalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}
