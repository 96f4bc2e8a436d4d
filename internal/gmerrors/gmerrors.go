// Package gmerrors holds error types that carry a message meant for the
// operator running the converter in addition to the usual technical message.
package gmerrors

import (
	"errors"
	"fmt"
)

// operatorError is an error with a human-readable message to show to whoever
// ran the program as well as a typical more technical "error message" style
// message.
type operatorError struct {
	msg   string
	human string
	usage bool
	wrap  error
}

func (e *operatorError) Error() string {
	return e.msg
}

// Unwrap gives the error that the operatorError wraps, if it wraps one.
func (e *operatorError) Unwrap() error {
	return e.wrap
}

// Usage returns a new error indicating the program was invoked incorrectly.
// The given message is shown to the operator followed by usage text.
func Usage(human string) error {
	return &operatorError{
		msg:   fmt.Sprintf("usage error: %s", human),
		human: human,
		usage: true,
	}
}

// Usagef is Usage with a format string.
func Usagef(format string, a ...interface{}) error {
	return Usage(fmt.Sprintf(format, a...))
}

// Wrap returns a new error that wraps e and has the given message to show the
// operator. The technical message is e's message prefixed with human.
func Wrap(e error, human string) error {
	return &operatorError{
		msg:   fmt.Sprintf("%s: %s", human, e.Error()),
		human: human,
		wrap:  e,
	}
}

// Wrapf is Wrap with a format string.
func Wrapf(e error, format string, a ...interface{}) error {
	return Wrap(e, fmt.Sprintf(format, a...))
}

// IsUsage returns whether err or any error it wraps was created with Usage.
func IsUsage(err error) bool {
	var opErr *operatorError
	if errors.As(err, &opErr) {
		return opErr.usage
	}
	return false
}

// Message gets the message to display to the operator for the given error. If
// it is one of the types defined in gmerrors, the operator message is
// returned. Otherwise, err.Error() is returned.
func Message(err error) string {
	var opErr *operatorError
	if errors.As(err, &opErr) {
		if opErr.wrap != nil {
			return opErr.human + ": " + opErr.wrap.Error()
		}
		return opErr.human
	}
	return err.Error()
}
