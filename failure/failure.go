package failure

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/next-trace/scg-failure/contract"
)

// Error is the unified failure type returned by every wrapping helper.
//
// Fields:
//   - message: this link's own text, already rendered from its context
//   - cause:   the next failure in the chain, nil for a synthesized failure
//   - origin:  set only by Ensure, the foreign error this value stands in for
type Error struct {
	message string
	cause   error
	origin  error
}

// compile-time guarantee that *Error implements contract.Failure
var _ contract.Failure = (*Error)(nil)

// ------ standard error interface

// Error returns the display form, which is this link's message alone.
// Use %+v or Messages to see the whole chain.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Is reports whether the foreign error captured by Ensure matches target.
func (e *Error) Is(target error) bool {
	if e == nil || e.origin == nil {
		return false
	}

	return errors.Is(e.origin, target)
}

// As lets errors.As reach the concrete type of the foreign error captured by Ensure.
func (e *Error) As(target any) bool {
	if e == nil || e.origin == nil {
		return false
	}

	return errors.As(e.origin, target)
}

// Format formats the message as a string, honoring verb, width and flags.
// The %+v form prints the full chain joined with ": ".
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = io.WriteString(s, strings.Join(Messages(e), ": "))
		return
	}

	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), e.Error())
}

// ------ contract.Failure getters

// Message returns this link's own text without any cause.
func (e *Error) Message() string { return e.Error() }

// ------ core constructors

// New synthesizes a failure with the given message and no cause.
func New(msg string) *Error {
	return &Error{message: msg}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap creates a new Error whose message is msg and whose cause is cause.
// A nil cause yields a synthesized failure, the same as New.
func Wrap(cause error, msg string) *Error {
	return &Error{message: msg, cause: cause}
}
