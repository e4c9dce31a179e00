package failure

import (
	"errors"
	"fmt"
)

// PathLike is any string-backed path type.
type PathLike interface {
	~string
}

// Fmt wraps err under the message "{msg} ({data})". It returns nil when err is nil.
func Fmt(err error, msg string, data any) error {
	if err == nil {
		return nil
	}

	return Wrap(err, fmt.Sprintf("%s (%v)", msg, data))
}

// Path is Fmt specialised to a filesystem path, rendered verbatim inside the parentheses.
func Path[P PathLike](err error, msg string, path P) error {
	return Fmt(err, msg, string(path))
}

// Context wraps err using the display form of ctx as the whole new message.
// ctx is rendered immediately and not retained.
func Context(err error, ctx any) error {
	if err == nil {
		return nil
	}

	return Wrap(err, fmt.Sprint(ctx))
}

// OrFail turns a "comma ok" lookup into a (T, error) pair. When ok is false it
// returns the zero value and a synthesized failure whose message is exactly msg.
func OrFail[T any](v T, ok bool, msg string) (T, error) {
	if ok {
		return v, nil
	}

	var zero T

	return zero, New(msg)
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Error => returned as-is (same pointer)
//   - otherwise the result stands in for err: same message, same next cause,
//     and errors.Is / errors.As still match err itself
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	return &Error{message: err.Error(), cause: errors.Unwrap(err), origin: err}
}
