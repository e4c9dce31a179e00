package failure

import (
	"errors"
	"iter"

	"github.com/next-trace/scg-failure/contract"
)

// Causes walks the chain starting at err itself, outermost first, following
// single-error Unwrap. Errors that only join several causes end the walk.
func Causes(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		for e := err; e != nil; e = errors.Unwrap(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// MessageOf returns the text one link contributes to a chain: Message() for a
// contract.Failure, Error() for anything else.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}

	if f, ok := err.(contract.Failure); ok {
		return f.Message()
	}

	return err.Error()
}

// Messages returns MessageOf for every link of the chain, outermost first.
func Messages(err error) []string {
	var out []string
	for e := range Causes(err) {
		out = append(out, MessageOf(e))
	}

	return out
}

// Depth is the number of causes beneath the outermost failure.
// A synthesized failure and a nil error both have depth 0.
func Depth(err error) int {
	n := 0
	for range Causes(err) {
		n++
	}

	if n == 0 {
		return 0
	}

	return n - 1
}

// Cause returns the innermost failure of the chain, or nil for a nil error.
func Cause(err error) error {
	var last error
	for e := range Causes(err) {
		last = e
	}

	return last
}
