package exit

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/next-trace/scg-failure/failure"
)

const (
	// StatusOK is the exit status for a nil error.
	StatusOK = 0
	// StatusFailure is the exit status for any error.
	StatusFailure = 1
)

// Reporter writes an error's cause chain and terminates the process.
type Reporter struct {
	out   io.Writer
	exit  func(code int)
	color ColorMode
}

// New returns a Reporter writing to os.Stderr and exiting via os.Exit, in plain text.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		out:   os.Stderr,
		exit:  os.Exit,
		color: ColorNever,
	}
	for _, o := range opts {
		o(r)
	}

	return r
}

// Report writes the diagnostic lines for err and returns the exit status it implies.
// Nothing is written for a nil error.
func (r *Reporter) Report(err error) int {
	if err == nil {
		return StatusOK
	}

	first := true
	for c := range failure.Causes(err) {
		if first {
			_, _ = fmt.Fprintf(r.out, "%s %s\n", r.label(), failure.MessageOf(c))
			first = false

			continue
		}

		_, _ = fmt.Fprintf(r.out, " caused by: %s\n", failure.MessageOf(c))
	}

	return StatusFailure
}

// LogErrors reports err and terminates with the matching status.
// With the default exit function it never returns.
func (r *Reporter) LogErrors(err error) {
	r.exit(r.Report(err))
}

func (r *Reporter) label() string {
	const token = "error:"

	c := color.New(color.FgRed, color.Bold)

	switch r.color {
	case ColorAlways:
		c.EnableColor()
	case ColorAuto:
		if !r.isTerminal() {
			return token
		}

		c.EnableColor()
	default:
		return token
	}

	return c.Sprint(token)
}

// isTerminal follows the same rules fatih/color applies to stdout, but for r.out.
func (r *Reporter) isTerminal() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := r.out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var defaultReporter atomic.Pointer[Reporter]

func init() { defaultReporter.Store(New()) }

// Default returns the process-wide Reporter used by the package-level functions.
func Default() *Reporter { return defaultReporter.Load() }

// SetDefault replaces the process-wide Reporter. It is meant to be called once at startup.
func SetDefault(r *Reporter) {
	if r == nil {
		r = New()
	}

	defaultReporter.Store(r)
}

// LogErrors reports err through the default Reporter and terminates the process.
func LogErrors(err error) { Default().LogErrors(err) }

// UnwrapOrExit returns v when err is nil, otherwise reports err through the default
// Reporter and terminates the process.
//
// Deprecated: return the error to main and call LogErrors there instead.
func UnwrapOrExit[T any](v T, err error) T {
	if err != nil {
		LogErrors(err)
	}

	return v
}
