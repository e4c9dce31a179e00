package exit

import (
	"fmt"
	"io"
	"strings"
)

// ColorMode selects how the leading "error:" token is rendered.
type ColorMode int

const (
	// ColorNever writes plain text.
	ColorNever ColorMode = iota
	// ColorAlways writes ANSI colors regardless of the output.
	ColorAlways
	// ColorAuto colors only when the configured output is a terminal, NO_COLOR is unset
	// and TERM is not "dumb".
	ColorAuto
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorAuto:
		return "auto"
	default:
		return "never"
	}
}

// ParseColorMode accepts "never", "always" or "auto" (case-insensitive).
// The empty string is treated as "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "never", "false", "off":
		return ColorNever, nil
	case "always", "true", "on":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	}

	return ColorNever, fmt.Errorf("invalid color mode %q (want never, always or auto)", s)
}

// Option configures a Reporter during construction via New().
type Option func(*Reporter)

// WithOutput sets where the diagnostic lines are written. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option { return func(r *Reporter) { r.out = w } }

// WithExit replaces the function used to terminate the process. Defaults to os.Exit.
func WithExit(fn func(code int)) Option { return func(r *Reporter) { r.exit = fn } }

// WithColor sets the rendering mode for the "error:" token. Defaults to ColorNever.
func WithColor(mode ColorMode) Option { return func(r *Reporter) { r.color = mode } }
