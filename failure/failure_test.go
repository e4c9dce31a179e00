package failure_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/next-trace/scg-failure/failure"
)

func TestFmt_PassThroughOnSuccess(t *testing.T) {
	t.Parallel()

	if got := failure.Fmt(nil, "unable to parse", 42); got != nil {
		t.Fatalf("Fmt(nil)=%v; want nil", got)
	}

	if got := failure.Path(nil, "unable to open", "/tmp/x"); got != nil {
		t.Fatalf("Path(nil)=%v; want nil", got)
	}

	if got := failure.Context(nil, "loading"); got != nil {
		t.Fatalf("Context(nil)=%v; want nil", got)
	}
}

func TestFmt_MessageAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("invalid digit found in string")
	err := failure.Fmt(cause, "unable to parse port", "80a")

	if got, want := err.Error(), "unable to parse port (80a)"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	if got := errors.Unwrap(err); got != cause {
		t.Fatalf("Unwrap()=%v want=%v", got, cause)
	}

	if got := failure.Depth(err); got != 1 {
		t.Fatalf("Depth=%d want=1", got)
	}

	if got, want := failure.Messages(err), []string{"unable to parse port (80a)", "invalid digit found in string"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Messages=%q want=%q", got, want)
	}

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false; want true")
	}
}

func TestFmt_Nested(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := failure.Fmt(failure.Fmt(cause, "dial", "10.0.0.1:5432"), "open database", "orders")

	want := []string{"open database (orders)", "dial (10.0.0.1:5432)", "connection refused"}
	if got := failure.Messages(err); !reflect.DeepEqual(got, want) {
		t.Fatalf("Messages=%q want=%q", got, want)
	}

	if got := failure.Depth(err); got != 2 {
		t.Fatalf("Depth=%d want=2", got)
	}

	if got := failure.Cause(err); got != cause {
		t.Fatalf("Cause=%v want=%v", got, cause)
	}

	var out *failure.Error
	if !errors.As(err, &out) || out.Message() != "open database (orders)" {
		t.Fatalf("errors.As should yield the outermost *Error, got %v", out)
	}
}

func TestPath_RendersPathVerbatim(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "does", "not", "exist.toml")
	_, statErr := os.Stat(missing)

	err := failure.Path(statErr, "unable to stat", missing)

	if got, want := err.Error(), "unable to stat ("+missing+")"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("errors.Is(err, fs.ErrNotExist) = false; want true")
	}
}

type repoPath string

func TestPath_AcceptsNamedPathTypes(t *testing.T) {
	t.Parallel()

	err := failure.Path(errors.New("boom"), "unable to read", repoPath("refs/heads/main"))
	if got, want := err.Error(), "unable to read (refs/heads/main)"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}
}

type port int

func (p port) String() string { return fmt.Sprintf("port %d", int(p)) }

func TestContext_UsesDisplayFormAsWholeMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("address already in use")
	err := failure.Context(cause, port(8080))

	if got, want := err.Error(), "port 8080"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	if got := errors.Unwrap(err); got != cause {
		t.Fatalf("Unwrap()=%v want=%v", got, cause)
	}
}

func TestOrFail(t *testing.T) {
	t.Parallel()

	env := map[string]string{"HOME": "/home/scg"}

	v, err := failure.OrFail(env["HOME"], true, "HOME not set")
	if err != nil || v != "/home/scg" {
		t.Fatalf("OrFail(ok)=(%q, %v)", v, err)
	}

	shell, ok := env["SHELL"]
	v, err = failure.OrFail(shell, ok, "SHELL not set")

	if v != "" {
		t.Fatalf("OrFail(!ok) value=%q; want zero", v)
	}

	if err == nil || err.Error() != "SHELL not set" {
		t.Fatalf("OrFail(!ok) err=%v", err)
	}

	if errors.Unwrap(err) != nil || failure.Depth(err) != 0 {
		t.Fatalf("synthesized failure must have no cause")
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	if got := failure.Ensure(nil); got != nil {
		t.Fatalf("Ensure(nil) => %v; want nil", got)
	}

	e := failure.New("boom")
	if got := failure.Ensure(e); got != e {
		t.Fatalf("Ensure(*Error) returned different pointer")
	}

	root := errors.New("eof")
	plain := fmt.Errorf("read header: %w", root)
	wrapped := failure.Ensure(plain)

	if wrapped.Message() != "read header: eof" {
		t.Fatalf("Message=%q", wrapped.Message())
	}

	if !errors.Is(wrapped, plain) || !errors.Is(wrapped, root) {
		t.Fatalf("Ensure must keep errors.Is matching the original")
	}

	if got := wrapped.Unwrap(); got != root {
		t.Fatalf("Unwrap()=%v want=%v", got, root)
	}

	var pathErr *fs.PathError
	_, openErr := os.Open(filepath.Join(t.TempDir(), "nope"))
	if !errors.As(failure.Ensure(openErr), &pathErr) {
		t.Fatalf("errors.As should reach *fs.PathError through Ensure")
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	err := failure.Fmt(failure.New("no such table"), "query", "users")

	if got, want := fmt.Sprintf("%v", err), "query (users)"; got != want {
		t.Fatalf("%%v=%q want=%q", got, want)
	}

	if got, want := fmt.Sprintf("%+v", err), "query (users): no such table"; got != want {
		t.Fatalf("%%+v=%q want=%q", got, want)
	}

	if got, want := fmt.Sprintf("%q", err), `"query (users)"`; got != want {
		t.Fatalf("%%q=%q want=%q", got, want)
	}
}

func TestFormat_WidthAndOtherVerbs(t *testing.T) {
	t.Parallel()

	err := failure.New("ab")

	tests := []struct {
		format string
		want   string
	}{
		{format: "%-6s|", want: "ab    |"},
		{format: "%6s|", want: "    ab|"},
		{format: "%.1s", want: "a"},
		{format: "%x", want: "6162"},
		{format: "%X", want: "6162"},
		{format: "%d", want: "%!d(string=ab)"},
	}

	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, err); got != tt.want {
			t.Fatalf("Sprintf(%q)=%q want=%q", tt.format, got, tt.want)
		}
	}
}

func TestNilReceiverBehaviors(t *testing.T) {
	t.Parallel()

	var e *failure.Error

	if got := e.Error(); got != "<nil>" {
		t.Fatalf("nil receiver Error()=%q", got)
	}

	if got := e.Unwrap(); got != nil {
		t.Fatalf("nil receiver Unwrap()=%v", got)
	}

	if e.Is(errors.New("x")) {
		t.Fatalf("nil receiver Is must be false")
	}
}

func TestCauses_StopsEarly(t *testing.T) {
	t.Parallel()

	err := failure.Fmt(failure.Fmt(errors.New("c"), "b", 2), "a", 1)

	var seen []string
	for c := range failure.Causes(err) {
		seen = append(seen, failure.MessageOf(c))
		if len(seen) == 2 {
			break
		}
	}

	if want := []string{"a (1)", "b (2)"}; !reflect.DeepEqual(seen, want) {
		t.Fatalf("seen=%q want=%q", seen, want)
	}

	// Iterating again must restart from the outermost failure.
	if got := len(failure.Messages(err)); got != 3 {
		t.Fatalf("second walk saw %d links; want 3", got)
	}
}

func TestCauses_JoinedErrorsEndTheChain(t *testing.T) {
	t.Parallel()

	joined := errors.Join(errors.New("x"), errors.New("y"))
	err := failure.Context(joined, "closing")

	if got := failure.Depth(err); got != 1 {
		t.Fatalf("Depth=%d want=1", got)
	}

	if got := failure.Messages(err)[1]; !strings.Contains(got, "x") || !strings.Contains(got, "y") {
		t.Fatalf("joined message=%q", got)
	}
}

// FuzzFmt checks the message shape and depth for arbitrary inputs.
func FuzzFmt(f *testing.F) {
	f.Add("unable to read", "config.yaml", "permission denied")
	f.Add("", "", "")
	f.Fuzz(func(t *testing.T, msg, data, cause string) {
		t.Parallel()

		err := failure.Fmt(errors.New(cause), msg, data)

		if got, want := err.Error(), msg+" ("+data+")"; got != want {
			t.Fatalf("Error()=%q want=%q", got, want)
		}

		if got := failure.Messages(err); len(got) != 2 || got[1] != cause {
			t.Fatalf("Messages=%q", got)
		}
	})
}
