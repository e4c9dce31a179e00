package compat

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is the cause reported when a file's contents are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ReadToString reads the named file and returns its contents as a string.
// Errors from the filesystem are returned unmodified. Contents that are not valid
// UTF-8 yield a *fs.PathError wrapping ErrInvalidUTF8.
func ReadToString(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder

	// One extra byte lets the final read observe EOF without growing the buffer.
	if info, err := f.Stat(); err == nil {
		if n, err := TryFrom[int](info.Size()); err == nil && n > 0 {
			b.Grow(n + 1)
		}
	}

	if _, err := io.Copy(&b, f); err != nil {
		return "", err
	}

	if !utf8.ValidString(b.String()) {
		return "", &fs.PathError{Op: "read", Path: path, Err: ErrInvalidUTF8}
	}

	return b.String(), nil
}
