package compat

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ConversionError reports an integer value that does not fit the target type.
type ConversionError struct {
	Value any
	To    string
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("out of range integral type conversion attempted: %v does not fit in %s", e.Value, e.To)
}

// TryFrom converts v to To, failing instead of silently truncating or wrapping.
func TryFrom[To, From constraints.Integer](v From) (To, error) {
	out := To(v)

	// A round trip catches truncation; the sign check catches wrap-around between
	// signed and unsigned types of the same width.
	if From(out) != v || (v < 0) != (out < 0) {
		return 0, &ConversionError{Value: v, To: reflect.TypeFor[To]().String()}
	}

	return out, nil
}
