// Package contract exposes the minimal failure interface used by other packages.
//
// Implementations must keep their message and cause fixed after construction
// and support errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Failure is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return only their own message from Message(), never the cause's text.
//   - Return the next cause (or nil) from Unwrap().
//   - Never change either value once constructed.
//
// Error() is the display form. For the canonical implementation it equals Message().
type Failure interface {
	error
	Message() string
	Unwrap() error
}
