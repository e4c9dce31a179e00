// Package failure provides a context-wrapping error type and helpers.
//
// It exposes a single concrete type Error that implements contract.Failure and integrates
// with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Every wrap adds exactly one link to the cause chain and never drops the original
//   - Context is rendered to text at wrap time, so a built chain is immutable
//   - Success values pass through untouched; only the error side is transformed
//   - Absent values become fresh, cause-less failures via OrFail
//
// The error-level helpers (Fmt, Path, Context, OrFail) suit the usual (T, error) call
// site. Result and Option offer the same operations as chainable methods when a value
// needs to travel with its error:
//
//	data, err := failure.Of(os.ReadFile(p)).ContextPath("unable to read config", p).Get()
//
// Causes, Messages and Depth walk the chain from the outermost failure to the root cause.
package failure
