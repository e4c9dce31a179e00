package failure

// Result carries a value together with the error of the operation that produced it.
// The zero Result is a success holding the zero value.
type Result[T any] struct {
	value T
	err   error
}

// Of captures a (T, error) return directly: Of(os.Open(p)).
func Of[T any](v T, err error) Result[T] { return Result[T]{value: v, err: err} }

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Err returns a failed Result holding the zero value.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

func (r Result[T]) Get() (T, error) { return r.value, r.err }
func (r Result[T]) Value() T        { return r.value }
func (r Result[T]) Err() error      { return r.err }
func (r Result[T]) IsOk() bool      { return r.err == nil }

// ContextFmt applies Fmt to the error side.
func (r Result[T]) ContextFmt(msg string, data any) Result[T] {
	r.err = Fmt(r.err, msg, data)
	return r
}

// ContextPath applies Path to the error side.
func (r Result[T]) ContextPath(msg, path string) Result[T] {
	r.err = Path(r.err, msg, path)
	return r
}

// Context applies Context to the error side.
func (r Result[T]) Context(ctx any) Result[T] {
	r.err = Context(r.err, ctx)
	return r
}

// Option is a value that may be absent.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }
func None[T any]() Option[T]    { return Option[T]{} }

// FromLookup builds an Option from a "comma ok" pair such as a map read.
func FromLookup[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

// FromPtr is Some(*p), or None for a nil pointer.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

func (o Option[T]) Get() (T, bool) { return o.value, o.ok }
func (o Option[T]) IsSome() bool   { return o.ok }

// Filter keeps the value only if pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}

	return None[T]()
}

// OrFail converts the Option to a Result, synthesizing a failure with message msg when empty.
func (o Option[T]) OrFail(msg string) Result[T] {
	v, err := OrFail(o.value, o.ok, msg)
	return Of(v, err)
}
