package result

import "fmt"

// Option holds either a value of type T (Some) or nothing (None). It is the
// return type of Result.Ok and Result.Err.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the value. Calling it on a None is a contract violation
// and aborts through the fatal sink.
func (o Option[T]) Unwrap() T {
	if !o.some {
		fatalf("result: called Unwrap on a None option")
	}
	return o.value
}

// UnwrapOr returns the value, or def if the Option is None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// String renders the Option for debugging as Some(v) or None.
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
