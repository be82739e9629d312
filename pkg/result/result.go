package result

import "fmt"

// Result holds exactly one of a success value T or an error value E,
// selected by the discriminant. The inactive slot is always the zero
// value and is never observable through the API, so the type stays
// well-defined even when T and E are the same type.
type Result[T, E any] struct {
	ok   T
	err  E
	isOk bool
}

// Ok constructs a success Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: v, isOk: true}
}

// Err constructs a failure Result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, isOk: false}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

// IsErr reports whether the Result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// IsOkAnd reports whether the Result is Ok and the value satisfies pred.
// pred is never invoked on an Err.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.isOk && pred(r.ok)
}

// IsErrAnd reports whether the Result is Err and the error satisfies pred.
// pred is never invoked on an Ok.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.isOk && pred(r.err)
}

// Unwrap returns the success value. Calling it on an Err is a contract
// violation and aborts through the fatal sink.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		fatalf("result: called Unwrap on an Err value: %v", r.err)
	}
	return r.ok
}

// Expect returns the success value. On an Err it aborts through the fatal
// sink with the caller-supplied message, which should state why the caller
// believed the Result could not be Err.
func (r Result[T, E]) Expect(msg string) T {
	if !r.isOk {
		fatalf("result: %s: %v", msg, r.err)
	}
	return r.ok
}

// UnwrapOr returns the success value, or def if the Result is Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isOk {
		return r.ok
	}
	return def
}

// UnwrapOrElse returns the success value, or fallback(err) if the Result
// is Err. fallback is never invoked on an Ok.
func (r Result[T, E]) UnwrapOrElse(fallback func(E) T) T {
	if r.isOk {
		return r.ok
	}
	return fallback(r.err)
}

// UnwrapErr returns the error value. Calling it on an Ok is a contract
// violation and aborts through the fatal sink.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		fatalf("result: called UnwrapErr on an Ok value: %v", r.ok)
	}
	return r.err
}

// ExpectErr returns the error value. On an Ok it aborts through the fatal
// sink with the caller-supplied message.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.isOk {
		fatalf("result: %s: %v", msg, r.ok)
	}
	return r.err
}

// Inspect invokes f on the success value for side effects, then returns
// the Result unchanged. f is never invoked on an Err.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.isOk {
		f(r.ok)
	}
	return r
}

// InspectErr invokes f on the error value for side effects, then returns
// the Result unchanged. f is never invoked on an Ok.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.isOk {
		f(r.err)
	}
	return r
}

// Ok converts the success side to an Option: Some(value) on Ok, None on Err.
func (r Result[T, E]) Ok() Option[T] {
	if r.isOk {
		return Some(r.ok)
	}
	return None[T]()
}

// Err converts the error side to an Option: Some(err) on Err, None on Ok.
func (r Result[T, E]) Err() Option[E] {
	if !r.isOk {
		return Some(r.err)
	}
	return None[E]()
}

// String renders the Result for debugging as Ok(v) or Err(e).
func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.ok)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
