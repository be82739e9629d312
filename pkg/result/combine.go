package result

import "reflect"

// Map transforms the success value with f, producing Result[U, E]. An Err
// passes through with its error untouched; f is never invoked on it.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](f(r.ok))
	}
	return Err[U](r.err)
}

// MapErr transforms the error value with f, producing Result[T, F]. An Ok
// passes through with its value untouched; f is never invoked on it.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.isOk {
		return Ok[T, F](r.ok)
	}
	return Err[T](f(r.err))
}

// AndThen returns f(value) if r is Ok, allowing error-preserving chaining
// of fallible steps. An Err short-circuits: f is never invoked and the
// error propagates re-typed to Result[U, E].
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.isOk {
		return f(r.ok)
	}
	return Err[U](r.err)
}

// OrElse returns f(err) if r is Err, allowing recovery into a new error
// type. An Ok short-circuits: f is never invoked and the value propagates
// re-typed to Result[T, F].
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.isOk {
		return Ok[T, F](r.ok)
	}
	return f(r.err)
}

// And returns other if r is Ok, and r's error otherwise. When both sides
// are Err the first error wins: evaluation is left to right.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.isOk {
		return other
	}
	return Err[U](r.err)
}

// Or returns r's value if r is Ok, and other otherwise. When both sides
// are Err the second error wins: evaluation is left to right.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.isOk {
		return Ok[T, F](r.ok)
	}
	return other
}

// From bridges Go's native (value, error) convention into a Result: Err
// when err is non-nil, Ok(v) otherwise.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// Equal reports structural equality: the discriminants must match, and then
// only the live payloads are compared. An Ok never equals an Err.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.isOk != b.isOk {
		return false
	}
	if a.isOk {
		return a.ok == b.ok
	}
	return a.err == b.err
}

// DeepEqual is Equal for payload types that are not comparable, using
// reflect.DeepEqual on the live payloads.
func DeepEqual[T, E any](a, b Result[T, E]) bool {
	if a.isOk != b.isOk {
		return false
	}
	if a.isOk {
		return reflect.DeepEqual(a.ok, b.ok)
	}
	return reflect.DeepEqual(a.err, b.err)
}
