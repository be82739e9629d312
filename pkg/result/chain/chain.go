package chain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/result3/pkg/result"
)

// Chain wraps a result.Result with context to enable fluent chaining.
// Every chain carries an id and a UTC start time that survive all steps,
// so a pipeline can be traced end to end.
type Chain[T, E any] struct {
	ctx       context.Context
	id        uuid.UUID
	startedAt time.Time
	res       result.Result[T, E]
}

// Start creates a new chain from a result.Result.
func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{
		ctx:       ctx,
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		res:       r,
	}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Ok[T, E](v))
}

// Result returns the underlying result.Result.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Context returns the chain's context.
func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// ID returns the chain's identity, stable across steps.
func (c Chain[T, E]) ID() uuid.UUID {
	return c.id
}

// StartedAt returns the chain creation time (UTC).
func (c Chain[T, E]) StartedAt() time.Time {
	return c.startedAt
}

// Then composes a function that already returns a result.Result[T, E].
// An Err chain short-circuits: onOk is not invoked.
func (c Chain[T, E]) Then(onOk func(ctx context.Context, v T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return c.with(onOk(c.ctx, c.res.Unwrap()))
}

// Map transforms the successful value to a new value of the same type.
func (c Chain[T, E]) Map(onOk func(ctx context.Context, v T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return c.with(result.Ok[T, E](onOk(c.ctx, c.res.Unwrap())))
}

// Recover composes a function invoked only on an Err chain, giving it a
// chance to produce a fresh Result. An Ok chain passes through untouched.
func (c Chain[T, E]) Recover(onErr func(ctx context.Context, e E) result.Result[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return c.with(onErr(c.ctx, c.res.UnwrapErr()))
}

// Ensure triggers side effects for the current variant without changing
// the result. Either handler may be nil.
func (c Chain[T, E]) Ensure(onOk func(context.Context, T), onErr func(context.Context, E)) Chain[T, E] {
	if c.res.IsOk() {
		if onOk != nil {
			onOk(c.ctx, c.res.Unwrap())
		}
	} else if onErr != nil {
		onErr(c.ctx, c.res.UnwrapErr())
	}
	return c
}

func (c Chain[T, E]) with(r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, id: c.id, startedAt: c.startedAt, res: r}
}

// Then chains a function that switches the value type to U.
func Then[T, U, E any](c Chain[T, E], onOk func(ctx context.Context, v T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		res: result.AndThen(c.res, func(v T) result.Result[U, E] {
			return onOk(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation to a new value type.
func Map[T, U, E any](c Chain[T, E], onOk func(ctx context.Context, v T) U) Chain[U, E] {
	return Chain[U, E]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		res: result.Map(c.res, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}

// Try chains a function that returns (U, error), converting a non-nil
// error to a failure.
func Try[T, U any](c Chain[T, error], try func(ctx context.Context, v T) (U, error)) Chain[U, error] {
	return Then(c, func(ctx context.Context, v T) result.Result[U, error] {
		return result.From(try(ctx, v))
	})
}

// Finally collapses the chain into a final value via handlers.
func Finally[T, E, U any](c Chain[T, E],
	onOk func(ctx context.Context, v T) U,
	onErr func(ctx context.Context, e E) U) U {

	if c.res.IsOk() {
		return onOk(c.ctx, c.res.Unwrap())
	}
	return onErr(c.ctx, c.res.UnwrapErr())
}
