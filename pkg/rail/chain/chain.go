package chain

import (
	"context"

	"github.com/ib-77/railcheck/pkg/rail"
	"github.com/ib-77/railcheck/pkg/rail/solo"
)

// Chain wraps a rail.Result with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res rail.Result[T]
}

// Start creates a new chain from a rail.Result
func Start[T any](ctx context.Context, r rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a value, tagged for error correlation
func FromValue[T any](ctx context.Context, v T, tag string) Chain[T] {
	return Start(ctx, rail.ToResult(v, tag))
}

// Result returns the underlying rail.Result
func (c Chain[T]) Result() rail.Result[T] {
	return c.res
}

// Check applies a predicate; a false predicate diverts to the failure track
// with failMessage. A chain already on the failure track skips the predicate.
func (c Chain[T]) Check(predicate func(ctx context.Context, t T) bool, failMessage string) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Check(c.ctx, c.res, predicate, failMessage)}
}

// Validate is Check with the validator supplying the failure message
func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.AndValidate(c.ctx, c.res, validate)}
}

// Then composes a function that already returns rail.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// ThenTry composes a function that returns (T, error), such as repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[T]) Ensure(onSuccess func(ctx context.Context, t T)) Chain[T] {
	return Chain[T]{
		ctx: c.ctx,
		res: solo.Tee(c.ctx, c.res,
			func(ctx context.Context, r rail.Result[T]) {
				onSuccess(ctx, r.Result())
			}),
	}
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}

// Then chains a type-changing step returning rail.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) rail.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// MapTo chains a pure type-changing transformation
func MapTo[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// TryTo chains a type-changing function that returns (U, error)
func TryTo[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Finally collapses a chain into a final value of another type
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}
