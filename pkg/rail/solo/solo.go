package solo

import (
	"context"

	"github.com/ib-77/railcheck/pkg/rail"
)

func Succeed[T any](input T) rail.Result[T] {
	return rail.Success(input)
}

func Lift[T any](input T, tag string) rail.Result[T] {
	return rail.ToResult(input, tag)
}

func Fail[T any](err error) rail.Result[T] {
	return rail.Fail[T](err)
}

func Cancel[T any](err error) rail.Result[T] {
	return rail.Cancel[T](err)
}

// Check applies a predicate to a success value; a failing predicate moves
// the result onto the failure track with failMessage under the input's tag.
// Non-success input passes through and the predicate never runs.
func Check[T any](ctx context.Context, input rail.Result[T],
	predicate func(ctx context.Context, in T) bool, failMessage string) rail.Result[T] {

	if input.IsSuccess() {
		if predicate(ctx, input.Result()) {
			return input
		}
		return rail.FailWith[T](rail.NewError(input.Tag(), failMessage))
	}
	return input
}

// CheckAll runs the checks in order over the same value. With breakOnError
// the first failing check wins; otherwise all failures are collected into
// one aggregate error, causes in check order.
func CheckAll[T any](ctx context.Context, input rail.Result[T],
	breakOnError bool, summaryMessage string,
	checks ...func(ctx context.Context, in rail.Result[T]) rail.Result[T]) rail.Result[T] {

	if !input.IsSuccess() || len(checks) == 0 {
		return input
	}

	var causes []*rail.Error
	for _, check := range checks {
		if ctx.Err() != nil {
			return rail.Cancel[T](ctx.Err())
		}

		r := check(ctx, input)
		if r.IsCancel() {
			return r
		}
		if r.IsFailure() {
			if breakOnError {
				return r
			}
			causes = append(causes, r.ErrorValue())
		}
	}

	if len(causes) == 0 {
		return input
	}
	return rail.FailWith[T](rail.Aggregate(input.Tag(), summaryMessage, causes...))
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rail.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rail.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rail.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return input
		} else {
			return rail.FailWith[T](rail.NewError(input.Tag(), errMsg))
		}
	}
	return input
}

// Switch hands a success value to onSuccess and returns that result
// directly, so the step may introduce a new failure mid-chain.
func Switch[In any, Out any](ctx context.Context,
	input rail.Result[In],
	onSuccess func(ctx context.Context, r In) rail.Result[Out]) rail.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rail.FailFrom[In, Out](input)
}

// Map transforms a success value with a pure function. Faults raised by the
// mapping itself are not recovered here; use Try for fallible steps.
func Map[In any, Out any](ctx context.Context,
	input rail.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rail.Result[Out] {

	if input.IsSuccess() {
		return rail.Success(onSuccess(ctx, input.Result()))
	}
	return rail.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rail.Result[T],
	onSuccess func(ctx context.Context, r rail.Result[T])) rail.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rail.Result[T],
	condition func(ctx context.Context, r rail.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rail.Result[T])) rail.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rail.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rail.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		if input.IsCancel() {
			onCancel(ctx, input.Err())
		} else {
			onError(ctx, input.Err())
		}
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) rail.Result[Out] {

	if input.IsSuccess() {
		return rail.Success(onSuccess(ctx, input.Result()))
	}

	if input.IsCancel() {
		onCancel(ctx, input.Err())
	} else {
		onError(ctx, input.Err())
	}

	return rail.FailFrom[In, Out](input)
}

// Try calls a fallible function, converting its error to a failure, or to
// a cancel when it is a context cancellation error.
func Try[In any, Out any](ctx context.Context, input rail.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rail.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			if rail.IsCancellationError(err) {
				return rail.Cancel[Out](err)
			}
			return rail.FailWith[Out](rail.AsError(err).WithTag(input.Tag()))
		}
		return rail.Success(out)
	}

	return rail.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input rail.Result[T],
	maybeErr func(ctx context.Context, in T) error) rail.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Result())
		if err != nil {
			return rail.FailWith[T](rail.AsError(err).WithTag(input.Tag()))
		}
		return input
	}
	return input
}

// Finally collapses a result to a plain value via the matching handler.
// It accepts any rail.WithCancel carrier, not just rail.Result.
func Finally[In, Out any](ctx context.Context, input rail.WithCancel[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}
