package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/railcheck/pkg/rail"
	"github.com/ib-77/railcheck/pkg/rail/solo"
)

// Run fans a same-type stage over lines workers.
func Run[T any](ctx context.Context, inputCh <-chan rail.Result[T],
	stage Stage[T, T], lines int) <-chan rail.Result[T] {
	return Turnout(ctx, inputCh, stage, lines)
}

// Turnout fans a type-changing stage over lines workers. The output channel
// closes once every worker has drained. Output order across workers is not
// guaranteed.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In],
	stage Stage[In, Out], lines int) <-chan rail.Result[Out] {

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, stage, CancelRemaining[In, Out], wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// lift turns a solo operation into a Stage.
func lift[In, Out any](op func(ctx context.Context, in rail.Result[In]) rail.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) <-chan rail.Result[Out] {
		out := make(chan rail.Result[Out], 1)

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}
			out <- op(ctx, input)
		}()

		return out
	}
}

func Check[T any](predicate func(ctx context.Context, in T) bool, failMessage string) Stage[T, T] {
	return lift(func(ctx context.Context, in rail.Result[T]) rail.Result[T] {
		return solo.Check(ctx, in, predicate, failMessage)
	})
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return lift(func(ctx context.Context, in rail.Result[T]) rail.Result[T] {
		return solo.AndValidate(ctx, in, validate)
	})
}

func Switch[In, Out any](onSuccess func(ctx context.Context, r In) rail.Result[Out]) Stage[In, Out] {
	return lift(func(ctx context.Context, in rail.Result[In]) rail.Result[Out] {
		return solo.Switch(ctx, in, onSuccess)
	})
}

func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) Stage[In, Out] {
	return lift(func(ctx context.Context, in rail.Result[In]) rail.Result[Out] {
		return solo.Map(ctx, in, onSuccess)
	})
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Stage[In, Out] {
	return lift(func(ctx context.Context, in rail.Result[In]) rail.Result[Out] {
		return solo.Try(ctx, in, onTryExecute)
	})
}

func Tee[T any](sideEffect func(ctx context.Context, r rail.Result[T])) Stage[T, T] {
	return lift(func(ctx context.Context, in rail.Result[T]) rail.Result[T] {
		return solo.Tee(ctx, in, sideEffect)
	})
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finally collapses a stream of results into plain values via the handlers.
func Finally[In, Out any](ctx context.Context, input <-chan rail.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-input:
				if !ok {
					return
				}

				v := solo.Finally(ctx, r, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
