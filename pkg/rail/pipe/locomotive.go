package pipe

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/railcheck/pkg/rail"
)

var ErrCancelled = errors.New("operation cancelled")

// Stage processes one result and delivers the outcome on a channel.
type Stage[In, Out any] func(ctx context.Context, input rail.Result[In]) <-chan rail.Result[Out]

// OnCancel routes an item that was picked up but not delivered when the
// context expired. CancelRemaining is the common implementation.
type OnCancel[In, Out any] func(ctx context.Context, in rail.Result[In], outCh chan<- rail.Result[Out])

// CancelRemaining forwards an unprocessed item to the output as a cancel.
func CancelRemaining[In, Out any](ctx context.Context, in rail.Result[In], outCh chan<- rail.Result[Out]) {
	if in.IsSuccess() {
		outCh <- rail.Cancel[Out](ErrCancelled)
	} else {
		outCh <- rail.FailFrom[In, Out](in)
	}
}

// locomotive is one worker: it pulls results from inputCh, runs the stage
// and pushes outcomes to outCh until the input closes or the context
// expires. Items caught mid-flight by cancellation go through onCancel.
func locomotive[In, Out any](ctx context.Context, inputCh <-chan rail.Result[In], outCh chan<- rail.Result[Out],
	stage Stage[In, Out], onCancel OnCancel[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if onCancel != nil {
					onCancel(ctx, in, outCh)
				}
				return
			case pr, running := <-stage(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					return
				case outCh <- pr:
				}
			}
		}
	}
}
