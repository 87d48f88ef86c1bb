package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/railcheck/pkg/rail"
)

// ToChan feeds values into a channel until done or the context expires.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToResults lifts values onto the success track and feeds them into a
// channel, all tagged for error correlation.
func ToResults[T any](ctx context.Context, tag string, values ...T) <-chan rail.Result[T] {
	in := make(chan rail.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- rail.ToResult(v, tag):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains a channel into a slice, stopping on context expiry.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// FirstOrZero returns the first value from the channel, or defaultV when
// the channel closes or the context expires first.
func FirstOrZero[T any](ctx context.Context, out <-chan T, defaultV T) T {
	res := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return res
}
