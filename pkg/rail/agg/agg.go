package agg

import (
	"github.com/ib-77/railcheck/pkg/rail"
)

// Failures collects the errors of independent validations in append order.
// The zero value is ready to use. A Failures is scoped to one validation
// group and must not be shared across goroutines.
type Failures struct {
	errs []*rail.Error
}

// UnwrapOr returns the success value and leaves the buffer untouched. A
// non-success result has its error appended to the buffer and the zero
// value returned; the caller must not use that value.
func UnwrapOr[T any](r rail.Result[T], f *Failures) T {
	if r.IsSuccess() {
		return r.Result()
	}
	f.errs = append(f.errs, r.ErrorValue())
	var zero T
	return zero
}

// Add records a non-success result's error without extracting a value.
// Success results are ignored.
func Add[T any](r rail.Result[T], f *Failures) {
	if r.IsSuccess() {
		return
	}
	f.errs = append(f.errs, r.ErrorValue())
}

// ToError merges the collected failures into one aggregate error whose
// causes keep append order. Aggregating an empty buffer is a usage fault
// and panics.
func (f *Failures) ToError(tag, summaryMessage string) *rail.Error {
	if len(f.errs) == 0 {
		panic("agg: ToError on an empty failure buffer")
	}
	return rail.Aggregate(tag, summaryMessage, f.errs...)
}

// Wrap finishes a validation group: an empty buffer means every independent
// check passed and build produces the success value; otherwise the result
// is the aggregate failure.
func Wrap[T any](f *Failures, tag, summaryMessage string, build func() T) rail.Result[T] {
	if f.Empty() {
		return rail.ToResult(build(), tag)
	}
	return rail.FailWith[T](f.ToError(tag, summaryMessage))
}

func (f *Failures) Len() int {
	return len(f.errs)
}

func (f *Failures) Empty() bool {
	return len(f.errs) == 0
}

// Errors returns the collected failures in append order. The returned slice
// is a copy.
func (f *Failures) Errors() []*rail.Error {
	if len(f.errs) == 0 {
		return nil
	}
	out := make([]*rail.Error, len(f.errs))
	copy(out, f.errs)
	return out
}
