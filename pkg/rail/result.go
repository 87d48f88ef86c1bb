package rail

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the railway sum type: exactly one of success, failure or cancel
// is active, enforced by construction. A Result is immutable; combinators
// always produce a new one.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	tag       string
	result    T
	err       *Error
	isSuccess bool
	isCancel  bool
}

// Success lifts a value onto the success track with no tag.
func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ToResult lifts a value onto the success track and attaches a tag used for
// error correlation by later checks and by the logging bridge.
func ToResult[T any](r T, tag string) Result[T] {
	return Result[T]{
		result:    r,
		tag:       tag,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail puts any error onto the failure track, normalizing it via AsError.
func Fail[T any](err error) Result[T] {
	return FailWith[T](AsError(err))
}

// FailWith puts an Error onto the failure track. The result inherits the
// error's tag.
func FailWith[T any](e *Error) Result[T] {
	var tag string
	if e != nil {
		tag = e.Tag()
	}
	return Result[T]{
		err:       e,
		tag:       tag,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Cancel marks a result as cancelled, e.g. after context expiry.
func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       AsError(err),
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom propagates a non-success result to a new payload type, keeping
// error, tag, identity and timestamp. Calling it on a success is a usage
// fault.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("rail: FailFrom called on a success result")
	}
	return Result[Out]{
		err:       from.err,
		tag:       from.tag,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Result returns the success value, or the zero value on the failure track.
func (r Result[T]) Result() T {
	return r.result
}

// Unwrap returns the success value. Calling it on a failure or cancel is a
// programmer defect, not a modeled error, and panics with a diagnostic.
func (r Result[T]) Unwrap() T {
	if !r.isSuccess {
		panic(fmt.Sprintf("rail: Unwrap on non-success result (tag=%q): %v", r.tag, r.err))
	}
	return r.result
}

// Err returns the failure as a plain error, nil on success.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// ErrorValue returns the failure description, nil on success.
func (r Result[T]) ErrorValue() *Error {
	return r.err
}

func (r Result[T]) Tag() string {
	return r.tag
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel && r.err != nil
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports the zero Result, which belongs to no track.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
