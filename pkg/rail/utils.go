package rail

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors flattens an error into its *Error leaves: aggregates contribute
// their causes, plain errors are normalized via AsError.
func Errors(err error) []*Error {
	if IsNil(err) {
		return nil
	}

	e := AsError(err)
	if !e.IsAggregate() {
		return []*Error{e}
	}

	out := make([]*Error, 0, len(e.causes))
	out = append(out, e.causes...)
	return out
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
