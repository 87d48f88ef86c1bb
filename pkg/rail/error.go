package rail

import (
	"fmt"
	"strings"
)

// Error describes one failure on the failure track. It carries a tag that
// correlates the error to the check or value that produced it, a human
// readable message, and an ordered list of nested causes for aggregate
// errors. An Error is immutable after construction; the WithX helpers
// return a copy.
type Error struct {
	tag     string
	message string
	causes  []*Error
	wrapped error
}

// NewError creates a leaf error with no causes.
func NewError(tag, message string) *Error {
	return &Error{tag: tag, message: message}
}

// Aggregate creates an error whose causes are the given sub-errors, in the
// given order. Nil causes are skipped.
func Aggregate(tag, message string, causes ...*Error) *Error {
	cs := make([]*Error, 0, len(causes))
	for _, c := range causes {
		if c != nil {
			cs = append(cs, c)
		}
	}
	return &Error{tag: tag, message: message, causes: cs}
}

// AsError normalizes any error into *Error. A *Error passes through
// unchanged; anything else is wrapped so that errors.Is still reaches the
// original. Returns nil for nil.
func AsError(err error) *Error {
	if IsNil(err) {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{message: err.Error(), wrapped: err}
}

func (e *Error) Tag() string     { return e.tag }
func (e *Error) Message() string { return e.message }

// Causes returns the nested sub-errors in insertion order. The returned
// slice is a copy.
func (e *Error) Causes() []*Error {
	if len(e.causes) == 0 {
		return nil
	}
	cs := make([]*Error, len(e.causes))
	copy(cs, e.causes)
	return cs
}

// IsAggregate reports whether the error has at least one nested cause.
func (e *Error) IsAggregate() bool {
	return len(e.causes) > 0
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	if e.tag != "" {
		b.WriteString(e.tag)
		b.WriteString(": ")
	}
	b.WriteString(e.message)

	if len(e.causes) > 0 {
		msgs := make([]string, len(e.causes))
		for i, c := range e.causes {
			msgs[i] = c.Error()
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(msgs, "; "))
	}
	return b.String()
}

// Unwrap exposes the wrapped external error (if any) and the causes to the
// errors.Is / errors.As machinery.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, len(e.causes)+1)
	if e.wrapped != nil {
		out = append(out, e.wrapped)
	}
	for _, c := range e.causes {
		out = append(out, c)
	}
	return out
}

// WithTag returns a copy of e with the tag replaced.
func (e *Error) WithTag(tag string) *Error {
	cp := *e
	cp.tag = tag
	return &cp
}

// WithCause returns a copy of e with one more cause appended. The causes
// slice is copied so the original error is never modified.
func (e *Error) WithCause(cause *Error) *Error {
	if cause == nil {
		return e
	}
	cp := *e
	cs := make([]*Error, 0, len(e.causes)+1)
	cs = append(cs, e.causes...)
	cs = append(cs, cause)
	cp.causes = cs
	return &cp
}
