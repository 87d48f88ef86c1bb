package rail

import (
	"errors"
	"testing"
)

func TestAggregate_PreservesCauseOrder(t *testing.T) {
	t.Parallel()

	a := NewError("user.name", "name too long")
	b := NewError("user.password", "password too short")

	agg := Aggregate("user", "Invalid user.", a, b)

	causes := agg.Causes()
	if len(causes) != 2 {
		t.Fatalf("expected 2 causes, got %d", len(causes))
	}
	if causes[0] != a || causes[1] != b {
		t.Fatal("causes must keep insertion order")
	}
	if !agg.IsAggregate() {
		t.Fatal("expected aggregate")
	}
}

func TestNewError_LeafHasNoCauses(t *testing.T) {
	t.Parallel()

	e := NewError("quote", "empty")
	if e.IsAggregate() || e.Causes() != nil {
		t.Fatal("leaf error must have no causes")
	}
}

func TestError_Text(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"tagged leaf", NewError("quote", "empty"), "quote: empty"},
		{"untagged leaf", NewError("", "empty"), "empty"},
		{
			"aggregate",
			Aggregate("user", "Invalid user.", NewError("n", "a"), NewError("p", "b")),
			"user: Invalid user. [n: a; p: b]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAsError_PassThroughAndWrap(t *testing.T) {
	t.Parallel()

	e := NewError("t", "m")
	if AsError(e) != e {
		t.Fatal("*Error must pass through unchanged")
	}

	plain := errors.New("boom")
	wrapped := AsError(plain)
	if wrapped.Message() != "boom" {
		t.Fatalf("unexpected message %q", wrapped.Message())
	}
	if !errors.Is(wrapped, plain) {
		t.Fatal("wrapping must keep errors.Is working")
	}

	if AsError(nil) != nil {
		t.Fatal("nil must stay nil")
	}
}

func TestErrorsIs_ReachesNestedCauses(t *testing.T) {
	t.Parallel()

	inner := errors.New("io fault")
	leaf := AsError(inner)
	agg := Aggregate("group", "summary", leaf, NewError("x", "y"))

	if !errors.Is(agg, inner) {
		t.Fatal("errors.Is must descend through causes")
	}
}

func TestWithCause_CopiesInsteadOfMutating(t *testing.T) {
	t.Parallel()

	base := NewError("t", "m")
	grown := base.WithCause(NewError("c", "cause"))

	if base.IsAggregate() {
		t.Fatal("original error must stay untouched")
	}
	if len(grown.Causes()) != 1 {
		t.Fatalf("expected 1 cause on the copy, got %d", len(grown.Causes()))
	}
}

func TestWithTag_CopiesInsteadOfMutating(t *testing.T) {
	t.Parallel()

	base := NewError("old", "m")
	renamed := base.WithTag("new")

	if base.Tag() != "old" || renamed.Tag() != "new" {
		t.Fatalf("unexpected tags: %q / %q", base.Tag(), renamed.Tag())
	}
}

func TestErrors_FlattensAggregates(t *testing.T) {
	t.Parallel()

	a := NewError("a", "1")
	b := NewError("b", "2")
	flat := Errors(Aggregate("g", "s", a, b))

	if len(flat) != 2 || flat[0] != a || flat[1] != b {
		t.Fatalf("unexpected flattening: %v", flat)
	}

	single := Errors(a)
	if len(single) != 1 || single[0] != a {
		t.Fatalf("leaf must flatten to itself: %v", single)
	}

	if Errors(nil) != nil {
		t.Fatal("nil must flatten to nil")
	}
}
