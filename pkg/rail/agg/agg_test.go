package agg

import (
	"context"
	"testing"

	"github.com/ib-77/railcheck/pkg/rail"
	"github.com/ib-77/railcheck/pkg/rail/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	Name     string
	Password string
}

func checkName(ctx context.Context, name string) rail.Result[string] {
	return chain.FromValue(ctx, name, "user.name").
		Check(func(_ context.Context, s string) bool { return len(s) < 12 },
			"Name must be shorter than 12 characters.").
		Result()
}

func checkPassword(ctx context.Context, password string) rail.Result[string] {
	return chain.FromValue(ctx, password, "user.password").
		Check(func(_ context.Context, s string) bool { return len(s) > 5 },
			"Password must be longer than 5 characters.").
		Result()
}

func TestUnwrapOr_SuccessLeavesBufferUntouched(t *testing.T) {
	t.Parallel()

	var fs Failures
	v := UnwrapOr(rail.ToResult("ok", "t"), &fs)

	assert.Equal(t, "ok", v)
	assert.True(t, fs.Empty())
}

func TestUnwrapOr_FailureAppendsInOrder(t *testing.T) {
	t.Parallel()

	var fs Failures
	a := rail.FailWith[string](rail.NewError("a", "first"))
	b := rail.FailWith[string](rail.NewError("b", "second"))

	_ = UnwrapOr(a, &fs)
	_ = UnwrapOr(b, &fs)

	require.Equal(t, 2, fs.Len())
	errs := fs.Errors()
	assert.Equal(t, "first", errs[0].Message())
	assert.Equal(t, "second", errs[1].Message())
}

func TestToError_CausesKeepAppendOrder(t *testing.T) {
	t.Parallel()

	var fs Failures
	Add(rail.FailWith[int](rail.NewError("a", "A")), &fs)
	Add(rail.FailWith[int](rail.NewError("b", "B")), &fs)

	e := fs.ToError("group", "summary")

	require.Len(t, e.Causes(), 2)
	assert.Equal(t, "A", e.Causes()[0].Message())
	assert.Equal(t, "B", e.Causes()[1].Message())
	assert.Equal(t, "summary", e.Message())
}

func TestToError_EmptyBufferIsUsageFault(t *testing.T) {
	t.Parallel()

	var fs Failures
	assert.Panics(t, func() {
		_ = fs.ToError("group", "summary")
	})
}

func TestAdd_IgnoresSuccess(t *testing.T) {
	t.Parallel()

	var fs Failures
	Add(rail.ToResult(1, "t"), &fs)
	assert.True(t, fs.Empty())
}

func TestWrap_InvalidUserCollectsBothFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var fs Failures

	name := UnwrapOr(checkName(ctx, "cynthia_magenta"), &fs)
	password := UnwrapOr(checkPassword(ctx, "pass"), &fs)

	res := Wrap(&fs, "user", "Invalid user.", func() user {
		return user{Name: name, Password: password}
	})

	require.True(t, res.IsFailure())
	e := res.ErrorValue()
	assert.Equal(t, "Invalid user.", e.Message())
	require.Len(t, e.Causes(), 2)
	assert.Equal(t, "user.name", e.Causes()[0].Tag())
	assert.Equal(t, "user.password", e.Causes()[1].Tag())
}

func TestWrap_ValidUserBuildsValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var fs Failures

	name := UnwrapOr(checkName(ctx, "jack_white"), &fs)
	password := UnwrapOr(checkPassword(ctx, "password1234"), &fs)

	res := Wrap(&fs, "user", "Invalid user.", func() user {
		return user{Name: name, Password: password}
	})

	assert.True(t, fs.Empty())
	require.True(t, res.IsSuccess())
	assert.Equal(t, user{Name: "jack_white", Password: "password1234"}, res.Unwrap())
}
