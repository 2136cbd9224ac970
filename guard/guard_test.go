package guard_test

import (
	"context"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/wrap"
	"github.com/rise-and-shine/wrap/guard"
	"github.com/rise-and-shine/wrap/logger"
)

var errBoom = errx.New("boom")

func failing(_ context.Context, _ int) (int, error) {
	return 0, errBoom
}

func succeeding(_ context.Context, in int) (int, error) {
	return in + 1, nil
}

func TestGuard_PassThroughOnSuccess(t *testing.T) {
	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{FallbackValue: -1})

	out, err := wrapper(succeeding)(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
}

func TestGuard_FallbackValue(t *testing.T) {
	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{FallbackValue: 42})

	out, err := wrapper(failing)(t.Context(), 1)
	require.NoError(t, err, "guard never lets a target error escape")
	assert.Equal(t, 42, out)
}

func TestGuard_ZeroValueFallbackByDefault(t *testing.T) {
	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{})

	out, err := wrapper(failing)(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, out)
}

func TestGuard_FallbackFunc(t *testing.T) {
	var gotInput int
	fb := func(_ context.Context, in int) (int, error) {
		gotInput = in
		return in * 10, nil
	}

	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{FallbackFunc: fb})

	out, err := wrapper(failing)(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, 70, out)
	assert.Equal(t, 7, gotInput, "fallback receives the same input the target received")
}

func TestGuard_FallbackFuncOverridesValue(t *testing.T) {
	fb := func(_ context.Context, _ int) (int, error) {
		return 99, nil
	}

	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{
		FallbackValue: 1,
		FallbackFunc:  fb,
	})

	out, err := wrapper(failing)(t.Context(), 0)
	require.NoError(t, err)
	assert.Equal(t, 99, out)
}

func TestGuard_FallbackErrorsPropagate(t *testing.T) {
	fbErr := errx.New("fallback down too")
	fb := func(_ context.Context, _ int) (int, error) {
		return 0, fbErr
	}

	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{FallbackFunc: fb})

	_, err := wrapper(failing)(t.Context(), 0)
	assert.ErrorIs(t, err, fbErr, "guard protects against the target's failure only")
}

func TestGuard_RecoversTargetPanics(t *testing.T) {
	panicking := func(_ context.Context, _ int) (int, error) {
		panic("kaboom")
	}

	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{FallbackValue: 5})

	out, err := wrapper(panicking)(t.Context(), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, out)
}

func TestGuard_DisableRecoverLetsPanicsUnwind(t *testing.T) {
	panicking := func(_ context.Context, _ int) (int, error) {
		panic("kaboom")
	}

	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{DisableRecover: true})

	assert.Panics(t, func() {
		_, _ = wrapper(panicking)(t.Context(), 0)
	})
}

func TestGuard_FallbackPanicsAreNotRecovered(t *testing.T) {
	fb := func(_ context.Context, _ int) (int, error) {
		panic("fallback kaboom")
	}

	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{FallbackFunc: fb})

	assert.Panics(t, func() {
		_, _ = wrapper(failing)(t.Context(), 0)
	})
}

func TestGuard_StacksOverOtherWrappers(t *testing.T) {
	wrapper := guard.New[int, int](logger.NewNop(), guard.Config[int, int]{FallbackValue: -1})

	chained := wrap.Chain(failing, wrapper)

	out, err := chained(t.Context(), 0)
	require.NoError(t, err)
	assert.Equal(t, -1, out)
}
