package todo_test

import (
	"context"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/wrap"
	"github.com/rise-and-shine/wrap/todo"
)

func TestTodo_AlwaysSignalsNotImplemented(t *testing.T) {
	executed := false
	target := func(_ context.Context, _ wrap.EmptyInput) (string, error) {
		executed = true
		return "real result", nil
	}

	stubbed := todo.New[wrap.EmptyInput, string]("billing export is pending")(target)

	out, err := stubbed(t.Context(), wrap.EmptyInput{})
	require.Error(t, err)
	assert.Empty(t, out)
	assert.False(t, executed, "the target body never runs")

	e := errx.AsErrorX(err)
	assert.Equal(t, wrap.CodeNotImplemented, e.Code())
	assert.Equal(t, "billing export is pending", err.Error())
}

func TestTodo_DefaultMessage(t *testing.T) {
	target := func(_ context.Context, in int) (int, error) {
		return in, nil
	}

	stubbed := todo.New[int, int]("")(target)

	_, err := stubbed(t.Context(), 1)
	require.Error(t, err)
	assert.Equal(t, todo.DefaultMessage, err.Error())
}

func TestTodo_RepeatedCallsKeepFailing(t *testing.T) {
	stubbed := todo.New[int, int]("later")(func(_ context.Context, in int) (int, error) {
		return in, nil
	})

	for range 3 {
		_, err := stubbed(t.Context(), 1)
		assert.Error(t, err)
	}
}
