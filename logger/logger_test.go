package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rise-and-shine/wrap/logger"
	"github.com/rise-and-shine/wrap/meta"
)

func TestNew_Defaults(t *testing.T) {
	log, err := logger.New(logger.Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.NoError(t, log.Sync())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud", Encoding: "json"})
	assert.Error(t, err)
}

func TestNew_ConsoleEncoding(t *testing.T) {
	log, err := logger.New(logger.Config{Level: "info", Encoding: "console"})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestWithContext_EnrichesFromMeta(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := logger.FromZap(zap.New(core))

	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.TraceID: "trace-1",
	})

	log.WithContext(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "trace-1", entries[0].ContextMap()["trace_id"])
}

func TestNopLogger(t *testing.T) {
	log := logger.NewNop()

	// all of these are drops, none may panic
	log.Debug("a")
	log.Infof("%d", 1)
	log.With("k", "v").Named("x").WithContext(t.Context()).Warn("b")
	assert.NoError(t, log.Sync())
}
