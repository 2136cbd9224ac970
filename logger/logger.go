// Package logger provides the structured logging interface used by the
// wrappers.
//
// It wraps the zap logging library to provide a simpler API while maintaining
// high performance. Wrapper log lines (probe call records, guard suppression
// warnings, retry attempts) all flow through the Logger interface, so host
// applications can plug in their own zap logger or silence the library
// entirely with the no-op implementation.
package logger

import (
	"context"
	"os"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/rise-and-shine/wrap/meta"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the logging interface consumed by the wrappers.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(args ...any)
	// Info logs a message at info level.
	Info(args ...any)
	// Warn logs a message at warn level.
	Warn(args ...any)
	// Error logs a message at error level.
	Error(args ...any)

	// Debugf logs a formatted message at debug level.
	Debugf(format string, args ...any)
	// Infof logs a formatted message at info level.
	Infof(format string, args ...any)
	// Warnf logs a formatted message at warn level.
	Warnf(format string, args ...any)
	// Errorf logs a formatted message at error level.
	Errorf(format string, args ...any)

	// With creates a new logger with the given key-value pairs.
	// The returned logger inherits the properties of the original logger
	// and includes the provided key-value pairs in all subsequent log entries.
	With(keysAndValues ...any) Logger
	// WithContext creates a logger enriched with metadata from the context.
	WithContext(ctx context.Context) Logger

	// Named adds a sub-scope to the logger's name.
	Named(name string) Logger

	// Sync flushes any buffered log entries.
	// Intended for use on application shutdown to ensure all logs are written.
	Sync() error
}

// logger implements the Logger interface using zap's SugaredLogger.
type logger struct {
	*zap.SugaredLogger
}

// New creates a new Logger instance with the provided configuration.
// Zero-valued fields pick up their documented defaults.
func New(cfg Config) (Logger, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, errx.Wrap(err)
	}

	zapConfig, err := cfg.getZapConfig()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	var zapLogger *zap.Logger

	// Use custom development encoder for console mode
	if cfg.Encoding == EncodingConsole {
		enc := newDevEncoder(zapConfig.EncoderConfig)

		core := zapcore.NewCore(
			enc,
			zapcore.AddSync(os.Stdout),
			zapConfig.Level,
		)

		zapLogger = zap.New(core)
	} else {
		zapLogger, err = zapConfig.Build()
		if err != nil {
			return nil, errx.Wrap(err)
		}
	}

	return &logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}

// FromZap adapts an existing zap logger to the Logger interface.
// Useful when the host application already owns a configured zap logger,
// and in tests built around zap's observer core.
func FromZap(zl *zap.Logger) Logger {
	return &logger{
		SugaredLogger: zl.Sugar(),
	}
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{
		SugaredLogger: l.SugaredLogger.With(keysAndValues...),
	}
}

func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	var withFields []any
	metaData := meta.ExtractMetaFromContext(ctx)
	for k, v := range metaData {
		if v != "" {
			// Convert ContextKey to string to avoid the "non-string keys" error
			withFields = append(withFields, string(k), v)
		}
	}

	if len(withFields) > 0 {
		return l.With(withFields...)
	}

	return l
}

func (l *logger) Named(name string) Logger {
	return &logger{
		SugaredLogger: l.SugaredLogger.Named(name),
	}
}
