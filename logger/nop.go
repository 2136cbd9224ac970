package logger

import "context"

// nopLogger is a no-op Logger implementation.
type nopLogger struct{}

// NewNop creates a Logger that drops all log events. It is the implementation
// wrappers fall back to when no logger is supplied.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(_ ...any) {}
func (nopLogger) Info(_ ...any)  {}
func (nopLogger) Warn(_ ...any)  {}
func (nopLogger) Error(_ ...any) {}

func (nopLogger) Debugf(_ string, _ ...any) {}
func (nopLogger) Infof(_ string, _ ...any)  {}
func (nopLogger) Warnf(_ string, _ ...any)  {}
func (nopLogger) Errorf(_ string, _ ...any) {}

func (l nopLogger) With(_ ...any) Logger                 { return l }
func (l nopLogger) WithContext(_ context.Context) Logger { return l }
func (l nopLogger) Named(_ string) Logger                { return l }

func (nopLogger) Sync() error { return nil }
