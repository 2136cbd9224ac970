// Package guard provides the guard wrapper: it intercepts failures of a
// target function and substitutes a fallback value or fallback call.
//
// The guard decouples failure policy from business logic. It protects against
// the target's failure only: errors (and panics) raised by the fallback
// function itself propagate to the caller uncaught.
package guard

import (
	"context"
	"fmt"
	"runtime"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/wrap"
	"github.com/rise-and-shine/wrap/logger"
)

// Config defines the failure policy of a guard wrapper.
//
// The fallback is a tagged variant resolved at construction time: when
// FallbackFunc is set it overrides FallbackValue, and it is invoked with the
// same (ctx, input) the target received.
type Config[I, R any] struct {
	// FallbackValue is returned when the target fails and no FallbackFunc
	// is set. Default is the zero value of R.
	FallbackValue R

	// FallbackFunc, when set, is called in place of the failed target.
	// Its result becomes the wrapper's result; its failures are not caught.
	FallbackFunc wrap.Func[I, R]

	// LogTraceback includes the full error trace (and panic stack, when
	// recovering) in the suppression warning.
	LogTraceback bool

	// DisableRecover turns off panic recovery, letting target panics
	// unwind past the guard.
	DisableRecover bool
}

// New builds a guard wrapper from cfg. Construction never fails; the
// fallback variant is fixed once the wrapper is built.
//
// A nil log falls back to the no-op logger.
func New[I, R any](log logger.Logger, cfg Config[I, R]) wrap.WrapFunc[I, R] {
	if log == nil {
		log = logger.NewNop()
	}

	return func(next wrap.Func[I, R]) wrap.Func[I, R] {
		glog := log.Named("guard").With("func", wrap.FuncName(next))

		return func(ctx context.Context, in I) (R, error) {
			out, err := invoke(ctx, next, in, cfg.DisableRecover)
			if err == nil {
				return out, nil
			}

			line := glog.WithContext(ctx).With("error", err.Error())
			if cfg.LogTraceback {
				line = line.With("trace", errx.AsErrorX(err).Trace())
			}
			line.Warn("suppressing target failure")

			if cfg.FallbackFunc != nil {
				return cfg.FallbackFunc(ctx, in)
			}
			return cfg.FallbackValue, nil
		}
	}
}

// invoke runs the target inside the failure boundary, converting panics to
// errors unless recovery is disabled.
func invoke[I, R any](ctx context.Context, fn wrap.Func[I, R], in I, disableRecover bool) (out R, err error) {
	if !disableRecover {
		defer func() {
			if r := recover(); r != nil {
				stackTrace := make([]byte, 4096) // 4KB
				stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

				err = errx.New("panic recovered in guarded call", errx.WithDetails(errx.D{
					"stack_trace":  string(stackTrace),
					"panic_values": fmt.Sprintf("%v", r),
				}))
			}
		}()
	}

	return fn(ctx, in)
}
