// Package probe provides the inspector wrapper: it logs call metadata
// (caller chain, arguments, return value, elapsed time) around a target
// function without altering its behavior.
//
// The probe is a pass-through instrumentation layer. Return values and errors
// propagate unmodified, nothing is cached or retried, and every invocation
// emits exactly one structured log line.
package probe

import (
	"context"
	"time"

	"github.com/rise-and-shine/wrap"
	"github.com/rise-and-shine/wrap/argrepr"
	"github.com/rise-and-shine/wrap/logger"
)

// callContext is the per-invocation record consumed by the logging step.
type callContext struct {
	callers []string
	args    string
	kwargs  any
	start   time.Time
}

// New builds a probe wrapper from cfg. Invalid options (an ill-typed or
// negative ShowCaller) are reported at construction time.
//
// A nil log falls back to the no-op logger, which keeps the probe a pure
// timing pass-through.
func New[I, R any](log logger.Logger, cfg Config) (wrap.WrapFunc[I, R], error) {
	depth, err := cfg.callerDepth()
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNop()
	}

	return func(next wrap.Func[I, R]) wrap.Func[I, R] {
		name := cfg.Name
		if name == "" {
			name = wrap.FuncName(next)
		}
		plog := log.Named("probe").With("func", name)

		return func(ctx context.Context, in I) (R, error) {
			var callers []string
			if depth > 0 {
				// capture here so the first recorded frame is the
				// immediate caller of the wrapped function
				callers = callerChain(depth)
			}
			cc := enterCall(cfg, in)
			cc.callers = callers

			out, err := next(ctx, in)

			// elapsed time is recorded on both normal and error exits
			elapsed := time.Since(cc.start)

			line := plog.WithContext(ctx).With("duration", elapsed.String())
			if cc.callers != nil {
				line = line.With("caller_chain", cc.callers)
			}
			if cfg.ShowArgs {
				line = line.With("args", cc.args)
			}
			if cfg.ShowKwargs {
				line = line.With("kwargs", cc.kwargs)
			}

			if err != nil {
				line.With("error", err.Error()).Error("probed call failed")
				return out, err
			}

			if cfg.ShowReturns {
				line = line.With("returns", argrepr.Value(out))
			}
			line.Info("probed call")

			return out, nil
		}
	}, nil
}

// enterCall captures the call-entry state: eager argument representations,
// taken before the target runs so later mutation of the arguments does not
// skew the log.
func enterCall[I any](cfg Config, in I) callContext {
	cc := callContext{}

	if cfg.ShowArgs {
		cc.args = argrepr.Value(in)
	}
	if cfg.ShowKwargs {
		cc.kwargs = argrepr.Fields(in)
	}
	cc.start = time.Now()

	return cc
}
