// Package retry provides the retry wrapper: it re-invokes a failing target
// with a fixed delay and jitter before giving up.
//
// Only the last error is surfaced. The wrapper responds to context
// cancellation between attempts; it has no mechanism to interrupt an attempt
// already in flight.
package retry

import (
	"context"
	"time"

	retrygo "github.com/avast/retry-go/v4"

	"github.com/rise-and-shine/wrap"
	"github.com/rise-and-shine/wrap/logger"
)

// Config defines configuration options for the retry wrapper.
type Config struct {
	// Attempts is the total number of invocations, including the first.
	// Default is 3.
	Attempts uint `default:"3" validate:"gte=1"`

	// Delay is the base wait between attempts. Default is 100ms.
	Delay time.Duration `default:"100ms"`

	// MaxJitter is the maximum random jitter added to Delay.
	// Default is 10ms.
	MaxJitter time.Duration `default:"10ms"`
}

// New builds a retry wrapper from cfg.
//
// A nil log falls back to the no-op logger.
func New[I, R any](log logger.Logger, cfg Config) (wrap.WrapFunc[I, R], error) {
	if err := wrap.PrepareConfig(&cfg); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNop()
	}

	return func(next wrap.Func[I, R]) wrap.Func[I, R] {
		rlog := log.Named("retry").With("func", wrap.FuncName(next))

		return func(ctx context.Context, in I) (R, error) {
			return retrygo.DoWithData(
				func() (R, error) {
					return next(ctx, in)
				},
				retrygo.Attempts(cfg.Attempts),
				retrygo.Delay(cfg.Delay),
				retrygo.MaxJitter(cfg.MaxJitter),
				retrygo.LastErrorOnly(true), // only return the last error
				retrygo.OnRetry(func(n uint, err error) {
					rlog.WithContext(ctx).
						With("attempt", n+1).
						With("max_attempts", cfg.Attempts).
						With("error", err.Error()).
						Warn("retrying wrapped call")
				}),
				retrygo.Context(ctx), // respond to context cancellation
			)
		}
	}, nil
}
