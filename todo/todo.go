// Package todo provides the stub wrapper: a call-time placeholder that
// refuses execution and signals "not implemented".
package todo

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/wrap"
)

// DefaultMessage is used when New is given an empty message.
const DefaultMessage = "not implemented"

// New builds a stub wrapper. Every invocation returns a CodeNotImplemented
// error carrying message; the target is never invoked.
func New[I, R any](message string) wrap.WrapFunc[I, R] {
	if message == "" {
		message = DefaultMessage
	}

	return func(_ wrap.Func[I, R]) wrap.Func[I, R] {
		return func(_ context.Context, _ I) (R, error) {
			var zero R
			return zero, errx.New(
				message,
				errx.WithCode(wrap.CodeNotImplemented),
				errx.WithType(errx.T_Internal),
			)
		}
	}
}
