package probe

import (
	"fmt"

	"github.com/code19m/errx"
	"github.com/spf13/cast"

	"github.com/rise-and-shine/wrap"
)

// Config defines configuration options for the probe wrapper.
//
// Elapsed wall-clock time is always recorded; everything else is opt-in.
type Config struct {
	// ShowCaller controls caller-chain capture. Accepts a bool or an
	// integer depth: true captures one level, an integer N captures N
	// levels, nearest caller first. Default is off.
	ShowCaller any

	// ShowArgs captures a printable representation of the input value,
	// taken eagerly before the target runs.
	ShowArgs bool

	// ShowKwargs captures a named-field view of a struct input.
	// Fields tagged `mask:"true"` are redacted.
	ShowKwargs bool

	// ShowReturns captures a printable representation of the return value.
	ShowReturns bool

	// Name overrides the target name reported in log lines.
	// Default is derived from the wrapped function pointer.
	Name string
}

// callerDepth resolves the duck-typed ShowCaller option into a frame count.
// Invalid types and negative depths are construction-time errors.
func (c Config) callerDepth() (int, error) {
	switch c.ShowCaller.(type) {
	case nil:
		return 0, nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
	default:
		return 0, errx.New(
			fmt.Sprintf("probe: ShowCaller must be a bool or an integer, got %T", c.ShowCaller),
			errx.WithCode(wrap.CodeInvalidConfig),
			errx.WithType(errx.T_Validation),
		)
	}

	depth, err := cast.ToIntE(c.ShowCaller)
	if err != nil {
		return 0, errx.Wrap(err, errx.WithCode(wrap.CodeInvalidConfig), errx.WithType(errx.T_Validation))
	}
	if depth < 0 {
		return 0, errx.New(
			fmt.Sprintf("probe: ShowCaller depth must not be negative, got %d", depth),
			errx.WithCode(wrap.CodeInvalidConfig),
			errx.WithType(errx.T_Validation),
		)
	}
	return depth, nil
}
