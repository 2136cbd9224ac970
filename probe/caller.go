package probe

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
)

// callerSkip is the number of frames between runtime.Callers and the first
// caller of the probed function: runtime.Callers itself, callerChain and the
// probed closure.
const callerSkip = 3

// callerChain walks up to depth calling frames and returns a human-readable
// identifier for each, nearest caller first. A depth beyond the real stack
// yields a shorter chain.
func callerChain(depth int) []string {
	if depth <= 0 {
		return nil
	}

	pcs := make([]uintptr, depth)
	n := runtime.Callers(callerSkip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	collected := make([]runtime.Frame, 0, n)
	for {
		frame, more := frames.Next()
		collected = append(collected, frame)
		if !more || len(collected) == depth {
			break
		}
	}

	return lo.Map(collected, func(f runtime.Frame, _ int) string {
		return fmt.Sprintf("%s (%s:%d)", shortFuncName(f.Function), f.File, f.Line)
	})
}

func shortFuncName(name string) string {
	if name == "" {
		return "unknown"
	}
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
