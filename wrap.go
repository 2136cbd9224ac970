// Package wrap provides composable function-wrapping utilities.
//
// A wrapper takes a target function and returns a replacement with augmented
// behavior (call logging, failure fallbacks, memoization, retries, or stubbing)
// without touching the target's body. Wrappers are plain function composition:
// each factory produces a WrapFunc, and stacking multiple wrappers on the same
// target is caller-controlled and order-preserving.
//
// The concrete wrappers live in subpackages: probe, guard, memoize, retry
// and todo.
package wrap

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// Func is the calling convention shared by all wrappers.
//
// A target function takes a single typed input and returns a single typed
// result or an error. Functions with multiple parameters use a struct input;
// functions with nothing to return use EmptyResult.
type Func[I, R any] func(ctx context.Context, in I) (R, error)

// WrapFunc decorates a Func, enabling cross-cutting concerns to be layered
// on a target without modifying it.
type WrapFunc[I, R any] func(next Func[I, R]) Func[I, R]

// EmptyInput is a placeholder input type for functions that take no arguments.
type EmptyInput = struct{}

// EmptyResult is a placeholder result type for functions that return nothing.
type EmptyResult = struct{}

// Chain applies wrappers to fn in order, with the first wrapper outermost.
//
//	Chain(fn, a, b, c)
//
// behaves like a(b(c(fn))): a observes every call first and c sits closest
// to the target.
func Chain[I, R any](fn Func[I, R], wrappers ...WrapFunc[I, R]) Func[I, R] {
	for i := len(wrappers) - 1; i >= 0; i-- {
		fn = wrappers[i](fn)
	}
	return fn
}

// FuncName resolves a short human-readable name for fn, in the form
// "package.Function". It is used by wrappers to identify the target in log
// lines and returns "unknown" for values that are not functions.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return "unknown"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "unknown"
	}

	name := f.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
