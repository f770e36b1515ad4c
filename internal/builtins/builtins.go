// Package builtins defines Lox's native functions and registers them into
// an interpreter's global environment. It depends on interp rather than the
// other way around, so the interpreter core stays free of any particular
// builtin's concerns.
package builtins

import (
	"time"

	"github.com/loxlang/glox/internal/interp"
)

// Register defines every native function into env. Called once, on the
// interpreter's global environment, before a program runs.
func Register(env *interp.Environment) {
	env.Define("clock", interp.NewBuiltin("clock", 0, clock))
}

// clock returns the number of seconds elapsed since the Unix epoch, as a
// Lox number. Used by Lox benchmarks to measure elapsed wall-clock time,
// since Lox has no other access to the system clock.
func clock(_ *interp.Interpreter, _ []interp.Value) (interp.Value, error) {
	return interp.NumberValue(float64(time.Now().UnixNano()) / 1e9), nil
}
