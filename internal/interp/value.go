// Package interp implements the tree-walking evaluator for Lox: the
// environment chain, the runtime value universe, and the Eval pass that
// walks a resolved AST to execute it.
package interp

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a runtime Lox value. All runtime values must implement this
// interface rather than being passed around as bare any, so every value
// carries a type name and a print representation.
type Value interface {
	// Type returns the value's type name, used in runtime error messages.
	Type() string
	// String returns the value's print representation, as used by `print`.
	// This formatting is separate from the AST printer's rendering of
	// literals: NumberValue prints integer-valued numbers in full (1000000),
	// where a number literal in the AST renders with Go's %v (1e+06).
	String() string
}

// NilValue is Lox's `nil`. There is exactly one instance, Nil.
type NilValue struct{}

func (NilValue) Type() string   { return "NIL" }
func (NilValue) String() string { return "nil" }

// Nil is the single NilValue instance; compare against it with `== Nil`.
var Nil = NilValue{}

// BoolValue is a Lox boolean.
type BoolValue bool

func (b BoolValue) Type() string { return "BOOL" }
func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

// NumberValue is Lox's single numeric type, a float64.
type NumberValue float64

func (n NumberValue) Type() string { return "NUMBER" }
func (n NumberValue) String() string {
	f := float64(n)
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// StringValue is a Lox string.
type StringValue string

func (s StringValue) Type() string   { return "STRING" }
func (s StringValue) String() string { return string(s) }

// isTruthy applies Lox's truthiness rule: everything is truthy except nil
// and false (Ruby's rule, not C's "zero is false").
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return bool(val)
	default:
		return true
	}
}

// isEqual applies Lox's equality rule: values of different runtime types
// are never equal, nil equals only nil, and numbers/strings/bools compare
// by value.
func isEqual(a, b Value) bool {
	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av == bv
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	default:
		return a == b
	}
}

func typeMismatch(op, expected string, v Value) string {
	return fmt.Sprintf("Operand of %q must be %s, got %s.", op, expected, v.Type())
}
