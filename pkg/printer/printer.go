// Package printer renders a parsed program back out as a parenthesized
// prefix form, one s-expression per top-level statement, for the CLI's
// --ast debugging mode.
package printer

import (
	"strings"

	"github.com/loxlang/glox/internal/ast"
)

// Print renders program as one parenthesized-prefix s-expression per
// top-level statement, each on its own line. Every AST node already knows
// how to render itself via String(); Print's job is only to lay the
// top-level statements out legibly instead of running them together on one
// line the way Program.String() does internally.
func Print(program *ast.Program) string {
	lines := make([]string, len(program.Statements))
	for i, stmt := range program.Statements {
		lines[i] = stmt.String()
	}
	return strings.Join(lines, "\n")
}
