// Package ast defines the Lox abstract syntax tree: two disjoint sum types,
// Expr and Stmt, produced by the parser and walked by the resolver and
// interpreter.
package ast

import (
	"bytes"
	"fmt"

	"github.com/loxlang/glox/internal/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// String renders the node in parenthesised prefix form (see pkg/printer).
	String() string
	// Pos returns the node's source position for error reporting.
	Pos() lexer.Position
}

// Expr is any node that produces a value. Each expression node occurrence
// has a stable identity: it is always addressed through its own pointer, so
// the resolver and interpreter can key maps on the Expr value itself (Go
// interface comparison compares the pointer, not structure) rather than on
// node contents. Two structurally-equal expressions at different source
// positions are distinct pointers and therefore distinct map keys.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// Literal is a literal value: nil, a bool, a float64, or a string.
type Literal struct {
	Token lexer.Token
	Value any
}

func (e *Literal) exprNode()         {}
func (e *Literal) Pos() lexer.Position { return e.Token.Pos }
func (e *Literal) String() string {
	switch v := e.Value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprintf("%v", v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Variable is a reference to a named variable: `name`.
type Variable struct {
	Name lexer.Token
}

func (e *Variable) exprNode()         {}
func (e *Variable) Pos() lexer.Position { return e.Name.Pos }
func (e *Variable) String() string      { return e.Name.Lexeme }

// Assign is a variable assignment: `name = value`.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (e *Assign) exprNode()         {}
func (e *Assign) Pos() lexer.Position { return e.Name.Pos }
func (e *Assign) String() string {
	return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, e.Value.String())
}

// Unary is a prefix operator expression: `-right` or `!right`.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) exprNode()         {}
func (e *Unary) Pos() lexer.Position { return e.Operator.Pos }
func (e *Unary) String() string {
	return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, e.Right.String())
}

// Binary is an infix arithmetic or comparison expression.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) exprNode()         {}
func (e *Binary) Pos() lexer.Position { return e.Operator.Pos }
func (e *Binary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(e.Operator.Lexeme)
	out.WriteString(" ")
	out.WriteString(e.Left.String())
	out.WriteString(" ")
	out.WriteString(e.Right.String())
	out.WriteString(")")
	return out.String()
}

// Logical is `and`/`or`, distinguished from Binary because both
// short-circuit and never coerce their result to boolean.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) exprNode()         {}
func (e *Logical) Pos() lexer.Position { return e.Operator.Pos }
func (e *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, e.Left.String(), e.Right.String())
}

// Grouping is a parenthesised expression: `(inner)`.
type Grouping struct {
	LParen lexer.Token
	Inner  Expr
}

func (e *Grouping) exprNode()         {}
func (e *Grouping) Pos() lexer.Position { return e.LParen.Pos }
func (e *Grouping) String() string {
	return fmt.Sprintf("(group %s)", e.Inner.String())
}
