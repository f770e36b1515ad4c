// This file contains the AST nodes for object-oriented Lox: class
// declarations, property access, and this/super.
package ast

import (
	"bytes"
	"fmt"

	"github.com/loxlang/glox/internal/lexer"
)

// Get is a property/method read: `obj.name`.
type Get struct {
	Object Expr
	Name   lexer.Token
}

func (e *Get) exprNode()         {}
func (e *Get) Pos() lexer.Position { return e.Name.Pos }
func (e *Get) String() string {
	return fmt.Sprintf("(. %s %s)", e.Object.String(), e.Name.Lexeme)
}

// Set is a property write: `obj.name = value`.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (e *Set) exprNode()         {}
func (e *Set) Pos() lexer.Position { return e.Name.Pos }
func (e *Set) String() string {
	return fmt.Sprintf("(.= %s %s %s)", e.Object.String(), e.Name.Lexeme, e.Value.String())
}

// This is the `this` keyword used inside a method body.
type This struct {
	Keyword lexer.Token
}

func (e *This) exprNode()         {}
func (e *This) Pos() lexer.Position { return e.Keyword.Pos }
func (e *This) String() string      { return "this" }

// Super is `super.method`, used inside a subclass method body.
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (e *Super) exprNode()         {}
func (e *Super) Pos() lexer.Position { return e.Keyword.Pos }
func (e *Super) String() string {
	return fmt.Sprintf("(super.%s)", e.Method.Lexeme)
}

// ClassDecl is a class declaration with an optional superclass and a set of
// methods (each a FunctionDecl, parsed without the `fun` keyword).
type ClassDecl struct {
	Class      lexer.Token
	Name       lexer.Token
	Superclass *Variable // nil if no "< Name" clause
	Methods    []*FunctionDecl
}

func (s *ClassDecl) stmtNode()        {}
func (s *ClassDecl) Pos() lexer.Position { return s.Class.Pos }
func (s *ClassDecl) String() string {
	var out bytes.Buffer
	out.WriteString("(class ")
	out.WriteString(s.Name.Lexeme)
	if s.Superclass != nil {
		out.WriteString(" < ")
		out.WriteString(s.Superclass.Name.Lexeme)
	}
	for _, m := range s.Methods {
		out.WriteString(" ")
		out.WriteString(m.String())
	}
	out.WriteString(")")
	return out.String()
}
