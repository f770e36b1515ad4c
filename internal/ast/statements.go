package ast

import (
	"bytes"

	"github.com/loxlang/glox/internal/lexer"
)

// Program is the root node: a flat list of top-level declarations.
type Program struct {
	Statements []Stmt
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for i, s := range p.Statements {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(s.String())
	}
	return out.String()
}

// ExpressionStmt is a bare expression used as a statement.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) stmtNode()        {}
func (s *ExpressionStmt) Pos() lexer.Position { return s.Expression.Pos() }
func (s *ExpressionStmt) String() string {
	return "(; " + s.Expression.String() + ")"
}

// Print is the `print expr;` statement.
type Print struct {
	Keyword lexer.Token
	Expression Expr
}

func (s *Print) stmtNode()        {}
func (s *Print) Pos() lexer.Position { return s.Keyword.Pos }
func (s *Print) String() string {
	return "(print " + s.Expression.String() + ")"
}

// Var is a variable declaration, with an optional initializer.
type Var struct {
	Name        lexer.Token
	Initializer Expr // nil if uninitialized; interpreter treats that as nil
}

func (s *Var) stmtNode()        {}
func (s *Var) Pos() lexer.Position { return s.Name.Pos }
func (s *Var) String() string {
	if s.Initializer == nil {
		return "(var " + s.Name.Lexeme + ")"
	}
	return "(var " + s.Name.Lexeme + " = " + s.Initializer.String() + ")"
}

// Block is a brace-delimited statement list; it introduces a new lexical
// scope on entry and tears it down on every exit path.
type Block struct {
	LBrace     lexer.Token
	Statements []Stmt
}

func (s *Block) stmtNode()        {}
func (s *Block) Pos() lexer.Position { return s.LBrace.Pos }
func (s *Block) String() string {
	var out bytes.Buffer
	out.WriteString("(block")
	for _, st := range s.Statements {
		out.WriteString(" ")
		out.WriteString(st.String())
	}
	out.WriteString(")")
	return out.String()
}

// Return unwinds to the nearest enclosing function call, optionally
// carrying a value. Value is nil for a bare `return;`.
type Return struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *Return) stmtNode()        {}
func (s *Return) Pos() lexer.Position { return s.Keyword.Pos }
func (s *Return) String() string {
	if s.Value == nil {
		return "(return)"
	}
	return "(return " + s.Value.String() + ")"
}
