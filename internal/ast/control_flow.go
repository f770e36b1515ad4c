package ast

import (
	"bytes"
	"fmt"

	"github.com/loxlang/glox/internal/lexer"
)

// If is a conditional statement with an optional else branch.
type If struct {
	Keyword   lexer.Token
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if no else branch
}

func (s *If) stmtNode()        {}
func (s *If) Pos() lexer.Position { return s.Keyword.Pos }
func (s *If) String() string {
	var out bytes.Buffer
	out.WriteString(fmt.Sprintf("(if %s %s", s.Condition.String(), s.Then.String()))
	if s.Else != nil {
		out.WriteString(" ")
		out.WriteString(s.Else.String())
	}
	out.WriteString(")")
	return out.String()
}

// While is a condition-tested loop. It does not introduce its own scope;
// scoping of its body is the Block statement's job.
type While struct {
	Keyword   lexer.Token
	Condition Expr
	Body      Stmt
}

func (s *While) stmtNode()        {}
func (s *While) Pos() lexer.Position { return s.Keyword.Pos }
func (s *While) String() string {
	return fmt.Sprintf("(while %s %s)", s.Condition.String(), s.Body.String())
}

// For is the C-style for loop, kept as a distinct node rather than
// desugared into While + Block during parsing; desugaring happens at
// interpretation time instead (see interp package).
type For struct {
	Keyword     lexer.Token
	Initializer Stmt // nil, a Var, or an ExpressionStmt
	Condition   Expr // nil means "always true"
	Increment   Expr // nil means no increment
	Body        Stmt
}

func (s *For) stmtNode()        {}
func (s *For) Pos() lexer.Position { return s.Keyword.Pos }
func (s *For) String() string {
	var out bytes.Buffer
	out.WriteString("(for ")
	if s.Initializer != nil {
		out.WriteString(s.Initializer.String())
	} else {
		out.WriteString(";")
	}
	out.WriteString(" ")
	if s.Condition != nil {
		out.WriteString(s.Condition.String())
	}
	out.WriteString(" ")
	if s.Increment != nil {
		out.WriteString(s.Increment.String())
	}
	out.WriteString(" ")
	out.WriteString(s.Body.String())
	out.WriteString(")")
	return out.String()
}
