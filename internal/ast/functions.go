package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/loxlang/glox/internal/lexer"
)

// Call is a function or method invocation: `callee(args...)`.
type Call struct {
	Callee Expr
	Paren  lexer.Token // closing ')', used for runtime error positions
	Args   []Expr
}

func (e *Call) exprNode()         {}
func (e *Call) Pos() lexer.Position { return e.Paren.Pos }
func (e *Call) String() string {
	var out bytes.Buffer
	out.WriteString("(call ")
	out.WriteString(e.Callee.String())
	for _, a := range e.Args {
		out.WriteString(" ")
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}

// FunctionDecl is a named function declaration: `fun name(params) { body }`.
// It is also reused, sans the Fun keyword's role, for class methods.
type FunctionDecl struct {
	Fun    lexer.Token
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionDecl) stmtNode()        {}
func (s *FunctionDecl) Pos() lexer.Position { return s.Fun.Pos }
func (s *FunctionDecl) String() string {
	var out bytes.Buffer
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	out.WriteString(fmt.Sprintf("(fun %s (%s) ", s.Name.Lexeme, strings.Join(params, " ")))
	for i, st := range s.Body {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(st.String())
	}
	out.WriteString(")")
	return out.String()
}
