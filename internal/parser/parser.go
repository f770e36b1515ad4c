// Package parser implements Lox's recursive-descent parser: one procedure
// per grammar non-terminal, precedence encoded by call order rather than by
// a generic Pratt precedence table.
package parser

import (
	"github.com/loxlang/glox/internal/ast"
	"github.com/loxlang/glox/internal/errors"
	"github.com/loxlang/glox/internal/lexer"
)

// Parser turns a token stream into a statement list.
type Parser struct {
	tokens  []lexer.Token
	current int
	source  string
	file    string
	errs    []*errors.LoxError
}

// New creates a Parser over the given token stream. source and file are
// only used for error message formatting.
func New(tokens []lexer.Token, source, file string) *Parser {
	filtered := tokens[:0:0]
	for _, t := range tokens {
		if t.Type != lexer.COMMENT {
			filtered = append(filtered, t)
		}
	}
	return &Parser{tokens: filtered, source: source, file: file}
}

// ParseProgram parses the entire token stream into a Program. Parse errors
// are recorded and recovered from via synchronize so that a single pass
// reports as many errors as possible; Errors() is non-empty iff the overall
// parse failed.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// Errors returns the parse errors recorded during ParseProgram.
func (p *Parser) Errors() []*errors.LoxError { return p.errs }

// parseError unwinds a malformed construct back up to declaration(), which
// recovers via synchronize. It is never allowed to escape ParseProgram.
type parseError struct{}

func (p *Parser) error(tok lexer.Token, message string) {
	p.record(tok, message)
	panic(parseError{})
}

// record files a parse error without unwinding the current production. Used
// for diagnostics that should not abort parsing of the surrounding construct,
// such as exceeding the 255-argument/parameter limit.
func (p *Parser) record(tok lexer.Token, message string) {
	e := errors.New(errors.ParseError, tok.Pos, message)
	e.Source = p.source
	e.File = p.file
	p.errs = append(p.errs, e)
}

// synchronize discards tokens after a parse error until it reaches a
// plausible statement boundary: one past a ';', or a token that begins a
// new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

// match advances and returns true if the current token is one of types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type, or raises a parseError
// referencing message at the current token.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.error(p.peek(), message)
	panic(parseError{}) // unreachable, error panics already
}

const maxArgs = 255
