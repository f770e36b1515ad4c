package parser

import (
	"github.com/loxlang/glox/internal/ast"
	"github.com/loxlang/glox/internal/lexer"
)

// declaration → classDecl | funDecl | varDecl | statement
//
// Recovers from a parseError raised anywhere below it by synchronizing and
// returning nil, so ParseProgram can keep collecting errors across the rest
// of the token stream in one pass.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDecl()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

// varDecl → "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

// function → IDENT "(" parameters? ")" block
// kind is "function" or "method", used only for error messages.
func (p *Parser) function(kind string) *ast.FunctionDecl {
	var fun lexer.Token
	if kind == "function" {
		fun = p.previous() // the "fun" keyword just matched by the caller
	}
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	if kind != "function" {
		fun = name
	}
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.record(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()

	return &ast.FunctionDecl{Fun: fun, Name: name, Params: params, Body: body}
}
