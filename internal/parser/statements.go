package parser

import (
	"github.com/loxlang/glox/internal/ast"
	"github.com/loxlang/glox/internal/lexer"
)

// statement → exprStmt | forStmt | ifStmt | printStmt
//           | returnStmt | whileStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.FOR):
		return p.forStmt()
	case p.match(lexer.IF):
		return p.ifStmt()
	case p.match(lexer.PRINT):
		return p.printStmt()
	case p.match(lexer.RETURN):
		return p.returnStmt()
	case p.match(lexer.WHILE):
		return p.whileStmt()
	case p.match(lexer.LEFT_BRACE):
		lbrace := p.previous()
		return &ast.Block{LBrace: lbrace, Statements: p.block()}
	default:
		return p.exprStmt()
	}
}

// block → "{" declaration* "}"; the opening brace has already been consumed.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

// printStmt → "print" expression ";"
func (p *Parser) printStmt() ast.Stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &ast.Print{Keyword: keyword, Expression: value}
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

// exprStmt → expression ";"
func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}
