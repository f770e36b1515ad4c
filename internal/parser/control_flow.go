package parser

import (
	"github.com/loxlang/glox/internal/ast"
	"github.com/loxlang/glox/internal/lexer"
)

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Keyword: keyword, Condition: condition, Then: then, Else: elseBranch}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Keyword: keyword, Condition: condition, Body: body}
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//           expression? ";" expression? ")" statement
//
// The For node is preserved as-is rather than desugared into While + Block
// here; desugaring (if any) happens at interpretation time.
func (p *Parser) forStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDecl()
	default:
		initializer = p.exprStmt()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	return &ast.For{Keyword: keyword, Initializer: initializer, Condition: condition, Increment: increment, Body: body}
}
