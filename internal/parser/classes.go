package parser

import (
	"github.com/loxlang/glox/internal/ast"
	"github.com/loxlang/glox/internal/lexer"
)

// classDecl → "class" IDENT ( "<" IDENT )? "{" function* "}"
func (p *Parser) classDecl() ast.Stmt {
	class := p.previous()
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		superName := p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		superclass = &ast.Variable{Name: superName}
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionDecl
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")

	return &ast.ClassDecl{Class: class, Name: name, Superclass: superclass, Methods: methods}
}
