package parser

import (
	"github.com/loxlang/glox/internal/ast"
	"github.com/loxlang/glox/internal/lexer"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → ( call "." )? IDENT "=" assignment | logic_or
//
// The left side is parsed as a full expression first; if "=" follows, it is
// re-interpreted rather than predicted, since the grammar for assignment
// targets (Var or Get) is a subset of ordinary expressions.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		}
		p.error(equals, "Invalid assignment target.")
	}

	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary → ( "!" | "-" ) unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

// arguments → expression ( "," expression )*
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.record(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary → "true"|"false"|"nil"|"this"|NUMBER|STRING|IDENT
//         | "(" expression ")" | "super" "." IDENT
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.match(lexer.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.match(lexer.NIL):
		return &ast.Literal{Token: p.previous(), Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(lexer.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		lparen := p.previous()
		inner := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{LParen: lparen, Inner: inner}
	}

	p.error(p.peek(), "Expect expression.")
	panic(parseError{})
}
