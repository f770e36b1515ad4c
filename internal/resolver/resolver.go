// Package resolver performs a static pass between parsing and interpretation:
// it walks the AST once to compute, for every variable reference, how many
// enclosing block scopes separate it from the declaration it resolves to.
// The interpreter consults this table instead of walking the live
// environment chain at every lookup, which is what lets shadowed
// declarations in different scopes resolve independently of each other.
package resolver

import (
	"github.com/loxlang/glox/internal/ast"
	"github.com/loxlang/glox/internal/errors"
	"github.com/loxlang/glox/internal/lexer"
)

// functionType tracks what kind of function body is currently being
// resolved, so return statements and this/super references can be checked
// against their context.
type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name declared in a block to whether its initializer has
// finished resolving yet. A name present but mapped to false is "declared
// but not yet defined": referencing it in that state is the classic
// `var a = a;` self-reference bug, so the resolver rejects it.
type scope map[string]bool

// Resolver computes lexical resolution distances for every variable
// reference in a program. A Resolver is single-use: construct one with New,
// call Resolve once, and discard it.
type Resolver struct {
	scopes          []scope
	locals          map[ast.Expr]int
	currentFunction functionType
	currentClass    classType
	source          string
	file            string
	errs            []*errors.LoxError
}

// New creates a Resolver. source and file are used only for error
// formatting.
func New(source, file string) *Resolver {
	return &Resolver{
		locals: make(map[ast.Expr]int),
		source: source,
		file:   file,
	}
}

// resolverError unwinds resolution on the first error: unlike parse errors,
// resolver errors are not recovered from mid-pass (§7's propagation policy:
// "Resolver errors abort resolution; no partial execution").
type resolverError struct{}

// Resolve walks program and returns the resolution table (Expr -> hop
// count) on success, or the recorded errors if resolution was aborted.
// Exactly one of the two return values is meaningful: a non-empty error
// slice means locals should not be trusted.
func (r *Resolver) Resolve(program *ast.Program) (locals map[ast.Expr]int, errs []*errors.LoxError) {
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(resolverError); !ok {
				panic(rec)
			}
			errs = r.errs
			locals = nil
		}
	}()

	for _, stmt := range program.Statements {
		r.resolveStmt(stmt)
	}
	return r.locals, nil
}

func (r *Resolver) fail(tok lexer.Token, message string) {
	e := errors.New(errors.ResolverError, tok.Pos, message)
	e.Source = r.source
	e.File = r.file
	r.errs = append(r.errs, e)
	panic(resolverError{})
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, exists := top[name.Lexeme]; exists {
		r.fail(name, "Already a variable with this name in this scope.")
	}
	top[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: treated as global, resolved by name at
	// runtime instead of by hop count.
}

func (r *Resolver) resolveFunction(fn *ast.FunctionDecl, kind functionType) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	for _, s := range fn.Body {
		r.resolveStmt(s)
	}
	r.endScope()
	r.currentFunction = enclosing
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		for _, st := range s.Statements {
			r.resolveStmt(st)
		}
		r.endScope()

	case *ast.ClassDecl:
		r.resolveClassDecl(s)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.For:
		// Mirrors executeFor, which runs the whole loop in one fresh scope.
		r.beginScope()
		if s.Initializer != nil {
			r.resolveStmt(s.Initializer)
		}
		if s.Condition != nil {
			r.resolveExpr(s.Condition)
		}
		if s.Increment != nil {
			r.resolveExpr(s.Increment)
		}
		r.resolveStmt(s.Body)
		r.endScope()

	case *ast.FunctionDecl:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.Print:
		r.resolveExpr(s.Expression)

	case *ast.Return:
		if r.currentFunction == fnNone {
			r.fail(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.fail(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	default:
		panic("resolver: unhandled statement type")
	}
}

// resolveClassDecl supplements pylox's resolver, whose class visitor is a
// no-op because pylox defers class evaluation entirely; here classes are
// fully implemented, so the method bodies need the same this/super scope
// wiring the interpreter's class.go relies on.
func (r *Resolver) resolveClassDecl(s *ast.ClassDecl) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.fail(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// no sub-expressions, nothing to resolve

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.fail(e.Keyword, "Can't use 'super' outside of a class.")
		case classClass:
			r.fail(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.This:
		if r.currentClass == classNone {
			r.fail(e.Keyword, "Can't use 'this' outside of a class.")
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			top := r.scopes[len(r.scopes)-1]
			if defined, declared := top[e.Name.Lexeme]; declared && !defined {
				r.fail(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	default:
		panic("resolver: unhandled expression type")
	}
}
