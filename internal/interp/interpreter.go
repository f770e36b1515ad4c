package interp

import (
	"fmt"
	"io"

	"github.com/loxlang/glox/internal/ast"
	"github.com/loxlang/glox/internal/errors"
	"github.com/loxlang/glox/internal/lexer"
)

// Interpreter walks a resolved Program and executes it, writing `print`
// output to out.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[ast.Expr]int
	out     io.Writer
	source  string
	file    string
}

// New creates an Interpreter. out receives `print` output; source and file
// are used only for runtime error formatting.
func New(out io.Writer, source, file string) *Interpreter {
	globals := NewEnvironment()
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[ast.Expr]int),
		out:     out,
		source:  source,
		file:    file,
	}
}

// Globals returns the interpreter's top-level environment, so callers (the
// CLI, tests) can register additional builtins into it before running.
func (i *Interpreter) Globals() *Environment { return i.globals }

// Interpret runs program using locals (as computed by the resolver) for
// variable resolution, returning the first runtime error encountered, if
// any. Per §7's propagation policy, a runtime error aborts the program
// immediately rather than being recorded and continued from.
func (i *Interpreter) Interpret(program *ast.Program, locals map[ast.Expr]int) []*errors.LoxError {
	i.locals = locals

	var runtimeErr *runtimeError
	func() {
		defer func() {
			if r := recover(); r != nil {
				if re, ok := r.(*runtimeError); ok {
					runtimeErr = re
					return
				}
				panic(r)
			}
		}()
		for _, stmt := range program.Statements {
			i.execute(stmt)
		}
	}()

	if runtimeErr == nil {
		return nil
	}
	e := errors.New(errors.RuntimeError, runtimeErr.pos, runtimeErr.message)
	e.Source = i.source
	e.File = i.file
	return []*errors.LoxError{e}
}

// runtimeError is panicked by throw and recovered at the top of Interpret,
// unwinding however many nested calls/blocks separate the fault from
// Interpret without any intervening recover in between (Function.Call only
// recovers returnSignal, so a runtimeError passes straight through it).
type runtimeError struct {
	pos     lexer.Position
	message string
}

func (i *Interpreter) throw(pos lexer.Position, format string, args ...any) {
	panic(&runtimeError{pos: pos, message: fmt.Sprintf(format, args...)})
}

// execute runs a single statement in the interpreter's current environment.
func (i *Interpreter) execute(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		i.executeBlock(s.Statements, NewEnclosedEnvironment(i.env))

	case *ast.ClassDecl:
		i.executeClassDecl(s)

	case *ast.ExpressionStmt:
		i.eval(s.Expression)

	case *ast.For:
		i.executeFor(s)

	case *ast.FunctionDecl:
		fn := newFunction(s, i.env, false)
		i.env.Define(s.Name.Lexeme, fn)

	case *ast.If:
		if isTruthy(i.eval(s.Condition)) {
			i.execute(s.Then)
		} else if s.Else != nil {
			i.execute(s.Else)
		}

	case *ast.Print:
		v := i.eval(s.Expression)
		fmt.Fprintln(i.out, v.String())

	case *ast.Return:
		var value Value = Nil
		if s.Value != nil {
			value = i.eval(s.Value)
		}
		panic(returnSignal{value: value})

	case *ast.Var:
		var value Value = Nil
		if s.Initializer != nil {
			value = i.eval(s.Initializer)
		}
		i.env.Define(s.Name.Lexeme, value)

	case *ast.While:
		for isTruthy(i.eval(s.Condition)) {
			i.execute(s.Body)
		}

	default:
		panic("interp: unhandled statement type")
	}
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// environment on every exit path (normal completion, return, or runtime
// error) so a function's closure can't leak a callee's block scope.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, s := range stmts {
		i.execute(s)
	}
}

func (i *Interpreter) executeFor(s *ast.For) {
	env := NewEnclosedEnvironment(i.env)
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	if s.Initializer != nil {
		i.execute(s.Initializer)
	}
	for s.Condition == nil || isTruthy(i.eval(s.Condition)) {
		i.execute(s.Body)
		if s.Increment != nil {
			i.eval(s.Increment)
		}
	}
}

// executeClassDecl evaluates a class declaration: resolves the optional
// superclass, builds the method table (each method closing over the class
// body's defining environment, not the instance), and binds the class name.
func (i *Interpreter) executeClassDecl(s *ast.ClassDecl) {
	var superclass *Class
	if s.Superclass != nil {
		v := i.eval(s.Superclass)
		sc, ok := v.(*Class)
		if !ok {
			i.throw(s.Superclass.Pos(), "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, Nil)

	env := i.env
	if superclass != nil {
		env = NewEnclosedEnvironment(i.env)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = newFunction(m, env, m.Name.Lexeme == "init")
	}

	class := newClass(s.Name.Lexeme, superclass, methods)
	_ = i.env.Assign(s.Name.Lexeme, class)
}

// eval evaluates an expression in the interpreter's current environment.
func (i *Interpreter) eval(expr ast.Expr) Value {
	switch e := expr.(type) {
	case *ast.Assign:
		value := i.eval(e.Value)
		if distance, ok := i.locals[e]; ok {
			i.env.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := i.globals.Assign(e.Name.Lexeme, value); err != nil {
			i.throw(e.Name.Pos, "%s", err.Error())
		}
		return value

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		obj := i.eval(e.Object)
		instance, ok := obj.(*Instance)
		if !ok {
			i.throw(e.Name.Pos, "Only instances have properties.")
		}
		v, err := instance.get(e.Name.Lexeme)
		if err != nil {
			i.throw(e.Name.Pos, "%s", err.Error())
		}
		return v

	case *ast.Grouping:
		return i.eval(e.Inner)

	case *ast.Literal:
		return literalValue(e.Value)

	case *ast.Logical:
		left := i.eval(e.Left)
		if e.Operator.Type == lexer.OR {
			if isTruthy(left) {
				return left
			}
		} else if !isTruthy(left) {
			return left
		}
		return i.eval(e.Right)

	case *ast.Set:
		obj := i.eval(e.Object)
		instance, ok := obj.(*Instance)
		if !ok {
			i.throw(e.Name.Pos, "Only instances have fields.")
		}
		value := i.eval(e.Value)
		instance.set(e.Name.Lexeme, value)
		return value

	case *ast.Super:
		return i.evalSuper(e)

	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)

	default:
		panic("interp: unhandled expression type")
	}
}

func literalValue(v any) Value {
	switch lv := v.(type) {
	case nil:
		return Nil
	case bool:
		return BoolValue(lv)
	case float64:
		return NumberValue(lv)
	case string:
		return StringValue(lv)
	default:
		return Nil
	}
}

func (i *Interpreter) lookUpVariable(name lexer.Token, expr ast.Expr) Value {
	if distance, ok := i.locals[expr]; ok {
		return i.env.GetAt(distance, name.Lexeme)
	}
	v, ok := i.globals.Get(name.Lexeme)
	if !ok {
		i.throw(name.Pos, "Undefined variable '%s'.", name.Lexeme)
	}
	return v
}

func (i *Interpreter) evalUnary(e *ast.Unary) Value {
	right := i.eval(e.Right)
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(NumberValue)
		if !ok {
			i.throw(e.Operator.Pos, "%s", typeMismatch("-", "a number", right))
		}
		return -n
	case lexer.BANG:
		return BoolValue(!isTruthy(right))
	default:
		panic("interp: unhandled unary operator")
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) Value {
	left := i.eval(e.Left)
	right := i.eval(e.Right)

	switch e.Operator.Type {
	case lexer.PLUS:
		if ln, ok := left.(NumberValue); ok {
			if rn, ok := right.(NumberValue); ok {
				return ln + rn
			}
		}
		if ls, ok := left.(StringValue); ok {
			if rs, ok := right.(StringValue); ok {
				return ls + rs
			}
		}
		i.throw(e.Operator.Pos, "Operands must be two numbers or two strings.")
	case lexer.MINUS:
		ln, rn := i.numberOperands(e.Operator.Pos, left, right)
		return ln - rn
	case lexer.STAR:
		ln, rn := i.numberOperands(e.Operator.Pos, left, right)
		return ln * rn
	case lexer.SLASH:
		ln, rn := i.numberOperands(e.Operator.Pos, left, right)
		return ln / rn
	case lexer.GREATER:
		ln, rn := i.numberOperands(e.Operator.Pos, left, right)
		return BoolValue(ln > rn)
	case lexer.GREATER_EQUAL:
		ln, rn := i.numberOperands(e.Operator.Pos, left, right)
		return BoolValue(ln >= rn)
	case lexer.LESS:
		ln, rn := i.numberOperands(e.Operator.Pos, left, right)
		return BoolValue(ln < rn)
	case lexer.LESS_EQUAL:
		ln, rn := i.numberOperands(e.Operator.Pos, left, right)
		return BoolValue(ln <= rn)
	case lexer.BANG_EQUAL:
		return BoolValue(!isEqual(left, right))
	case lexer.EQUAL_EQUAL:
		return BoolValue(isEqual(left, right))
	}
	panic("interp: unhandled binary operator")
}

func (i *Interpreter) numberOperands(pos lexer.Position, left, right Value) (NumberValue, NumberValue) {
	ln, ok := left.(NumberValue)
	if !ok {
		i.throw(pos, "%s", typeMismatch("arithmetic", "a number", left))
	}
	rn, ok := right.(NumberValue)
	if !ok {
		i.throw(pos, "%s", typeMismatch("arithmetic", "a number", right))
	}
	return ln, rn
}

func (i *Interpreter) evalCall(e *ast.Call) Value {
	callee := i.eval(e.Callee)

	args := make([]Value, len(e.Args))
	for idx, a := range e.Args {
		args[idx] = i.eval(a)
	}

	callable, ok := callee.(Callable)
	if !ok {
		i.throw(e.Paren.Pos, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		i.throw(e.Paren.Pos, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	result, err := callable.Call(i, args)
	if err != nil {
		i.throw(e.Paren.Pos, "%s", err.Error())
	}
	return result
}

func (i *Interpreter) evalSuper(e *ast.Super) Value {
	distance := i.locals[e]
	superVal := i.env.GetAt(distance, "super")
	superclass := superVal.(*Class)

	// "this" is always declared one scope closer to the call site than
	// "super", since executeClassDecl wraps the super-holding environment
	// around the method's own closure and bind() wraps `this` once more.
	instanceVal := i.env.GetAt(distance-1, "this")
	instance := instanceVal.(*Instance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		i.throw(e.Method.Pos, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.bind(instance)
}
