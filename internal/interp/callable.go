package interp

import "github.com/loxlang/glox/internal/ast"

// Callable is anything that can appear as the callee of a Call expression:
// a user-defined function or method, or a builtin.
type Callable interface {
	Value
	// Arity is the number of arguments the callable expects.
	Arity() int
	// Call invokes the callable with already-evaluated arguments.
	Call(i *Interpreter, args []Value) (Value, error)
}

// Function is a user-defined function or method value: the declaration
// plus the environment it closed over at definition time.
//
// isInitializer marks a class's init method specially: calling it always
// returns the bound instance (`this`), ignoring any explicit return value,
// per the initializer return-policy invariant.
type Function struct {
	declaration   *ast.FunctionDecl
	closure       *Environment
	isInitializer bool
}

func newFunction(decl *ast.FunctionDecl, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Type() string   { return "FUNCTION" }
func (f *Function) String() string { return "<fn " + f.declaration.Name.Lexeme + ">" }
func (f *Function) Arity() int     { return len(f.declaration.Params) }

// bind returns a copy of f whose closure has `this` bound to instance, used
// when a method is looked up off an instance via Get.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return newFunction(f.declaration, env, f.isInitializer)
}

func (f *Function) Call(i *Interpreter, args []Value) (result Value, err error) {
	env := NewEnclosedEnvironment(f.closure)
	for idx, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[idx])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.GetAt(0, "this")
				return
			}
			result = ret.value
		}
	}()

	i.executeBlock(f.declaration.Body, env)

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return Nil, nil
}

// Builtin is a native function exposed to Lox programs, such as clock.
type Builtin struct {
	name  string
	arity int
	fn    func(i *Interpreter, args []Value) (Value, error)
}

// NewBuiltin wraps fn as a Lox-callable native function named name with the
// given arity. Used by the builtins package to register native functions
// without reaching into Builtin's fields.
func NewBuiltin(name string, arity int, fn func(i *Interpreter, args []Value) (Value, error)) *Builtin {
	return &Builtin{name: name, arity: arity, fn: fn}
}

func (b *Builtin) Type() string    { return "BUILTIN" }
func (b *Builtin) String() string  { return "<native fn " + b.name + ">" }
func (b *Builtin) Arity() int      { return b.arity }
func (b *Builtin) Call(i *Interpreter, args []Value) (Value, error) {
	return b.fn(i, args)
}

// returnSignal is panicked by a Return statement and recovered by the
// innermost enclosing Function.Call, carrying the returned value across
// arbitrarily many nested blocks/loops/conditionals without unwinding past
// the call boundary (§5's return-as-control-flow invariant, option (a)).
type returnSignal struct {
	value Value
}
