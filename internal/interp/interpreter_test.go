package interp

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/loxlang/glox/internal/builtins"
	"github.com/loxlang/glox/internal/lexer"
	"github.com/loxlang/glox/internal/parser"
	"github.com/loxlang/glox/internal/resolver"
)

func runSource(t *testing.T, src string) (string, []string) {
	t.Helper()

	lx := lexer.New(src)
	toks, lerrs := lx.ScanTokens()
	if len(lerrs) != 0 {
		t.Fatalf("unexpected scan errors:\n%s", pretty.Sprint(lerrs))
	}

	p := parser.New(toks, src, "test.lox")
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors:\n%s", pretty.Sprint(p.Errors()))
	}

	r := resolver.New(src, "test.lox")
	locals, rerrs := r.Resolve(program)
	if len(rerrs) != 0 {
		t.Fatalf("unexpected resolver errors:\n%s", pretty.Sprint(rerrs))
	}

	var out strings.Builder
	interp := New(&out, src, "test.lox")
	builtins.Register(interp.Globals())

	errs := interp.Interpret(program, locals)
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return out.String(), msgs
}

func TestInterpretArithmeticAndPrint(t *testing.T) {
	out, errs := runSource(t, `print 1 + 2 * 3;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "7\n" {
		t.Errorf("got %q, want %q", out, "7\n")
	}
}

func TestInterpretDivisionByZeroIsIEEE(t *testing.T) {
	out, errs := runSource(t, `print 1/0 == 1/0;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "true\n" {
		t.Errorf("got %q, want %q", out, "true\n")
	}
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, errs := runSource(t, `print "foo" + "bar";`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "foobar\n" {
		t.Errorf("got %q, want %q", out, "foobar\n")
	}
}

func TestInterpretVariablesAndAssignment(t *testing.T) {
	out, errs := runSource(t, `
		var a = 1;
		a = a + 1;
		print a;
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "2\n" {
		t.Errorf("got %q, want %q", out, "2\n")
	}
}

func TestInterpretClosures(t *testing.T) {
	out, errs := runSource(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "1\n2\n" {
		t.Errorf("got %q, want %q", out, "1\n2\n")
	}
}

func TestInterpretRecursiveFunction(t *testing.T) {
	out, errs := runSource(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "55\n" {
		t.Errorf("got %q, want %q", out, "55\n")
	}
}

func TestInterpretForLoop(t *testing.T) {
	out, errs := runSource(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "0\n1\n2\n" {
		t.Errorf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestInterpretWhileLoop(t *testing.T) {
	out, errs := runSource(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "0\n1\n2\n" {
		t.Errorf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestInterpretLogicalShortCircuit(t *testing.T) {
	out, errs := runSource(t, `
		fun sideEffect() { print "called"; return true; }
		print false and sideEffect();
		print true or sideEffect();
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "false\ntrue\n" {
		t.Errorf("got %q, want %q", out, "false\ntrue\n")
	}
}

func TestInterpretClassesAndMethods(t *testing.T) {
	out, errs := runSource(t, `
		class Cake {
			init(flavor) {
				this.flavor = flavor;
			}
			describe() {
				print "a " + this.flavor + " cake";
			}
		}
		var c = Cake("chocolate");
		c.describe();
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "a chocolate cake\n" {
		t.Errorf("got %q, want %q", out, "a chocolate cake\n")
	}
}

func TestInterpretInheritanceAndSuper(t *testing.T) {
	out, errs := runSource(t, `
		class Pastry {
			bake() { print "baking a " + this.name(); }
		}
		class Cake < Pastry {
			name() { return "cake"; }
			bake() {
				super.bake();
				print "frosting the cake";
			}
		}
		Cake().bake();
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := "baking a cake\nfrosting the cake\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestInterpretUndefinedVariableIsRuntimeError(t *testing.T) {
	_, errs := runSource(t, `print nope;`)
	if len(errs) == 0 {
		t.Fatalf("expected a runtime error for an undefined variable")
	}
}

func TestInterpretCallingNonCallableIsRuntimeError(t *testing.T) {
	_, errs := runSource(t, `var x = 1; x();`)
	if len(errs) == 0 {
		t.Fatalf("expected a runtime error for calling a non-callable")
	}
}

func TestInterpretArityMismatchIsRuntimeError(t *testing.T) {
	_, errs := runSource(t, `fun f(a, b) { return a + b; } f(1);`)
	if len(errs) == 0 {
		t.Fatalf("expected a runtime error for an arity mismatch")
	}
}

func TestInterpretTypeMismatchIsRuntimeError(t *testing.T) {
	_, errs := runSource(t, `print 1 + "a";`)
	if len(errs) == 0 {
		t.Fatalf("expected a runtime error for adding a number and a string")
	}
}

func TestInterpretBlockScopeShadowing(t *testing.T) {
	out, errs := runSource(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "inner\nouter\n" {
		t.Errorf("got %q, want %q", out, "inner\nouter\n")
	}
}

func TestInterpretClockIsCallable(t *testing.T) {
	out, errs := runSource(t, `print clock() > 0;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out != "true\n" {
		t.Errorf("got %q, want %q", out, "true\n")
	}
}
