package resolver

import (
	"testing"

	"github.com/loxlang/glox/internal/lexer"
	"github.com/loxlang/glox/internal/parser"
)

func resolveString(t *testing.T, src string) ([]byte, int, int) {
	t.Helper()
	lx := lexer.New(src)
	toks, _ := lx.ScanTokens()
	p := parser.New(toks, src, "test.lox")
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	r := New(src, "test.lox")
	locals, errs := r.Resolve(prog)
	return nil, len(locals), len(errs)
}

func TestResolveSimpleLocal(t *testing.T) {
	_, n, errs := resolveString(t, "{ var a = 1; print a; }")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	if n != 1 {
		t.Fatalf("expected one resolved local reference, got %d", n)
	}
}

func TestResolveSelfInitializationIsRejected(t *testing.T) {
	_, _, errs := resolveString(t, "{ var a = a; }")
	if errs == 0 {
		t.Fatalf("expected a self-initialization error")
	}
}

func TestResolveDuplicateLocalIsRejected(t *testing.T) {
	_, _, errs := resolveString(t, "{ var a = 1; var a = 2; }")
	if errs == 0 {
		t.Fatalf("expected a duplicate-local error")
	}
}

func TestResolveReturnOutsideFunctionIsRejected(t *testing.T) {
	_, _, errs := resolveString(t, "return 1;")
	if errs == 0 {
		t.Fatalf("expected a top-level return error")
	}
}

func TestResolveReturnValueFromInitializerIsRejected(t *testing.T) {
	_, _, errs := resolveString(t, "class A { init() { return 1; } }")
	if errs == 0 {
		t.Fatalf("expected an initializer-return error")
	}
}

func TestResolveBareReturnFromInitializerIsAllowed(t *testing.T) {
	_, _, errs := resolveString(t, "class A { init() { return; } }")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
}

func TestResolveThisOutsideClassIsRejected(t *testing.T) {
	_, _, errs := resolveString(t, "print this;")
	if errs == 0 {
		t.Fatalf("expected a this-outside-class error")
	}
}

func TestResolveSuperWithoutSuperclassIsRejected(t *testing.T) {
	_, _, errs := resolveString(t, "class A { f() { return super.f(); } }")
	if errs == 0 {
		t.Fatalf("expected a super-without-superclass error")
	}
}

func TestResolveSuperWithSuperclassIsAllowed(t *testing.T) {
	_, _, errs := resolveString(t, "class A { f() {} } class B < A { f() { return super.f(); } }")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
}

func TestResolveClassInheritingFromItselfIsRejected(t *testing.T) {
	_, _, errs := resolveString(t, "class A < A {}")
	if errs == 0 {
		t.Fatalf("expected a self-inheritance error")
	}
}

func TestResolveMethodThisBindsToInstance(t *testing.T) {
	_, n, errs := resolveString(t, "class A { f() { return this; } }")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	if n != 1 {
		t.Fatalf("expected this to resolve to one local slot, got %d", n)
	}
}

func TestResolveGlobalReferenceHasNoLocalSlot(t *testing.T) {
	_, n, errs := resolveString(t, "var a = 1; print a;")
	if errs != 0 {
		t.Fatalf("unexpected errors: %d", errs)
	}
	if n != 0 {
		t.Fatalf("expected no resolved locals for a global reference, got %d", n)
	}
}
