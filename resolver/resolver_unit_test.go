// ----------------------------------------------------------------------------
// FILE: resolver/resolver_unit_test.go
// ----------------------------------------------------------------------------

package resolver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"loxgo/ast"
	"loxgo/errs"
	"loxgo/lexer"
	"loxgo/parser"
)

func resolve(t *testing.T, src string) (ast.Locals, []ast.Stmt, *errs.Sink, string) {
	t.Helper()
	var buf bytes.Buffer
	sink := errs.New(&buf)
	toks := lexer.New(src, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	locals := New(sink).Resolve(stmts)
	return locals, stmts, sink, buf.String()
}

func TestResolveDuplicateDeclarationInScope(t *testing.T) {
	_, _, sink, out := resolve(t, "{ var a = 1; var a = 2; }")
	require.True(t, sink.HadError())
	require.Contains(t, out, "Already a variable with this name in this scope.")
}

func TestResolveReadInOwnInitializer(t *testing.T) {
	_, _, sink, out := resolve(t, "{ var a = a; }")
	require.True(t, sink.HadError())
	require.Contains(t, out, "Can't read local variable in its own initializer.")
}

func TestResolveReturnOutsideFunction(t *testing.T) {
	_, _, sink, out := resolve(t, "return 1;")
	require.True(t, sink.HadError())
	require.Contains(t, out, "Can't return from top-level code.")
}

func TestResolveReturnValueFromInitializer(t *testing.T) {
	_, _, sink, out := resolve(t, "class A { init() { return 1; } }")
	require.True(t, sink.HadError())
	require.Contains(t, out, "Can't return a value from an initializer.")
}

func TestResolveThisOutsideClass(t *testing.T) {
	_, _, sink, out := resolve(t, "print this;")
	require.True(t, sink.HadError())
	require.Contains(t, out, "Can't use 'this' outside of a class.")
}

func TestResolveSuperOutsideClass(t *testing.T) {
	_, _, sink, out := resolve(t, "print super.x;")
	require.True(t, sink.HadError())
	require.Contains(t, out, "Can't use 'super' outside of a class.")
}

func TestResolveSuperWithNoSuperclass(t *testing.T) {
	_, _, sink, out := resolve(t, "class A { m() { return super.m(); } }")
	require.True(t, sink.HadError())
	require.Contains(t, out, "Can't use 'super' in a class with no superclass.")
}

func TestResolveClassInheritingFromItself(t *testing.T) {
	_, _, sink, out := resolve(t, "class A < A {}")
	require.True(t, sink.HadError())
	require.Contains(t, out, "A class can't inherit from itself.")
}

// TestResolveNestedClosureDistance matches Testable Property 1 from spec.md
// §8: each call to makeCounter must resolve its own independent "count"
// binding at the same lexical distance.
func TestResolveNestedClosureDistance(t *testing.T) {
	src := `
	fun makeCounter() {
		var count = 0;
		fun increment() {
			count = count + 1;
			return count;
		}
		return increment;
	}
	`
	locals, stmts, sink, _ := resolve(t, src)
	require.False(t, sink.HadError())

	outer := stmts[0].(*ast.Function)
	inner := outer.Body[1].(*ast.Function)

	// "count = count + 1" assigns to the outer local, one scope hop out of
	// increment's own function-body scope.
	assignStmt := inner.Body[0].(*ast.Expression)
	assign := assignStmt.Expr.(*ast.Assign)
	dist, ok := locals.Distance(assign)
	require.True(t, ok)
	require.Equal(t, 1, dist)
}

func TestResolveGlobalReferenceRecordsNoDistance(t *testing.T) {
	locals, stmts, sink, _ := resolve(t, "var g = 1; print g;")
	require.False(t, sink.HadError())
	printStmt := stmts[1].(*ast.Print)
	v := printStmt.Expr.(*ast.Variable)
	_, ok := locals.Distance(v)
	require.False(t, ok)
}
