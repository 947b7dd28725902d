// ----------------------------------------------------------------------------
// FILE: evaluator/evaluator_sanity_test.go
// ----------------------------------------------------------------------------
package evaluator

import (
	"bytes"
	"testing"

	"loxgo/errs"
	"loxgo/lexer"
	"loxgo/parser"
	"loxgo/resolver"
)

// TestSanityEvaluator runs a small closures-and-inheritance program end to
// end, just checking that interpretation completes without panicking.
func TestSanityEvaluator(t *testing.T) {
	input := `
	class A { greet() { print "A"; } }
	class B < A { greet() { super.greet(); print "B"; } }
	fun makeCounter() {
		var i = 0;
		fun inc() { i = i + 1; return i; }
		return inc;
	}
	var counter = makeCounter();
	print counter();
	print counter();
	B().greet();
	`
	var buf bytes.Buffer
	sink := errs.New(&buf)
	toks := lexer.New(input, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	locals := resolver.New(sink).Resolve(stmts)

	var out bytes.Buffer
	eval := New(locals, func(s string) { out.WriteString(s + "\n") })
	_ = eval.Interpret(stmts)
}
