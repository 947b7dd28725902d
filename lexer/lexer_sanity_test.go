// ----------------------------------------------------------------------------
// FILE: lexer/lexer_sanity_test.go
// ----------------------------------------------------------------------------
package lexer

import (
	"bytes"
	"testing"

	"loxgo/errs"
	"loxgo/token"
)

// TestSanityLexer ensures scanning a small representative program does not
// panic and always terminates with an EOF token.
func TestSanityLexer(t *testing.T) {
	input := `
	class Greeter {
		init(name) { this.name = name; }
		greet() { print "hi " + this.name; }
	}
	var g = Greeter("lox");
	g.greet();
	`
	var buf bytes.Buffer
	l := New(input, errs.New(&buf))
	toks := l.ScanTokens()
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("expected scan to end with EOF token, got %v", toks)
	}
}
