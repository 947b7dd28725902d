// ----------------------------------------------------------------------------
// FILE: lexer/lexer_unit_test.go
// ----------------------------------------------------------------------------

package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"loxgo/errs"
	"loxgo/token"
)

func scan(t *testing.T, src string) ([]token.Token, *errs.Sink, string) {
	t.Helper()
	var buf bytes.Buffer
	sink := errs.New(&buf)
	l := New(src, sink)
	return l.ScanTokens(), sink, buf.String()
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestScanPunctuators(t *testing.T) {
	toks, sink, _ := scan(t, "(){},.-+;*/")
	require.False(t, sink.HadError())
	require.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.STAR, token.SLASH, token.EOF,
	}, kinds(toks))
}

func TestScanTwoCharOperators(t *testing.T) {
	toks, _, _ := scan(t, "! != = == < <= > >=")
	require.Equal(t, []token.Kind{
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.EOF,
	}, kinds(toks))
}

func TestScanLineComment(t *testing.T) {
	toks, _, _ := scan(t, "// a comment\n+")
	require.Equal(t, []token.Kind{token.PLUS, token.EOF}, kinds(toks))
	require.Equal(t, 2, toks[0].Line)
}

func TestScanString(t *testing.T) {
	toks, sink, _ := scan(t, `"hello world"`)
	require.False(t, sink.HadError())
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Literal.Str)
}

func TestScanMultilineString(t *testing.T) {
	toks, sink, _ := scan(t, "\"a\nb\"\n+")
	require.False(t, sink.HadError())
	require.Equal(t, "a\nb", toks[0].Literal.Str)
	require.Equal(t, token.PLUS, toks[1].Kind)
	require.Equal(t, 3, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	_, sink, out := scan(t, `"unterminated`)
	require.True(t, sink.HadError())
	require.Contains(t, out, "Unterminated string.")
}

func TestScanNumber(t *testing.T) {
	toks, _, _ := scan(t, "123 1.75")
	require.Equal(t, 123.0, toks[0].Literal.Num)
	require.Equal(t, 1.75, toks[1].Literal.Num)
}

func TestScanIdentifierAndKeyword(t *testing.T) {
	toks, _, _ := scan(t, "foo and class")
	require.Equal(t, token.IDENTIFIER, toks[0].Kind)
	require.Equal(t, "foo", toks[0].Lexeme)
	require.Equal(t, token.AND, toks[1].Kind)
	require.Equal(t, token.CLASS, toks[2].Kind)
}

func TestScanUnexpectedCharacterContinues(t *testing.T) {
	toks, sink, out := scan(t, "@+")
	require.True(t, sink.HadError())
	require.Contains(t, out, "Unexpected character: @")
	require.Equal(t, []token.Kind{token.PLUS, token.EOF}, kinds(toks))
}

func TestScanAlwaysEndsWithEOF(t *testing.T) {
	toks, _, _ := scan(t, "")
	require.Len(t, toks, 1)
	require.Equal(t, token.EOF, toks[0].Kind)
}
