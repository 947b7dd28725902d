// ==============================================================================================
// FILE: token/token_unit_test.go
// ==============================================================================================
// PURPOSE: Unit tests for Token construction and its dump-format String().
// ==============================================================================================

package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenStringNoLiteral(t *testing.T) {
	tok := New(LEFT_PAREN, "(", nil, 1, 0)
	require.Equal(t, "LEFT_PAREN ( null", tok.String())
}

func TestTokenStringNumberLiteral(t *testing.T) {
	tok := New(NUMBER, "123", NumberLiteral(123), 1, 0)
	require.Equal(t, "NUMBER 123 123.0", tok.String())
}

func TestTokenStringNumberLiteralFraction(t *testing.T) {
	tok := New(NUMBER, "1.75", NumberLiteral(1.75), 1, 0)
	require.Equal(t, "NUMBER 1.75 1.75", tok.String())
}

func TestTokenStringStringLiteral(t *testing.T) {
	tok := New(STRING, `"hi"`, StringLiteral("hi"), 1, 0)
	require.Equal(t, `STRING "hi" hi`, tok.String())
}

func TestTokenStringEOF(t *testing.T) {
	tok := New(EOF, "", nil, 3, 0)
	require.Equal(t, "EOF  null", tok.String())
}

func TestKeywordLookup(t *testing.T) {
	kind, ok := Keywords["class"]
	require.True(t, ok)
	require.Equal(t, CLASS, kind)

	_, ok = Keywords["notakeyword"]
	require.False(t, ok)
}
