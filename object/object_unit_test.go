// ----------------------------------------------------------------------------
// FILE: object/object_unit_test.go
// ----------------------------------------------------------------------------

package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"loxgo/token"
)

func fakeIdentifier(lexeme string) token.Token {
	return token.New(token.IDENTIFIER, lexeme, nil, 1, 1)
}

func TestNumberStringTrimsTrailingZero(t *testing.T) {
	require.Equal(t, "123", Number{Value: 123}.String())
	require.Equal(t, "123.45", Number{Value: 123.45}.String())
	require.Equal(t, "0", Number{Value: 0}.String())
}

func TestBoolOf(t *testing.T) {
	require.Equal(t, True, BoolOf(true))
	require.Equal(t, False, BoolOf(false))
}

func TestClassFindMethodWalksSuperclass(t *testing.T) {
	base := &Class{Name: "Animal", Methods: map[string]*Function{
		"speak": {Declaration: nil},
	}}
	derived := &Class{Name: "Dog", Superclass: base, Methods: map[string]*Function{}}

	_, ok := derived.FindMethod("speak")
	require.True(t, ok)

	_, ok = derived.FindMethod("missing")
	require.False(t, ok)
}

func TestInstanceGetUndefinedPropertyIsRuntimeError(t *testing.T) {
	class := &Class{Name: "Point", Methods: map[string]*Function{}}
	instance := NewInstance(class)

	_, err := instance.Get(fakeIdentifier("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Undefined property 'x'.")
}

func TestInstanceSetThenGetReturnsField(t *testing.T) {
	class := &Class{Name: "Point", Methods: map[string]*Function{}}
	instance := NewInstance(class)
	name := fakeIdentifier("x")

	instance.Set(name, Number{Value: 5})
	v, err := instance.Get(name)
	require.NoError(t, err)
	require.Equal(t, Number{Value: 5}, v)
}
