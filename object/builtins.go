// ==============================================================================================
// FILE: object/builtins.go
// PACKAGE: object
// PURPOSE: Native globals installed into the top environment before every
//          run. Grounded on the teacher's Builtins table (name -> *Builtin)
//          generalized to Lox's single documented native, clock(), per
//          original_source's lox_callable.rs native-clock semantics: wall
//          clock seconds as a float, with no argument.
// ==============================================================================================

package object

import "time"

// Builtins is installed by the evaluator into the global environment.
var Builtins = []struct {
	Name string
	Fn   *Native
}{
	{
		Name: "clock",
		Fn: &Native{
			Name:   "clock",
			Arity_: 0,
			Fn: func(arguments []Value) (Value, error) {
				return Number{Value: float64(time.Now().UnixNano()) / float64(time.Second)}, nil
			},
		},
	},
}
