// ==============================================================================================
// FILE: evaluator/visit_expr.go
// PACKAGE: evaluator
// PURPOSE: ast.ExprVisitor implementation, generalizing the teacher's
//          evalInfixExpression/evalPrefixExpression type-switch dispatch
//          (string-keyword operators over Integer/Float/String/Boolean) to
//          Lox's token-kind operators over the object.Value set, plus the
//          call/get/set/this/super machinery Eloquence's Monkey dialect
//          never had at all.
// ==============================================================================================

package evaluator

import (
	"loxgo/ast"
	"loxgo/object"
	"loxgo/token"
)

func (e *Evaluator) VisitLiteralExpr(ex *ast.Literal) (any, error) {
	return toValue(ex.Value), nil
}

func (e *Evaluator) VisitGroupingExpr(ex *ast.Grouping) (any, error) {
	return e.eval(ex.Expression)
}

func (e *Evaluator) VisitUnaryExpr(ex *ast.Unary) (any, error) {
	right, err := e.eval(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Kind {
	case token.MINUS:
		n, ok := right.(object.Number)
		if !ok {
			return nil, e.runtimeError(ex.Operator, "Operand must be a number.")
		}
		return object.Number{Value: -n.Value}, nil
	case token.BANG:
		return object.BoolOf(!isTruthy(right)), nil
	}
	return nil, e.runtimeError(ex.Operator, "Unknown unary operator.")
}

func (e *Evaluator) VisitBinaryExpr(ex *ast.Binary) (any, error) {
	left, err := e.eval(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Kind {
	case token.PLUS:
		if ln, ok := left.(object.Number); ok {
			if rn, ok := right.(object.Number); ok {
				return object.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(object.String); ok {
			if rs, ok := right.(object.String); ok {
				return object.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, e.runtimeError(ex.Operator, "Operands must be two numbers or two strings.")
	case token.MINUS:
		ln, rn, err := e.bothNumbers(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.Number{Value: ln - rn}, nil
	case token.STAR:
		ln, rn, err := e.bothNumbers(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.Number{Value: ln * rn}, nil
	case token.SLASH:
		ln, rn, err := e.bothNumbers(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.Number{Value: ln / rn}, nil
	case token.GREATER:
		ln, rn, err := e.bothNumbers(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.BoolOf(ln > rn), nil
	case token.GREATER_EQUAL:
		ln, rn, err := e.bothNumbers(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.BoolOf(ln >= rn), nil
	case token.LESS:
		ln, rn, err := e.bothNumbers(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.BoolOf(ln < rn), nil
	case token.LESS_EQUAL:
		ln, rn, err := e.bothNumbers(ex.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.BoolOf(ln <= rn), nil
	case token.EQUAL_EQUAL:
		return object.BoolOf(valuesEqual(left, right)), nil
	case token.BANG_EQUAL:
		return object.BoolOf(!valuesEqual(left, right)), nil
	}
	return nil, e.runtimeError(ex.Operator, "Unknown binary operator.")
}

func (e *Evaluator) bothNumbers(op token.Token, left, right object.Value) (float64, float64, error) {
	ln, lok := left.(object.Number)
	rn, rok := right.(object.Number)
	if !lok || !rok {
		return 0, 0, e.runtimeError(op, "Operands must be numbers.")
	}
	return ln.Value, rn.Value, nil
}

// VisitLogicalExpr short-circuits and returns the operand value itself
// (not coerced to boolean), per spec.md §4.5's `and`/`or` semantics.
func (e *Evaluator) VisitLogicalExpr(ex *ast.Logical) (any, error) {
	left, err := e.eval(ex.Left)
	if err != nil {
		return nil, err
	}

	if ex.Operator.Kind == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return e.eval(ex.Right)
}

func (e *Evaluator) VisitVariableExpr(ex *ast.Variable) (any, error) {
	return e.lookupVariable(ex.Name, ex)
}

func (e *Evaluator) VisitAssignExpr(ex *ast.Assign) (any, error) {
	value, err := e.eval(ex.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := e.locals.Distance(ex); ok {
		if err := e.env.AssignAt(distance, ex.Name, value); err != nil {
			return nil, err
		}
		return value, nil
	}
	if err := e.globals.Assign(ex.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (e *Evaluator) VisitCallExpr(ex *ast.Call) (any, error) {
	callee, err := e.eval(ex.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]object.Value, len(ex.Arguments))
	for i, argExpr := range ex.Arguments {
		v, err := e.eval(argExpr)
		if err != nil {
			return nil, err
		}
		arguments[i] = v
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, e.runtimeError(ex.Paren, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, e.runtimeError(ex.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}
	return callable.Call(e, arguments)
}

func (e *Evaluator) VisitGetExpr(ex *ast.Get) (any, error) {
	obj, err := e.eval(ex.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, e.runtimeError(ex.Name, "Only instances have properties.")
	}
	return instance.Get(ex.Name)
}

func (e *Evaluator) VisitSetExpr(ex *ast.Set) (any, error) {
	obj, err := e.eval(ex.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, e.runtimeError(ex.Name, "Only instances have fields.")
	}
	value, err := e.eval(ex.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(ex.Name, value)
	return value, nil
}

func (e *Evaluator) VisitThisExpr(ex *ast.This) (any, error) {
	return e.lookupVariable(ex.Keyword, ex)
}

// VisitSuperExpr resolves the method on the statically-known superclass
// (not the instance's runtime class) and binds it to the dynamically
// looked-up `this`, per lox_class.rs's `super` dispatch.
func (e *Evaluator) VisitSuperExpr(ex *ast.Super) (any, error) {
	distance, _ := e.locals.Distance(ex)

	superVal, err := e.env.GetAt(distance, "super")
	if err != nil {
		return nil, err
	}
	superclass := superVal.(*object.Class)

	thisVal, err := e.env.GetAt(distance-1, "this")
	if err != nil {
		return nil, err
	}
	instance := thisVal.(*object.Instance)

	method, ok := superclass.FindMethod(ex.Method.Lexeme)
	if !ok {
		return nil, e.runtimeError(ex.Method, "Undefined property '"+ex.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}
