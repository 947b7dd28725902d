// ==============================================================================================
// FILE: resolver/visit_expr.go
// ==============================================================================================
// PACKAGE: resolver
// PURPOSE: ast.ExprVisitor implementation for Resolver.
// ==============================================================================================

package resolver

import "loxgo/ast"

func (r *Resolver) VisitAssignExpr(e *ast.Assign) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) (any, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) (any, error) {
	// Property names are resolved dynamically at runtime, only the object
	// expression has lexical scope.
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) (any, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (any, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.Super) (any, error) {
	switch r.currentClass {
	case classNone:
		r.sink.ReportToken(e.Keyword, "Can't use 'super' outside of a class.")
	case classClass:
		r.sink.ReportToken(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) (any, error) {
	if r.currentClass == classNone {
		r.sink.ReportToken(e.Keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (any, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

// VisitVariableExpr enforces "can't read local variable in its own
// initializer" before delegating to resolveLocal, per spec.md §4.3.
func (r *Resolver) VisitVariableExpr(e *ast.Variable) (any, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.sink.ReportToken(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}
