// ==============================================================================================
// FILE: evaluator/visit_stmt.go
// PACKAGE: evaluator
// PURPOSE: ast.StmtVisitor implementation. Each method mirrors one arm of
//          the teacher's evalProgram/evalBlockStatement/evalLoopStatement
//          family, generalized to Lox's statement set.
// ==============================================================================================

package evaluator

import (
	"loxgo/ast"
	"loxgo/object"
)

func (e *Evaluator) VisitExpressionStmt(s *ast.Expression) error {
	_, err := e.eval(s.Expr)
	return err
}

func (e *Evaluator) VisitPrintStmt(s *ast.Print) error {
	v, err := e.eval(s.Expr)
	if err != nil {
		return err
	}
	e.stdout(v.String())
	return nil
}

func (e *Evaluator) VisitVarStmt(s *ast.Var) error {
	value := object.Value(object.NilValue)
	if s.Initializer != nil {
		v, err := e.eval(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	e.env.Define(s.Name.Lexeme, value)
	return nil
}

func (e *Evaluator) VisitBlockStmt(s *ast.Block) error {
	return e.ExecuteBlock(s.Statements, object.NewEnclosedEnvironment(e.env))
}

func (e *Evaluator) VisitIfStmt(s *ast.If) error {
	cond, err := e.eval(s.Condition)
	if err != nil {
		return err
	}
	if isTruthy(cond) {
		return e.execute(s.Then)
	}
	if s.ElseBranch != nil {
		return e.execute(s.ElseBranch)
	}
	return nil
}

func (e *Evaluator) VisitWhileStmt(s *ast.While) error {
	for {
		cond, err := e.eval(s.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := e.execute(s.Body); err != nil {
			return err
		}
	}
}

func (e *Evaluator) VisitFunctionStmt(s *ast.Function) error {
	fn := &object.Function{Declaration: s, Closure: e.env}
	e.env.Define(s.Name.Lexeme, fn)
	return nil
}

// VisitReturnStmt packages the return value into a *object.ReturnSignal,
// which unwinds the Go call stack up to the enclosing Function.Call (see
// object.Function.Call) rather than being reported as a failure.
func (e *Evaluator) VisitReturnStmt(s *ast.Return) error {
	value := object.Value(object.NilValue)
	if s.Value != nil {
		v, err := e.eval(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &object.ReturnSignal{Value: value}
}

// VisitClassStmt builds the object.Class, binding an enclosing "super"
// scope around method resolution when there's a superclass, per
// lox_class.rs's constructor protocol from original_source.
func (e *Evaluator) VisitClassStmt(s *ast.Class) error {
	var superclass *object.Class
	if s.Superclass != nil {
		v, err := e.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*object.Class)
		if !ok {
			return e.runtimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	e.env.Define(s.Name.Lexeme, object.NilValue)

	classEnv := e.env
	if superclass != nil {
		classEnv = object.NewEnclosedEnvironment(e.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*object.Function, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &object.Function{
			Declaration:   method,
			Closure:       classEnv,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}

	class := &object.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	return e.env.Assign(s.Name, class)
}
