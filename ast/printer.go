// ==============================================================================================
// FILE: ast/printer.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: Lisp-style pretty printer for the `parse` subcommand (spec.md
//          §6). Grounded on the original implementation's AstPrinter
//          (ast_printer.rs), which implements expr::Visitor the same way.
// ==============================================================================================

package ast

import (
	"strconv"
	"strings"
)

// Printer renders an expression tree as a parenthesized Lisp-style string.
type Printer struct{}

func NewPrinter() *Printer { return &Printer{} }

// Print renders expr. Printer never errors — it is a pure syntactic
// transcription with no evaluation — so any error returned by Accept (always
// nil for this visitor) is discarded.
func (p *Printer) Print(expr Expr) string {
	result, _ := expr.Accept(p)
	return result.(string)
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(p.Print(e))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Printer) VisitAssignExpr(e *Assign) (any, error) {
	return p.parenthesize(e.Name.Lexeme, e.Value), nil
}

func (p *Printer) VisitBinaryExpr(e *Binary) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitCallExpr(e *Call) (any, error) {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Arguments...)...), nil
}

func (p *Printer) VisitGetExpr(e *Get) (any, error) {
	return p.parenthesize("get-"+e.Name.Lexeme, e.Object), nil
}

func (p *Printer) VisitGroupingExpr(e *Grouping) (any, error) {
	return p.parenthesize("group", e.Expression), nil
}

func (p *Printer) VisitLiteralExpr(e *Literal) (any, error) {
	return literalString(e.Value), nil
}

func (p *Printer) VisitLogicalExpr(e *Logical) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitSetExpr(e *Set) (any, error) {
	return p.parenthesize("set-"+e.Name.Lexeme, e.Object, e.Value), nil
}

func (p *Printer) VisitSuperExpr(e *Super) (any, error) {
	return e.Keyword.Lexeme, nil
}

func (p *Printer) VisitThisExpr(e *This) (any, error) {
	return e.Keyword.Lexeme, nil
}

func (p *Printer) VisitUnaryExpr(e *Unary) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right), nil
}

func (p *Printer) VisitVariableExpr(e *Variable) (any, error) {
	return e.Name.Lexeme, nil
}

// literalString renders a Literal.Value the way the language stringifies
// constants: nil as "nil", numbers without a spurious trailing ".0", and
// strings/booleans via their natural Go formatting.
func literalString(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
