// ==============================================================================================
// FILE: runner/runner.go
// ==============================================================================================
// PACKAGE: runner
// PURPOSE: Wires lexer -> parser -> (resolver) -> evaluator for each of the
//          four CLI subcommands (spec.md §6) and maps the result onto the
//          0/65/70 exit-code contract. Generalizes the teacher's
//          main.go::runFile, which only ever ran one pipeline shape, into
//          one runner per subcommand sharing a single errs.Sink and a
//          *zap.Logger for stage-transition diagnostics.
// ==============================================================================================

package runner

import (
	"io"

	"go.uber.org/zap"

	"loxgo/ast"
	"loxgo/errs"
	"loxgo/evaluator"
	"loxgo/lexer"
	"loxgo/parser"
	"loxgo/resolver"
)

const (
	ExitSuccess      = 0
	ExitStaticError  = 65
	ExitRuntimeError = 70
)

// Tokenize implements the `tokenize` subcommand: lex only, one dumped line
// per token, exit 65 on any lexical error.
func Tokenize(source string, stdout, stderr io.Writer, log *zap.Logger) int {
	sink := errs.New(stderr)
	lex := lexer.New(source, sink)
	tokens := lex.ScanTokens()
	log.Debug("tokenize: scanned", zap.Int("tokens", len(tokens)))

	for _, tok := range tokens {
		io.WriteString(stdout, tok.String()+"\n")
	}
	if sink.HadError() {
		return ExitStaticError
	}
	return ExitSuccess
}

// Parse implements the `parse` subcommand: lex, then parse a single
// expression and pretty-print it Lisp-style. Exit 65 on any parse error.
func Parse(source string, stdout, stderr io.Writer, log *zap.Logger) int {
	sink := errs.New(stderr)
	tokens := lexer.New(source, sink).ScanTokens()

	p := parser.New(tokens, sink)
	expr, err := p.ParseExpression()
	if err != nil || sink.HadError() {
		return ExitStaticError
	}

	log.Debug("parse: expression parsed")
	printer := ast.NewPrinter()
	io.WriteString(stdout, printer.Print(expr)+"\n")
	return ExitSuccess
}

// Evaluate implements the `evaluate` subcommand: lex + parse a single
// expression, then evaluate it and print the stringified result. Exit 65 on
// parse error, 70 on runtime error.
func Evaluate(source string, stdout, stderr io.Writer, log *zap.Logger) int {
	sink := errs.New(stderr)
	tokens := lexer.New(source, sink).ScanTokens()

	p := parser.New(tokens, sink)
	expr, err := p.ParseExpression()
	if err != nil || sink.HadError() {
		return ExitStaticError
	}

	locals := ast.NewLocals()
	eval := evaluator.New(locals, func(s string) { io.WriteString(stdout, s+"\n") })
	value, rte := eval.EvaluateExpression(expr)
	if rte != nil {
		sink.ReportRuntime(rte)
		return ExitRuntimeError
	}

	log.Debug("evaluate: expression evaluated", zap.String("result", value.String()))
	io.WriteString(stdout, value.String()+"\n")
	return ExitSuccess
}

// Run implements the `run` subcommand: the full pipeline. Lex + parse
// statements, resolve scopes, then execute. Exit 65 on lex/parse/resolve
// error, 70 on runtime error; the program's own `print` statements are the
// only stdout output.
func Run(source string, stdout, stderr io.Writer, log *zap.Logger) int {
	sink := errs.New(stderr)
	tokens := lexer.New(source, sink).ScanTokens()

	p := parser.New(tokens, sink)
	statements := p.Parse()
	if sink.HadError() {
		return ExitStaticError
	}

	res := resolver.New(sink)
	locals := res.Resolve(statements)
	if sink.HadError() {
		return ExitStaticError
	}
	log.Debug("run: resolved", zap.Int("statements", len(statements)))

	eval := evaluator.New(locals, func(s string) { io.WriteString(stdout, s+"\n") })
	if rte := eval.Interpret(statements); rte != nil {
		sink.ReportRuntime(rte)
		return ExitRuntimeError
	}
	return ExitSuccess
}
