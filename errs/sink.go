// ==============================================================================================
// FILE: errs/sink.go
// ==============================================================================================
// PACKAGE: errs
// PURPOSE: The process-wide error sink described in spec.md §4.6/§7. Lexer,
//          parser and resolver report into it as they walk forward; the
//          evaluator raises a *RuntimeError that the runner reports exactly
//          once before exiting. The sink owns the wire formats from §6:
//          lex/parse/resolve errors as `[line N] Error<where>: <message>`,
//          runtime errors as `<message>\n[line N]`.
// ==============================================================================================

package errs

import (
	"fmt"
	"io"

	"github.com/juju/errors"

	"loxgo/token"
)

// Sink accumulates the had-error / had-runtime-error flags the CLI inspects
// between pipeline stages to decide whether to advance or map an exit code.
type Sink struct {
	out io.Writer

	hadError        bool
	hadRuntimeError bool
}

// New builds a Sink writing its formatted messages to w (ordinarily
// os.Stderr; tests pass a buffer).
func New(w io.Writer) *Sink {
	return &Sink{out: w}
}

func (s *Sink) HadError() bool        { return s.hadError }
func (s *Sink) HadRuntimeError() bool { return s.hadRuntimeError }

// ReportLex records a lexical error at the given line with no "where" clause.
func (s *Sink) ReportLex(line int, message string) {
	s.report(line, "", message)
}

// ReportToken records a syntactic or static-semantic error anchored to a
// token: at EOF the where-clause reads " at end", otherwise " at 'lexeme'".
func (s *Sink) ReportToken(tok token.Token, message string) {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Kind == token.EOF {
		where = " at end"
	}
	s.report(tok.Line, where, message)
}

func (s *Sink) report(line int, where, message string) {
	s.hadError = true
	fmt.Fprintf(s.out, "[line %d] Error%s: %s\n", line, where, message)
}

// RuntimeError is a reportable runtime failure, carrying the offending token
// for line reporting. It is an ordinary Go error so it can propagate up the
// evaluator's call stack via plain `return nil, err`.
type RuntimeError struct {
	Token   token.Token
	Message string
	cause   error
}

func NewRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

// Wrap annotates an underlying cause (e.g. from a native function) onto a
// RuntimeError while keeping the reportable message/token intact.
func Wrap(tok token.Token, cause error, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message, cause: errors.Annotate(cause, message)}
}

func (e *RuntimeError) Error() string { return e.Message }

func (e *RuntimeError) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return errors.Cause(e.cause)
}

// ReportRuntime prints the §6/§7 runtime wire format and sets
// HadRuntimeError. The first runtime error aborts execution, so the runner
// calls this exactly once per `evaluate`/`run` invocation.
func (s *Sink) ReportRuntime(err *RuntimeError) {
	s.hadRuntimeError = true
	fmt.Fprintf(s.out, "%s\n[line %d]\n", err.Message, err.Token.Line)
}
