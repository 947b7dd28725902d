// ==============================================================================================
// FILE: main_test.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: End-to-end scenarios from spec.md §8, driven through the actual
//          CLI surface (cobra dispatch, file args, exit codes, stdout and
//          stderr) rather than calling the runner package directly, so a
//          regression in main.go's wiring shows up here too.
// ==============================================================================================

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureCLI writes src to a temp file, invokes run() against the given
// subcommand, and returns (stdout, stderr, exitCode). os.Stdout/os.Stderr
// are swapped for the duration since the CLI writes directly to them.
func captureCLI(t *testing.T, subcommand, src string) (string, string, int) {
	t.Helper()

	dir := t.TempDir()
	path := dir + "/source.lox"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	prevOut, prevErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW

	exitCode := run([]string{subcommand, path})

	os.Stdout, os.Stderr = prevOut, prevErr
	outW.Close()
	errW.Close()

	stdout := drain(t, outR)
	stderr := drain(t, errR)
	return stdout, stderr, exitCode
}

func drain(t *testing.T, r *os.File) string {
	t.Helper()
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			break
		}
	}
	return string(buf)
}

func TestClosureCounter(t *testing.T) {
	src := `
fun makeCounter(){var i=0; fun c(){i=i+1; print i;} return c;}
var x = makeCounter(); x(); x();
`
	stdout, stderr, exit := captureCLI(t, "run", src)
	require.Equal(t, "1\n2\n", stdout)
	require.Empty(t, stderr)
	require.Equal(t, 0, exit)
}

func TestInheritanceAndSuper(t *testing.T) {
	src := `
class A{greet(){print "A";}}
class B<A{greet(){super.greet(); print "B";}}
B().greet();
`
	stdout, _, exit := captureCLI(t, "run", src)
	require.Equal(t, "A\nB\n", stdout)
	require.Equal(t, 0, exit)
}

func TestShortCircuitReturnsOperand(t *testing.T) {
	src := `print nil or "yes"; print 1 and 2;`
	stdout, _, exit := captureCLI(t, "run", src)
	require.Equal(t, "yes\n2\n", stdout)
	require.Equal(t, 0, exit)
}

func TestStringPlusNumberIsRuntimeError(t *testing.T) {
	src := `print "a" + 1;`
	_, stderr, exit := captureCLI(t, "run", src)
	require.Equal(t, "Operands must be two numbers or two strings.\n[line 1]\n", stderr)
	require.Equal(t, 70, exit)
}

func TestReadInOwnInitializerIsResolverError(t *testing.T) {
	src := `{ var a = a; }`
	_, stderr, exit := captureCLI(t, "run", src)
	require.Contains(t, stderr, "Can't read local variable in its own initializer")
	require.Equal(t, 65, exit)
}

func TestIntegerNumberPrinting(t *testing.T) {
	stdout, _, exit := captureCLI(t, "run", `print 1 + 2;`)
	require.Equal(t, "3\n", stdout)
	require.Equal(t, 0, exit)

	stdout, _, exit = captureCLI(t, "run", `print 1.5 + 0.25;`)
	require.Equal(t, "1.75\n", stdout)
	require.Equal(t, 0, exit)
}

func TestTokenizeSubcommandDumpsEOF(t *testing.T) {
	stdout, _, exit := captureCLI(t, "tokenize", `(){}`)
	require.Contains(t, stdout, "LEFT_PAREN ( null")
	require.Contains(t, stdout, "EOF  null")
	require.Equal(t, 0, exit)
}

func TestParseSubcommandPrettyPrints(t *testing.T) {
	stdout, _, exit := captureCLI(t, "parse", `-123 * (45.67)`)
	require.Equal(t, "(* (- 123) (group 45.67))\n", stdout)
	require.Equal(t, 0, exit)
}

func TestEvaluateSubcommandRuntimeError(t *testing.T) {
	_, stderr, exit := captureCLI(t, "evaluate", `"a" + 1`)
	require.Contains(t, stderr, "Operands must be two numbers or two strings.")
	require.Equal(t, 70, exit)
}

func TestForDesugaringEquivalence(t *testing.T) {
	desugared := `for (var i = 0; i < 3; i = i + 1) print i;`
	manual := `{ var i = 0; while (i < 3) { print i; i = i + 1; } }`

	stdoutDesugared, _, _ := captureCLI(t, "run", desugared)
	stdoutManual, _, _ := captureCLI(t, "run", manual)
	require.Equal(t, stdoutManual, stdoutDesugared)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	src := `fun f(a, b) { return a + b; } f(1);`
	_, stderr, exit := captureCLI(t, "run", src)
	require.Contains(t, stderr, "Expected 2 arguments but got 1.")
	require.Equal(t, 70, exit)
}

func TestInitializerAlwaysReturnsInstance(t *testing.T) {
	src := `
class Box {
  init(v) { this.v = v; return; }
}
print Box(7).v;
`
	stdout, _, exit := captureCLI(t, "run", src)
	require.Equal(t, "7\n", stdout)
	require.Equal(t, 0, exit)
}
