// ==============================================================================================
// FILE: main.go
// ==============================================================================================
// PACKAGE: main
// PURPOSE: CLI entry point. Restructures the teacher's single runFile
//          dispatch (main.go in amoghasbhardwaj-Eloquence) around a cobra
//          root command with one subcommand per spec.md §6 pipeline stage:
//          tokenize, parse, evaluate, run. Each subcommand reads its source
//          file and hands it to the matching runner.* function, then maps
//          the returned exit code onto os.Exit.
// ==============================================================================================

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"loxgo/logging"
	"loxgo/runner"
)

var verbose bool

// pipeline is the signature shared by every runner.* stage entry point.
type pipeline func(source string, stdout, stderr io.Writer, log *zap.Logger) int

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds the cobra command tree and executes it against args, returning
// the process exit code spec.md §6 mandates (0/65/70) rather than calling
// os.Exit directly, so tests can exercise it without forking a process.
func run(args []string) int {
	exitCode := runner.ExitSuccess

	root := &cobra.Command{
		Use:           "loxgo",
		Short:         "A tree-walking interpreter for the Lox scripting language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit structured stage diagnostics to stderr")

	root.AddCommand(
		stageCommand("tokenize", "Lex a source file and dump its tokens", runner.Tokenize, &exitCode),
		stageCommand("parse", "Parse a single expression and pretty-print its tree", runner.Parse, &exitCode),
		stageCommand("evaluate", "Parse and evaluate a single expression", runner.Evaluate, &exitCode),
		stageCommand("run", "Lex, parse, resolve and execute a full program", runner.Run, &exitCode),
	)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return runner.ExitStaticError
	}
	return exitCode
}

// stageCommand wraps one runner.* pipeline function as a cobra.Command
// taking a single positional source-file argument. The exit code the
// pipeline returns is written back through exitCode rather than returned
// from RunE, because cobra only propagates RunE's error, not an integer.
func stageCommand(use, short string, fn pipeline, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			log := logging.New(verbose)
			defer log.Sync()

			*exitCode = fn(string(data), os.Stdout, os.Stderr, log)
			return nil
		},
	}
}
