// ==============================================================================================
// FILE: logging/logging.go
// ==============================================================================================
// PACKAGE: logging
// PURPOSE: Structured diagnostics for the pipeline runner. The teacher
//          (Eloquence) has no logging story at all; this package is pure
//          expansion grounded in the retrieved pack's exposure to
//          go.uber.org/zap. It never writes to stdout — stdout is reserved
//          for the interpreted program's own `print` output — so enabling
//          verbose logging can never perturb the golden output the exit
//          code / stdout contract in spec.md §6 depends on.
// ==============================================================================================

package logging

import "go.uber.org/zap"

// New builds a *zap.Logger writing structured records to stderr. Verbose
// sessions get zap's human-readable development encoder; ordinary runs get
// the quieter, leveled production encoder so a script invocation isn't
// noisy by default.
func New(verbose bool) *zap.Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.DisableStacktrace = true
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		// zap config errors here are static (encoder/level typos), never a
		// runtime condition worth making the CLI report through the
		// errs.Sink wire format, so fall back to a no-op logger rather than
		// aborting the interpreter over a broken log pipe.
		return zap.NewNop()
	}
	return logger
}
