//go:build !js

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	flagMatrix   = flag.String("matrix", "", "YAML file describing the test matrix; the built-in matrix is used if empty")
	flagTemplate = flag.String("template", "", "txtar archive with prelude.tmpl and block.tmpl to use instead of the built-in templates")
	flagJobs     = flag.Int("jobs", 0, "parallel make jobs; 0 keeps the matrix value")
	flagOutput   = flag.String("o", "", "write the script to this file instead of stdout")
	flagVerbose  = flag.Bool("v", false, "enable debug logging on stderr")
)

// options are the command line settings of one run.
type options struct {
	MatrixFile   string
	TemplateFile string
	Jobs         int
	Output       string
}

func main() {
	flag.Parse()

	logger, err := newLogger(*flagVerbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error creating logger:", err)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		flag.Usage()
		logger.Error("unexpected arguments", zap.Strings("args", flag.Args()))
		_ = logger.Sync()
		os.Exit(2)
	}

	opts := options{
		MatrixFile:   *flagMatrix,
		TemplateFile: *flagTemplate,
		Jobs:         *flagJobs,
		Output:       *flagOutput,
	}
	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Error("generation failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// newLogger returns a human readable logger writing to stderr; stdout is
// reserved for the script.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	return config.Build()
}

func run(opts options, stdout io.Writer, logger *zap.Logger) error {
	if opts.Jobs < 0 {
		return errors.New("-jobs must not be negative")
	}

	matrix := DefaultMatrix.clone()
	if opts.MatrixFile != "" {
		var err error
		if matrix, err = loadMatrixFile(opts.MatrixFile); err != nil {
			return err
		}
	}
	if opts.Jobs > 0 {
		matrix.MakeJobs = opts.Jobs
	}

	g := &generator{
		Matrix:   matrix,
		Template: opts.TemplateFile,
		logger:   logger,
	}

	var buf bytes.Buffer
	if err := g.generate(&buf); err != nil {
		return err
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, buf.Bytes(), 0o755); err != nil {
			return fmt.Errorf("error writing script: %w", err)
		}
		// WriteFile keeps the mode of an existing file.
		if err := os.Chmod(opts.Output, 0o755); err != nil {
			return fmt.Errorf("error writing script: %w", err)
		}
	} else {
		if f, ok := stdout.(*os.File); ok && isTerminal(f) {
			logger.Info("writing script to a terminal; pipe it into a shell to run the matrix")
		}
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("error writing script: %w", err)
		}
	}

	logger.Info("generated test matrix",
		zap.Int("emitted", g.report.Emitted),
		zap.Int("skipped", g.report.Skipped),
		zap.Int("guarded", g.report.Guarded),
		zap.Int("jobs", matrix.MakeJobs))
	return nil
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
