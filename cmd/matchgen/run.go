package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/matchgen/api"
	"github.com/sarchlab/matchgen/config"
	"github.com/sarchlab/matchgen/isa"
	"github.com/sarchlab/matchgen/lint"
	"github.com/sarchlab/matchgen/pattern"
)

// Exit codes.
const (
	exitOK   = 0
	exitLint = 1
)

var errWatchNeedsFiles = errors.New("-watch needs an input file and -o")

type options struct {
	dialect    string
	configPath string
	inPath     string
	outPath    string
	lint       bool
	aliases    bool
	watch      bool
}

// run executes one invocation and returns the exit code.
func run(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer) (int, error) {
	if opts.aliases {
		isa.DefaultISA.Render(stdout)
		return exitOK, nil
	}

	if opts.lint {
		return runLint(opts, stdin, stdout)
	}

	g, err := newGenerator(opts)
	if err != nil {
		return 0, err
	}

	if !opts.watch {
		return exitOK, generate(g, opts, stdin, stdout)
	}

	if opts.inPath == "" || opts.outPath == "" {
		return 0, errWatchNeedsFiles
	}

	if err := generate(g, opts, stdin, stdout); err != nil {
		slog.Error("generation failed", "input", opts.inPath, "error", err)
	}

	return exitOK, watch(ctx, opts.inPath, func() error {
		return generate(g, opts, stdin, stdout)
	})
}

func newGenerator(opts options) (api.Generator, error) {
	b := api.MakeBuilder().WithDialect(opts.dialect)

	if opts.configPath != "" {
		host, err := config.LoadFile(opts.configPath, opts.dialect)
		if err != nil {
			return nil, err
		}

		b = b.WithHost(host)
	}

	return b.Build("matchgen")
}

func readInput(opts options, stdin io.Reader) (io.Reader, func(), error) {
	if opts.inPath == "" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(opts.inPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open pattern: %w", err)
	}

	return f, func() { f.Close() }, nil
}

// generate renders into memory first so a failed run never truncates an
// existing output file.
func generate(g api.Generator, opts options, stdin io.Reader, stdout io.Writer) error {
	in, done, err := readInput(opts, stdin)
	if err != nil {
		return err
	}
	defer done()

	var buf bytes.Buffer
	if err := g.GenerateFrom(in, &buf); err != nil {
		return fmt.Errorf("%s: %w", inputName(opts), err)
	}

	if opts.outPath == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(opts.outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	slog.Info("generated",
		"input", inputName(opts),
		"output", opts.outPath,
		"dialect", g.Dialect(),
		"bytes", buf.Len())

	return nil
}

func runLint(opts options, stdin io.Reader, stdout io.Writer) (int, error) {
	in, done, err := readInput(opts, stdin)
	if err != nil {
		return 0, err
	}
	defer done()

	p, err := pattern.Read(in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", inputName(opts), err)
	}

	report := lint.GenerateReport(inputName(opts), p)
	report.WriteReport(stdout)

	if report.HasErrors() {
		return exitLint, nil
	}

	return exitOK, nil
}

func inputName(opts options) string {
	if opts.inPath == "" {
		return "<stdin>"
	}

	return opts.inPath
}
