// Command matchgen reads a CIL pattern and writes the source of a predicate
// that recognizes it.
//
// The pattern is read from the file named by the only argument, or from
// stdin when there is none:
//
//	matchgen -dialect csharp -o IndexOfRule.cs indexof.il
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/matchgen/emit"
)

func main() {
	opts := options{}

	flag.StringVar(&opts.dialect, "dialect", "go",
		fmt.Sprintf("output language, one of %v", emit.Dialects()))
	flag.StringVar(&opts.configPath, "config", "", "YAML file overriding the host bindings")
	flag.StringVar(&opts.outPath, "o", "", "output file (default stdout)")
	flag.BoolVar(&opts.lint, "lint", false, "check the pattern instead of generating")
	flag.BoolVar(&opts.aliases, "aliases", false, "print the alias table and exit")
	flag.BoolVar(&opts.watch, "watch", false, "regenerate whenever the input file changes")
	verbose := flag.Bool("v", false, "log every generator step")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	flag.Parse()

	setupLogging(*verbose, *logJSON)

	if flag.NArg() > 1 {
		atexit.Fatalf("expected at most one input file, got %d", flag.NArg())
	}
	opts.inPath = flag.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)

	code, err := run(ctx, opts, os.Stdin, os.Stdout)
	if err != nil {
		atexit.Fatalf("matchgen: %v", err)
	}

	atexit.Exit(code)
}

// setupLogging routes logs to stderr. By default only warnings and errors
// are shown; -v shows everything down to the per-block traces.
func setupLogging(verbose, json bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	if json {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
}
