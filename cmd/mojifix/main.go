// Command mojifix repairs mojibake in the text files of a project tree.
//
// With no arguments it walks the current directory, rewrites the files
// the repair table changes, and prints "Updated <N> files". Logs go to
// stderr; stdout carries only that line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/mojifix/internal/check"
	"github.com/backmassage/mojifix/internal/config"
	"github.com/backmassage/mojifix/internal/display"
	"github.com/backmassage/mojifix/internal/logging"
	"github.com/backmassage/mojifix/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.LoadEnv(&cfg, config.EnvFile); err != nil {
		fmt.Fprintf(stderr, "mojifix: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version, args); err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(stderr, "mojifix: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "mojifix: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(stderr, "mojifix: %v\n", err)
		return 1
	}
	defer log.Close()
	log.SetOutput(stderr)

	// Phase 2: Logger available.
	log.Debug(cfg.Verbose, "mojifix v%s (%s)", version, commit)

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	if err := check.CheckRoot(cfg.Root); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Repair. Any read, decode or write error ends the run
	// without a summary line.
	stats, err := pipeline.Run(&cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	fmt.Fprintln(stdout, display.FormatSummary(stats.Updated))
	return 0
}
