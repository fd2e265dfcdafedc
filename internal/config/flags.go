package config

// This file implements CLI flag parsing and help text.
// Every flag is optional; running with no arguments repairs the current directory.
// Negated flags (e.g. --no-color) are applied after Parse so Config values hold unless set.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrVersion is returned by ParseFlags after printing the version.
// Like flag.ErrHelp, callers treat it as a successful exit.
var ErrVersion = errors.New("version requested")

// ParseFlags parses args (without the program name) into cfg. Flag defaults
// are the values already in cfg, so environment overrides loaded earlier
// stay in effect unless a flag is passed. On --help it prints usage and
// returns flag.ErrHelp; on --version it prints and returns ErrVersion.
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("mojifix", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(os.Stderr, version) }

	var negated negatedFlags

	defineRunFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stderr, version)
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(os.Stderr, version)
		return flag.ErrHelp
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "mojifix v"+version)
		return ErrVersion
	}

	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q (use --root to pick a directory)", rest[0])
	}
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineRunFlags registers -r/--root.
func defineRunFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Root, "root", cfg.Root, "Directory to repair (default: current directory)")
	fs.StringVar(&cfg.Root, "r", cfg.Root, "Same as --root")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color-mode", "Color mode: auto | always | never")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Verify the mapping table and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 28
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "mojifix v" + version + " - repair mojibake in source and content files"},
		{"", ""},
		{"  mojifix [OPTIONS]", ""},
		{"", ""},
		{"Run", ""},
		{"  -r, --root <dir>", "Directory to repair (default: .)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  --color-mode <mode>", "auto | always | never (default: auto)"},
		{"  -v, --verbose", "Log walk and byte totals"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Verify the mapping table and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Environment", ""},
		{"  " + EnvPrefix + "ROOT", "Same as --root"},
		{"  " + EnvPrefix + "VERBOSE", "Same as --verbose"},
		{"  " + EnvPrefix + "COLOR", "Same as --color-mode"},
		{"  " + EnvPrefix + "LOG_FILE", "Same as --log"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so ColorMode can be used with flag.Var.

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string {
	if c.p == nil {
		return ""
	}
	return string(*c.p)
}

func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
