// Package term decides whether mojifix colors its stderr log tags.
//
// stdout only ever carries the "Updated N files" line, so color is resolved
// against the log stream alone. [Configure] runs once from the logger and
// leaves the color variables empty when color is off.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/mojifix/internal/config"
)

// Level tag colors. Empty when color is off.
var (
	Red    = ""
	Green  = ""
	Yellow = ""
	Blue   = ""
	Cyan   = ""
	NC     = "" // Reset sequence.
)

// Configure resolves the color mode against f (the stream logs are written
// to) and sets the package-level ANSI variables.
func Configure(mode config.ColorMode, f *os.File) {
	if resolve(mode, f) {
		Red = "\033[1;91m"
		Green = "\033[1;92m"
		Yellow = "\033[1;93m"
		Blue = "\033[1;94m"
		Cyan = "\033[1;96m"
		NC = "\033[0m"
	} else {
		Red, Green, Yellow, Blue, Cyan, NC = "", "", "", "", "", ""
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// resolve applies --color-mode. Auto mode needs a TTY on f and honors
// NO_COLOR (https://no-color.org) and TERM=dumb.
func resolve(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
