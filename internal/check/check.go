// Package check provides the --check diagnostics (the repair table is
// re-derived from the Windows-1252 codec) and pre-run validation of the
// walk root (CheckRoot).
package check

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/backmassage/mojifix/internal/mojibake"
)

// Sentinel errors returned by CheckRoot.
var (
	ErrRootNotFound = errors.New("root directory not found")
	ErrRootNotDir   = errors.New("root is not a directory")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Severity grades a Problem.
type Severity int

const (
	SeverityWarn  Severity = iota // Reported, does not fail the check.
	SeverityError                 // Fails the check.
)

// Problem is one finding about a table pair.
type Problem struct {
	Index    int
	Pair     mojibake.Pair
	Severity Severity
	Reason   string
}

func (p Problem) String() string {
	return fmt.Sprintf("pair %d %q -> %q: %s", p.Index, p.Pair.Corrupted, p.Pair.Fixed, p.Reason)
}

// Misdecode returns what s looks like after its UTF-8 bytes are decoded as
// Windows-1252. Bytes Windows-1252 leaves unassigned fall back to
// ISO-8859-1, which maps them to C1 controls.
func Misdecode(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		r := charmap.Windows1252.DecodeByte(s[i])
		if r == utf8.RuneError {
			r = charmap.ISO8859_1.DecodeByte(s[i])
		}
		b.WriteRune(r)
	}
	return b.String()
}

// VerifyTable checks every pair in order:
//   - Corrupted and Fixed are non-empty and differ.
//   - Corrupted is exactly Misdecode(Fixed).
//   - No key appears twice.
//   - No key contains an earlier key, which would leave it unreachable.
//   - Fixed is NFC (warning only).
func VerifyTable(pairs []mojibake.Pair) []Problem {
	var problems []Problem
	seen := make(map[string]int, len(pairs))

	for i, p := range pairs {
		report := func(sev Severity, format string, args ...interface{}) {
			problems = append(problems, Problem{Index: i, Pair: p, Severity: sev, Reason: fmt.Sprintf(format, args...)})
		}

		if p.Corrupted == "" || p.Fixed == "" {
			report(SeverityError, "empty side")
			continue
		}
		if p.Corrupted == p.Fixed {
			report(SeverityError, "corrupted and fixed are identical")
		}
		if want := Misdecode(p.Fixed); want != p.Corrupted {
			report(SeverityError, "not a Windows-1252 misdecoding (expected %q)", want)
		}
		if j, dup := seen[p.Corrupted]; dup {
			report(SeverityError, "duplicate of pair %d", j)
		} else {
			seen[p.Corrupted] = i
		}
		for j := 0; j < i; j++ {
			if pairs[j].Corrupted != p.Corrupted && strings.Contains(p.Corrupted, pairs[j].Corrupted) {
				report(SeverityError, "shadowed by earlier pair %d %q", j, pairs[j].Corrupted)
			}
		}
		if !norm.NFC.IsNormalString(p.Fixed) {
			report(SeverityWarn, "fixed value is not NFC")
		}
	}
	return problems
}

// RunCheck runs the --check flow against the built-in table and logs
// every problem. Returns false if any problem is an error.
func RunCheck(log Logger) bool {
	log.Info("=== Mapping Table Check ===")

	pairs := mojibake.Table()
	ok := true
	for _, p := range VerifyTable(pairs) {
		if p.Severity == SeverityError {
			ok = false
			log.Error("%s", p)
		} else {
			log.Warn("%s", p)
		}
	}

	if ok {
		log.Success("Mapping table OK: %d pairs", len(pairs))
	} else {
		log.Error("Mapping table has errors")
	}
	return ok
}

// CheckRoot verifies that root exists and is a directory.
func CheckRoot(root string) error {
	fi, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}
	return nil
}
