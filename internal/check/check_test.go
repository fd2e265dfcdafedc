package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/mojifix/internal/mojibake"
)

type mockLogger struct {
	infos, successes, warns, errors []string
}

func (m *mockLogger) Info(f string, a ...interface{}) {
	m.infos = append(m.infos, fmt.Sprintf(f, a...))
}
func (m *mockLogger) Success(f string, a ...interface{}) {
	m.successes = append(m.successes, fmt.Sprintf(f, a...))
}
func (m *mockLogger) Warn(f string, a ...interface{}) {
	m.warns = append(m.warns, fmt.Sprintf(f, a...))
}
func (m *mockLogger) Error(f string, a ...interface{}) {
	m.errors = append(m.errors, fmt.Sprintf(f, a...))
}

func TestMisdecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii unchanged", "plain", "plain"},
		{"e acute", "é", "Ã©"},
		{"c cedilla and a tilde", "ção", "Ã§Ã£o"},
		{"right quote", "’", "â€™"},
		{"unassigned 0x81 falls back to C1", "Á", "Ã\u0081"},
		{"unassigned 0x9D falls back to C1", "”", "â€\u009d"},
		{"no-break space", "\u00a0", "Â\u00a0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Misdecode(tt.in))
		})
	}
}

func TestVerifyTable_BuiltInIsClean(t *testing.T) {
	problems := VerifyTable(mojibake.Table())
	for _, p := range problems {
		t.Errorf("unexpected problem: %s", p)
	}
}

func TestVerifyTable_DetectsBadPairs(t *testing.T) {
	tests := []struct {
		name   string
		pairs  []mojibake.Pair
		reason string
	}{
		{"empty side", []mojibake.Pair{{Corrupted: "", Fixed: "é"}}, "empty side"},
		{"identity", []mojibake.Pair{{Corrupted: "x", Fixed: "x"}}, "identical"},
		{"not a misdecoding", []mojibake.Pair{{Corrupted: "Ã©", Fixed: "è"}}, "not a Windows-1252 misdecoding"},
		{"duplicate", []mojibake.Pair{{Corrupted: "Ã©", Fixed: "é"}, {Corrupted: "Ã©", Fixed: "é"}}, "duplicate of pair 0"},
		{"shadowed", []mojibake.Pair{{Corrupted: "Ã", Fixed: "x"}, {Corrupted: "Ã©", Fixed: "é"}}, "shadowed by earlier pair 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := VerifyTable(tt.pairs)
			require.NotEmpty(t, problems)
			found := false
			for _, p := range problems {
				if p.Severity == SeverityError && strings.Contains(p.Reason, tt.reason) {
					found = true
				}
			}
			assert.True(t, found, "no error with reason %q in %v", tt.reason, problems)
		})
	}
}

func TestVerifyTable_NonNFCIsWarning(t *testing.T) {
	decomposed := "e\u0301"
	problems := VerifyTable([]mojibake.Pair{{Corrupted: Misdecode(decomposed), Fixed: decomposed}})
	require.Len(t, problems, 1)
	assert.Equal(t, SeverityWarn, problems[0].Severity)
}

func TestRunCheck_BuiltInTable(t *testing.T) {
	log := &mockLogger{}
	ok := RunCheck(log)
	assert.True(t, ok)
	assert.Empty(t, log.errors)
	require.Len(t, log.successes, 1)
	assert.Contains(t, log.successes[0], fmt.Sprintf("%d pairs", mojibake.Len()))
}

func TestCheckRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, CheckRoot(dir))
	assert.True(t, errors.Is(CheckRoot(file), ErrRootNotDir))
	assert.True(t, errors.Is(CheckRoot(filepath.Join(dir, "missing")), ErrRootNotFound))
}
