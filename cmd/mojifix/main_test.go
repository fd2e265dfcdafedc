package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NoArgsRepairsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/a.ts", "CafÃ© com Ã§Ã£o")
	writeFile(t, dir, "node_modules/x.js", "Ã©")
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Equal(t, "Updated 1 files\n", stdout.String())
	assert.Equal(t, "Café com ção", readFile(t, filepath.Join(dir, "src", "a.ts")))
	assert.Equal(t, "Ã©", readFile(t, filepath.Join(dir, "node_modules", "x.js")))
}

func TestRun_EmptyTree(t *testing.T) {
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(nil, &stdout, &stderr))
	assert.Equal(t, "Updated 0 files\n", stdout.String())
}

func TestRun_RootFlagAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/a.md", "Ã©")
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--root", dir}, &stdout, &stderr))
	assert.Equal(t, "Updated 1 files\n", stdout.String())

	t.Setenv("MOJIFIX_ROOT", dir)
	stdout.Reset()
	require.Equal(t, 0, run(nil, &stdout, &stderr))
	assert.Equal(t, "Updated 0 files\n", stdout.String())
}

func TestRun_FatalErrorPrintsNoSummary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/bad.ts", "\xff")
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--no-color"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "not valid UTF-8")
}

func TestRun_MissingRoot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-r", filepath.Join(t.TempDir(), "nope"), "--no-color"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "root directory not found")
}

func TestRun_CheckMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"--check", "--no-color"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Mapping table OK")
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--bogus"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "mojifix:")
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
