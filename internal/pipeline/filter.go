package pipeline

import (
	"path/filepath"
	"strings"
)

// Text file extensions eligible for repair (case-sensitive, with leading dot).
var defaultExtensions = []string{
	".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs",
	".md", ".mdx", ".sql", ".json", ".txt",
}

// Top-level directories eligible for repair.
var defaultDirs = []string{
	"app", "docs", "lib", "src", "tests", "studio",
	"scripts", "sql", "public", "content", "design-system",
}

// Filter decides which walked paths are repair candidates.
type Filter struct {
	exts map[string]bool
	dirs map[string]bool
}

// DefaultFilter returns the built-in filter.
func DefaultFilter() *Filter {
	return NewFilter(defaultExtensions, defaultDirs)
}

// NewFilter builds a filter from explicit allow-lists. The hidden
// top-level rule always applies, whatever dirs contains.
func NewFilter(exts, dirs []string) *Filter {
	f := &Filter{
		exts: make(map[string]bool, len(exts)),
		dirs: make(map[string]bool, len(dirs)),
	}
	for _, e := range exts {
		f.exts[e] = true
	}
	for _, d := range dirs {
		f.dirs[d] = true
	}
	return f
}

// Candidate is one walked path and the attributes the filter checks.
type Candidate struct {
	Path     string // As walked (root-joined).
	Rel      string // Relative to the walk root, slash-separated.
	TopLevel string // First segment of Rel.
	Ext      string // filepath.Ext of the base name.
	Regular  bool   // Resolves to a regular file.
}

// Hidden reports whether the top-level segment starts with a dot.
func (c Candidate) Hidden() bool {
	return strings.HasPrefix(c.TopLevel, ".")
}

// newCandidate derives the name-based attributes of path under root.
// Regular is left for the caller, which may need a stat to decide it.
func newCandidate(root, path string) (Candidate, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Candidate{}, err
	}
	rel = filepath.ToSlash(rel)
	return Candidate{
		Path:     path,
		Rel:      rel,
		TopLevel: topLevel(rel),
		Ext:      filepath.Ext(path),
	}, nil
}

// topLevel returns the first segment of a slash-separated relative path.
func topLevel(rel string) string {
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		return rel[:i]
	}
	return rel
}

// AllowName applies the name-based rules: extension, top-level directory,
// and the hidden top-level exclusion.
func (f *Filter) AllowName(c Candidate) bool {
	if !f.exts[c.Ext] {
		return false
	}
	if !f.dirs[c.TopLevel] {
		return false
	}
	if c.Hidden() {
		return false
	}
	return true
}

// Allow applies every rule, including that c resolves to a regular file.
func (f *Filter) Allow(c Candidate) bool {
	return c.Regular && f.AllowName(c)
}

// PruneDir reports whether a directory at rel can be skipped entirely. Only
// top-level directories are pruned, and only when no file below them could
// pass AllowName. Pruning never changes which files are selected.
func (f *Filter) PruneDir(rel string) bool {
	if rel == "." || strings.Contains(rel, "/") {
		return false
	}
	return !f.dirs[rel] || strings.HasPrefix(rel, ".")
}
