package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Discover walks root in lexical order and returns every candidate the
// filter accepts. Symlinks are followed only to decide whether they point
// at a regular file; dangling links and links to anything else are
// skipped. Any other walk or stat error stops the walk.
func Discover(root string, f *Filter) ([]Candidate, error) {
	var files []Candidate
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return wrapFileError("walk", path, err)
		}

		c, err := newCandidate(root, path)
		if err != nil {
			return wrapFileError("walk", path, err)
		}

		if d.IsDir() {
			if f.PruneDir(c.Rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !f.AllowName(c) {
			return nil
		}

		regular, err := resolvesToRegular(path, d)
		if err != nil {
			return wrapFileError("stat", path, err)
		}
		c.Regular = regular
		if f.Allow(c) {
			files = append(files, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// resolvesToRegular reports whether the entry is a regular file, following
// symlinks through os.Stat.
func resolvesToRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return fi.Mode().IsRegular(), nil
}
