package pipeline

import (
	"os"
	"unicode/utf8"

	"github.com/backmassage/mojifix/internal/mojibake"
)

// FileResult is the outcome of rewriting one candidate.
type FileResult struct {
	Changed      bool
	Replacements int
	BytesRead    int64
	BytesWritten int64
}

// RewriteFile reads c, repairs its text, and overwrites it in place only
// when the repaired text differs. The file is read once and written at
// most once. A candidate that does not resolve to a regular file, or whose
// content is not valid UTF-8, is an error and is never written.
func RewriteFile(c Candidate) (FileResult, error) {
	var res FileResult
	if !c.Regular {
		return res, wrapFileError("stat", c.Path, ErrNotRegular)
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return res, wrapFileError("read", c.Path, err)
	}
	res.BytesRead = int64(len(data))

	if !utf8.Valid(data) {
		return res, wrapFileError("decode", c.Path, ErrInvalidUTF8)
	}

	original := string(data)
	repaired, n := mojibake.RepairCount(original)
	if repaired == original {
		return res, nil
	}

	if err := overwrite(c.Path, []byte(repaired)); err != nil {
		return res, wrapFileError("write", c.Path, err)
	}
	res.Changed = true
	res.Replacements = n
	res.BytesWritten = int64(len(repaired))
	return res, nil
}

// overwrite truncates and rewrites an existing file. It never creates one:
// if path vanished after it was read, the open fails.
func overwrite(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
