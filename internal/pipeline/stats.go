package pipeline

// RunStats tracks aggregate counters and byte totals across a run.
// Updated is the count reported on stdout.
type RunStats struct {
	Total        int // Candidates discovered.
	Scanned      int // Candidates read so far.
	Updated      int // Files whose content changed and was written.
	Unchanged    int // Files read and left alone.
	Replacements int
	BytesRead    int64
	BytesWritten int64
}

// add folds one file's result into the totals.
func (s *RunStats) add(r FileResult) {
	s.Scanned++
	s.BytesRead += r.BytesRead
	if !r.Changed {
		s.Unchanged++
		return
	}
	s.Updated++
	s.Replacements += r.Replacements
	s.BytesWritten += r.BytesWritten
}
