// Package pipeline walks the tree, selects repair candidates, and rewrites
// each one in place when the repair table changes its content.
//
// Types:
//   - Filter (allowed extensions, allowed top-level directories, hidden rule)
//   - Candidate (one walked path with the attributes the filter looks at)
//   - FileResult (outcome of rewriting one file)
//   - RunStats (Scanned, Updated, Unchanged, byte totals)
//   - FileError (Op + Path around the underlying error)
//
// Functions:
//   - Run(cfg, log) → RunStats, error
//     Discover, then rewrite candidates one at a time. The first error
//     stops the run.
//   - Discover(root, filter) → []Candidate, error
//     Walk in lexical order, prune top-level directories that can never
//     match, keep paths the filter accepts.
//   - RewriteFile(candidate) → FileResult, error
//     Read, require valid UTF-8, repair, write back only if changed.
package pipeline
