package mojibake

import "strings"

// Repair applies every pair in table order and returns the result.
func Repair(text string) string {
	out, _ := RepairCount(text)
	return out
}

// RepairCount is Repair that also reports how many occurrences were
// replaced across all pairs.
func RepairCount(text string) (string, int) {
	return apply(table, text)
}

// NeedsRepair reports whether any corrupted sequence occurs in text.
func NeedsRepair(text string) bool {
	for _, p := range table {
		if strings.Contains(text, p.Corrupted) {
			return true
		}
	}
	return false
}

// apply replaces pairs left to right, non-overlapping, one pair at a time.
// Later pairs operate on the output of earlier ones.
func apply(pairs []Pair, text string) (string, int) {
	total := 0
	for _, p := range pairs {
		n := strings.Count(text, p.Corrupted)
		if n == 0 {
			continue
		}
		text = strings.ReplaceAll(text, p.Corrupted, p.Fixed)
		total += n
	}
	return text, total
}
