// Package rank selects the best scored positions with a deterministic
// tie-break, shared by every query that returns an ordered top-N.
package rank

import (
	"container/heap"
	"sort"
)

// Top returns up to n entries with the highest scores, descending. Equal
// scores are ordered by ascending Pos. n <= 0 returns nil.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || len(entries) == 0 {
		return nil
	}
	h := make(entryHeap, 0, min(n, len(entries))+1)
	for _, e := range entries {
		if len(h) < n {
			heap.Push(&h, e)
			continue
		}
		if weaker(h[0], e) {
			h[0] = e
			heap.Fix(&h, 0)
		}
	}
	out := make([]Entry, len(h))
	for i := len(h) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(Entry)
	}
	return out
}

// Positive returns the top n positions of a dense score slice, skipping
// positions whose score is not strictly positive even when fewer than n
// remain.
func Positive(scores []float64, n int) []Entry {
	entries := make([]Entry, 0, len(scores))
	for i, s := range scores {
		if s > 0 {
			entries = append(entries, Entry{Pos: i, Score: s})
		}
	}
	return Top(entries, n)
}

// Sort orders all entries by descending score, ties by ascending Pos.
func Sort(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return weaker(entries[j], entries[i])
	})
}
