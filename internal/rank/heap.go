package rank

// Entry is a scored position. Pos is the candidate's canonical position
// (vocabulary index, insertion order) and breaks ties between equal scores:
// the lower position ranks first.
type Entry struct {
	Pos   int
	Score float64
}

// entryHeap implements container/heap.Interface as a min-heap ordered by
// rank. The weakest kept entry is at the top, making it the first candidate
// for eviction when a stronger one arrives.
type entryHeap []Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return weaker(h[i], h[j]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// weaker reports whether a ranks below b.
func weaker(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Pos > b.Pos
}
