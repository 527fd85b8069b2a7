package filesystem

import "container/heap"

// RecentLimit is the number of records the recent listing keeps
const RecentLimit = 10

// Ranker keeps the K lexicographically largest paths seen so far.
// Since record filenames start with a sortable timestamp, these are the K
// most recent records.
type Ranker struct {
	limit int
	heap  minHeap
}

// NewRanker creates a ranker that retains at most limit paths
func NewRanker(limit int) *Ranker {
	if limit < 0 {
		limit = 0
	}
	return &Ranker{
		limit: limit,
		heap:  make(minHeap, 0, limit+1),
	}
}

// Push offers a path, evicting the smallest when over capacity
func (r *Ranker) Push(path string) {
	heap.Push(&r.heap, path)
	if r.heap.Len() > r.limit {
		heap.Pop(&r.heap)
	}
}

// Len returns the number of retained paths
func (r *Ranker) Len() int {
	return r.heap.Len()
}

// Sorted drains the ranker and returns the retained paths oldest first
func (r *Ranker) Sorted() []string {
	out := make([]string, 0, r.heap.Len())
	for r.heap.Len() > 0 {
		out = append(out, heap.Pop(&r.heap).(string))
	}
	return out
}

type minHeap []string

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap) Push(x any) {
	*h = append(*h, x.(string))
}

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
