package scheduler

import (
	"time"
)

type entry struct {
	key     string
	index   int
	readyAt time.Time
	task    func()
}

// entryHeap orders pending entries by readiness, earliest first. It implements heap.Interface
// and keeps every entry's index current so a key can be removed in place.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	return h[i].readyAt.Before(h[j].readyAt)
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

func (h entryHeap) peek() *entry {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}
