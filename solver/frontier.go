package solver

import "container/heap"

// item is one frontier entry: a linearized cell and its estimated total
// cost g + h. Stale duplicates of a cell may coexist; the strictly-better
// check in the relax step makes popping them a no-op.
type item struct {
	cell     int
	priority int
	index    int
}

// frontier is a min-heap of items keyed by priority. The order among equal
// priorities is whatever the heap happens to produce; it only influences
// which of several equally short paths is found.
type frontier []*item

var _ heap.Interface = (*frontier)(nil)

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool { return f[i].priority < f[j].priority }

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	it := x.(*item)
	it.index = len(*f)
	*f = append(*f, it)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return it
}
