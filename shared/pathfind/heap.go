package pathfind

import "github.com/automoto/cryptblade/shared/grid"

type node struct {
	cell      grid.Cell
	cost      int
	heuristic float64
	seq       int
}

// nodeHeap pops the lowest heuristic first; earlier insertions win ties.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].heuristic != h[j].heuristic {
		return h[i].heuristic < h[j].heuristic
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
