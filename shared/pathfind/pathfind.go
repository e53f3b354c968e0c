// Package pathfind is a budgeted A* search over the 8-connected movement
// grid. Every step costs 1 regardless of direction, so the search is not
// guaranteed optimal for diagonal-heavy routes; callers only rely on it
// producing a walkable route or none.
package pathfind

import (
	"container/heap"

	"github.com/automoto/cryptblade/shared/grid"
	"github.com/automoto/cryptblade/shared/ident"
)

// DefaultBudget is the maximum number of node pops per search.
const DefaultBudget = 200

// Searcher runs searches with a fixed expansion budget.
type Searcher struct {
	Budget int
}

// Find searches with DefaultBudget.
func Find(oracle grid.Oracle, start, goal grid.Cell, ignore ...ident.ID) ([]grid.Cell, bool) {
	return Searcher{Budget: DefaultBudget}.Find(oracle, start, goal, ignore...)
}

// Find returns the route from start to goal ordered goal first, nearest step
// last; start itself is excluded. Characters in ignore do not block. It
// returns false when the goal is blocked, the open set empties, or the
// budget is spent.
func (s Searcher) Find(oracle grid.Oracle, start, goal grid.Cell, ignore ...ident.ID) ([]grid.Cell, bool) {
	if start == goal {
		return []grid.Cell{}, true
	}
	if oracle.Obstruction(goal, ignore...) != grid.Free {
		return nil, false
	}
	budget := s.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}

	open := &nodeHeap{}
	parent := make(map[grid.Cell]grid.Cell)
	best := map[grid.Cell]int{start: 0}
	closed := make(map[grid.Cell]bool)
	seq := 0

	heap.Push(open, &node{cell: start, heuristic: start.Euclid(goal)})

	for pops := 0; open.Len() > 0 && pops < budget; pops++ {
		cur := heap.Pop(open).(*node)
		if closed[cur.cell] {
			continue
		}
		if cur.cell == goal {
			return reconstruct(parent, start, goal), true
		}
		closed[cur.cell] = true

		for _, d := range grid.Neighbors {
			next := cur.cell.Add(d.X, d.Y)
			if closed[next] {
				continue
			}
			cost := cur.cost + 1
			if c, ok := best[next]; ok && c <= cost {
				continue
			}
			if oracle.Obstruction(next, ignore...) != grid.Free {
				continue
			}
			best[next] = cost
			parent[next] = cur.cell
			seq++
			heap.Push(open, &node{
				cell:      next,
				cost:      cost,
				heuristic: float64(cost) + next.Euclid(goal),
				seq:       seq,
			})
		}
	}
	return nil, false
}

func reconstruct(parent map[grid.Cell]grid.Cell, start, goal grid.Cell) []grid.Cell {
	var path []grid.Cell
	for c := goal; c != start; c = parent[c] {
		path = append(path, c)
	}
	return path
}
