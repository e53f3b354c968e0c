// Package navcheck validates level layouts offline: every enemy spawn must
// sit on open floor reachable from the first player spawn.
package navcheck

import (
	"fmt"
	"math"

	astar "github.com/beefsack/go-astar"

	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/grid"
	"github.com/automoto/cryptblade/shared/leveldata"
)

// Graph is the terrain as a go-astar graph. Unlike the in-game search it
// has no expansion budget and ignores characters.
type Graph struct {
	Width, Height int
	Nodes         [][]*Node
}

// Node is one grid cell. It implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	graph    *Graph
}

// NewGraph builds a graph over the terrain's cells.
func NewGraph(t *grid.TerrainGrid) *Graph {
	g := &Graph{
		Width:  t.Width,
		Height: t.Height,
		Nodes:  make([][]*Node, t.Height),
	}
	for y := 0; y < t.Height; y++ {
		g.Nodes[y] = make([]*Node, t.Width)
		for x := 0; x < t.Width; x++ {
			g.Nodes[y][x] = &Node{
				X:        x,
				Y:        y,
				Walkable: !t.Solid(grid.Cell{X: x, Y: y}),
				graph:    g,
			}
		}
	}
	return g
}

// PathNeighbors returns adjacent walkable nodes in 8 directions.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range grid.Neighbors {
		if other := n.graph.node(n.X+d.X, n.Y+d.Y); other != nil && other.Walkable {
			neighbors = append(neighbors, other)
		}
	}
	return neighbors
}

// PathNeighborCost is 1 for every step, matching the in-game search.
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost is the Euclidean distance in cells.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	return math.Hypot(float64(t.X-n.X), float64(t.Y-n.Y))
}

func (g *Graph) node(x, y int) *Node {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

// FindPath returns the cells from from to to inclusive, in walking order.
func (g *Graph) FindPath(from, to grid.Cell) ([]grid.Cell, bool) {
	start, goal := g.node(from.X, from.Y), g.node(to.X, to.Y)
	if start == nil || goal == nil || !start.Walkable || !goal.Walkable {
		return nil, false
	}
	if start == goal {
		return []grid.Cell{from}, true
	}
	path, _, found := astar.Path(start, goal)
	if !found {
		return nil, false
	}
	// go-astar returns goal first
	cells := make([]grid.Cell, len(path))
	for i, p := range path {
		n := p.(*Node)
		cells[len(path)-1-i] = grid.Cell{X: n.X, Y: n.Y}
	}
	return cells, true
}

// Problem describes one bad spawn.
type Problem struct {
	Spawn  string
	Cell   grid.Cell
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s at cell (%d,%d): %s", p.Spawn, p.Cell.X, p.Cell.Y, p.Reason)
}

// CheckLevel reports spawns that are inside walls or cut off from the
// first player spawn. size is the character box size used to locate the
// cell each spawn occupies.
func CheckLevel(level *leveldata.Level, cellSize, size float64) []Problem {
	terrain := level.Terrain(cellSize)
	g := NewGraph(terrain)
	at := func(x, y float64) grid.Cell {
		return grid.CellOfBox(gamemath.Box{X: x, Y: y, W: size, H: size}, cellSize)
	}

	var problems []Problem
	if len(level.PlayerSpawns) == 0 {
		return []Problem{{Spawn: "player", Reason: leveldata.ErrNoPlayerSpawn.Error()}}
	}
	origin := at(level.PlayerSpawns[0].X, level.PlayerSpawns[0].Y)
	if terrain.Solid(origin) {
		return []Problem{{Spawn: "player 0", Cell: origin, Reason: "inside a wall"}}
	}

	for i, s := range level.PlayerSpawns[1:] {
		problems = appendProblem(problems, g, terrain, origin, at(s.X, s.Y), fmt.Sprintf("player %d", i+1))
	}
	for i, s := range level.EnemySpawns {
		problems = appendProblem(problems, g, terrain, origin, at(s.X, s.Y), fmt.Sprintf("%s %d", s.Kind, i))
	}
	return problems
}

func appendProblem(problems []Problem, g *Graph, terrain *grid.TerrainGrid, origin, c grid.Cell, name string) []Problem {
	if terrain.Solid(c) {
		return append(problems, Problem{Spawn: name, Cell: c, Reason: "inside a wall"})
	}
	if _, ok := g.FindPath(origin, c); !ok {
		return append(problems, Problem{Spawn: name, Cell: c, Reason: "unreachable from player spawn"})
	}
	return problems
}
