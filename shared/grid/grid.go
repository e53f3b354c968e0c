// Package grid is the movement grid shared by the pathfinder and the enemy
// AI: integer cells, static terrain, per-frame character occupancy and the
// obstruction oracle combining the two.
package grid

import (
	"math"

	"github.com/automoto/cryptblade/shared/gamemath"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Neighbors are the 8 offsets searched by the pathfinder, cardinals first.
var Neighbors = [8]Cell{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// CellOf snaps a world position to the cell containing it.
func CellOf(x, y, size float64) Cell {
	return Cell{X: int(math.Floor(x / size)), Y: int(math.Floor(y / size))}
}

// CellOfBox snaps the center of b.
func CellOfBox(b gamemath.Box, size float64) Cell {
	cx, cy := b.Center()
	return CellOf(cx, cy, size)
}

func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y}
}

// Origin returns the world position of the cell's top-left corner.
func (c Cell) Origin(size float64) (float64, float64) {
	return float64(c.X) * size, float64(c.Y) * size
}

// Center returns the world position of the cell's midpoint.
func (c Cell) Center(size float64) (float64, float64) {
	return (float64(c.X) + 0.5) * size, (float64(c.Y) + 0.5) * size
}

// Euclid is the straight-line distance to o in cells.
func (c Cell) Euclid(o Cell) float64 {
	return math.Hypot(float64(o.X-c.X), float64(o.Y-c.Y))
}

// Chebyshev is the 8-connected step distance to o.
func (c Cell) Chebyshev(o Cell) int {
	return max(absInt(o.X-c.X), absInt(o.Y-c.Y))
}

// Obstruction classifies what, if anything, blocks a cell.
type Obstruction int

const (
	Free Obstruction = iota
	Terrain
	Character
)

func (o Obstruction) String() string {
	switch o {
	case Terrain:
		return "terrain"
	case Character:
		return "character"
	}
	return "free"
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
