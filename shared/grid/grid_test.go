package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/ident"
)

func TestCellOf_Snaps(t *testing.T) {
	assert.Equal(t, Cell{0, 0}, CellOf(0, 0, 32))
	assert.Equal(t, Cell{0, 0}, CellOf(31.9, 31.9, 32))
	assert.Equal(t, Cell{1, 2}, CellOf(32, 64, 32))
	assert.Equal(t, Cell{-1, -1}, CellOf(-0.5, -10, 32))

	x, y := Cell{2, 3}.Origin(32)
	assert.Equal(t, 64.0, x)
	assert.Equal(t, 96.0, y)
	cx, cy := Cell{2, 3}.Center(32)
	assert.Equal(t, 80.0, cx)
	assert.Equal(t, 112.0, cy)
}

func TestCell_Distances(t *testing.T) {
	a := Cell{0, 0}
	b := Cell{3, 4}
	assert.Equal(t, 4, a.Chebyshev(b))
	assert.Equal(t, 5.0, a.Euclid(b))
	assert.Equal(t, Cell{-3, -4}, a.Sub(b))
}

func TestCover(t *testing.T) {
	exact := Cover(gamemath.Box{X: 32, Y: 32, W: 32, H: 32}, 32)
	assert.Equal(t, []Cell{{1, 1}}, exact)

	straddle := Cover(gamemath.Box{X: 20, Y: 0, W: 24, H: 24}, 32)
	assert.ElementsMatch(t, []Cell{{0, 0}, {1, 0}}, straddle)

	point := Cover(gamemath.PointBox(70, 5), 32)
	assert.Equal(t, []Cell{{2, 0}}, point)
}

func TestTerrain_OutOfBoundsIsSolid(t *testing.T) {
	terrain := FromRows([]string{
		"..#",
		"...",
	}, 32)
	require.Equal(t, 3, terrain.Width)
	require.Equal(t, 2, terrain.Height)

	assert.True(t, terrain.Solid(Cell{2, 0}))
	assert.False(t, terrain.Solid(Cell{0, 0}))
	assert.True(t, terrain.Solid(Cell{-1, 0}))
	assert.True(t, terrain.Solid(Cell{0, 2}))
	assert.Equal(t, gamemath.Box{W: 96, H: 64}, terrain.Bounds())

	terrain.MarkBox(gamemath.Box{X: 0, Y: 32, W: 64, H: 32})
	assert.True(t, terrain.Solid(Cell{0, 1}))
	assert.True(t, terrain.Solid(Cell{1, 1}))
	assert.False(t, terrain.Solid(Cell{2, 1}))
}

func TestMap_Obstruction(t *testing.T) {
	m := NewMap(FromRows([]string{
		"....",
		".#..",
	}, 32))
	hero := ident.ID(1)
	bat := ident.ID(2)
	m.Occupancy.Place(hero, gamemath.Box{X: 64, Y: 0, W: 24, H: 24})
	m.Occupancy.Place(bat, gamemath.Box{X: 64, Y: 0, W: 16, H: 16})

	assert.Equal(t, Terrain, m.Obstruction(Cell{1, 1}))
	assert.Equal(t, Terrain, m.Obstruction(Cell{9, 9}))
	assert.Equal(t, Free, m.Obstruction(Cell{0, 0}))
	assert.Equal(t, Character, m.Obstruction(Cell{2, 0}))
	assert.Equal(t, Character, m.Obstruction(Cell{2, 0}, hero), "bat still blocks")
	assert.Equal(t, Free, m.Obstruction(Cell{2, 0}, hero, bat))
}

func TestOccupancy_PlaceReplacesAndRemoves(t *testing.T) {
	o := NewOccupancy(32)
	id := ident.ID(7)
	o.Place(id, gamemath.Box{X: 0, Y: 0, W: 16, H: 16})
	o.Place(id, gamemath.Box{X: 96, Y: 0, W: 16, H: 16})

	assert.Empty(t, o.Occupants(Cell{0, 0}))
	assert.Equal(t, []ident.ID{id}, o.Occupants(Cell{3, 0}))

	box, ok := o.Box(id)
	require.True(t, ok)
	assert.Equal(t, 96.0, box.X)

	o.Remove(id)
	assert.Empty(t, o.Occupants(Cell{3, 0}))
	_, ok = o.Box(id)
	assert.False(t, ok)
}
