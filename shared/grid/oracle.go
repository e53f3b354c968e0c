package grid

import (
	"slices"

	"github.com/automoto/cryptblade/shared/ident"
)

// Oracle answers whether a cell is blocked.
type Oracle interface {
	// Obstruction reports what blocks c. Characters listed in ignore are
	// treated as absent.
	Obstruction(c Cell, ignore ...ident.ID) Obstruction
}

// Map combines static terrain with live character occupancy.
type Map struct {
	Terrain   *TerrainGrid
	Occupancy *Occupancy
}

func NewMap(terrain *TerrainGrid) *Map {
	return &Map{
		Terrain:   terrain,
		Occupancy: NewOccupancy(terrain.CellSize),
	}
}

func (m *Map) CellSize() float64 { return m.Terrain.CellSize }

func (m *Map) Obstruction(c Cell, ignore ...ident.ID) Obstruction {
	if m.Terrain.Solid(c) {
		return Terrain
	}
	for _, id := range m.Occupancy.Occupants(c) {
		if !slices.Contains(ignore, id) {
			return Character
		}
	}
	return Free
}
