package grid

import (
	"math"

	"github.com/automoto/cryptblade/shared/gamemath"
)

// TerrainGrid is the static walkability of a level.
// Cells outside the grid count as solid.
type TerrainGrid struct {
	Width, Height int
	CellSize      float64
	solid         []bool
}

func NewTerrain(width, height int, cellSize float64) *TerrainGrid {
	return &TerrainGrid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		solid:    make([]bool, width*height),
	}
}

func (t *TerrainGrid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < t.Width && c.Y < t.Height
}

func (t *TerrainGrid) Solid(c Cell) bool {
	if !t.InBounds(c) {
		return true
	}
	return t.solid[c.Y*t.Width+c.X]
}

func (t *TerrainGrid) SetSolid(c Cell, solid bool) {
	if t.InBounds(c) {
		t.solid[c.Y*t.Width+c.X] = solid
	}
}

// MarkBox marks every cell the box covers as solid.
func (t *TerrainGrid) MarkBox(b gamemath.Box) {
	for _, c := range Cover(b, t.CellSize) {
		t.SetSolid(c, true)
	}
}

// Bounds is the play area in world units.
func (t *TerrainGrid) Bounds() gamemath.Box {
	return gamemath.Box{W: float64(t.Width) * t.CellSize, H: float64(t.Height) * t.CellSize}
}

// Cover returns the cells a box overlaps. Edges lying exactly on a cell
// boundary do not spill into the next cell. A zero-size box covers one cell.
func Cover(b gamemath.Box, size float64) []Cell {
	const eps = 1e-9
	x0 := int(math.Floor(b.X / size))
	y0 := int(math.Floor(b.Y / size))
	x1 := int(math.Floor((b.Right() - eps) / size))
	y1 := int(math.Floor((b.Bottom() - eps) / size))
	x1 = max(x0, x1)
	y1 = max(y0, y1)

	cells := make([]Cell, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// FromRows builds terrain from an ASCII sketch where '#' is solid and any
// other byte is open. All rows must have the same length.
func FromRows(rows []string, cellSize float64) *TerrainGrid {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	t := NewTerrain(width, len(rows), cellSize)
	for y, row := range rows {
		for x := 0; x < len(row) && x < width; x++ {
			if row[x] == '#' {
				t.SetSolid(Cell{X: x, Y: y}, true)
			}
		}
	}
	return t
}
