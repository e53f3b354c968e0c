package grid

import (
	"slices"

	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/ident"
)

// Occupancy records which characters cover which cells for one frame.
type Occupancy struct {
	cellSize float64
	cells    map[Cell][]ident.ID
	boxes    map[ident.ID]gamemath.Box
}

func NewOccupancy(cellSize float64) *Occupancy {
	return &Occupancy{
		cellSize: cellSize,
		cells:    make(map[Cell][]ident.ID),
		boxes:    make(map[ident.ID]gamemath.Box),
	}
}

// Place moves id to box, replacing any earlier placement.
func (o *Occupancy) Place(id ident.ID, box gamemath.Box) {
	o.Remove(id)
	o.boxes[id] = box
	for _, c := range Cover(box, o.cellSize) {
		o.cells[c] = append(o.cells[c], id)
	}
}

func (o *Occupancy) Remove(id ident.ID) {
	box, ok := o.boxes[id]
	if !ok {
		return
	}
	delete(o.boxes, id)
	for _, c := range Cover(box, o.cellSize) {
		ids := slices.DeleteFunc(o.cells[c], func(other ident.ID) bool { return other == id })
		if len(ids) == 0 {
			delete(o.cells, c)
		} else {
			o.cells[c] = ids
		}
	}
}

// Occupants returns the characters covering c.
func (o *Occupancy) Occupants(c Cell) []ident.ID {
	return o.cells[c]
}

func (o *Occupancy) Box(id ident.ID) (gamemath.Box, bool) {
	b, ok := o.boxes[id]
	return b, ok
}
