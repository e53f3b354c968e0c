package ai

import (
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/grid"
	"github.com/automoto/cryptblade/shared/ident"
)

// Team separates players from enemies.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

// Actor is the per-frame snapshot of one character.
type Actor struct {
	ID    ident.ID
	Team  Team
	Box   gamemath.Box
	Alive bool
}

// World is what enemies perceive during a tick: terrain plus every live
// character. Move keeps the occupancy in step with committed positions.
type World struct {
	Map    *grid.Map
	actors []Actor
	index  map[ident.ID]int
}

// NewWorld snapshots actors on top of terrain. Dead actors are kept for
// lookups but never occupy cells.
func NewWorld(terrain *grid.TerrainGrid, actors []Actor) *World {
	w := &World{
		Map:    grid.NewMap(terrain),
		actors: make([]Actor, len(actors)),
		index:  make(map[ident.ID]int, len(actors)),
	}
	copy(w.actors, actors)
	for i, a := range w.actors {
		w.index[a.ID] = i
		if a.Alive {
			w.Map.Occupancy.Place(a.ID, a.Box)
		}
	}
	return w
}

func (w *World) CellSize() float64 { return w.Map.CellSize() }

func (w *World) Actor(id ident.ID) (Actor, bool) {
	i, ok := w.index[id]
	if !ok {
		return Actor{}, false
	}
	return w.actors[i], true
}

// Move commits a new box for id.
func (w *World) Move(id ident.ID, box gamemath.Box) {
	i, ok := w.index[id]
	if !ok {
		return
	}
	w.actors[i].Box = box
	if w.actors[i].Alive {
		w.Map.Occupancy.Place(id, box)
	}
}

// NearestPlayer returns the live player closest to self by box distance.
func (w *World) NearestPlayer(self gamemath.Box) (Actor, int, bool) {
	var (
		best  Actor
		dist  int
		found bool
	)
	for _, a := range w.actors {
		if a.Team != TeamPlayer || !a.Alive {
			continue
		}
		d := gamemath.Distance(self, a.Box)
		if !found || d < dist {
			best, dist, found = a, d, true
		}
	}
	return best, dist, found
}
