package ai

import (
	"math"
	"slices"

	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/grid"
	"github.com/automoto/cryptblade/shared/ident"
)

const arriveEpsilon = 1e-6

// at reports whether the enemy's box sits on the cell's origin.
func (t *tick) at(c grid.Cell) bool {
	x, y := c.Origin(t.e.CellSize)
	return math.Abs(t.self.X-x) < arriveEpsilon && math.Abs(t.self.Y-y) < arriveEpsilon
}

// follow continues a MoveTo or MoveToPlayer path: reached waypoints are
// dropped, terrain corners are stepped around, and a character in the way
// triggers replan.
func (t *tick) follow(replan func()) {
	a := &t.b.Action
	for len(a.Path) > 0 && t.at(a.Path[len(a.Path)-1]) {
		a.Path = a.Path[:len(a.Path)-1]
	}
	if len(a.Path) == 0 {
		t.arrive(replan)
		return
	}

	ignore := []ident.ID{t.b.ID}
	if a.Kind == ActionMoveToPlayer {
		ignore = append(ignore, a.Target)
	}

	next := a.Path[len(a.Path)-1]
	switch t.w.Map.Obstruction(next, ignore...) {
	case grid.Character, grid.Terrain:
		replan()
		return
	}

	step := next.Sub(t.cur)
	if absInt(step.X) > 1 || absInt(step.Y) > 1 {
		replan()
		return
	}
	if step.X == 0 || step.Y == 0 {
		return
	}

	// diagonal: don't clip the corner of a wall
	horizontal := t.cur.Add(step.X, 0)
	vertical := t.cur.Add(0, step.Y)
	hBlocked := t.w.Map.Obstruction(horizontal, ignore...) == grid.Terrain
	vBlocked := t.w.Map.Obstruction(vertical, ignore...) == grid.Terrain
	switch {
	case hBlocked && vBlocked:
		replan()
	case hBlocked:
		t.deflect(vertical, ignore)
	case vBlocked:
		t.deflect(horizontal, ignore)
	}
}

// deflect inserts an intermediate waypoint on the open axis.
func (t *tick) deflect(via grid.Cell, ignore []ident.ID) {
	if t.w.Map.Obstruction(via, ignore...) != grid.Free {
		return
	}
	a := &t.b.Action
	a.Path = append(slices.Clone(a.Path), via)
}

// arrive handles an emptied path. A wander or return ends in an idle pause;
// a pursuit that reached its goal without coming into range replans.
func (t *tick) arrive(replan func()) {
	if t.b.Action.Kind == ActionMoveToPlayer {
		replan()
		return
	}
	t.set(None())
	t.b.Idle = t.p.WanderPause
}

// advance derives this tick's movement from the current action.
func (t *tick) advance() Decision {
	d := Decision{Face: t.b.Facing}
	a := t.b.Action
	switch a.Kind {
	case ActionMoveTo, ActionMoveToPlayer:
		if next, ok := a.Next(); ok {
			x, y := next.Origin(t.e.CellSize)
			d.DX = gamemath.StepToward(t.self.X, x, t.p.Speed)
			d.DY = gamemath.StepToward(t.self.Y, y, t.p.Speed)
			d.XAdd = gamemath.Sign(d.DX)
			d.YAdd = gamemath.Sign(d.DY)
			if dir := gamemath.DirectionToward(d.DX, d.DY); dir != gamemath.None {
				d.Face = dir
			}
		}
	case ActionAttack:
		d.Face = a.Dir
	}
	t.b.Facing = d.Face
	d.Brain = *t.b
	return d
}
