// Package ai is the enemy decision engine. Each tick an enemy's Brain is
// re-evaluated against a read-only World snapshot and replaced with the
// next state plus a movement delta for the caller to integrate.
package ai

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/automoto/cryptblade/logger"
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/grid"
	"github.com/automoto/cryptblade/shared/pathfind"
)

// Engine holds per-kind tuning and the RNG used for wandering.
type Engine struct {
	Params   map[Kind]Params
	CellSize float64
	Rand     *rand.Rand
	Search   pathfind.Searcher
}

// NewEngine returns an engine with the default search budget. A nil rng
// gets a fixed seed so runs are reproducible.
func NewEngine(cellSize float64, params map[Kind]Params, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	return &Engine{
		Params:   params,
		CellSize: cellSize,
		Rand:     rng,
		Search:   pathfind.Searcher{Budget: pathfind.DefaultBudget},
	}
}

// Decision is the outcome of one tick for one enemy.
type Decision struct {
	Brain      Brain // next state, to be stored by the caller
	XAdd, YAdd int   // per-axis direction of travel, each in {-1, 0, 1}
	DX, DY     float64
	Face       gamemath.Direction
}

func (d Decision) Action() Action { return d.Brain.Action }

// tick carries the context of a single Decide call.
type tick struct {
	e    *Engine
	p    Params
	b    *Brain
	self gamemath.Box
	w    *World
	cur  grid.Cell

	target    Actor
	dist      int
	hasTarget bool
	inLeash   bool
}

// Decide evaluates b for one tick. At most one state transition fires;
// the movement delta is derived from the resulting state.
func (e *Engine) Decide(b Brain, self gamemath.Box, w *World) Decision {
	t := &tick{
		e:    e,
		p:    e.Params[b.Kind],
		b:    &b,
		self: self,
		w:    w,
		cur:  grid.CellOfBox(self, e.CellSize),
	}
	t.transition()
	return t.advance()
}

func (t *tick) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"enemy": t.b.ID,
		"kind":  t.b.Kind,
	})
}

func (t *tick) leash() float64 {
	if t.b.Leash > 0 {
		return t.b.Leash
	}
	return t.p.Leash
}

func (t *tick) set(a Action) {
	if a.Kind != t.b.Action.Kind {
		t.log().WithFields(logrus.Fields{
			"from": t.b.Action.Kind,
			"to":   a.Kind,
		}).Debug("enemy action changed")
	}
	t.b.Action = a
}

func (t *tick) transition() {
	t.target, t.dist, t.hasTarget = t.w.NearestPlayer(t.self)
	if t.hasTarget {
		leashDist := gamemath.Distance(t.b.Anchor, t.target.Box)
		t.inLeash = float64(leashDist) <= t.leash()
		if t.inLeash && float64(t.dist) <= t.p.Reach+t.e.CellSize {
			t.engage()
			return
		}
	}

	if t.b.Action.Kind == ActionMoveToPlayer {
		t.continuePursuit()
		return
	}
	if t.hasTarget && t.inLeash && float64(t.dist) <= t.p.ViewRadius {
		t.pursue()
		return
	}
	if t.b.Action.Kind == ActionMoveTo {
		t.follow(t.replanMove)
		return
	}
	t.wander()
}

// engage handles a target inside weapon reach plus one cell.
func (t *tick) engage() {
	cx, cy := t.self.Center()
	tx, ty := t.target.Box.Center()
	dx, dy := tx-cx, ty-cy
	if dx == 0 && dy == 0 {
		t.set(None())
		return
	}
	tc := grid.CellOfBox(t.target.Box, t.e.CellSize)

	if t.b.Kind.RequiresAlignment() && !t.aligned(tc, dx, dy) {
		if c, ok := t.sideStep(tc); ok {
			t.set(MoveTo([]grid.Cell{c}))
			return
		}
		if c, ok := t.retreat(dx, dy); ok {
			t.set(MoveTo([]grid.Cell{c}))
			return
		}
		t.settle()
		return
	}

	if float64(t.dist) <= t.p.Reach {
		t.set(Attack(gamemath.DirectionToward(dx, dy)))
		return
	}
	if c, ok := t.closer(tc); ok {
		t.set(MoveTo([]grid.Cell{c}))
		return
	}
	t.settle()
}

// settle finishes the step onto the current cell when no neighbour is
// open. Cells are snapped from the box centre, so the enemy can be
// part-way across with the gap to the target still above reach.
func (t *tick) settle() {
	if t.at(t.cur) {
		t.set(None())
		return
	}
	t.set(MoveTo([]grid.Cell{t.cur}))
}

// aligned reports whether the target shares a row or column with the enemy,
// either by cell or within AlignFraction of reach in pixels.
func (t *tick) aligned(tc grid.Cell, dx, dy float64) bool {
	if tc.X == t.cur.X || tc.Y == t.cur.Y {
		return true
	}
	slack := t.p.AlignFraction * t.p.Reach
	return math.Abs(dx) <= slack || math.Abs(dy) <= slack
}

func (t *tick) free(c grid.Cell) bool {
	return t.w.Map.Obstruction(c, t.b.ID) == grid.Free
}

// sideStep moves one cell toward the target's row or column, trying the
// axis with the smaller offset first.
func (t *tick) sideStep(tc grid.Cell) (grid.Cell, bool) {
	off := tc.Sub(t.cur)
	vertical := t.cur.Add(0, sign(off.Y))
	horizontal := t.cur.Add(sign(off.X), 0)
	order := []grid.Cell{vertical, horizontal}
	if absInt(off.X) < absInt(off.Y) {
		order = []grid.Cell{horizontal, vertical}
	}
	for _, c := range order {
		if c != t.cur && t.free(c) {
			return c, true
		}
	}
	return grid.Cell{}, false
}

// retreat steps one cell away from the target to get out of a corner. The
// four facings are tried starting with the one pointing away along the
// dominant axis.
func (t *tick) retreat(dx, dy float64) (grid.Cell, bool) {
	away := gamemath.DirectionToward(-dx, -dy)
	var minor gamemath.Direction
	if away.Horizontal() {
		minor = gamemath.DirectionToward(0, -dy)
	} else {
		minor = gamemath.DirectionToward(-dx, 0)
	}
	order := []gamemath.Direction{away, minor, minor.Opposite(), away.Opposite()}
	for _, d := range order {
		if d == gamemath.None {
			continue
		}
		ox, oy := d.Delta()
		if c := t.cur.Add(ox, oy); t.free(c) {
			return c, true
		}
	}
	return grid.Cell{}, false
}

// closer steps one cell toward the target cell, diagonally when allowed.
func (t *tick) closer(tc grid.Cell) (grid.Cell, bool) {
	sx, sy := sign(tc.X-t.cur.X), sign(tc.Y-t.cur.Y)
	candidates := []grid.Cell{t.cur.Add(sx, sy), t.cur.Add(sx, 0), t.cur.Add(0, sy)}
	if t.b.Kind.RequiresAlignment() && sx != 0 && sy != 0 {
		candidates = candidates[1:]
	}
	for _, c := range candidates {
		if c != t.cur && t.free(c) {
			return c, true
		}
	}
	return grid.Cell{}, false
}

func (t *tick) pursue() {
	tc := grid.CellOfBox(t.target.Box, t.e.CellSize)
	path, ok := t.e.Search.Find(t.w.Map, t.cur, tc, t.b.ID, t.target.ID)
	if !ok {
		t.log().WithField("target", t.target.ID).Debug("no path to player")
		t.set(None())
		return
	}
	t.set(MoveToPlayer(t.target.ID, tc, path))
}

func (t *tick) continuePursuit() {
	if !t.hasTarget || !t.inLeash || float64(t.dist) > t.p.PursuitRadius {
		t.log().WithField("dist", t.dist).Debug("abandoning pursuit")
		t.returnHome()
		return
	}
	a := t.b.Action
	gx, gy := a.Goal.Center(t.e.CellSize)
	px, py := t.target.Box.Center()
	if a.Target != t.target.ID || math.Hypot(px-gx, py-gy) > t.p.DriftRadius {
		t.pursue()
		return
	}
	t.follow(t.pursue)
}

func (t *tick) returnHome() {
	home := grid.CellOfBox(t.b.Anchor, t.e.CellSize)
	path, ok := t.e.Search.Find(t.w.Map, t.cur, home, t.b.ID)
	if !ok || len(path) == 0 {
		t.set(None())
		return
	}
	t.set(MoveTo(path))
}

func (t *tick) replanMove() {
	goal, ok := t.b.Action.Destination()
	if !ok {
		t.set(None())
		return
	}
	path, found := t.e.Search.Find(t.w.Map, t.cur, goal, t.b.ID)
	if !found || len(path) == 0 {
		t.set(None())
		return
	}
	t.set(MoveTo(path))
}

func (t *tick) wander() {
	if t.b.Idle > 0 {
		t.b.Idle--
		t.set(None())
		return
	}
	if goal, ok := t.wanderGoal(); ok {
		path, found := t.e.Search.Find(t.w.Map, t.cur, goal, t.b.ID)
		if found && len(path) > 0 {
			t.set(MoveTo(path))
			return
		}
	}
	t.set(None())
	t.b.Idle = t.p.WanderPause
}

// wanderGoal picks a random cell around the anchor at least WanderMin
// away, nudged toward the anchor until it is unobstructed.
func (t *tick) wanderGoal() (grid.Cell, bool) {
	r := t.e.Rand
	ox := (r.Float64()*2 - 1) * t.p.WanderRadius
	oy := (r.Float64()*2 - 1) * t.p.WanderRadius
	if mag := math.Hypot(ox, oy); mag < t.p.WanderMin {
		if mag == 0 {
			ox, oy = t.p.WanderMin, 0
		} else {
			ox, oy = ox*t.p.WanderMin/mag, oy*t.p.WanderMin/mag
		}
	}

	home := grid.CellOfBox(t.b.Anchor, t.e.CellSize)
	c := grid.CellOfBox(t.b.Anchor.Translate(ox, oy), t.e.CellSize)
	for !t.free(c) {
		if c == home {
			return grid.Cell{}, false
		}
		c = c.Add(sign(home.X-c.X), sign(home.Y-c.Y))
	}
	return c, c != t.cur
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
