package systems

import (
	"math"

	"github.com/automoto/cryptblade/components"
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// moveObject slides obj by (dx, dy), one axis at a time, stopping flush
// against walls and other characters. It returns the distance actually
// travelled on each axis.
func moveObject(obj *resolv.Object, dx, dy float64) (float64, float64) {
	if dx != 0 {
		dx = clampAxis(obj, dx, 0)
		obj.X += dx
	}
	if dy != 0 {
		dy = clampAxis(obj, 0, dy)
		obj.Y += dy
	}
	obj.Update()
	return dx, dy
}

// clampAxis shortens a single-axis move to the first blocker along it.
func clampAxis(obj *resolv.Object, dx, dy float64) float64 {
	want := dx + dy
	check := obj.Check(dx, dy, tags.ResolvSolid, tags.ResolvCharacter)
	if check == nil {
		return want
	}

	moved := gamemath.Box{X: obj.X + dx, Y: obj.Y + dy, W: obj.W, H: obj.H}
	allowed := want
	for _, o := range check.Objects {
		if o == obj || isDying(o) || !overlapsStrict(moved, objectBox(o)) {
			continue
		}
		var gap float64
		if dx != 0 {
			gap = check.ContactWithObject(o).X()
		} else {
			gap = check.ContactWithObject(o).Y()
		}
		if math.Signbit(gap) != math.Signbit(want) {
			gap = 0
		}
		if math.Abs(gap) < math.Abs(allowed) {
			allowed = gap
		}
	}
	return allowed
}

// isDying reports whether o belongs to a character in its death sequence.
// Corpses do not block movement.
func isDying(o *resolv.Object) bool {
	e, ok := o.Data.(*donburi.Entry)
	return ok && e.Valid() && e.HasComponent(components.Death)
}

func objectBox(o *resolv.Object) gamemath.Box {
	return gamemath.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// overlapsStrict ignores boxes that only share an edge.
func overlapsStrict(a, b gamemath.Box) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}
