package combat

import (
	"math"

	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/ident"
)

const (
	// DefaultNumberTTL is how long a floating damage number stays up.
	DefaultNumberTTL = 45

	maxArcStep   = 5.0 // degrees between blade samples
	bladeSpacing = 2.0 // pixels between samples along the blade
)

// Attacker is a character whose weapon may be mid-swing.
type Attacker struct {
	ID     ident.ID
	Box    gamemath.Box
	Weapon *Weapon // nil when unarmed
	Swing  *Swing
}

// Target is a character that can be hit. A nil Mask means the whole box is
// hittable.
type Target struct {
	ID            ident.ID
	Box           gamemath.Box
	Mask          *Mask
	Invincibility *Invincibility
}

// DamageNumber is the floating status effect shown over a hit target.
type DamageNumber struct {
	Target ident.ID
	Amount int
	X, Y   float64
	TTL    int
}

// Hit is one successful weapon contact.
type Hit struct {
	Attacker ident.ID
	Target   ident.ID
	Damage   int
	Number   DamageNumber
}

// Resolver hit-tests swings. The zero value uses DefaultNumberTTL.
type Resolver struct {
	NumberTTL int
}

// Resolve tests att's swing against every target independently and grants
// invincibility on each hit. Unarmed or idle attackers never hit.
func (r Resolver) Resolve(att Attacker, targets []Target) []Hit {
	if att.Weapon == nil || att.Swing == nil || !att.Swing.Cutting() {
		return nil
	}
	w := att.Weapon
	px, py := att.Box.Center()
	reach := WeaponBounds(px, py, *w, att.Swing.Dir)

	var hits []Hit
	for _, t := range targets {
		if t.ID == att.ID {
			continue
		}
		if t.Invincibility != nil && t.Invincibility.Has(att.ID) {
			continue
		}
		if !reach.Overlaps(t.Box) {
			continue
		}
		if !bladeHits(px, py, *w, att.Swing.PrevAngle(), att.Swing.Angle(), t) {
			continue
		}
		if t.Invincibility != nil {
			t.Invincibility.Grant(att.ID, w.ActiveTicks)
		}
		cx, _ := t.Box.Center()
		hits = append(hits, Hit{
			Attacker: att.ID,
			Target:   t.ID,
			Damage:   w.Attack,
			Number: DamageNumber{
				Target: t.ID,
				Amount: w.Attack,
				X:      cx,
				Y:      t.Box.Y,
				TTL:    r.ttl(),
			},
		})
	}
	return hits
}

func (r Resolver) ttl() int {
	if r.NumberTTL > 0 {
		return r.NumberTTL
	}
	return DefaultNumberTTL
}

// WeaponBounds is the coarse box around a grip at (px, py): the larger
// blade dimension in every direction, pushed down by half the blade height
// when swinging downward.
func WeaponBounds(px, py float64, w Weapon, dir gamemath.Direction) gamemath.Box {
	r := max(w.Width, w.Height)
	b := gamemath.Box{X: px - r, Y: py - r, W: 2 * r, H: 2 * r}
	if dir == gamemath.Down {
		b = b.Translate(0, w.Height/2)
	}
	return b
}

// bladeHits samples the blade across the arc swept this tick and tests
// each point against the target's mask.
func bladeHits(px, py float64, w Weapon, from, to float64, t Target) bool {
	arcSteps := int(math.Ceil(math.Abs(to-from)/maxArcStep)) + 1
	length := math.Hypot(w.Width/2, w.Height)
	bladeSteps := int(math.Ceil(length/bladeSpacing)) + 1

	for i := 0; i < arcSteps; i++ {
		angle := to
		if arcSteps > 1 {
			angle = from + (to-from)*float64(i)/float64(arcSteps-1)
		}
		tx, ty := Tip(px, py, w.Width, w.Height, angle)
		for j := 0; j < bladeSteps; j++ {
			f := float64(j) / float64(bladeSteps-1)
			if pointHits(px+(tx-px)*f, py+(ty-py)*f, t) {
				return true
			}
		}
	}
	return false
}

func pointHits(x, y float64, t Target) bool {
	lx, ly := x-t.Box.X, y-t.Box.Y
	if lx < 0 || ly < 0 || lx >= t.Box.W || ly >= t.Box.H {
		return false
	}
	if t.Mask == nil {
		return true
	}
	return t.Mask.Hit(lx*float64(t.Mask.W)/t.Box.W, ly*float64(t.Mask.H)/t.Box.H)
}
