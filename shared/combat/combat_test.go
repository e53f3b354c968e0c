package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/ident"
)

func testSword() Weapon {
	return Weapon{
		Name:        "sword",
		Reach:       20,
		Width:       8,
		Height:      28,
		Attack:      12,
		SwingTicks:  3,
		ActiveTicks: 10,
		Sweep:       90,
	}
}

// swingingAt returns an attacker centred on (cx, cy) whose swing toward dir
// has advanced one tick.
func swingingAt(id ident.ID, cx, cy float64, w *Weapon, dir gamemath.Direction) Attacker {
	s := &Swing{}
	s.Start(*w, dir)
	s.Advance()
	return Attacker{
		ID:     id,
		Box:    gamemath.Box{X: cx - 12, Y: cy - 12, W: 24, H: 24},
		Weapon: w,
		Swing:  s,
	}
}

func TestSwing_Lifecycle(t *testing.T) {
	w := testSword()
	var s Swing
	require.True(t, s.Start(w, gamemath.Right))
	assert.Equal(t, SwingActive, s.State)
	assert.Equal(t, 45.0, s.Angle())
	assert.False(t, s.Cutting())
	assert.False(t, s.Start(w, gamemath.Left), "already swinging")

	s.Advance()
	assert.Equal(t, 45.0, s.PrevAngle())
	assert.Equal(t, 75.0, s.Angle())
	assert.True(t, s.Cutting())

	s.Advance()
	s.Advance()
	assert.Equal(t, 135.0, s.Angle())
	assert.Equal(t, SwingSpent, s.State)
	assert.True(t, s.Cutting(), "final arc segment is still tested")

	s.Advance()
	assert.Equal(t, 135.0, s.Angle(), "spent swing holds its angle")
	assert.False(t, s.Cutting())
	assert.False(t, s.Start(w, gamemath.Up), "spent until released")

	s.Release()
	assert.Equal(t, SwingIdle, s.State)
	assert.True(t, s.Start(w, gamemath.Up))
	assert.Equal(t, -45.0, s.Angle())
}

func TestTip_ProjectsFromGrip(t *testing.T) {
	x, y := Tip(100, 100, 8, 28, 0)
	assert.InDelta(t, 104, x, 1e-9)
	assert.InDelta(t, 72, y, 1e-9)

	x, y = Tip(100, 100, 8, 28, 90)
	assert.InDelta(t, 128, x, 1e-9)
	assert.InDelta(t, 104, y, 1e-9)
}

func TestWeaponBounds_ShiftsDownward(t *testing.T) {
	w := testSword()
	up := WeaponBounds(100, 100, w, gamemath.Up)
	assert.Equal(t, gamemath.Box{X: 72, Y: 72, W: 56, H: 56}, up)

	down := WeaponBounds(100, 100, w, gamemath.Down)
	assert.Equal(t, 86.0, down.Y)
}

func TestResolve_HitGrantsInvincibility(t *testing.T) {
	w := testSword()
	att := swingingAt(1, 100, 100, &w, gamemath.Right)
	inv := &Invincibility{}
	target := Target{ID: 2, Box: gamemath.Box{X: 115, Y: 90, W: 24, H: 24}, Invincibility: inv}

	hits := Resolver{}.Resolve(att, []Target{target})
	require.Len(t, hits, 1)
	assert.Equal(t, ident.ID(1), hits[0].Attacker)
	assert.Equal(t, ident.ID(2), hits[0].Target)
	assert.Equal(t, 12, hits[0].Damage)
	assert.Equal(t, 12, hits[0].Number.Amount)
	assert.Equal(t, DefaultNumberTTL, hits[0].Number.TTL)
	assert.Equal(t, 127.0, hits[0].Number.X)
	assert.Equal(t, 10, inv.Remaining(1))
}

func TestResolve_InvincibilityIsPerAttacker(t *testing.T) {
	w := testSword()
	inv := &Invincibility{}
	target := Target{ID: 3, Box: gamemath.Box{X: 115, Y: 90, W: 24, H: 24}, Invincibility: inv}
	r := Resolver{}

	first := swingingAt(1, 100, 100, &w, gamemath.Right)
	require.Len(t, r.Resolve(first, []Target{target}), 1)

	first.Swing.Advance()
	assert.Empty(t, r.Resolve(first, []Target{target}), "same attacker inside the window")

	// a second attacker on the far side swinging left
	second := swingingAt(2, 154, 104, &w, gamemath.Left)
	assert.Len(t, r.Resolve(second, []Target{target}), 1)
	assert.Equal(t, 2, inv.Len())

	for i := 0; i < w.ActiveTicks; i++ {
		inv.Tick()
	}
	assert.Zero(t, inv.Len())
}

func TestResolve_TwoAttackersSameTick(t *testing.T) {
	w := testSword()
	inv := &Invincibility{}
	target := Target{ID: 9, Box: gamemath.Box{X: 115, Y: 90, W: 24, H: 24}, Invincibility: inv}
	left := swingingAt(1, 100, 100, &w, gamemath.Right)
	right := swingingAt(2, 154, 104, &w, gamemath.Left)

	var hits []Hit
	for _, att := range []Attacker{left, right} {
		hits = append(hits, Resolver{}.Resolve(att, []Target{target})...)
	}

	require.Len(t, hits, 2)
	assert.Equal(t, 2, inv.Len())
	assert.True(t, inv.Has(1))
	assert.True(t, inv.Has(2))
}

func TestResolve_UnarmedNeverHits(t *testing.T) {
	att := Attacker{
		ID:    1,
		Box:   gamemath.Box{X: 88, Y: 88, W: 24, H: 24},
		Swing: &Swing{State: SwingActive, swept: true},
	}
	target := Target{ID: 2, Box: gamemath.Box{X: 100, Y: 90, W: 24, H: 24}}
	assert.Empty(t, Resolver{}.Resolve(att, []Target{target}))
}

func TestResolve_SkipsSelfAndIdleSwing(t *testing.T) {
	w := testSword()
	att := swingingAt(1, 100, 100, &w, gamemath.Right)
	self := Target{ID: 1, Box: att.Box}
	assert.Empty(t, Resolver{}.Resolve(att, []Target{self}))

	idle := Attacker{ID: 1, Box: att.Box, Weapon: &w, Swing: &Swing{}}
	other := Target{ID: 2, Box: gamemath.Box{X: 115, Y: 90, W: 24, H: 24}}
	assert.Empty(t, Resolver{}.Resolve(idle, []Target{other}))
}

func TestResolve_CoarseAndFineRejects(t *testing.T) {
	w := testSword()
	att := swingingAt(1, 100, 100, &w, gamemath.Up)

	far := Target{ID: 2, Box: gamemath.Box{X: 200, Y: 200, W: 24, H: 24}}
	// inside the coarse box but below the grip where an upward swing never reaches
	below := Target{ID: 3, Box: gamemath.Box{X: 110, Y: 105, W: 20, H: 20}}
	assert.Empty(t, Resolver{}.Resolve(att, []Target{far, below}))
}

func TestResolve_MaskedCornerMisses(t *testing.T) {
	w := testSword()
	w.Sweep = 0
	att := swingingAt(1, 100, 100, &w, gamemath.Up)
	// the blade runs from (100,100) to (104,72); put only the target's
	// empty ellipse corner over it
	box := gamemath.Box{X: 101, Y: 60, W: 40, H: 14}
	masked := Target{ID: 2, Box: box, Mask: NewEllipseMask(40, 14)}
	assert.Empty(t, Resolver{}.Resolve(att, []Target{masked}))

	solid := Target{ID: 3, Box: box, Mask: NewRectMask(40, 14)}
	assert.Len(t, Resolver{}.Resolve(att, []Target{solid}), 1)
}

func TestMask_Hit(t *testing.T) {
	m := NewEllipseMask(10, 10)
	assert.True(t, m.Hit(5, 5))
	assert.False(t, m.Hit(0, 0))
	assert.False(t, m.Hit(-1, 5))
	assert.False(t, m.Hit(10, 5))

	m.Set(0, 0, true)
	assert.True(t, m.Hit(0.5, 0.5))
}
