package systems

import (
	"math"
	"testing"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacingFromIntent(t *testing.T) {
	tests := []struct {
		name              string
		primary, h, v     gamemath.Direction
		wantPrim, wantSec gamemath.Direction
	}{
		{"no input keeps facing", gamemath.Up, gamemath.None, gamemath.None, gamemath.Up, gamemath.None},
		{"horizontal only", gamemath.Up, gamemath.Left, gamemath.None, gamemath.Left, gamemath.None},
		{"vertical only", gamemath.Left, gamemath.None, gamemath.Down, gamemath.Down, gamemath.None},
		{"diagonal keeps held vertical", gamemath.Down, gamemath.Right, gamemath.Down, gamemath.Down, gamemath.Right},
		{"diagonal keeps held horizontal", gamemath.Right, gamemath.Right, gamemath.Up, gamemath.Right, gamemath.Up},
		{"diagonal from elsewhere prefers horizontal", gamemath.Up, gamemath.Left, gamemath.Down, gamemath.Left, gamemath.Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, s := facingFromIntent(tt.primary, tt.h, tt.v)
			assert.Equal(t, tt.wantPrim, p)
			assert.Equal(t, tt.wantSec, s)
		})
	}
}

func TestMoveDelta_DiagonalIsNormalised(t *testing.T) {
	dx, dy := moveDelta(gamemath.Right, gamemath.None, 2)
	assert.Equal(t, 2.0, dx)
	assert.Equal(t, 0.0, dy)

	dx, dy = moveDelta(gamemath.Left, gamemath.Up, 2)
	assert.InDelta(t, 2.0, math.Hypot(dx, dy), 1e-9)
	assert.Less(t, dx, 0.0)
	assert.Less(t, dy, 0.0)
}

func TestUpdatePlayers_MovesAndSwings(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 100, 100)
	input := getOrCreateInput(e)

	input.Current[cfg.ActionMoveRight] = true
	UpdatePlayers(e)

	obj := components.Object.Get(player)
	assert.Equal(t, 100+cfg.Player.Speed, obj.X)
	assert.Equal(t, gamemath.Right, components.Character.Get(player).Primary)
	assert.True(t, components.Character.Get(player).Moving)

	input.Previous = input.Current
	input.Current[cfg.ActionAttack] = true
	UpdatePlayers(e)

	weapon := components.Weapon.Get(player)
	require.Equal(t, combat.SwingActive, weapon.Swing.State)
	assert.Equal(t, gamemath.Right, weapon.Swing.Dir)
	stamina := components.Stats.Get(player).Stamina
	assert.Equal(t, cfg.Player.Stamina-weapon.Weapon.StaminaCost, stamina.Value())

	x := obj.X
	input.Previous = input.Current
	UpdatePlayers(e)
	assert.Equal(t, x, obj.X, "swinging roots the player")
}

func TestTryPlayerSwing_NeedsStaminaAndCooldown(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 100, 100)
	p := components.Player.Get(player)
	weapon := components.Weapon.Get(player)
	stats := components.Stats.Get(player)

	p.AttackCooldown = 3
	assert.False(t, tryPlayerSwing(p, weapon, stats, gamemath.Up))

	p.AttackCooldown = 0
	stats.Stamina.Subtract(stats.Stamina.Max())
	assert.False(t, tryPlayerSwing(p, weapon, stats, gamemath.Up))
	assert.Equal(t, combat.SwingIdle, weapon.Swing.State)

	stats.Stamina.Fill()
	assert.True(t, tryPlayerSwing(p, weapon, stats, gamemath.Up))
}

func TestReleaseSpent(t *testing.T) {
	w := cfg.Weapons["sword"]
	weapon := &components.WeaponData{Weapon: &w}
	cooldown := 0

	releaseSpent(weapon, &cooldown, 8)
	assert.Equal(t, 0, cooldown, "idle swing is left alone")

	require.True(t, weapon.Swing.Start(w, gamemath.Down))
	for weapon.Swing.State == combat.SwingActive {
		weapon.Swing.Advance()
	}
	releaseSpent(weapon, &cooldown, 8)
	assert.Equal(t, 8, cooldown)
	assert.Equal(t, combat.SwingIdle, weapon.Swing.State)
}
