package systems

import (
	"math"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers turns the current input into movement, facing and swings
// for every live player.
func UpdatePlayers(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		updatePlayer(input, e)
	})
}

func updatePlayer(input *components.InputData, e *donburi.Entry) {
	player := components.Player.Get(e)
	ch := components.Character.Get(e)
	obj := components.Object.Get(e)
	weapon := components.Weapon.Get(e)
	stats := components.Stats.Get(e)

	h, v := intentAxes(input)
	ch.Primary, ch.Secondary = facingFromIntent(ch.Primary, h, v)

	// Swinging roots the player in place.
	ch.Moving = false
	if weapon.Swing.State == combat.SwingIdle && (h != gamemath.None || v != gamemath.None) {
		dx, dy := moveDelta(h, v, cfg.Player.Speed)
		dx, dy = moveObject(obj.Object, dx, dy)
		ch.Moving = dx != 0 || dy != 0
	}

	if player.AttackCooldown > 0 {
		player.AttackCooldown--
	}

	if GetAction(input, cfg.ActionAttack).JustPressed {
		tryPlayerSwing(player, weapon, stats, ch.Primary)
	}
	releaseSpent(weapon, &player.AttackCooldown, cfg.Combat.PlayerCooldown)
}

// intentAxes reads the held direction on each axis. Opposite keys cancel.
func intentAxes(input *components.InputData) (h, v gamemath.Direction) {
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed
	up := GetAction(input, cfg.ActionMoveUp).Pressed
	down := GetAction(input, cfg.ActionMoveDown).Pressed

	switch {
	case left && !right:
		h = gamemath.Left
	case right && !left:
		h = gamemath.Right
	}
	switch {
	case up && !down:
		v = gamemath.Up
	case down && !up:
		v = gamemath.Down
	}
	return h, v
}

// facingFromIntent keeps the current primary facing while it is still
// held, so turning diagonally does not flip the attack direction.
func facingFromIntent(primary, h, v gamemath.Direction) (gamemath.Direction, gamemath.Direction) {
	switch {
	case h == gamemath.None && v == gamemath.None:
		return primary, gamemath.None
	case v == gamemath.None:
		return h, gamemath.None
	case h == gamemath.None:
		return v, gamemath.None
	case primary == v:
		return v, h
	default:
		return h, v
	}
}

// moveDelta scales diagonal movement so it is no faster than straight.
func moveDelta(h, v gamemath.Direction, speed float64) (float64, float64) {
	hx, _ := h.Delta()
	_, vy := v.Delta()
	dx, dy := float64(hx), float64(vy)
	if dx != 0 && dy != 0 {
		speed /= math.Sqrt2
	}
	return dx * speed, dy * speed
}

func tryPlayerSwing(player *components.PlayerData, weapon *components.WeaponData, stats *components.StatsData, dir gamemath.Direction) bool {
	if weapon.Weapon == nil || player.AttackCooldown > 0 {
		return false
	}
	cost := weapon.Weapon.StaminaCost
	if !stats.Stamina.Has(cost) {
		return false
	}
	if !weapon.Swing.Start(*weapon.Weapon, dir) {
		return false
	}
	stats.Stamina.Subtract(cost)
	return true
}

// releaseSpent returns a finished swing to idle and starts the cooldown.
func releaseSpent(weapon *components.WeaponData, cooldown *int, ticks int) {
	if weapon.Swing.State != combat.SwingSpent {
		return
	}
	weapon.Swing.Release()
	*cooldown = ticks
}
