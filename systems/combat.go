package systems

import (
	"fmt"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/logger"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/shared/ident"
	"github.com/automoto/cryptblade/systems/factory"
	"github.com/automoto/cryptblade/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamage applies queued hits to health. A character whose health
// runs out starts dying and the player who landed the final hit is
// credited with its XP.
func UpdateDamage(ecs *ecs.ECS) {
	for _, e := range collect(ecs, components.DamageEvent) {
		hits := components.DamageEvent.Get(e).Hits
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if e.HasComponent(components.Death) {
			continue
		}

		stats := components.Stats.Get(e)
		var killer ident.ID
		for _, h := range hits {
			stats.Health.Subtract(float64(h.Amount))
			if stats.Health.IsEmpty() {
				killer = h.Attacker
				break
			}
		}
		if !stats.Health.IsEmpty() {
			continue
		}

		xp := 0
		if e.HasComponent(components.Enemy) {
			xp = components.Enemy.Get(e).XP
		}
		startDeath(e, killer)
		if killerEntry, ok := findPlayer(ecs, killer); ok {
			components.Player.Get(killerEntry).Kills++
			if xp > 0 {
				awardXP(ecs, killerEntry, xp)
			}
		}
	}
}

func startDeath(e *donburi.Entry, killer ident.ID) {
	weapon := components.Weapon.Get(e)
	weapon.Swing = combat.Swing{}

	logger.Log.WithFields(logrus.Fields{
		"id":     components.Character.Get(e).ID,
		"killer": killer,
		"player": e.HasComponent(tags.Player),
	}).Debug("character died")

	donburi.Add(e, components.Death, &components.DeathData{
		Timer:  cfg.Combat.DeathTicks,
		Killer: killer,
	})
}

// awardXP adds xp to a player and applies every level up it completes.
// It returns the number of levels gained.
func awardXP(ecs *ecs.ECS, e *donburi.Entry, xp int) int {
	player := components.Player.Get(e)
	player.XP += xp
	if cfg.Player.XPPerLevel <= 0 {
		return 0
	}

	gained := 0
	for player.XP >= cfg.Player.XPPerLevel {
		player.XP -= cfg.Player.XPPerLevel
		player.Level++
		gained++
	}
	if gained == 0 {
		return 0
	}

	stats := components.Stats.Get(e)
	stats.Health.SetMax(stats.Health.Max() + float64(gained)*cfg.Player.HealthPerLevel)
	stats.Health.Fill()
	stats.Mana.Fill()
	stats.Stamina.Fill()

	box := components.Object.Get(e).Box()
	cx, _ := box.Center()
	factory.SpawnDamageNumber(ecs, fmt.Sprintf("LEVEL %d", player.Level), cx, box.Y, 0, cfg.Combat.LevelColor)
	logger.Log.WithFields(logrus.Fields{
		"id":    components.Character.Get(e).ID,
		"level": player.Level,
	}).Info("player levelled up")
	return gained
}

func findPlayer(ecs *ecs.ECS, id ident.ID) (*donburi.Entry, bool) {
	if id == 0 {
		return nil, false
	}
	var found *donburi.Entry
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Character.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}
