package systems

import (
	"time"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickDuration = time.Second / cfg.TPS

// UpdateStats regenerates stats and counts down invincibility windows.
func UpdateStats(ecs *ecs.ECS) {
	components.Stats.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		stats := components.Stats.Get(e)
		stats.Health.Refresh(tickDuration)
		stats.Mana.Refresh(tickDuration)
		stats.Stamina.Refresh(tickDuration)
	})

	components.Invincibility.Each(ecs.World, func(e *donburi.Entry) {
		components.Invincibility.Get(e).Tick()
	})
}
