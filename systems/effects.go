package systems

import (
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects animates floating damage numbers and drops expired ones.
func UpdateEffects(ecs *ecs.ECS) {
	const dt = float32(1) / cfg.TPS

	var expired []*donburi.Entry
	components.DamageNumber.Each(ecs.World, func(e *donburi.Entry) {
		n := components.DamageNumber.Get(e)
		if n.Rise != nil {
			v, _ := n.Rise.Update(dt)
			n.OffsetY = float64(v)
		}
		if n.Fade != nil {
			v, _ := n.Fade.Update(dt)
			n.Alpha = float64(v)
		}
		n.TTL--
		if n.TTL <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}
