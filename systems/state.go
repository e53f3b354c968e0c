package systems

import (
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates picks each character's animation from what it did this
// tick and advances it.
func UpdateStates(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		anim.SetAnimation(characterState(e))
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

func characterState(e *donburi.Entry) cfg.StateID {
	if e.HasComponent(components.Death) {
		return cfg.Die
	}
	if e.HasComponent(components.Weapon) && components.Weapon.Get(e).Swing.State != combat.SwingIdle {
		return cfg.Swing
	}
	if e.HasComponent(components.Character) && components.Character.Get(e).Moving {
		return cfg.Walk
	}
	return cfg.Idle
}
