package systems

import (
	"github.com/automoto/cryptblade/components"
	"github.com/automoto/cryptblade/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// UpdateDeaths counts down death sequences and removes finished
// characters, together with their collision objects.
func UpdateDeaths(ecs *ecs.ECS) {
	var done []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			done = append(done, e)
		}
	})

	for _, e := range done {
		removeCharacter(ecs, e)
	}
}

func removeCharacter(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
				space.Remove(obj.Object)
			}
		}
		if e.HasComponent(components.Weapon) {
			if probe := components.Weapon.Get(e).Broadphase; probe != nil && probe.Space != nil {
				space.Remove(probe)
			}
		}
	}
	if e.HasComponent(components.Character) {
		logger.Log.WithField("id", components.Character.Get(e).ID).Debug("character removed")
	}
	ecs.World.Remove(e.Entity())
}

// PlayersRemaining counts the players still in the world, dying or not.
func PlayersRemaining(ecs *ecs.ECS) int {
	return donburi.NewQuery(filter.Contains(components.Player)).Count(ecs.World)
}
