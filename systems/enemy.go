package systems

import (
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs one planner pass over every live enemy and commits
// the resulting moves through the collision space.
func UpdateEnemies(ecs *ecs.ECS) {
	plannerEntry, ok := components.Planner.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Terrain == nil {
		return
	}
	planner := components.Planner.Get(plannerEntry)

	var (
		agents  []ai.Agent
		entries []*donburi.Entry
	)
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		enemy := components.Enemy.Get(e)
		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown--
		}
		agents = append(agents, ai.Agent{
			Brain: &enemy.Brain,
			Box:   components.Object.Get(e).Box(),
		})
		entries = append(entries, e)
	})
	if len(agents) == 0 {
		return
	}

	world := ai.NewWorld(level.Terrain, snapshotActors(ecs))
	decisions := planner.Engine.Tick(agents, world, planner.Mode)

	for i, d := range decisions {
		commitDecision(entries[i], d)
	}
}

func commitDecision(e *donburi.Entry, d ai.Decision) {
	enemy := components.Enemy.Get(e)
	ch := components.Character.Get(e)
	weapon := components.Weapon.Get(e)

	ch.Moving = false
	if weapon.Swing.State == combat.SwingIdle && (d.DX != 0 || d.DY != 0) {
		dx, dy := moveObject(components.Object.Get(e).Object, d.DX, d.DY)
		ch.Moving = dx != 0 || dy != 0
	}
	if d.Face != gamemath.None {
		ch.Primary = d.Face
	}

	if act := d.Action(); act.Kind == ai.ActionAttack && weapon.Weapon != nil && enemy.AttackCooldown == 0 {
		if weapon.Swing.Start(*weapon.Weapon, act.Dir) {
			ch.Primary = act.Dir
		}
	}
	releaseSpent(weapon, &enemy.AttackCooldown, cfg.Enemy.AttackCooldown)
}

// snapshotActors captures every character for this frame's perception.
// Dying characters are kept but marked dead.
func snapshotActors(ecs *ecs.ECS) []ai.Actor {
	var actors []ai.Actor
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		team := ai.TeamEnemy
		if e.HasComponent(components.Player) {
			team = ai.TeamPlayer
		}
		actors = append(actors, ai.Actor{
			ID:    components.Character.Get(e).ID,
			Team:  team,
			Box:   components.Object.Get(e).Box(),
			Alive: !e.HasComponent(components.Death),
		})
	})
	return actors
}
