package factory

import (
	"fmt"

	"github.com/automoto/cryptblade/archetypes"
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/ident"
	"github.com/automoto/cryptblade/shared/leveldata"
	"github.com/automoto/cryptblade/shared/stat"
	"github.com/automoto/cryptblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns the enemy described by a level spawn point. The
// spawn's top-left is the enemy's anchor.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) (*donburi.Entry, error) {
	kind, err := ai.ParseKind(spawn.Kind)
	if err != nil {
		return nil, fmt.Errorf("enemy at %v,%v: %w", spawn.X, spawn.Y, err)
	}
	kc, ok := cfg.Enemy.Kinds[kind]
	if !ok {
		return nil, fmt.Errorf("enemy at %v,%v: %w: no config for %s", spawn.X, spawn.Y, ai.ErrUnknownKind, kind)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, kc.Width, kc.Height, tags.ResolvCharacter, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, kc.Width, kc.Height))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	id := ident.Next()
	mask := combat.NewRectMask(int(kc.Width), int(kc.Height))
	if kind == ai.Bat {
		mask = combat.NewEllipseMask(int(kc.Width), int(kc.Height))
	}
	components.Character.SetValue(enemy, components.CharacterData{
		ID:      id,
		Primary: gamemath.Down,
		Mask:    mask,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Brain: ai.Brain{
			ID:     id,
			Kind:   kind,
			Anchor: gamemath.Box{X: spawn.X, Y: spawn.Y, W: kc.Width, H: kc.Height},
			Leash:  spawn.Leash,
			Facing: gamemath.Down,
		},
		XP: kc.XP,
	})
	components.Stats.SetValue(enemy, components.StatsData{
		Health: stat.New(kc.Health, kc.HealthRegen),
	})
	components.Weapon.SetValue(enemy, newWeapon(ecs, enemy, kc.Weapon))
	components.Animation.Set(enemy, GenerateAnimations())

	return enemy, nil
}
