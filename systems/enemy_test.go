package systems

import (
	"testing"

	"github.com/automoto/cryptblade/components"
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestUpdateEnemies_SkeletonPursuesPlayer(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 192, 64)
	skeleton := spawnSkeleton(t, e, 32, 64)
	startX := components.Object.Get(skeleton).X

	UpdateEnemies(e)
	assert.Equal(t, ai.ActionMoveToPlayer, components.Enemy.Get(skeleton).Brain.Action.Kind)

	for i := 0; i < 5; i++ {
		UpdateEnemies(e)
	}
	assert.Greater(t, components.Object.Get(skeleton).X, startX)
	assert.Equal(t, gamemath.Right, components.Character.Get(skeleton).Primary)
}

func TestUpdateEnemies_AttacksWhenAdjacent(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 128, 64)
	skeleton := spawnSkeleton(t, e, 96, 64)

	UpdateEnemies(e)

	brain := components.Enemy.Get(skeleton).Brain
	require.Equal(t, ai.ActionAttack, brain.Action.Kind)
	assert.Equal(t, gamemath.Right, brain.Action.Dir)
	weapon := components.Weapon.Get(skeleton)
	assert.Equal(t, combat.SwingActive, weapon.Swing.State)
	assert.Equal(t, gamemath.Right, weapon.Swing.Dir)
}

func TestUpdateEnemies_IgnoresDyingEnemies(t *testing.T) {
	e := newTestWorld(t)
	factory.CreatePlayer(e, 192, 64)
	skeleton := spawnSkeleton(t, e, 32, 64)
	donburi.Add(skeleton, components.Death, &components.DeathData{Timer: 10})
	startX := components.Object.Get(skeleton).X

	UpdateEnemies(e)

	assert.Equal(t, ai.ActionNone, components.Enemy.Get(skeleton).Brain.Action.Kind)
	assert.Equal(t, startX, components.Object.Get(skeleton).X)
}

func TestCommitDecision_SpentSwingStartsCooldown(t *testing.T) {
	e := newTestWorld(t)
	skeleton := spawnSkeleton(t, e, 32, 64)
	weapon := components.Weapon.Get(skeleton)
	require.True(t, weapon.Swing.Start(*weapon.Weapon, gamemath.Left))
	for weapon.Swing.State != combat.SwingSpent {
		weapon.Swing.Advance()
	}

	commitDecision(skeleton, ai.Decision{Brain: components.Enemy.Get(skeleton).Brain})

	assert.Equal(t, combat.SwingIdle, weapon.Swing.State)
	assert.Greater(t, components.Enemy.Get(skeleton).AttackCooldown, 0)
}

func TestSnapshotActors_Teams(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 192, 64)
	skeleton := spawnSkeleton(t, e, 32, 64)
	donburi.Add(skeleton, components.Death, &components.DeathData{Timer: 10})

	actors := snapshotActors(e)

	require.Len(t, actors, 2)
	for _, a := range actors {
		switch a.ID {
		case components.Character.Get(player).ID:
			assert.Equal(t, ai.TeamPlayer, a.Team)
			assert.True(t, a.Alive)
		case components.Character.Get(skeleton).ID:
			assert.Equal(t, ai.TeamEnemy, a.Team)
			assert.False(t, a.Alive)
		default:
			t.Fatalf("unexpected actor %v", a.ID)
		}
	}
}
