package systems

import (
	"testing"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestUpdateEffects_DamageNumberRisesFadesAndExpires(t *testing.T) {
	e := newTestWorld(t)
	entry := factory.SpawnDamageNumber(e, "12", 50, 50, 10, cfg.Combat.NumberColor)

	UpdateEffects(e)
	n := components.DamageNumber.Get(entry)
	assert.Less(t, n.OffsetY, 0.0)
	assert.Less(t, n.Alpha, 1.0)
	assert.Equal(t, 9, n.TTL)

	for i := 0; i < 9; i++ {
		UpdateEffects(e)
	}
	assert.False(t, entry.Valid())
	assert.Equal(t, 0, count(e, components.DamageNumber))
}

func TestUpdateStates_PicksAnimation(t *testing.T) {
	e := newTestWorld(t)
	skeleton := spawnSkeleton(t, e, 32, 64)

	UpdateStates(e)
	assert.Equal(t, cfg.Idle, components.Animation.Get(skeleton).CurrentState)

	components.Character.Get(skeleton).Moving = true
	UpdateStates(e)
	assert.Equal(t, cfg.Walk, components.Animation.Get(skeleton).CurrentState)
}

func TestClampCamera(t *testing.T) {
	assert.Equal(t, 320.0, clampCamera(10, 640, 1000), "left edge")
	assert.Equal(t, 680.0, clampCamera(990, 640, 1000), "right edge")
	assert.Equal(t, 500.0, clampCamera(500, 640, 1000))
	assert.Equal(t, 200.0, clampCamera(0, 640, 400), "small level is centred")
}
