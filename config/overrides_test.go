package config

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/cryptblade/shared/ai"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefaults puts the package configuration back after a test that
// merges overrides.
func restoreDefaults(t *testing.T) {
	t.Helper()
	aiCfg, player := AI, Player
	weapons := make(map[string]combat.Weapon, len(Weapons))
	for k, v := range Weapons {
		weapons[k] = v
	}
	kinds := make(map[ai.Kind]EnemyKindConfig, len(Enemy.Kinds))
	for k, v := range Enemy.Kinds {
		kinds[k] = v
	}
	t.Cleanup(func() {
		AI, Player, Weapons = aiCfg, player, weapons
		Enemy.Kinds = kinds
	})
}

func TestLoadOverrides_MergesOverDefaults(t *testing.T) {
	restoreDefaults(t)
	fsys := fstest.MapFS{"crypt.yaml": {Data: []byte(`
ai:
  commit: simultaneous
  seed: 7
enemies:
  skeleton:
    speed: 3
    view_radius: 100
weapons:
  club:
    attack: 20
player:
  health: 150
`)}}

	require.NoError(t, LoadOverrides(fsys, "crypt.yaml"))

	assert.Equal(t, ai.CommitSimultaneous, AI.Commit)
	assert.Equal(t, int64(7), AI.Seed)
	assert.Equal(t, 200, AI.SearchBudget, "untouched keys keep defaults")

	skel := Enemy.Kinds[ai.Skeleton]
	assert.Equal(t, 3.0, skel.Speed)
	assert.Equal(t, 100.0, skel.ViewRadius)
	assert.Equal(t, 320.0, skel.Leash)
	assert.Equal(t, "club", skel.Weapon)

	club := Weapons["club"]
	assert.Equal(t, 20, club.Attack)
	assert.Equal(t, 16.0, club.Reach)
	assert.Equal(t, 150.0, Player.Health)
	assert.Equal(t, 2.5, Player.Speed)
}

func TestApplyOverrides_UnknownKind(t *testing.T) {
	restoreDefaults(t)
	before := Enemy.Kinds[ai.Skeleton]

	err := ApplyOverrides([]byte("enemies:\n  ghoul:\n    speed: 9\n  skeleton:\n    speed: 9\n"))

	require.ErrorIs(t, err, ai.ErrUnknownKind)
	assert.Equal(t, before, Enemy.Kinds[ai.Skeleton], "failed merge leaves config untouched")
}

func TestApplyOverrides_UnknownWeapon(t *testing.T) {
	restoreDefaults(t)

	err := ApplyOverrides([]byte("enemies:\n  bat:\n    weapon: halberd\n"))

	require.ErrorIs(t, err, ErrUnknownWeapon)
	assert.Equal(t, "fangs", Enemy.Kinds[ai.Bat].Weapon)
}

func TestApplyOverrides_BadCommitMode(t *testing.T) {
	restoreDefaults(t)

	err := ApplyOverrides([]byte("ai:\n  commit: sideways\n"))

	require.Error(t, err)
	assert.Equal(t, ai.CommitSequential, AI.Commit)
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	err := LoadOverrides(fstest.MapFS{}, "nope.yaml")
	require.Error(t, err)
}

func TestEnemyParams_ReachFromWeapon(t *testing.T) {
	params := EnemyParams()

	require.Len(t, params, len(ai.Kinds))
	assert.Equal(t, Weapons["club"].Reach, params[ai.Skeleton].Reach)
	assert.Equal(t, Weapons["fangs"].Reach, params[ai.Bat].Reach)
	assert.Equal(t, Enemy.Kinds[ai.Bat].Speed, params[ai.Bat].Speed)
}
