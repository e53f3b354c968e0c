package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/cryptblade/shared/ai"
)

func TestLoadLevels(t *testing.T) {
	set, err := LoadLevels()
	require.NoError(t, err)
	require.Contains(t, set.Names, "crypt")

	level, err := set.Get("")
	require.NoError(t, err)
	assert.Equal(t, set.Names[0], level.Name)
	assert.NotEmpty(t, level.PlayerSpawns)
	assert.NotEmpty(t, level.EnemySpawns)

	for _, s := range level.EnemySpawns {
		_, err := ai.ParseKind(s.Kind)
		assert.NoError(t, err, "spawn at %v,%v", s.X, s.Y)
	}

	_, err = set.Get("missing")
	assert.Error(t, err)
}
