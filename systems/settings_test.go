package systems

import (
	"testing"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettings_TogglesDebugAndCommitMode(t *testing.T) {
	e := newTestWorld(t)
	settings := GetOrCreateSettings(e)
	debug := settings.Debug
	input := getOrCreateInput(e)

	input.Current[cfg.ActionToggleDebug] = true
	input.Current[cfg.ActionToggleCommit] = true
	UpdateSettings(e)

	assert.Equal(t, !debug, settings.Debug)
	entry, ok := components.Planner.First(e.World)
	require.True(t, ok)
	assert.Equal(t, ai.CommitSimultaneous, components.Planner.Get(entry).Mode)

	saved := CurrentSettings(e)
	assert.Equal(t, "simultaneous", saved.Commit)
	assert.Equal(t, settings.Debug, saved.Debug)

	// Held keys do not toggle again.
	input.Previous = input.Current
	UpdateSettings(e)
	assert.Equal(t, !debug, settings.Debug)
	assert.Equal(t, ai.CommitSimultaneous, components.Planner.Get(entry).Mode)
}

func TestDecodeSettings(t *testing.T) {
	s, err := decodeSettings([]byte(`{"debug":true,"commit":"simultaneous"}`))
	require.NoError(t, err)
	assert.True(t, s.Debug)
	assert.Equal(t, "simultaneous", s.Commit)

	_, err = decodeSettings([]byte(`{not json`))
	assert.Error(t, err)
}

func TestApplySavedSettingsGlobal(t *testing.T) {
	debug, commit := cfg.Debug.Enabled, cfg.AI.Commit
	t.Cleanup(func() {
		cfg.Debug.Enabled, cfg.AI.Commit = debug, commit
	})

	ApplySavedSettingsGlobal(&SavedSettings{Debug: true, Commit: "simultaneous"})
	assert.True(t, cfg.Debug.Enabled)
	assert.Equal(t, ai.CommitSimultaneous, cfg.AI.Commit)

	ApplySavedSettingsGlobal(&SavedSettings{Debug: false, Commit: "diagonal"})
	assert.False(t, cfg.Debug.Enabled)
	assert.Equal(t, ai.CommitSimultaneous, cfg.AI.Commit, "bad mode is ignored")

	ApplySavedSettingsGlobal(nil)
}

func TestLoadSettings_WithoutPersistence(t *testing.T) {
	s, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, SaveSettings(&SavedSettings{}))
}
