package systems

import (
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/logger"
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay and commit mode toggles. Both
// are saved as soon as they change.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	changed := false

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}

	if GetAction(input, cfg.ActionToggleCommit).JustPressed {
		if entry, ok := components.Planner.First(e.World); ok {
			planner := components.Planner.Get(entry)
			if planner.Mode == ai.CommitSequential {
				planner.Mode = ai.CommitSimultaneous
			} else {
				planner.Mode = ai.CommitSequential
			}
			logger.Log.WithField("mode", planner.Mode).Info("enemy commit mode changed")
			changed = true
		}
	}

	if changed {
		SaveCurrentSettings(e)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating
// it from config if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Enabled})
	}
	return components.Settings.Get(entry)
}
