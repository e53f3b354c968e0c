package systems

import (
	"encoding/json"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/logger"
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool   `json:"debug"`
	Commit     string `json:"commit"`
	Fullscreen bool   `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cryptblade",
	})
	if err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.Log.WithError(err).Warn("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeSettings(data)
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logger.Log.WithError(err).Warn("could not save settings")
		return err
	}
	return nil
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Log.WithError(err).Warn("could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

// CurrentSettings captures the live toggles of a world.
func CurrentSettings(e *ecs.ECS) *SavedSettings {
	saved := &SavedSettings{
		Debug:  GetOrCreateSettings(e).Debug,
		Commit: cfg.AI.Commit.String(),
	}
	if entry, ok := components.Planner.First(e.World); ok {
		saved.Commit = components.Planner.Get(entry).Mode.String()
	}
	return saved
}

// SaveCurrentSettings persists the live toggles of a world.
func SaveCurrentSettings(e *ecs.ECS) {
	_ = SaveSettings(CurrentSettings(e))
}

// ApplySavedSettingsGlobal applies settings before any scene exists, so
// the first world starts with them.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Enabled = saved.Debug
	if mode, err := ai.ParseCommitMode(saved.Commit); err == nil {
		cfg.AI.Commit = mode
	} else {
		logger.Log.WithError(err).Warn("ignoring saved commit mode")
	}
}
