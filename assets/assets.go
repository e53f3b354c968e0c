// Package assets embeds the crypt levels shipped with the game.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/cryptblade/logger"
	"github.com/automoto/cryptblade/shared/leveldata"
)

const levelsDir = "levels"

//go:embed all:levels
var assetFS embed.FS

// FS exposes the embedded files for callers that load them directly.
func FS() fs.FS { return assetFS }

// LevelSet is every embedded level in name order.
type LevelSet struct {
	Names  []string
	Levels map[string]*leveldata.Level
}

// Get returns the named level, or the first one when name is empty.
func (s *LevelSet) Get(name string) (*leveldata.Level, error) {
	if name == "" {
		name = s.Names[0]
	}
	level, ok := s.Levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found, have %v", name, s.Names)
	}
	return level, nil
}

// LoadLevels parses all embedded levels.
func LoadLevels() (*LevelSet, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, levelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded levels: %w", err)
	}
	logger.Log.WithField("levels", names).Info("levels loaded")
	return &LevelSet{Names: names, Levels: levels}, nil
}

// MustLoadLevels is LoadLevels for startup code that cannot run without
// levels.
func MustLoadLevels() *LevelSet {
	set, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return set
}
