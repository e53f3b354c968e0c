package components

import (
	"github.com/automoto/cryptblade/shared/grid"
	"github.com/automoto/cryptblade/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Terrain      *grid.TerrainGrid // navigation grid built from the space
}

var Level = donburi.NewComponentType[LevelData]()
