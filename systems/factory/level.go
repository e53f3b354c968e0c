package factory

import (
	"github.com/automoto/cryptblade/archetypes"
	"github.com/automoto/cryptblade/components"
	"github.com/automoto/cryptblade/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity. The navigation terrain is filled
// in once the walls exist, see CreateNavGrid.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})
	return entry
}
