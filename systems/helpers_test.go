package systems

import (
	"testing"

	"github.com/automoto/cryptblade/components"
	"github.com/automoto/cryptblade/shared/grid"
	"github.com/automoto/cryptblade/shared/leveldata"
	"github.com/automoto/cryptblade/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const (
	testCols = 12
	testRows = 8
	testCell = 32.0
)

// newTestWorld builds an open room with a collision space, navigation
// terrain and a planner, but no characters.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	level := &leveldata.Level{Name: "test", Columns: testCols, Rows: testRows, TileSize: testCell}
	levelEntry := factory.CreateLevel(e, level)
	w, h := level.PixelSize()
	factory.CreateSpace(e, w, h, 16, 16)
	components.Level.Get(levelEntry).Terrain = grid.NewTerrain(testCols, testRows, testCell)
	factory.CreatePlanner(e)
	return e
}

func testSpace(t *testing.T, e *ecs.ECS) *resolv.Space {
	t.Helper()
	entry, ok := components.Space.First(e.World)
	require.True(t, ok)
	return components.Space.Get(entry)
}

func spawnSkeleton(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	entry, err := factory.CreateEnemy(e, leveldata.EnemySpawn{X: x, Y: y, Kind: "skeleton"})
	require.NoError(t, err)
	return entry
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}
