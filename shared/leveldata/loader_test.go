package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/cryptblade/shared/grid"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="5">
 <tileset firstgid="1" name="crypt" tilewidth="32" tileheight="32" tilecount="2" columns="2">
  <image source="crypt.png" width="64" height="32"/>
 </tileset>
 <layer id="1" name="walls" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
`

const spawns = ` <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="32" y="32">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="4" x="40" y="32"/>
 </objectgroup>
 <objectgroup id="3" name="EnemySpawn">
  <object id="2" x="64" y="32">
   <properties>
    <property name="kind" value="bat"/>
    <property name="leash" type="float" value="160"/>
   </properties>
  </object>
  <object id="3" x="70" y="40">
   <properties>
    <property name="kind" value="skeleton"/>
   </properties>
  </object>
 </objectgroup>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/tomb.tmx":  {Data: []byte(header + spawns + "</map>\n")},
		"levels/empty.tmx": {Data: []byte(header + "</map>\n")},
	}
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/tomb.tmx")
	require.NoError(t, err)

	assert.Equal(t, "tomb", level.Name)
	assert.Equal(t, 4, level.Columns)
	assert.Equal(t, 3, level.Rows)
	assert.Equal(t, 32.0, level.TileSize)
	assert.Len(t, level.SolidRects, 10)
	assert.Contains(t, level.SolidRects, SolidRect{X: 96, Y: 32, W: 32, H: 32})

	require.Len(t, level.PlayerSpawns, 2)
	assert.Equal(t, 40.0, level.PlayerSpawns[0].X, "spawns sorted by index")
	assert.Equal(t, 1, level.PlayerSpawns[1].Index)

	require.Len(t, level.EnemySpawns, 2)
	assert.Equal(t, EnemySpawn{X: 64, Y: 32, Kind: "bat", Leash: 160}, level.EnemySpawns[0])
	assert.Equal(t, "skeleton", level.EnemySpawns[1].Kind)
	assert.Zero(t, level.EnemySpawns[1].Leash)

	w, h := level.PixelSize()
	assert.Equal(t, 128, w)
	assert.Equal(t, 96, h)
}

func TestLevel_Terrain(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/tomb.tmx")
	require.NoError(t, err)

	terrain := level.Terrain(32)
	assert.Equal(t, 4, terrain.Width)
	assert.Equal(t, 3, terrain.Height)
	assert.True(t, terrain.Solid(grid.Cell{X: 0, Y: 0}))
	assert.False(t, terrain.Solid(grid.Cell{X: 1, Y: 1}))
	assert.False(t, terrain.Solid(grid.Cell{X: 2, Y: 1}))
	assert.True(t, terrain.Solid(grid.Cell{X: 3, Y: 1}))
}

func TestLoadLevel_Errors(t *testing.T) {
	_, err := LoadLevel(testFS(), "levels/empty.tmx")
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)

	_, err = LoadLevel(testFS(), "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(header + spawns + "</map>\n")},
		"levels/a.tmx": {Data: []byte(header + spawns + "</map>\n")},
	}
	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Contains(t, levels, "a")

	_, _, err = LoadAllLevels(testFS(), "levels")
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
