// Package leveldata parses TMX crypt levels into collision rectangles and
// spawn points. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/grid"
)

// Layer and object group names read from TMX files.
const (
	WallLayer        = "walls"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemySpawnGroup  = "EnemySpawn"
)

var ErrNoPlayerSpawn = errors.New("level has no player spawn")

// Level holds everything the game needs from a TMX file.
type Level struct {
	Name         string
	Columns      int // map width in tiles
	Rows         int // map height in tiles
	TileSize     float64
	SolidRects   []SolidRect
	PlayerSpawns []SpawnPoint
	EnemySpawns  []EnemySpawn
}

// SolidRect is one wall tile.
type SolidRect struct {
	X, Y, W, H float64
}

func (r SolidRect) Box() gamemath.Box {
	return gamemath.Box{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// SpawnPoint is a player start.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn places one enemy. Leash is 0 when the map doesn't override
// the kind's default.
type EnemySpawn struct {
	X, Y  float64
	Kind  string
	Leash float64
}

// PixelSize returns the map size in world pixels.
func (l *Level) PixelSize() (int, int) {
	return l.Columns * int(l.TileSize), l.Rows * int(l.TileSize)
}

// Terrain rasterises the wall tiles onto a movement grid.
func (l *Level) Terrain(cellSize float64) *grid.TerrainGrid {
	w, h := l.PixelSize()
	t := grid.NewTerrain(int(float64(w)/cellSize), int(float64(h)/cellSize), cellSize)
	for _, r := range l.SolidRects {
		t.MarkBox(r.Box())
	}
	return t
}
