package factory

import (
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/grid"
	"github.com/automoto/cryptblade/tags"
	"github.com/solarlune/resolv"
)

// navProbeInset shrinks the probe so walls that only touch a cell's edge
// don't mark it.
const navProbeInset = 2

// CreateNavGrid builds the enemy navigation terrain by probing every cell
// of the resolv space for solid objects.
func CreateNavGrid(space *resolv.Space, levelWidth, levelHeight int, cellSize float64) *grid.TerrainGrid {
	gridW := int(float64(levelWidth) / cellSize)
	gridH := int(float64(levelHeight) / cellSize)
	terrain := grid.NewTerrain(gridW, gridH, cellSize)

	size := cellSize - 2*navProbeInset
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			worldX := float64(x)*cellSize + navProbeInset
			worldY := float64(y)*cellSize + navProbeInset

			probe := resolv.NewObject(worldX, worldY, size, size)
			space.Add(probe)
			if check := probe.Check(0, 0, tags.ResolvSolid); check != nil {
				box := gamemath.Box{X: worldX, Y: worldY, W: size, H: size}
				for _, o := range check.Objects {
					if box.Overlaps(gamemath.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
						terrain.SetSolid(grid.Cell{X: x, Y: y}, true)
						break
					}
				}
			}
			space.Remove(probe)
		}
	}

	return terrain
}
