package systems

import (
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the floor, its grid lines and every wall in view.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := components.Camera.Get(cameraEntry).Offset(width, height)
	levelW, levelH := levelData.CurrentLevel.PixelSize()

	vector.FillRect(screen, float32(camX), float32(camY), float32(levelW), float32(levelH), cfg.FloorColor, false)

	cell := float32(levelData.CurrentLevel.TileSize)
	if cell > 0 {
		for x := float32(0); x <= float32(levelW); x += cell {
			vector.StrokeLine(screen, float32(camX)+x, float32(camY), float32(camX)+x, float32(camY)+float32(levelH), 1, cfg.GridLineColor, false)
		}
		for y := float32(0); y <= float32(levelH); y += cell {
			vector.StrokeLine(screen, float32(camX), float32(camY)+y, float32(camX)+float32(levelW), float32(camY)+y, 1, cfg.GridLineColor, false)
		}
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		x, y := o.X+camX, o.Y+camY
		if x+o.W < 0 || y+o.H < 0 || x > float64(width) || y > float64(height) {
			return
		}
		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), cfg.WallColor, false)
	})
}
