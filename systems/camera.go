package systems

import (
	"math"

	"github.com/automoto/cryptblade/components"
	"github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (could be removed), hold position
	}
	targetX, targetY := components.Object.Get(playerEntry).Box().Center()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	levelW, levelH := levelData.CurrentLevel.PixelSize()

	targetX = clampCamera(targetX, float64(config.C.Width), float64(levelW))
	targetY = clampCamera(targetY, float64(config.C.Height), float64(levelH))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera keeps the view inside the level on one axis. A level
// narrower than the screen stays centred.
func clampCamera(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
