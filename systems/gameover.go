package systems

import (
	"fmt"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// gameOverDelay ignores input held over from the death so the screen
// is not skipped by accident.
const gameOverDelay = cfg.TPS / 2

// NewUpdateGameOver creates an UpdateGameOver system that restarts the
// crypt when attack or pause is pressed.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	wait := gameOverDelay
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if wait > 0 {
			wait--
			return
		}
		if GetAction(input, cfg.ActionAttack).JustPressed || GetAction(input, cfg.ActionPause).JustPressed {
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	summary := GetOrCreateGameOver(e)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	title := "YOU DIED"
	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, (width-textWidth(titleFont, title))/2, cfg.GameOver.TitleY, cfg.GameOver.TitleColor)

	face := fonts.Regular.Get()
	lines := []string{
		fmt.Sprintf("Level %d   Kills %d", summary.Level, summary.Kills),
		"Attack to rise again",
	}
	for i, line := range lines {
		y := cfg.GameOver.TitleY + 40 + i*20
		text.Draw(screen, line, face, (width-textWidth(face, line))/2, y, cfg.GameOver.TextColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
	}
	return components.GameOver.Get(entry)
}
