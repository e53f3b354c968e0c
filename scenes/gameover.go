package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the run summary after the last player dies.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         WorldOptions
	summary      Summary
	once         sync.Once
}

// NewGameOverScene creates a game over scene that restarts with opts.
func NewGameOverScene(sc SceneChanger, opts WorldOptions, summary Summary) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts, summary: summary}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger, gs.opts)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene))
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	summary := systems.GetOrCreateGameOver(gs.ecs)
	summary.Level = gs.summary.Level
	summary.Kills = gs.summary.Kills
}
