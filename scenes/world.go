package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/cryptblade/assets"
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/logger"
	"github.com/automoto/cryptblade/shared/leveldata"
	"github.com/automoto/cryptblade/systems"
	"github.com/automoto/cryptblade/systems/factory"
	"github.com/automoto/cryptblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the resolv broadphase cell, half a character.
const spaceCellSize = 16

// SceneChanger switches the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldOptions selects what a WorldScene plays.
type WorldOptions struct {
	Levels *assets.LevelSet
	Level  string // empty plays the first level
}

// Summary is what the game over screen reports about a run.
type Summary struct {
	Level int
	Kills int
}

// WorldScene runs one crypt until every player has died.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         WorldOptions
	summary      Summary
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, opts WorldOptions) *WorldScene {
	return &WorldScene{sceneChanger: sc, opts: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if entry, ok := tags.Player.First(ws.ecs.World); ok {
		player := components.Player.Get(entry)
		ws.summary = Summary{Level: player.Level, Kills: player.Kills}
	}

	if systems.PlayersRemaining(ws.ecs) == 0 {
		logger.Log.WithFields(logrus.Fields{
			"level": ws.summary.Level,
			"kills": ws.summary.Kills,
		}).Info("run over")
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.opts, ws.summary))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	level, err := ws.opts.Levels.Get(ws.opts.Level)
	if err != nil {
		panic(err)
	}

	ws.ecs = ecs.NewECS(donburi.NewWorld())
	addSystems(ws.ecs)
	if err := populate(ws.ecs, level); err != nil {
		panic(err)
	}
}

// addSystems registers the frame order. Players act before enemies and
// weapons resolve after everyone has moved.
func addSystems(e *ecs.ECS) {
	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with pause check
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayers))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateWeapons))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDamage))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStats))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawCharacters)
	e.AddRenderer(cfg.Default, systems.DrawWeapons)
	e.AddRenderer(cfg.Default, systems.DrawDamageNumbers)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)
}

// populate builds the level's entities: collision space, walls, the
// navigation grid, then the characters.
func populate(e *ecs.ECS, level *leveldata.Level) error {
	if len(level.PlayerSpawns) == 0 {
		return fmt.Errorf("level %s: %w", level.Name, leveldata.ErrNoPlayerSpawn)
	}

	levelEntry := factory.CreateLevel(e, level)
	levelW, levelH := level.PixelSize()
	spaceEntry := factory.CreateSpace(e, levelW, levelH, spaceCellSize, spaceCellSize)

	for _, r := range level.SolidRects {
		factory.CreateWall(e, r.X, r.Y, r.W, r.H)
	}
	components.Level.Get(levelEntry).Terrain = factory.CreateNavGrid(
		components.Space.Get(spaceEntry), levelW, levelH, cfg.Grid.CellSize)

	spawn := level.PlayerSpawns[0]
	factory.CreateCamera(e, spawn.X, spawn.Y)
	factory.CreatePlanner(e)
	factory.CreatePlayer(e, spawn.X, spawn.Y)

	for _, s := range level.EnemySpawns {
		if _, err := factory.CreateEnemy(e, s); err != nil {
			logger.Log.WithError(err).WithField("level", level.Name).Warn("skipping enemy spawn")
		}
	}
	systems.GetOrCreateSettings(e)

	logger.Log.WithFields(logrus.Fields{
		"level":   level.Name,
		"walls":   len(level.SolidRects),
		"enemies": len(level.EnemySpawns),
	}).Info("level ready")
	return nil
}
