package main

import (
	"flag"
	"image"
	"os"
	"path/filepath"

	"github.com/automoto/cryptblade/assets"
	"github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/fonts"
	"github.com/automoto/cryptblade/logger"
	"github.com/automoto/cryptblade/scenes"
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/automoto/cryptblade/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.WorldOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file merged over the built-in tuning")
	levelName := flag.String("level", "", "level to play (default: first embedded level)")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	commit := flag.String("commit", "", "enemy commit mode: sequential or simultaneous")
	flag.Parse()

	logger.Init()

	if *configPath != "" {
		dir, file := filepath.Split(*configPath)
		if dir == "" {
			dir = "."
		}
		if err := config.LoadOverrides(os.DirFS(dir), file); err != nil {
			logger.Log.WithError(err).Fatal("could not load config")
		}
		logger.Log.WithField("path", *configPath).Info("config overrides applied")
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Log.WithError(err).Fatal("could not load fonts")
	}

	// Initialize persistence and load saved settings; flags win over both.
	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved)
		}
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if *commit != "" {
		mode, err := ai.ParseCommitMode(*commit)
		if err != nil {
			logger.Log.WithError(err).Fatal("bad -commit flag")
		}
		config.AI.Commit = mode
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		logger.Log.WithError(err).Fatal("could not load levels")
	}
	if _, err := levels.Get(*levelName); err != nil {
		logger.Log.WithError(err).Fatal("unknown level")
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.TPS)

	opts := scenes.WorldOptions{Levels: levels, Level: *levelName}
	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
