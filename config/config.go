package config

import (
	"image/color"

	"github.com/automoto/cryptblade/shared/ai"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the game uses.
const Default ecs.LayerID = 0

// TPS is the fixed simulation rate. Stat regeneration and death timers are
// expressed against it.
const TPS = 60

// Config holds the window configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// GridConfig sets the navigation grid. One cell is one metre.
type GridConfig struct {
	CellSize float64
}

// AIConfig tunes the enemy planner.
type AIConfig struct {
	Commit       ai.CommitMode
	Seed         int64
	SearchBudget int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed  float64
	Width  float64
	Height float64

	// Stats, regeneration is per second
	Health       float64
	HealthRegen  float64
	Mana         float64
	ManaRegen    float64
	Stamina      float64
	StaminaRegen float64

	Weapon string

	// Progression
	XPPerLevel     int
	HealthPerLevel float64

	Color color.RGBA
}

// EnemyKindConfig is the per-kind tuning of an enemy.
type EnemyKindConfig struct {
	ai.Params `yaml:",inline"`

	Health      float64    `yaml:"health"`
	HealthRegen float64    `yaml:"health_regen"`
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	Weapon      string     `yaml:"weapon"`
	XP          int        `yaml:"xp"`
	Color       color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Kinds map[ai.Kind]EnemyKindConfig

	// Ticks a spent swing waits before the enemy may swing again.
	AttackCooldown int
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	DeathTicks int

	// Floating damage numbers
	NumberTTL   int
	NumberRise  float64
	NumberColor color.RGBA
	LevelColor  color.RGBA

	PlayerCooldown int
}

// CameraConfig contains camera-related configuration values
type CameraConfig struct {
	FollowSmoothing float64
}

// PauseConfig contains pause overlay styling
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// GameOverConfig contains game over screen styling
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          int
}

// DebugConfig toggles developer overlays.
type DebugConfig struct {
	Enabled   bool
	ShowPaths bool
}

var (
	C        *Config
	Grid     GridConfig
	AI       AIConfig
	Player   PlayerConfig
	Enemy    EnemyConfig
	Combat   CombatConfig
	Camera   CameraConfig
	Debug    DebugConfig
	Pause    PauseConfig
	GameOver GameOverConfig
	Weapons  map[string]combat.Weapon
)

// Colors
var (
	WallColor       = color.RGBA{70, 62, 84, 255}
	FloorColor      = color.RGBA{24, 22, 30, 255}
	GridLineColor   = color.RGBA{36, 33, 44, 255}
	BladeColor      = color.RGBA{230, 230, 240, 255}
	PathColor       = color.RGBA{255, 200, 0, 160}
	HealthBarColor  = color.RGBA{200, 40, 40, 255}
	ManaBarColor    = color.RGBA{60, 90, 220, 255}
	StaminaBarColor = color.RGBA{40, 200, 90, 255}
	BarBackColor    = color.RGBA{40, 40, 40, 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Cryptblade",
	}

	Grid = GridConfig{CellSize: 32}

	AI = AIConfig{
		Commit:       ai.CommitSequential,
		Seed:         42,
		SearchBudget: 200,
	}

	Weapons = map[string]combat.Weapon{
		"sword": {
			Name:        "sword",
			Reach:       18,
			Width:       6,
			Height:      30,
			Attack:      12,
			SwingTicks:  10,
			ActiveTicks: 15,
			Sweep:       100,
			StaminaCost: 20,
		},
		"club": {
			Name:        "club",
			Reach:       16,
			Width:       8,
			Height:      30,
			Attack:      8,
			SwingTicks:  16,
			ActiveTicks: 20,
			Sweep:       90,
		},
		"fangs": {
			Name:        "fangs",
			Reach:       16,
			Width:       6,
			Height:      30,
			Attack:      4,
			SwingTicks:  6,
			ActiveTicks: 10,
			Sweep:       60,
		},
	}

	Player = PlayerConfig{
		Speed:          2.5,
		Width:          22,
		Height:         22,
		Health:         100,
		HealthRegen:    1,
		Mana:           50,
		ManaRegen:      2,
		Stamina:        100,
		StaminaRegen:   25,
		Weapon:         "sword",
		XPPerLevel:     100,
		HealthPerLevel: 10,
		Color:          color.RGBA{90, 170, 255, 255},
	}

	Enemy = EnemyConfig{
		AttackCooldown: 30,
		Kinds: map[ai.Kind]EnemyKindConfig{
			ai.Skeleton: {
				Params: ai.Params{
					Speed:         1.5,
					Leash:         320,
					ViewRadius:    256,
					PursuitRadius: 384,
					DriftRadius:   64,
					AlignFraction: 0.5,
					WanderRadius:  96,
					WanderMin:     20,
					WanderPause:   60,
				},
				Health: 40,
				Width:  22,
				Height: 22,
				Weapon: "club",
				XP:     30,
				Color:  color.RGBA{220, 220, 200, 255},
			},
			ai.Bat: {
				Params: ai.Params{
					Speed:         2.2,
					Leash:         384,
					ViewRadius:    288,
					PursuitRadius: 448,
					DriftRadius:   64,
					AlignFraction: 1,
					WanderRadius:  128,
					WanderMin:     20,
					WanderPause:   20,
				},
				Health:      16,
				HealthRegen: 0.5,
				Width:       18,
				Height:      18,
				Weapon:      "fangs",
				XP:          15,
				Color:       color.RGBA{150, 90, 200, 255},
			},
		},
	}

	Combat = CombatConfig{
		DeathTicks:     45,
		NumberTTL:      combat.DefaultNumberTTL,
		NumberRise:     24,
		NumberColor:    color.RGBA{255, 230, 90, 255},
		LevelColor:     color.RGBA{120, 255, 140, 255},
		PlayerCooldown: 8,
	}

	Camera = CameraConfig{FollowSmoothing: 0.12}

	Debug = DebugConfig{ShowPaths: true}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{10, 6, 12, 255},
		TitleColor:      color.RGBA{200, 40, 40, 255},
		TextColor:       color.RGBA{230, 230, 230, 255},
		TitleY:          140,
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{0, 0, 0, 160},
		TextColor:    color.RGBA{230, 230, 230, 255},
	}
}

// EnemyParams returns the decision-engine tuning for every kind, with
// Reach taken from the kind's weapon.
func EnemyParams() map[ai.Kind]ai.Params {
	params := make(map[ai.Kind]ai.Params, len(Enemy.Kinds))
	for kind, kc := range Enemy.Kinds {
		p := kc.Params
		if w, ok := Weapons[kc.Weapon]; ok {
			p.Reach = w.Reach
		}
		params[kind] = p
	}
	return params
}
