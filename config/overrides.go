package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/cryptblade/shared/ai"
	"github.com/automoto/cryptblade/shared/combat"
	"gopkg.in/yaml.v3"
)

// ErrUnknownWeapon is returned when an enemy kind or the player names a
// weapon that is not configured.
var ErrUnknownWeapon = errors.New("unknown weapon")

// rawOverrides mirrors the YAML file layout. Sections are kept as nodes so
// they can be decoded over the defaults instead of replacing them.
type rawOverrides struct {
	AI      yaml.Node            `yaml:"ai"`
	Player  yaml.Node            `yaml:"player"`
	Enemies map[string]yaml.Node `yaml:"enemies"`
	Weapons map[string]yaml.Node `yaml:"weapons"`
}

type aiOverride struct {
	Commit       string `yaml:"commit"`
	Seed         *int64 `yaml:"seed"`
	SearchBudget *int   `yaml:"search_budget"`
}

type playerOverride struct {
	Speed        *float64 `yaml:"speed"`
	Health       *float64 `yaml:"health"`
	HealthRegen  *float64 `yaml:"health_regen"`
	Mana         *float64 `yaml:"mana"`
	ManaRegen    *float64 `yaml:"mana_regen"`
	Stamina      *float64 `yaml:"stamina"`
	StaminaRegen *float64 `yaml:"stamina_regen"`
	Weapon       *string  `yaml:"weapon"`
}

// LoadOverrides merges the YAML file at path over the package defaults.
// Keys absent from the file keep their default values.
func LoadOverrides(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides merges YAML bytes over the package defaults. Nothing is
// changed when an error is returned.
func ApplyOverrides(data []byte) error {
	var raw rawOverrides
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	aiCfg := AI
	if raw.AI.Kind != 0 {
		var o aiOverride
		if err := raw.AI.Decode(&o); err != nil {
			return fmt.Errorf("ai: %w", err)
		}
		if o.Commit != "" {
			mode, err := ai.ParseCommitMode(o.Commit)
			if err != nil {
				return fmt.Errorf("ai: %w", err)
			}
			aiCfg.Commit = mode
		}
		if o.Seed != nil {
			aiCfg.Seed = *o.Seed
		}
		if o.SearchBudget != nil {
			aiCfg.SearchBudget = *o.SearchBudget
		}
	}

	weapons := make(map[string]combat.Weapon, len(Weapons))
	for name, w := range Weapons {
		weapons[name] = w
	}
	for name, node := range raw.Weapons {
		w := weapons[name]
		if err := node.Decode(&w); err != nil {
			return fmt.Errorf("weapons.%s: %w", name, err)
		}
		w.Name = name
		weapons[name] = w
	}

	kinds := make(map[ai.Kind]EnemyKindConfig, len(Enemy.Kinds))
	for k, kc := range Enemy.Kinds {
		kinds[k] = kc
	}
	for name, node := range raw.Enemies {
		kind, err := ai.ParseKind(name)
		if err != nil {
			return fmt.Errorf("enemies: %w", err)
		}
		kc := kinds[kind]
		if err := node.Decode(&kc); err != nil {
			return fmt.Errorf("enemies.%s: %w", name, err)
		}
		kinds[kind] = kc
	}

	player := Player
	if raw.Player.Kind != 0 {
		var o playerOverride
		if err := raw.Player.Decode(&o); err != nil {
			return fmt.Errorf("player: %w", err)
		}
		o.apply(&player)
	}

	if _, ok := weapons[player.Weapon]; !ok {
		return fmt.Errorf("player: %w: %q", ErrUnknownWeapon, player.Weapon)
	}
	for kind, kc := range kinds {
		if _, ok := weapons[kc.Weapon]; !ok {
			return fmt.Errorf("enemies.%s: %w: %q", kind, ErrUnknownWeapon, kc.Weapon)
		}
	}

	AI = aiCfg
	Weapons = weapons
	Enemy.Kinds = kinds
	Player = player
	return nil
}

func (o playerOverride) apply(p *PlayerConfig) {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Speed, o.Speed)
	set(&p.Health, o.Health)
	set(&p.HealthRegen, o.HealthRegen)
	set(&p.Mana, o.Mana)
	set(&p.ManaRegen, o.ManaRegen)
	set(&p.Stamina, o.Stamina)
	set(&p.StaminaRegen, o.StaminaRegen)
	if o.Weapon != nil {
		p.Weapon = *o.Weapon
	}
}
