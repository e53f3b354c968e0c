package factory

import (
	"github.com/automoto/cryptblade/archetypes"
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/ident"
	"github.com/automoto/cryptblade/shared/stat"
	"github.com/automoto/cryptblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(x, y, w, h, tags.ResolvCharacter, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Character.SetValue(player, components.CharacterData{
		ID:      ident.Next(),
		Primary: gamemath.Down,
		Mask:    combat.NewRectMask(int(w), int(h)),
	})
	components.Player.SetValue(player, components.PlayerData{Level: 1})
	components.Stats.SetValue(player, components.StatsData{
		Health:  stat.New(cfg.Player.Health, cfg.Player.HealthRegen),
		Mana:    stat.New(cfg.Player.Mana, cfg.Player.ManaRegen),
		Stamina: stat.New(cfg.Player.Stamina, cfg.Player.StaminaRegen),
	})
	components.Weapon.SetValue(player, newWeapon(ecs, player, cfg.Player.Weapon))
	components.Animation.Set(player, GenerateAnimations())

	return player
}

// newWeapon equips the named weapon. Unknown names leave the character
// unarmed.
func newWeapon(ecs *ecs.ECS, owner *donburi.Entry, name string) components.WeaponData {
	w, ok := cfg.Weapons[name]
	if !ok {
		return components.WeaponData{}
	}
	r := max(w.Width, w.Height)
	probe := resolv.NewObject(0, 0, 2*r, 2*r, tags.ResolvWeapon)
	probe.Data = owner
	addToSpace(ecs, probe)
	return components.WeaponData{Weapon: &w, Broadphase: probe}
}
