package components

import (
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// WeaponData is an equipped weapon. Broadphase is a resolv object sized to
// the swing's coarse bounds and used to collect candidate targets.
type WeaponData struct {
	Weapon     *combat.Weapon // nil when unarmed
	Swing      combat.Swing
	Broadphase *resolv.Object
}

var Weapon = donburi.NewComponentType[WeaponData]()

// Invincibility holds the per-attacker hit windows of a character.
var Invincibility = donburi.NewComponentType[combat.Invincibility]()
