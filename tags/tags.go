package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Wall         = donburi.NewTag().SetName("Wall")
	DamageNumber = donburi.NewTag().SetName("DamageNumber")
)

// Resolv tags for collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvWeapon    = "Weapon"
)
