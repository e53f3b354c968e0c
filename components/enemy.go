package components

import (
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Brain ai.Brain

	// Ticks until the next swing may start.
	AttackCooldown int
	XP             int // awarded to the killer
}

var Enemy = donburi.NewComponentType[EnemyData]()
