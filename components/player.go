package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	XP    int
	Level int
	Kills int

	// Ticks until the next swing may start.
	AttackCooldown int
}

var Player = donburi.NewComponentType[PlayerData]()
