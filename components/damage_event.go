package components

import (
	"github.com/automoto/cryptblade/shared/ident"
	"github.com/yohamta/donburi"
)

// DamageHit is one weapon contact waiting to be applied.
type DamageHit struct {
	Attacker ident.ID
	Amount   int
}

// DamageEventData queues every hit a character took this tick. Several
// attackers may land in the same tick.
type DamageEventData struct {
	Hits []DamageHit
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
