package components

import (
	"github.com/automoto/cryptblade/shared/ident"
	"github.com/yohamta/donburi"
)

// DeathData marks an entity that has started its death sequence.
// Timer counts down each frame; when it reaches 0, the entity is
// removed from the world.
type DeathData struct {
	Timer  int
	Killer ident.ID // 0 when nobody gets credit
}

var Death = donburi.NewComponentType[DeathData]()
