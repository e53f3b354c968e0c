package components

import (
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/ident"
	"github.com/yohamta/donburi"
)

// CharacterData is shared by players and enemies.
type CharacterData struct {
	ID ident.ID

	// Primary is the facing used for attacks. Secondary is the other axis
	// held while moving diagonally.
	Primary   gamemath.Direction
	Secondary gamemath.Direction

	Mask *combat.Mask // nil means the whole box can be hit

	// Moving is set when the character travelled during the last tick.
	Moving bool
}

var Character = donburi.NewComponentType[CharacterData]()
