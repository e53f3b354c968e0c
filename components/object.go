package components

import (
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Box is the object's current bounding box.
func (o *ObjectData) Box() gamemath.Box {
	return gamemath.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
