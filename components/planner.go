package components

import (
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/yohamta/donburi"
)

// PlannerData is the singleton enemy decision engine of a world.
type PlannerData struct {
	Engine *ai.Engine
	Mode   ai.CommitMode
}

var Planner = donburi.NewComponentType[PlannerData]()
