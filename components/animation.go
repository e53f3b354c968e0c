package components

import (
	"github.com/automoto/cryptblade/assets/animations"
	"github.com/automoto/cryptblade/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches to state, restarting its cycle only on change.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}
	a.CurrentState = state
	a.CurrentAnimation = a.Animations[state]
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Restart()
	}
}

// Frame is the current frame, 0 when the state has no animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
