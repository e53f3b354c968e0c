package factory

import (
	"github.com/automoto/cryptblade/assets/animations"
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
)

// GenerateAnimations creates the frame cycles every character shares.
func GenerateAnimations() *components.AnimationData {
	animData := &components.AnimationData{
		Animations: make(map[cfg.StateID]*animations.Animation, len(cfg.CharacterAnimations)),
	}
	for state, def := range cfg.CharacterAnimations {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	animData.SetAnimation(cfg.Idle)
	return animData
}
