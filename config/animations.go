package config

// StateID is the visual state of a character.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Swing
	Die
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Swing:
		return "swing"
	case Die:
		return "die"
	}
	return "none"
}

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations are the frame cycles shared by every character.
// Walk frames index WalkBob; Die frames alternate visible and hidden.
var CharacterAnimations = map[StateID]AnimationDef{
	Idle:  {First: 0, Last: 0, Step: 1, Speed: 10},
	Walk:  {First: 0, Last: 3, Step: 1, Speed: 6},
	Swing: {First: 0, Last: 0, Step: 1, Speed: 10},
	Die:   {First: 0, Last: 1, Step: 1, Speed: 4},
}

// WalkBob is the vertical draw offset for each walk frame.
var WalkBob = [...]float64{0, -1, -2, -1}
