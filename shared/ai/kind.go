package ai

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a level or config names an enemy kind
// the engine has no behaviour for.
var ErrUnknownKind = errors.New("unknown enemy kind")

// Kind selects the per-kind behaviour of an enemy.
type Kind int

const (
	Skeleton Kind = iota
	Bat
)

// Kinds lists every known kind.
var Kinds = []Kind{Skeleton, Bat}

func (k Kind) String() string {
	switch k {
	case Skeleton:
		return "skeleton"
	case Bat:
		return "bat"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of String, case-insensitive.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// RequiresAlignment reports whether the kind must line up on a row or
// column with its target before it can swing. Skeletons attack along the
// four facings only; bats bite from any angle.
func (k Kind) RequiresAlignment() bool {
	switch k {
	case Skeleton:
		return true
	}
	return false
}

// Params tunes the decision engine for one kind. Distances are world
// pixels, durations are ticks.
type Params struct {
	Speed         float64 `yaml:"speed"`          // movement per tick
	Reach         float64 `yaml:"reach"`          // weapon reach
	Leash         float64 `yaml:"leash"`          // max anchor-to-player distance for aggro
	ViewRadius    float64 `yaml:"view_radius"`    // pursuit starts inside this
	PursuitRadius float64 `yaml:"pursuit_radius"` // pursuit is abandoned beyond this
	DriftRadius   float64 `yaml:"drift_radius"`   // replan when the player strays this far from the path goal
	AlignFraction float64 `yaml:"align_fraction"` // share of Reach tolerated off-axis
	WanderRadius  float64 `yaml:"wander_radius"`
	WanderMin     float64 `yaml:"wander_min"`
	WanderPause   int     `yaml:"wander_pause"`
}
