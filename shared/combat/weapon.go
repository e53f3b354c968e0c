// Package combat resolves melee swings against character hitboxes.
package combat

import "github.com/automoto/cryptblade/shared/gamemath"

// Weapon describes an equipped melee weapon. Width and Height are the
// blade sprite size measured from the grip, which sits on the wielder's
// centre.
type Weapon struct {
	Name        string  `yaml:"name"`
	Reach       float64 `yaml:"reach"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Attack      int     `yaml:"attack"`
	SwingTicks  int     `yaml:"swing_ticks"`  // ticks to cover the sweep
	ActiveTicks int     `yaml:"active_ticks"` // invincibility granted to a target on hit
	Sweep       float64 `yaml:"sweep"`        // degrees
	StaminaCost float64 `yaml:"stamina_cost"`
}

// SwingState is the lifecycle of one attack.
type SwingState int

const (
	SwingIdle SwingState = iota
	SwingActive
	SwingSpent
)

// Swing tracks the blade angle of an attack. Angles are degrees clockwise
// from Up. A spent swing stays spent until Release.
type Swing struct {
	State SwingState
	Dir   gamemath.Direction

	angle, prev float64
	step, end   float64
	swept       bool
}

// Start begins a swing centred on dir. It does nothing unless idle.
func (s *Swing) Start(w Weapon, dir gamemath.Direction) bool {
	if s.State != SwingIdle || dir == gamemath.None {
		return false
	}
	ticks := max(1, w.SwingTicks)
	start := dir.Angle() - w.Sweep/2
	*s = Swing{
		State: SwingActive,
		Dir:   dir,
		angle: start,
		prev:  start,
		step:  w.Sweep / float64(ticks),
		end:   start + w.Sweep,
	}
	return true
}

// Advance moves an active blade by one tick's increment.
func (s *Swing) Advance() {
	s.swept = false
	if s.State != SwingActive {
		return
	}
	s.prev = s.angle
	s.angle += s.step
	if s.angle >= s.end {
		s.angle = s.end
		s.State = SwingSpent
	}
	s.swept = true
}

// Release returns a spent swing to idle.
func (s *Swing) Release() {
	if s.State == SwingSpent {
		*s = Swing{}
	}
}

func (s *Swing) Angle() float64     { return s.angle }
func (s *Swing) PrevAngle() float64 { return s.prev }

// Cutting reports whether the blade moved during the last Advance, so the
// arc from PrevAngle to Angle must be hit-tested.
func (s *Swing) Cutting() bool { return s.swept }

// Tip returns the world position of the blade tip for a grip at (px, py).
func Tip(px, py, width, height, angle float64) (float64, float64) {
	x, y := gamemath.Rotate(width/2, -height, angle)
	return px + x, py + y
}
