// Package stat implements the regenerating resources (health, mana,
// stamina) every character carries.
package stat

import "time"

// Stat is a clamped value that regenerates toward its maximum.
// The invariant 0 <= Value() <= Max() holds after every call.
type Stat struct {
	current float64
	max     float64
	regen   float64 // per second
}

// New returns a full stat.
func New(max, regenPerSecond float64) Stat {
	if max < 0 {
		max = 0
	}
	return Stat{current: max, max: max, regen: regenPerSecond}
}

func (s *Stat) Value() float64 { return s.current }
func (s *Stat) Max() float64   { return s.max }
func (s *Stat) Regen() float64 { return s.regen }

// Add raises the value, capped at max. Negative amounts are ignored.
func (s *Stat) Add(amount float64) {
	if amount <= 0 {
		return
	}
	s.current = min(s.max, s.current+amount)
}

// Subtract lowers the value, floored at zero. Negative amounts are ignored.
func (s *Stat) Subtract(amount float64) {
	if amount <= 0 {
		return
	}
	s.current = max(0, s.current-amount)
}

// SetMax changes the maximum and clamps the current value to it.
func (s *Stat) SetMax(m float64) {
	s.max = max(0, m)
	s.current = min(s.current, s.max)
}

func (s *Stat) SetRegen(perSecond float64) { s.regen = perSecond }

// Fill sets the value to max.
func (s *Stat) Fill() { s.current = s.max }

func (s *Stat) IsEmpty() bool { return s.current <= 0 }
func (s *Stat) IsFull() bool  { return s.current >= s.max }

// Ratio returns Value/Max in [0, 1]; an empty max reports 0.
func (s *Stat) Ratio() float64 {
	if s.max == 0 {
		return 0
	}
	return s.current / s.max
}

// Has reports whether at least amount is available.
func (s *Stat) Has(amount float64) bool {
	return s.current >= amount
}

// Refresh applies regen for the elapsed time while the value is below max.
// It reports whether the value changed.
func (s *Stat) Refresh(elapsed time.Duration) bool {
	if s.current >= s.max || s.regen <= 0 || elapsed <= 0 {
		return false
	}
	before := s.current
	s.current = min(s.max, s.current+s.regen*elapsed.Seconds())
	return s.current != before
}
