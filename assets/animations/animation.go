// Package animations steps frame counters for character poses.
package animations

type Animation struct {
	First      int
	Last       int
	Step       int     // frames advanced per change
	SpeedInTps float32 // ticks per frame
	Looped     bool

	frameCounter float32
	frame        int
}

// Update advances the counter by one tick and wraps at Last.
func (a *Animation) Update() {
	a.frameCounter--
	if a.frameCounter >= 0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         max(1, step),
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}
