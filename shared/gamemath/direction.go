package gamemath

import "math"

// Direction is a character's facing. None is used for "no direction",
// e.g. when an enemy stands exactly on its target.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the unit grid offset for the direction (y grows downward).
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Angle returns the facing as a clockwise rotation in degrees from Up.
func (d Direction) Angle() float64 {
	switch d {
	case Right:
		return 90
	case Down:
		return 180
	case Left:
		return 270
	}
	return 0
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// DirectionToward returns the facing along the dominant axis of (dx, dy).
// Horizontal wins ties. A zero offset yields None.
func DirectionToward(dx, dy float64) Direction {
	if dx == 0 && dy == 0 {
		return None
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Down
	}
	return Up
}
