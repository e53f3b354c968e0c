package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionToward(t *testing.T) {
	assert.Equal(t, Right, DirectionToward(10, 3))
	assert.Equal(t, Left, DirectionToward(-10, 3))
	assert.Equal(t, Down, DirectionToward(1, 5))
	assert.Equal(t, Up, DirectionToward(1, -5))
	assert.Equal(t, Right, DirectionToward(4, 4), "horizontal wins ties")
	assert.Equal(t, None, DirectionToward(0, 0))
}

func TestDirection_DeltaRoundTrip(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		dx, dy := d.Delta()
		assert.Equal(t, d, DirectionToward(float64(dx), float64(dy)))
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
	}
	dx, dy := None.Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestRotate_FacingAngles(t *testing.T) {
	// tip vector for a 10x20 weapon: (w/2, -h)
	tests := []struct {
		dir          Direction
		wantX, wantY float64
	}{
		{Up, 5, -20},
		{Right, 20, 5},
		{Down, -5, 20},
		{Left, -20, -5},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			x, y := Rotate(5, -20, tt.dir.Angle())
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestStepToward_NoOvershoot(t *testing.T) {
	assert.Equal(t, 2.0, StepToward(0, 10, 2))
	assert.Equal(t, 1.5, StepToward(8.5, 10, 2))
	assert.Equal(t, -2.0, StepToward(10, 0, 2))
	assert.Equal(t, 0.0, StepToward(3, 3, 2))
	assert.Equal(t, 1, Sign(0.1))
	assert.Equal(t, -1, Sign(-4))
	assert.Equal(t, 0, Sign(0))
}
