package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_PointsUseRawDelta(t *testing.T) {
	a := PointBox(0, 0)
	b := PointBox(3, 4)
	assert.Equal(t, 5, Distance(a, b))

	// a zero-width side ignores the other box's extent
	c := Box{X: 10, Y: 0, W: 20, H: 20}
	assert.Equal(t, 10, Distance(a, c))
}

func TestDistance_BoxesUseEdgeGap(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want int
	}{
		{"horizontal gap", Box{0, 0, 10, 10}, Box{30, 0, 10, 10}, 20},
		{"vertical gap", Box{0, 0, 10, 10}, Box{0, 25, 10, 10}, 15},
		{"diagonal gap", Box{0, 0, 10, 10}, Box{13, 14, 10, 10}, 5},
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, 0},
		{"touching edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, 0},
		{"overlap on one axis", Box{0, 0, 10, 10}, Box{2, 40, 4, 4}, 30},
		{"truncates", Box{0, 0, 10, 10}, Box{11, 11, 10, 10}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestDistance_ZeroIffOverlapOrTouch(t *testing.T) {
	base := Box{X: 10, Y: 10, W: 8, H: 6}
	for x := -10.0; x <= 30; x++ {
		for y := -10.0; y <= 30; y++ {
			other := Box{X: x, Y: y, W: 4, H: 4}
			assert.Equal(t, base.Overlaps(other), Distance(base, other) == 0,
				"box at (%v,%v)", x, y)
		}
	}
}

func TestBox_CenterAndTranslate(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 8, H: 4}
	cx, cy := b.Center()
	assert.Equal(t, 14.0, cx)
	assert.Equal(t, 22.0, cy)

	moved := b.Translate(-10, 5)
	assert.Equal(t, Box{X: 0, Y: 25, W: 8, H: 4}, moved)
	assert.Equal(t, 8.0, moved.Right())
	assert.Equal(t, 29.0, moved.Bottom())
}
