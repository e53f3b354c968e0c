package systems

import (
	"testing"

	"github.com/automoto/cryptblade/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func newMoveSpace() (*resolv.Space, *resolv.Object) {
	space := resolv.NewSpace(256, 256, 16, 16)
	wall := resolv.NewObject(40, 0, 20, 100, tags.ResolvSolid)
	mover := resolv.NewObject(10, 10, 22, 22, tags.ResolvCharacter)
	space.Add(wall, mover)
	return space, mover
}

func TestMoveObject_StopsFlushAgainstWall(t *testing.T) {
	_, mover := newMoveSpace()

	dx, dy := moveObject(mover, 20, 0)

	assert.Equal(t, 8.0, dx)
	assert.Equal(t, 0.0, dy)
	assert.Equal(t, 18.0, mover.X)
}

func TestMoveObject_SlidesAlongWall(t *testing.T) {
	_, mover := newMoveSpace()

	dx, dy := moveObject(mover, 20, 5)

	assert.Equal(t, 8.0, dx)
	assert.Equal(t, 5.0, dy)
	assert.Equal(t, 15.0, mover.Y)
}

func TestMoveObject_FreeMove(t *testing.T) {
	_, mover := newMoveSpace()

	dx, dy := moveObject(mover, -4, 30)

	assert.Equal(t, -4.0, dx)
	assert.Equal(t, 30.0, dy)
	assert.Equal(t, 6.0, mover.X)
	assert.Equal(t, 40.0, mover.Y)
}

func TestMoveObject_TouchingNeighbourDoesNotBlockSideways(t *testing.T) {
	space := resolv.NewSpace(256, 256, 16, 16)
	mover := resolv.NewObject(100, 100, 22, 22, tags.ResolvCharacter)
	other := resolv.NewObject(122, 100, 22, 22, tags.ResolvCharacter)
	space.Add(mover, other)

	_, dy := moveObject(mover, 0, 6)
	assert.Equal(t, 6.0, dy)

	dx, _ := moveObject(mover, 5, 0)
	assert.Equal(t, 0.0, dx, "already touching on the right")
}
