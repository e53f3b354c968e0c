package factory

import (
	"github.com/automoto/cryptblade/archetypes"
	"github.com/automoto/cryptblade/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera at (x, y) so the first frame does not
// sweep in from the origin.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.NewVec2(x, y)})
}
