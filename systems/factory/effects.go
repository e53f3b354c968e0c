package factory

import (
	"image/color"

	"github.com/automoto/cryptblade/archetypes"
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnDamageNumber floats text up from (x, y) for ttl ticks while it
// fades out.
func SpawnDamageNumber(ecs *ecs.ECS, text string, x, y float64, ttl int, c color.RGBA) *donburi.Entry {
	if ttl <= 0 {
		ttl = cfg.Combat.NumberTTL
	}
	seconds := float32(ttl) / cfg.TPS

	e := archetypes.DamageNumber.Spawn(ecs)
	components.DamageNumber.SetValue(e, components.DamageNumberData{
		Text:  text,
		X:     x,
		Y:     y,
		Alpha: 1,
		TTL:   ttl,
		Color: c,
		Rise:  gween.New(0, float32(-cfg.Combat.NumberRise), seconds, ease.OutQuad),
		Fade:  gween.New(1, 0, seconds, ease.InCubic),
	})
	return e
}
