package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DamageNumberData is a floating number that rises and fades over a hit
// target.
type DamageNumberData struct {
	Text    string
	X, Y    float64
	OffsetY float64
	Alpha   float64
	TTL     int
	Color   color.RGBA
	Rise    *gween.Tween
	Fade    *gween.Tween
}

var DamageNumber = donburi.NewComponentType[DamageNumberData]()
