package systems

import (
	"image/color"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/fonts"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	cullPadding     = 64.0
	enemyBarHeight  = 3
	enemyBarSpacing = 4
)

// view is the camera transform and culling rectangle of one frame.
type view struct {
	camX, camY float64
	w, h       float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := components.Camera.Get(cameraEntry).Offset(width, height)
	return view{camX: camX, camY: camY, w: float64(width), h: float64(height)}, true
}

// visible reports whether a world-space rectangle lands near the screen.
func (v view) visible(x, y, w, h float64) bool {
	sx, sy := x+v.camX, y+v.camY
	return sx+w >= -cullPadding && sy+h >= -cullPadding && sx <= v.w+cullPadding && sy <= v.h+cullPadding
}

// DrawCharacters renders players and enemies as coloured blocks, bobbing
// while they walk and blinking while they die.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}

		anim := components.Animation.Get(e)
		frame := anim.Frame()
		if anim.CurrentState == cfg.Die && frame%2 == 1 {
			return
		}
		bob := 0.0
		if anim.CurrentState == cfg.Walk {
			bob = cfg.WalkBob[frame%len(cfg.WalkBob)]
		}

		x, y := float32(o.X+v.camX), float32(o.Y+v.camY+bob)
		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), characterColor(e), false)

		// Facing notch
		ch := components.Character.Get(e)
		dx, dy := ch.Primary.Delta()
		cx, cy := x+float32(o.W)/2, y+float32(o.H)/2
		vector.StrokeLine(screen, cx, cy, cx+float32(dx)*float32(o.W)/2, cy+float32(dy)*float32(o.H)/2, 2, color.Black, false)

		if e.HasComponent(components.Enemy) {
			drawEnemyHealth(screen, e, x, y, float32(o.W))
		}
	})
}

func characterColor(e *donburi.Entry) color.RGBA {
	if e.HasComponent(components.Player) {
		return cfg.Player.Color
	}
	if e.HasComponent(components.Enemy) {
		if kc, ok := cfg.Enemy.Kinds[components.Enemy.Get(e).Brain.Kind]; ok {
			return kc.Color
		}
	}
	return color.RGBA{255, 0, 255, 255}
}

// drawEnemyHealth shows a bar over wounded enemies only.
func drawEnemyHealth(screen *ebiten.Image, e *donburi.Entry, x, y, w float32) {
	hp := components.Stats.Get(e).Health
	if hp.IsFull() || hp.IsEmpty() {
		return
	}
	top := y - enemyBarSpacing - enemyBarHeight
	vector.FillRect(screen, x, top, w, enemyBarHeight, cfg.BarBackColor, false)
	vector.FillRect(screen, x, top, w*float32(hp.Ratio()), enemyBarHeight, cfg.HealthBarColor, false)
}

// DrawWeapons draws each active blade from its grip to its tip.
func DrawWeapons(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		weapon := components.Weapon.Get(e)
		if weapon.Weapon == nil || weapon.Swing.State == combat.SwingIdle {
			return
		}
		px, py := components.Object.Get(e).Box().Center()
		tx, ty := combat.Tip(px, py, weapon.Weapon.Width, weapon.Weapon.Height, weapon.Swing.Angle())
		vector.StrokeLine(screen,
			float32(px+v.camX), float32(py+v.camY),
			float32(tx+v.camX), float32(ty+v.camY),
			float32(weapon.Weapon.Width)/2, cfg.BladeColor, true)
	})
}

// DrawDamageNumbers renders the floating numbers over hit characters.
func DrawDamageNumbers(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	face := fonts.Regular.Get()

	components.DamageNumber.Each(ecs.World, func(e *donburi.Entry) {
		n := components.DamageNumber.Get(e)
		x := n.X + v.camX - float64(textWidth(face, n.Text))/2
		y := n.Y + n.OffsetY + v.camY
		text.Draw(screen, n.Text, face, int(x), int(y), fade(n.Color, n.Alpha))
	})
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
