package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/fonts"
	"github.com/automoto/cryptblade/shared/combat"
	"github.com/automoto/cryptblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvEnemy):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvWeapon):
				c = color.RGBA{0, 255, 0, 120}
			}
			vector.StrokeRect(screen, float32(obj.X+v.camX), float32(obj.Y+v.camY), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if cfg.Debug.ShowPaths {
		drawEnemyPaths(ecs, screen, v)
	}
	drawInvincibility(ecs, screen, v)

	mode := "?"
	if entry, ok := components.Planner.First(ecs.World); ok {
		mode = components.Planner.Get(entry).Mode.String()
	}
	status := fmt.Sprintf("TPS %.0f  commit %s", ebiten.ActualTPS(), mode)
	small := fonts.Small.Get()
	text.Draw(screen, status, small, int(v.w)-textWidth(small, status)-hudMargin, hudMargin+8, cfg.Pause.TextColor)
}

// drawEnemyPaths traces every enemy's remaining waypoints and labels it
// with its current action.
func drawEnemyPaths(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	cell := cfg.Grid.CellSize
	small := fonts.Small.Get()

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		brain := components.Enemy.Get(e).Brain
		box := components.Object.Get(e).Box()
		fromX, fromY := box.Center()

		for i := len(brain.Action.Path) - 1; i >= 0; i-- {
			toX, toY := brain.Action.Path[i].Center(cell)
			vector.StrokeLine(screen,
				float32(fromX+v.camX), float32(fromY+v.camY),
				float32(toX+v.camX), float32(toY+v.camY),
				1, cfg.PathColor, false)
			fromX, fromY = toX, toY
		}

		text.Draw(screen, brain.Action.Kind.String(), small, int(box.X+v.camX), int(box.Y+v.camY)-2, cfg.PathColor)

		weapon := components.Weapon.Get(e)
		if weapon.Weapon != nil && weapon.Swing.State != combat.SwingIdle {
			cx, cy := box.Center()
			b := combat.WeaponBounds(cx, cy, *weapon.Weapon, weapon.Swing.Dir)
			vector.StrokeRect(screen, float32(b.X+v.camX), float32(b.Y+v.camY), float32(b.W), float32(b.H), 1, color.RGBA{255, 120, 0, 200}, false)
		}
	})
}

// drawInvincibility labels characters that are ignoring hits from one or
// more attackers.
func drawInvincibility(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	small := fonts.Small.Get()
	components.Invincibility.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		label, ok := invincibilityLabel(components.Invincibility.Get(e))
		if !ok {
			return
		}
		box := components.Object.Get(e).Box()
		if !v.visible(box.X, box.Y, box.W, box.H) {
			return
		}
		text.Draw(screen, label, small, int(box.X+v.camX), int(box.Bottom()+v.camY)+10, cfg.PathColor)
	})
}

func invincibilityLabel(inv *combat.Invincibility) (string, bool) {
	if inv.Len() == 0 {
		return "", false
	}
	return fmt.Sprintf("inv x%d", inv.Len()), true
}
