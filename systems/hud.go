package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/fonts"
	"github.com/automoto/cryptblade/shared/stat"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
	hudBarGap    = 3
	hudMargin    = 10
)

// DrawHUD renders the player's stat bars and level in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	stats := components.Stats.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	y := float32(hudMargin)
	for _, bar := range []struct {
		s *stat.Stat
		c color.RGBA
	}{
		{&stats.Health, cfg.HealthBarColor},
		{&stats.Mana, cfg.ManaBarColor},
		{&stats.Stamina, cfg.StaminaBarColor},
	} {
		drawBar(screen, hudMargin, y, bar.s.Ratio(), bar.c)
		y += hudBarHeight + hudBarGap
	}

	label := fmt.Sprintf("Lv %d  XP %d/%d", player.Level, player.XP, cfg.Player.XPPerLevel)
	text.Draw(screen, label, fonts.Small.Get(), hudMargin, int(y)+hudBarHeight, cfg.Pause.TextColor)
}

func drawBar(screen *ebiten.Image, x, y float32, ratio float64, c color.RGBA) {
	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, cfg.BarBackColor, false)
	vector.FillRect(screen, x, y, hudBarWidth*float32(clamp01(ratio)), hudBarHeight, c, false)
}
