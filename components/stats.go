package components

import (
	"github.com/automoto/cryptblade/shared/stat"
	"github.com/yohamta/donburi"
)

type StatsData struct {
	Health  stat.Stat
	Mana    stat.Stat
	Stamina stat.Stat
}

var Stats = donburi.NewComponentType[StatsData]()
