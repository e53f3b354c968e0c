// Command levelcheck verifies that every spawn in a directory of TMX
// levels is reachable from the first player spawn.
package main

import (
	"flag"
	"os"

	"github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/logger"
	"github.com/automoto/cryptblade/shared/leveldata"
	"github.com/automoto/cryptblade/shared/navcheck"
	"github.com/sirupsen/logrus"
)

func main() {
	dir := flag.String("dir", "assets/levels", "directory containing .tmx levels")
	cell := flag.Float64("cell", config.Grid.CellSize, "navigation cell size in pixels")
	size := flag.Float64("size", config.Player.Width, "character box size in pixels")
	flag.Parse()

	logger.Init()

	levels, names, err := leveldata.LoadAllLevels(os.DirFS(*dir), ".")
	if err != nil {
		logger.Log.WithError(err).Fatal("could not load levels")
	}

	failed := false
	for _, name := range names {
		problems := navcheck.CheckLevel(levels[name], *cell, *size)
		log := logger.Log.WithFields(logrus.Fields{"level": name, "problems": len(problems)})
		if len(problems) == 0 {
			log.Info("ok")
			continue
		}
		failed = true
		for _, p := range problems {
			log.Error(p.String())
		}
	}
	if failed {
		os.Exit(1)
	}
}
