package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/njhgames/platform-adventure/common"
	"github.com/njhgames/platform-adventure/config"
	"github.com/njhgames/platform-adventure/leaderboard"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hitboxes, state overlay)")
	level := flag.Int("level", 0, "start at level index (zero-based)")
	cfgPath := flag.String("config", "config.yaml", "tuning config file")
	boardPath := flag.String("leaderboard", "leaderboard.json", "leaderboard file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose || *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Warn("using default config", "err", err)
	}

	store, err := leaderboard.Open(*boardPath)
	if err != nil {
		log.Error("leaderboard unavailable", "err", err)
		os.Exit(1)
	}

	game, err := NewGame(cfg, *cfgPath, store, *level, *debug)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Platform Adventure")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game loop", "err", err)
	}
}
