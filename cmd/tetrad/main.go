package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/stonefruit/tetrad/internal/config"
	"github.com/stonefruit/tetrad/internal/highscore"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	store, err := highscore.Open(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open high-score store")
	}
	defer store.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	app, err := newApp(cfg, log, store, seed)
	if err != nil {
		log.WithError(err).Fatal("failed to start session")
	}

	ebiten.SetWindowSize(screenW*cfg.Scale, screenH*cfg.Scale)
	ebiten.SetWindowTitle("Tetrad")

	if err := ebiten.RunGame(app); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}

	// Quitting mid-game still counts; a finished game was already saved.
	if !app.recorded && app.game.Score > 0 {
		app.record()
	}
}
