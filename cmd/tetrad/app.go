package main

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/stonefruit/tetrad/engine"
	"github.com/stonefruit/tetrad/internal/config"
	"github.com/stonefruit/tetrad/internal/highscore"
)

// Logical screen layout, scaled to the window by ebiten.
const (
	cellSize = 24
	boardW   = engine.Cols * cellSize
	boardH   = engine.VisibleRows * cellSize
	panelW   = 160
	screenW  = boardW + panelW
	screenH  = boardH
)

// App drives one session at a time: input translation, fixed-step engine
// updates, rendering, and score persistence when a session ends.
type App struct {
	log   *logrus.Logger
	store *highscore.Store
	rules engine.Rules

	game *engine.Game
	best int

	left, right, down repeater
	recorded          bool
}

func newApp(cfg config.Config, log *logrus.Logger, store *highscore.Store, seed uint64) (*App, error) {
	rules := engine.DefaultRules()
	rules.Preview = cfg.Preview

	game, err := engine.NewGame(seed, rules)
	if err != nil {
		return nil, err
	}

	best, err := store.Best(context.Background())
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{"seed": seed, "preview": cfg.Preview}).Info("session started")

	return &App{
		log:   log,
		store: store,
		rules: rules,
		game:  game,
		best:  best,
		left:  newRepeater(),
		right: newRepeater(),
		down:  newRepeater(),
	}, nil
}

// Update handles one fixed-step frame: edge-triggered intents, held-key
// auto-repeat, then the timed engine update.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.restart()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.game.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		a.game.Rotate(engine.CW)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		a.game.Rotate(engine.CCW)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		a.game.Rotate(engine.Half)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.HardDrop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.game.HoldSwap()
	}

	dt := 1.0 / float64(ebiten.TPS())
	for i := a.left.step(ebiten.IsKeyPressed(ebiten.KeyLeft), dt); i > 0; i-- {
		a.game.Move(-1)
	}
	for i := a.right.step(ebiten.IsKeyPressed(ebiten.KeyRight), dt); i > 0; i-- {
		a.game.Move(1)
	}
	for i := a.down.step(ebiten.IsKeyPressed(ebiten.KeyDown), dt); i > 0; i-- {
		a.game.SoftDrop()
	}

	a.game.Update(dt)

	if a.game.Over() && !a.recorded {
		a.record()
	}
	return nil
}

// Layout reports the fixed logical resolution.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// restart persists the current session if it has not been saved yet and
// starts a fresh one with a new seed.
func (a *App) restart() {
	if !a.recorded && a.game.Score > 0 {
		a.record()
	}

	seed := uint64(time.Now().UnixNano())
	game, err := engine.NewGame(seed, a.rules)
	if err != nil {
		a.log.WithError(err).Error("restart failed")
		return
	}
	a.game = game
	a.recorded = false
	a.log.WithField("seed", seed).Info("session restarted")
}

// record persists the finished session and refreshes the best score.
func (a *App) record() {
	a.recorded = true

	entry, err := a.store.Record(context.Background(), highscore.Entry{
		Score: a.game.Score,
		Lines: a.game.Lines,
		Level: a.game.Level,
	})
	if err != nil {
		a.log.WithError(err).Error("failed to record score")
		return
	}
	if entry.Score > a.best {
		a.best = entry.Score
	}
	a.log.WithFields(logrus.Fields{
		"id":    entry.ID,
		"score": entry.Score,
		"lines": entry.Lines,
		"level": entry.Level,
	}).Info("score recorded")
}
