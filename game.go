package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/njhgames/platform-adventure/common"
	"github.com/njhgames/platform-adventure/config"
	"github.com/njhgames/platform-adventure/leaderboard"
	"github.com/njhgames/platform-adventure/levels"
	"github.com/njhgames/platform-adventure/obj"
)

const tick = 1.0 / 60.0

// gameState is the top-level screen the game is showing.
type gameState int

const (
	stateSplash gameState = iota
	stateTitle
	stateNameEntry
	statePlay
	stateCelebration
	stateLevelClear
	stateGameOver
	stateWin
	stateLeaderboard
)

func (s gameState) String() string {
	switch s {
	case stateSplash:
		return "splash"
	case stateTitle:
		return "title"
	case stateNameEntry:
		return "nameentry"
	case statePlay:
		return "play"
	case stateCelebration:
		return "celebration"
	case stateLevelClear:
		return "levelclear"
	case stateGameOver:
		return "gameover"
	case stateWin:
		return "win"
	case stateLeaderboard:
		return "leaderboard"
	}
	return "unknown"
}

type Game struct {
	state gameState

	input   *obj.Input
	cfg     config.Spec
	cfgPath string
	watcher *config.Watcher

	session    *obj.Session
	levelIdx   int
	startLevel int
	transition *obj.Transition

	store      *leaderboard.Store
	playerName string
	nameBuf    []rune
	nameCursor int // selected existing name; len(names) means "new name"
	scoreSaved bool

	titleUI *ebitenui.UI

	celebrationLeft float64
	splashElapsed   float64
	debug           bool
	quit            bool
}

func NewGame(cfg config.Spec, cfgPath string, store *leaderboard.Store, startLevel int, debug bool) (*Game, error) {
	if startLevel < 0 || startLevel >= levels.Count() {
		startLevel = 0
	}
	g := &Game{
		state:      stateSplash,
		input:      obj.NewInput(),
		cfg:        cfg,
		cfgPath:    cfgPath,
		levelIdx:   startLevel,
		startLevel: startLevel,
		transition: obj.NewTransition(),
		store:      store,
		debug:      debug,
	}
	g.titleUI = newTitleUI(g)
	g.transition.OnSwap = func(target int) {
		if err := g.loadLevel(target); err != nil {
			log.Error("level load failed", "index", target, "err", err)
		}
	}
	if cfgPath != "" {
		w, err := config.NewWatcher(cfgPath)
		if err != nil {
			log.Warn("config watch unavailable", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadLevel parses the embedded level at index and points the session at it.
func (g *Game) loadLevel(index int) error {
	b, err := levels.Data(index)
	if err != nil {
		return err
	}
	lvl, err := obj.LoadLevel(b)
	if err != nil {
		return err
	}
	g.levelIdx = index
	if g.session == nil {
		g.session = obj.NewSession(lvl, g.input, g.cfg, common.BaseWidth, common.BaseHeight)
		g.session.Debug = g.debug
	} else {
		g.session.SwapLevel(lvl)
	}
	return nil
}

// startRun begins a fresh run with a fresh session, from the first level or
// the one picked with the -level flag.
func (g *Game) startRun() error {
	g.session = nil
	g.scoreSaved = false
	if err := g.loadLevel(g.startLevel); err != nil {
		return err
	}
	g.setState(statePlay)
	return nil
}

func (g *Game) setState(s gameState) {
	if g.state == s {
		return
	}
	log.Debug("state change", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.input.Update()
	g.pollConfig()

	if g.input.DebugPressed {
		g.debug = !g.debug
		if g.session != nil {
			g.session.Debug = g.debug
		}
	}

	switch g.state {
	case stateSplash:
		g.updateSplash(tick)
	case stateTitle:
		g.updateTitle()
	case stateNameEntry:
		g.updateNameEntry()
	case statePlay:
		g.updatePlay(tick)
	case stateCelebration:
		g.updateCelebration(tick)
	case stateLevelClear:
		g.updateLevelClear()
	case stateGameOver, stateWin:
		g.updateEndScreen()
	case stateLeaderboard:
		g.updateLeaderboard()
	}
	return nil
}

func (g *Game) updatePlay(dt float64) {
	if g.transition.Update(dt) {
		return
	}
	switch g.session.Update(dt) {
	case obj.StatusGoalReached:
		g.celebrationLeft = g.cfg.CelebrationDuration
		g.setState(stateCelebration)
	case obj.StatusDead, obj.StatusTimeUp:
		g.setState(stateGameOver)
	}
	if g.input.ResetPressed {
		if err := g.startRun(); err != nil {
			log.Error("restart failed", "err", err)
		}
	}
}

func (g *Game) updateCelebration(dt float64) {
	g.session.UpdateCelebration(dt)
	g.celebrationLeft -= dt
	if g.celebrationLeft > 0 {
		return
	}
	if g.levelIdx+1 < levels.Count() {
		g.setState(stateLevelClear)
	} else {
		g.saveScore()
		g.setState(stateWin)
	}
}

func (g *Game) updateLevelClear() {
	if g.input.AnyConfirm() {
		g.transition.Enter(g.levelIdx + 1)
		g.setState(statePlay)
	}
}

func (g *Game) updateEndScreen() {
	if g.state == stateGameOver && !g.scoreSaved {
		g.saveScore()
	}
	if g.input.AnyConfirm() || g.input.ResetPressed {
		g.setState(stateTitle)
	}
	if g.input.LeaderboardPressed {
		g.setState(stateLeaderboard)
	}
}

func (g *Game) saveScore() {
	if g.scoreSaved || g.session == nil || g.playerName == "" {
		return
	}
	g.scoreSaved = true
	if err := g.store.Add(g.playerName, g.session.Player.Score); err != nil {
		log.Error("score save failed", "err", err)
	}
}

// pollConfig applies live config-file edits to the running game.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Events:
		cfg, err := config.Load(g.cfgPath)
		if err != nil {
			log.Warn("config reload failed", "err", err)
			return
		}
		g.cfg = cfg
		if g.session != nil {
			g.session.SetConfig(cfg)
		}
		log.Info("config reloaded", "path", g.cfgPath)
	case err := <-g.watcher.Errors:
		log.Warn("config watcher error", "err", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case stateSplash:
		g.drawSplash(screen)
	case stateTitle:
		g.drawTitle(screen)
	case stateNameEntry:
		g.drawNameEntry(screen)
	case statePlay, stateCelebration:
		g.session.Draw(screen)
		g.drawHUD(screen)
		g.transition.Draw(screen)
	case stateLevelClear:
		g.session.Draw(screen)
		g.drawLevelClear(screen)
	case stateGameOver:
		g.drawEndScreen(screen, "GAME OVER")
	case stateWin:
		g.drawEndScreen(screen, "YOU WIN!")
	case stateLeaderboard:
		g.drawLeaderboard(screen)
	}
	if g.debug {
		drawText(screen, fmt.Sprintf("state: %s  fps: %.1f", g.state, ebiten.ActualFPS()), 10, common.BaseHeight-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
