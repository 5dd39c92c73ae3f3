package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/njhgames/platform-adventure/common"
)

const maxNameLen = 12

func (g *Game) updateSplash(dt float64) {
	g.splashElapsed += dt
	// brief grace period so a held key from launch doesn't skip the splash
	if g.splashElapsed < 0.5 {
		return
	}
	if g.input.AnyConfirm() || len(g.input.Typed) > 0 {
		g.setState(stateTitle)
	}
}

func (g *Game) drawSplash(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	cx := float64(common.BaseWidth) / 2
	drawTextCentered(screen, "PLATFORM ADVENTURE", cx, common.BaseHeight/3, colornames.White)
	drawTextCentered(screen, "A classic side-scrolling quest", cx, common.BaseHeight/3+30, colornames.Lightgray)
	// pulse the prompt
	if math.Sin(g.splashElapsed*4) > -0.2 {
		drawTextCentered(screen, "Press any key", cx, common.BaseHeight*2/3, colornames.Yellow)
	}
}

func (g *Game) updateTitle() {
	g.titleUI.Update()
	if g.input.ConfirmPressed {
		g.beginNameEntry()
	}
	if g.input.LeaderboardPressed {
		g.setState(stateLeaderboard)
	}
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.titleUI.Draw(screen)
	drawTextCentered(screen, "Enter to start  -  L for leaderboard",
		common.BaseWidth/2, common.BaseHeight-60, colornames.Lightgray)
}

func (g *Game) beginNameEntry() {
	g.nameBuf = g.nameBuf[:0]
	g.nameCursor = len(g.store.Names()) // default to "new name"
	g.setState(stateNameEntry)
}

func (g *Game) updateNameEntry() {
	names := g.store.Names()

	if g.input.UpPressed && g.nameCursor > 0 {
		g.nameCursor--
	}
	if g.input.DownPressed && g.nameCursor < len(names) {
		g.nameCursor++
	}

	// typing only applies to the "new name" slot
	if g.nameCursor == len(names) {
		for _, r := range g.input.Typed {
			if len(g.nameBuf) < maxNameLen && r >= ' ' {
				g.nameBuf = append(g.nameBuf, r)
			}
		}
		if g.input.BackspacePressed && len(g.nameBuf) > 0 {
			g.nameBuf = g.nameBuf[:len(g.nameBuf)-1]
		}
	}

	if g.input.CancelPressed {
		g.setState(stateTitle)
		return
	}
	if !g.input.ConfirmPressed {
		return
	}
	if g.nameCursor < len(names) {
		g.playerName = names[g.nameCursor]
	} else if len(g.nameBuf) > 0 {
		g.playerName = string(g.nameBuf)
	} else {
		return // nothing chosen yet
	}
	log.Info("player selected", "name", g.playerName)
	if err := g.startRun(); err != nil {
		log.Error("start failed", "err", err)
		g.setState(stateTitle)
	}
}

func (g *Game) drawNameEntry(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	cx := float64(common.BaseWidth) / 2
	drawTextCentered(screen, "WHO IS PLAYING?", cx, 80, colornames.White)

	names := g.store.Names()
	y := 140.0
	for i, n := range names {
		c := colornames.Lightgray
		if i == g.nameCursor {
			c = colornames.Yellow
			n = "> " + n
		}
		drawTextCentered(screen, n, cx, y, c)
		y += 30
	}

	newLabel := fmt.Sprintf("New name: %s_", string(g.nameBuf))
	c := colornames.Lightgray
	if g.nameCursor == len(names) {
		c = colornames.Yellow
		newLabel = "> " + newLabel
	}
	drawTextCentered(screen, newLabel, cx, y+10, c)

	drawTextCentered(screen, "Up/Down select  -  type a new name  -  Enter confirm  -  Esc back",
		cx, common.BaseHeight-60, colornames.Lightgray)
}

func (g *Game) updateLeaderboard() {
	if g.input.ConfirmPressed || g.input.CancelPressed || g.input.LeaderboardPressed {
		g.setState(stateTitle)
	}
}

func (g *Game) drawLeaderboard(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	drawTextCentered(screen, "LEADERBOARD", common.BaseWidth/2, 60, colornames.White)

	drawTextCentered(screen, "Global Top 5", common.BaseWidth/4, 120, colornames.Yellow)
	y := 160.0
	for i, r := range g.store.Top(5) {
		drawTextCentered(screen, fmt.Sprintf("%d. %s - %d", i+1, r.Name, r.Score), common.BaseWidth/4, y, colornames.White)
		drawTextCentered(screen, r.Date, common.BaseWidth/4, y+18, colornames.Lightgray)
		y += 50
	}

	if g.playerName != "" {
		drawTextCentered(screen, fmt.Sprintf("%s's Top 5", g.playerName), common.BaseWidth*3/4, 120, colornames.Yellow)
		y = 160.0
		for i, r := range g.store.TopFor(g.playerName, 5) {
			drawTextCentered(screen, fmt.Sprintf("%d. %d", i+1, r.Score), common.BaseWidth*3/4, y, colornames.White)
			drawTextCentered(screen, r.Date, common.BaseWidth*3/4, y+18, colornames.Lightgray)
			y += 50
		}
	}

	drawTextCentered(screen, "Enter or Esc to return", common.BaseWidth/2, common.BaseHeight-60, colornames.Lightgray)
}

func (g *Game) drawLevelClear(screen *ebiten.Image) {
	cx := float64(common.BaseWidth) / 2
	drawTextCentered(screen, fmt.Sprintf("Level %d Complete!", g.levelIdx+1), cx, common.BaseHeight/3, colornames.Lime)
	drawTextCentered(screen, fmt.Sprintf("Score: %d", g.session.Player.Score), cx, common.BaseHeight/3+40, colornames.White)
	drawTextCentered(screen, "Press Enter for the next level", cx, common.BaseHeight*2/3, colornames.Yellow)
}

func (g *Game) drawEndScreen(screen *ebiten.Image, headline string) {
	screen.Fill(colornames.Black)
	cx := float64(common.BaseWidth) / 2
	drawTextCentered(screen, headline, cx, common.BaseHeight/3, colornames.White)
	if g.session != nil {
		drawTextCentered(screen, fmt.Sprintf("Final score: %d", g.session.Player.Score), cx, common.BaseHeight/3+40, colornames.White)
	}
	drawTextCentered(screen, "Enter for title  -  L for leaderboard", cx, common.BaseHeight*2/3, colornames.Yellow)
}
