package main

import (
	"fmt"
	"image/color"

	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func drawText(screen *ebiten.Image, s string, x, y float64) {
	drawTextColor(screen, s, x, y, colornames.White)
}

func drawTextColor(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, hudFace, op)
}

// drawTextCentered centers the string horizontally around x.
func drawTextCentered(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	w, _ := ebtext.Measure(s, hudFace, 0)
	drawTextColor(screen, s, x-w/2, y, c)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.session.Player
	drawText(screen, fmt.Sprintf("Score: %d", p.Score), 10, 10)
	drawText(screen, fmt.Sprintf("Lives: %d", p.Health.Current), 10, 30)
	drawText(screen, fmt.Sprintf("Time: %.1fs", g.session.TimeLeft), 10, 50)
	drawText(screen, fmt.Sprintf("Level %d: %s", g.levelIdx+1, g.session.Level.Name), 10, 70)

	if !g.session.Level.Goal.Unlocked {
		drawText(screen, fmt.Sprintf("Goal unlocks at %d points", g.session.Level.Goal.Threshold), 10, 90)
	}
	if g.session.SecretFlashing() {
		drawTextCentered(screen, "SECRET FOUND!", float64(screen.Bounds().Dx())/2, 40, colornames.Yellow)
	}
	if g.debug {
		drawText(screen, fmt.Sprintf("player: %s anim=%s frame=%d", p.StateName(), p.AnimState(), p.Frame()), 10, 110)
	}
}
