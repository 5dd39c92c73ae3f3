package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/njhgames/platform-adventure/assets"
	"github.com/njhgames/platform-adventure/common"
)

// Goal is the level exit. It starts locked and unlocks once the player's
// score reaches Threshold; touching it while locked does nothing.
type Goal struct {
	Rect      common.Rect
	Threshold int
	Unlocked  bool
}

func NewGoal(x, y float64, threshold int) *Goal {
	const w, h = 60, 80
	return &Goal{
		Rect:      common.Rect{X: x - w/2, Y: y - h, Width: w, Height: h},
		Threshold: threshold,
	}
}

// Refresh re-evaluates the lock against the current score. Unlocking is
// one-way.
func (g *Goal) Refresh(score int) {
	if !g.Unlocked && score >= g.Threshold {
		g.Unlocked = true
	}
}

func (g *Goal) Draw(screen *ebiten.Image, camX, camY float64) {
	name := "goal_locked.png"
	fallback := assets.GoalColor
	if g.Unlocked {
		name = "goal_open.png"
		fallback = assets.GoalUnlocked
	}
	img := assets.Image(name, fallback)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.Rect.Width/float64(img.Bounds().Dx()), g.Rect.Height/float64(img.Bounds().Dy()))
	op.GeoM.Translate(g.Rect.X-camX, g.Rect.Y-camY)
	screen.DrawImage(img, op)
}
