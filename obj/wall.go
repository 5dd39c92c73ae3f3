package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/njhgames/platform-adventure/assets"
	"github.com/njhgames/platform-adventure/common"
)

// Wall is immovable solid geometry. It participates in collision resolution
// and never moves after level construction.
type Wall struct {
	Rect common.Rect
}

func NewWall(x, y, width, height float64) *Wall {
	return &Wall{Rect: common.Rect{X: x, Y: y, Width: width, Height: height}}
}

func (w *Wall) Draw(screen *ebiten.Image, camX, camY float64) {
	img := assets.Image("platform.png", assets.WallColor)
	op := &ebiten.DrawImageOptions{}
	bw := float64(img.Bounds().Dx())
	bh := float64(img.Bounds().Dy())
	if bw <= 0 || bh <= 0 {
		return
	}
	op.GeoM.Scale(w.Rect.Width/bw, w.Rect.Height/bh)
	op.GeoM.Translate(w.Rect.X-camX, w.Rect.Y-camY)
	screen.DrawImage(img, op)
}
