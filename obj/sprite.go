package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// subFrame slices frame i out of a horizontal sprite sheet of fw x fh frames.
func subFrame(sheet *ebiten.Image, i, fw, fh int) *ebiten.Image {
	r := image.Rect(i*fw, 0, (i+1)*fw, fh)
	return sheet.SubImage(r).(*ebiten.Image)
}

func drawRectOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}
