package obj

import (
	"math"

	"github.com/njhgames/platform-adventure/common"
)

// Camera follows a world point with exponential smoothing and never shows
// space outside the level bounds.
type Camera struct {
	X, Y float64 // view top-left in world space

	viewW, viewH   float64
	worldW, worldH float64
	smooth         float64 // 0..1, higher follows faster
}

func NewCamera(viewW, viewH, worldW, worldH float64) *Camera {
	return &Camera{viewW: viewW, viewH: viewH, worldW: worldW, worldH: worldH, smooth: 0.15}
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// Update moves the view toward centering the target point, then clamps to
// the world. Call once per fixed-rate tick so smoothing stays consistent.
func (c *Camera) Update(targetX, targetY float64) {
	wantX := targetX - c.viewW/2
	wantY := targetY - c.viewH/2
	if c.smooth <= 0 {
		c.X, c.Y = wantX, wantY
	} else {
		c.X = common.Lerp(c.X, wantX, c.smooth)
		c.Y = common.Lerp(c.Y, wantY, c.smooth)
	}
	c.clamp()
	// round to whole pixels so texels stay aligned
	c.X = math.Round(c.X)
	c.Y = math.Round(c.Y)
}

// SnapTo places the view immediately, skipping the smoothing. Used after a
// level load or respawn so the first frame is already framed correctly.
func (c *Camera) SnapTo(targetX, targetY float64) {
	c.X = targetX - c.viewW/2
	c.Y = targetY - c.viewH/2
	c.clamp()
	c.X = math.Round(c.X)
	c.Y = math.Round(c.Y)
}

func (c *Camera) clamp() {
	if c.worldW > c.viewW {
		c.X = common.Clamp(c.X, 0, c.worldW-c.viewW)
	} else {
		c.X = (c.worldW - c.viewW) / 2
	}
	if c.worldH > c.viewH {
		c.Y = common.Clamp(c.Y, 0, c.worldH-c.viewH)
	} else {
		c.Y = (c.worldH - c.viewH) / 2
	}
}
