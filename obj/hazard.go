package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/njhgames/platform-adventure/assets"
	"github.com/njhgames/platform-adventure/common"
	"github.com/njhgames/platform-adventure/component"
)

// PatrolAxis selects the axis a hazard patrols along.
type PatrolAxis int

const (
	PatrolHorizontal PatrolAxis = iota
	PatrolVertical
)

// Hazard is a patrolling enemy. It moves at constant speed along one axis,
// bouncing between home-halfExtent and home+halfExtent; direction flips
// exactly at the boundary (clamped, never overshot). Side contact damages
// the player; a landing-crossing stomp kills it and awards Points.
type Hazard struct {
	Rect       common.Rect
	Axis       PatrolAxis
	Home       common.Vec2
	HalfExtent float64
	Direction  float64 // -1 or +1
	Speed      float64 // px/s
	Points     int
	Alive      bool

	anim *component.Animator
	kind string // sprite set name: slime, bat, spider
}

// NewHazard creates a patrol hazard centered at its home point.
func NewHazard(x, y float64, axis PatrolAxis, halfExtent, speed float64, points int, kind string) *Hazard {
	const size = 50
	if kind == "" {
		kind = "slime"
	}
	return &Hazard{
		Rect:       common.Rect{X: x - size/2, Y: y - size/2, Width: size, Height: size},
		Axis:       axis,
		Home:       common.Vec2{X: x, Y: y},
		HalfExtent: halfExtent,
		Direction:  1,
		Speed:      speed,
		Points:     points,
		Alive:      true,
		kind:       kind,
		anim: component.NewAnimator(map[component.AnimState]component.Clip{
			component.AnimIdle: {FrameCount: 4, Rate: hazardRate(kind), Loop: true},
		}, component.AnimIdle),
	}
}

func hazardRate(kind string) float64 {
	switch kind {
	case "bat":
		return 0.08
	case "spider":
		return 0.12
	default:
		return 0.15
	}
}

// Update advances the patrol by dt seconds.
func (h *Hazard) Update(dt float64) {
	if !h.Alive {
		return
	}
	if h.Axis == PatrolVertical {
		cy := h.Rect.CenterY() + h.Direction*h.Speed*dt
		if cy < h.Home.Y-h.HalfExtent {
			cy = h.Home.Y - h.HalfExtent
			h.Direction = 1
		} else if cy > h.Home.Y+h.HalfExtent {
			cy = h.Home.Y + h.HalfExtent
			h.Direction = -1
		}
		h.Rect.Y = cy - h.Rect.Height/2
	} else {
		cx := h.Rect.CenterX() + h.Direction*h.Speed*dt
		if cx < h.Home.X-h.HalfExtent {
			cx = h.Home.X - h.HalfExtent
			h.Direction = 1
		} else if cx > h.Home.X+h.HalfExtent {
			cx = h.Home.X + h.HalfExtent
			h.Direction = -1
		}
		h.Rect.X = cx - h.Rect.Width/2
	}
	h.anim.Update(dt)
}

// Frame returns the current animation frame index.
func (h *Hazard) Frame() int {
	return h.anim.Frame()
}

func (h *Hazard) Draw(screen *ebiten.Image, camX, camY float64) {
	if !h.Alive {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if sheet := assets.Sheet(h.kind, "idle"); sheet != nil {
		count := h.anim.FrameCount()
		fw := sheet.Bounds().Dx() / count
		fh := sheet.Bounds().Dy()
		frame := subFrame(sheet, h.anim.Frame(), fw, fh)
		sx := h.Rect.Width / float64(fw)
		sy := h.Rect.Height / float64(fh)
		if h.Direction < 0 {
			op.GeoM.Scale(-sx, sy)
			op.GeoM.Translate(h.Rect.X+h.Rect.Width-camX, h.Rect.Y-camY)
		} else {
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(h.Rect.X-camX, h.Rect.Y-camY)
		}
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
		return
	}
	img := assets.Fill(assets.HazardColor)
	op.GeoM.Scale(h.Rect.Width, h.Rect.Height)
	op.GeoM.Translate(h.Rect.X-camX, h.Rect.Y-camY)
	screen.DrawImage(img, op)
}
