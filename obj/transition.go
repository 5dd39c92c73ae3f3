package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transition runs a fade-to-black, swap, fade-from-black sequence between
// levels. Timing is in seconds so it pairs with the delta-time update loop.
type Transition struct {
	Active   bool
	Phase    int // 1: fading out, 2: fading back in
	Duration float64
	Target   int // index of the level to load at the midpoint

	elapsed float64
	overlay *ebiten.Image

	// OnSwap runs once at the fully-black midpoint; the caller loads the
	// target level there so the cut is never visible.
	OnSwap func(target int)
}

func NewTransition() *Transition {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.Black)
	return &Transition{Duration: 0.35, overlay: img}
}

// Enter begins a transition to the given level index. No-op while active.
func (t *Transition) Enter(target int) {
	if t.Active {
		return
	}
	t.Active = true
	t.Phase = 1
	t.elapsed = 0
	t.Target = target
}

// Update advances the fade by dt seconds. Returns true while the transition
// owns the frame and normal world updates should be skipped.
func (t *Transition) Update(dt float64) bool {
	if !t.Active {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.Duration {
		return true
	}
	switch t.Phase {
	case 1:
		if t.OnSwap != nil {
			t.OnSwap(t.Target)
		}
		t.Phase = 2
		t.elapsed = 0
	case 2:
		t.Active = false
		t.Phase = 0
		t.elapsed = 0
	}
	return t.Active
}

func (t *Transition) Draw(screen *ebiten.Image) {
	if !t.Active {
		return
	}
	frac := t.elapsed / t.Duration
	if frac > 1 {
		frac = 1
	}
	alpha := frac
	if t.Phase == 2 {
		alpha = 1 - frac
	}
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(t.overlay, op)
}
