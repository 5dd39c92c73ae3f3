package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/njhgames/platform-adventure/assets"
	"github.com/njhgames/platform-adventure/common"
)

// Secret is a hidden region. Entering it the first time awards Points and
// marks it discovered; re-entering never awards again. A short flash window
// after discovery drives HUD feedback.
type Secret struct {
	Rect       common.Rect
	Points     int
	Discovered bool

	sinceFound float64
}

func NewSecret(r common.Rect, points int) *Secret {
	return &Secret{Rect: r, Points: points}
}

// Discover marks the secret found and reports whether this call was the
// first discovery.
func (s *Secret) Discover() bool {
	if s.Discovered {
		return false
	}
	s.Discovered = true
	s.sinceFound = 0
	return true
}

func (s *Secret) Update(dt float64) {
	if s.Discovered {
		s.sinceFound += dt
	}
}

// RecentlyDiscovered reports whether discovery happened within the last
// `window` seconds.
func (s *Secret) RecentlyDiscovered(window float64) bool {
	return s.Discovered && s.sinceFound < window
}

// Draw renders nothing for undiscovered secrets; after discovery the region
// flashes briefly so the player can see what they found.
func (s *Secret) Draw(screen *ebiten.Image, camX, camY float64, window float64) {
	if !s.RecentlyDiscovered(window) {
		return
	}
	img := assets.Fill(assets.SecretColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Rect.Width, s.Rect.Height)
	op.GeoM.Translate(s.Rect.X-camX, s.Rect.Y-camY)
	screen.DrawImage(img, op)
}
