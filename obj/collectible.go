package obj

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/njhgames/platform-adventure/assets"
	"github.com/njhgames/platform-adventure/common"
)

// CollectibleKind categorizes a collectible and fixes its point value.
type CollectibleKind string

const (
	CollectibleCoin  CollectibleKind = "coin"  // common
	CollectibleGem   CollectibleKind = "gem"   // rare
	CollectibleHeart CollectibleKind = "heart" // health
)

// ParseCollectibleKind validates a kind name from level data.
func ParseCollectibleKind(s string) (CollectibleKind, error) {
	switch k := CollectibleKind(s); k {
	case CollectibleCoin, CollectibleGem, CollectibleHeart:
		return k, nil
	default:
		return "", fmt.Errorf("unknown collectible kind %q", s)
	}
}

// PointValue returns the score value for the kind.
func (k CollectibleKind) PointValue() int {
	switch k {
	case CollectibleGem:
		return 20
	case CollectibleHeart:
		return 30
	default:
		return 10
	}
}

// Collectible is an any-overlap trigger. Picking it up removes it and adds
// its point value to the score. The floating offset is purely visual; the
// hitbox never moves.
type Collectible struct {
	Rect  common.Rect
	Kind  CollectibleKind
	Taken bool

	phase float64
}

func NewCollectible(x, y float64, kind CollectibleKind) *Collectible {
	return &Collectible{
		Rect: common.Rect{X: x, Y: y, Width: 30, Height: 30},
		Kind: kind,
		// desynchronize floats of nearby collectibles
		phase: float64(int(x)%7) * 0.3,
	}
}

// Points returns the score awarded on pickup.
func (c *Collectible) Points() int {
	return c.Kind.PointValue()
}

// floatOffset is the sinusoidal vertical draw offset at time now (seconds).
func (c *Collectible) floatOffset(now float64) float64 {
	return math.Sin(now*2.0+c.phase) * 5.0
}

func (c *Collectible) Draw(screen *ebiten.Image, camX, camY, now float64) {
	if c.Taken {
		return
	}
	var fallback color.RGBA
	switch c.Kind {
	case CollectibleGem:
		fallback = assets.RareColor
	case CollectibleHeart:
		fallback = assets.HeartColor
	default:
		fallback = assets.CollectibleColor
	}
	img := assets.Image(string(c.Kind)+".png", fallback)
	op := &ebiten.DrawImageOptions{}
	bw := float64(img.Bounds().Dx())
	bh := float64(img.Bounds().Dy())
	op.GeoM.Scale(c.Rect.Width/bw, c.Rect.Height/bh)
	op.GeoM.Translate(c.Rect.X-camX, c.Rect.Y+c.floatOffset(now)-camY)
	screen.DrawImage(img, op)
}
