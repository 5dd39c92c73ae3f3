// Package assets is the asset provider. It resolves logical sprite names to
// images loaded from the assets directory, and substitutes deterministic
// solid-color placeholders when a file is missing or malformed so gameplay
// is never blocked on art.
package assets

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// Dir is the on-disk root searched for asset files. Overridable for tests
// and custom installs.
var Dir = "assets"

var (
	mu        sync.Mutex
	imgCache  = map[string]*ebiten.Image{}
	fillCache = map[color.RGBA]*ebiten.Image{}
	warned    = map[string]bool{}
)

// LoadImage loads an image by assets-relative path. The result is cached.
func LoadImage(path string) (*ebiten.Image, error) {
	mu.Lock()
	defer mu.Unlock()
	if img, ok := imgCache[path]; ok {
		return img, nil
	}
	b, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(path)))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	eimg := ebiten.NewImageFromImage(img)
	imgCache[path] = eimg
	return eimg, nil
}

// Image resolves a logical sprite name, falling back to a solid fill of the
// given color when the file is absent. The fallback is logged once per name.
func Image(path string, fallback color.RGBA) *ebiten.Image {
	img, err := LoadImage(path)
	if err == nil {
		return img
	}
	mu.Lock()
	if !warned[path] {
		warned[path] = true
		log.Warn("asset missing, using placeholder", "path", path, "err", err)
	}
	mu.Unlock()
	return Fill(fallback)
}

// Fill returns a cached 1x1 solid-color image, scaled at draw time.
func Fill(c color.RGBA) *ebiten.Image {
	mu.Lock()
	defer mu.Unlock()
	if img, ok := fillCache[c]; ok {
		return img
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	fillCache[c] = img
	return img
}

// Sheet loads a horizontal sprite sheet for the named animation state of an
// entity (e.g. entity "player", state "run" -> player/Run.png). Returns nil
// when the sheet is missing; callers draw a placeholder instead.
func Sheet(entity, state string) *ebiten.Image {
	path := filepath.ToSlash(filepath.Join(entity, stateFile(state)))
	img, err := LoadImage(path)
	if err != nil {
		mu.Lock()
		if !warned[path] {
			warned[path] = true
			log.Debug("sprite sheet missing", "path", path)
		}
		mu.Unlock()
		return nil
	}
	return img
}

func stateFile(state string) string {
	if state == "" {
		return "Idle.png"
	}
	// sheet files are capitalized: idle -> Idle.png
	b := []byte(state)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b) + ".png"
}

// Placeholder colors for the entity variants, used when sprite art is absent.
var (
	PlayerColor      = colornames.Green
	HazardColor      = colornames.Red
	CollectibleColor = colornames.Orange
	RareColor        = colornames.Pink
	HeartColor       = colornames.Crimson
	GoalColor        = colornames.Blue
	GoalUnlocked     = colornames.Limegreen
	WallColor        = colornames.White
	SecretColor      = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0x55}
)
