package obj

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/njhgames/platform-adventure/assets"
	"github.com/njhgames/platform-adventure/common"
	"golang.org/x/image/colornames"
)

// levelData is the on-disk JSON shape of a level.
type levelData struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	SpawnX float64 `json:"spawn_x"`
	SpawnY float64 `json:"spawn_y"`

	UnlockThreshold int     `json:"unlock_threshold"`
	TimeLimit       float64 `json:"time_limit,omitempty"`

	Background []backgroundLayer `json:"background,omitempty"`

	Walls []struct {
		X, Y, W, H float64
	} `json:"walls"`

	Hazards []struct {
		X, Y       float64
		Axis       string  `json:"axis"` // "horizontal" or "vertical"
		HalfExtent float64 `json:"half_extent"`
		Speed      float64
		Points     int
		Kind       string `json:"kind,omitempty"`
	} `json:"hazards,omitempty"`

	Collectibles []struct {
		X, Y float64
		Kind string `json:"kind"` // coin, gem, heart
	} `json:"collectibles,omitempty"`

	Goals []struct {
		X, Y float64
	} `json:"goals"`

	Secrets []struct {
		X, Y, W, H float64
		Points     int
	} `json:"secrets,omitempty"`
}

// backgroundLayer describes one parallax backdrop image. Factor 0 is fixed
// to the camera, 1 scrolls with the world.
type backgroundLayer struct {
	Image  string  `json:"image"`
	Factor float64 `json:"factor"`
}

// Level holds one loaded stage: static geometry, the entity roster, and the
// spawn point. The entity slices are live game state; reloading the level
// data resets them.
type Level struct {
	Name          string
	Width, Height float64
	Spawn         common.Vec2
	TimeLimit     float64 // seconds; 0 means use the configured default
	Background    []backgroundLayer

	Walls        []*Wall
	Hazards      []*Hazard
	Collectibles []*Collectible
	Secrets      []*Secret
	Goal         *Goal

	World *CollisionWorld
}

// LoadLevel parses level JSON. A level must have positive dimensions and
// exactly one goal.
func LoadLevel(b []byte) (*Level, error) {
	var d levelData
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("level: parse: %w", err)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("level %q: invalid dimensions %gx%g", d.Name, d.Width, d.Height)
	}
	if len(d.Goals) != 1 {
		return nil, fmt.Errorf("level %q: want exactly 1 goal, have %d", d.Name, len(d.Goals))
	}

	lvl := &Level{
		Name:       d.Name,
		Width:      d.Width,
		Height:     d.Height,
		Spawn:      common.Vec2{X: d.SpawnX, Y: d.SpawnY},
		TimeLimit:  d.TimeLimit,
		Background: d.Background,
	}

	for _, w := range d.Walls {
		lvl.Walls = append(lvl.Walls, NewWall(w.X, w.Y, w.W, w.H))
	}
	for _, h := range d.Hazards {
		axis := PatrolHorizontal
		if h.Axis == "vertical" {
			axis = PatrolVertical
		}
		lvl.Hazards = append(lvl.Hazards, NewHazard(h.X, h.Y, axis, h.HalfExtent, h.Speed, h.Points, h.Kind))
	}
	for _, c := range d.Collectibles {
		kind, err := ParseCollectibleKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", d.Name, err)
		}
		lvl.Collectibles = append(lvl.Collectibles, NewCollectible(c.X, c.Y, kind))
	}
	for _, s := range d.Secrets {
		lvl.Secrets = append(lvl.Secrets, NewSecret(common.Rect{X: s.X, Y: s.Y, Width: s.W, Height: s.H}, s.Points))
	}
	lvl.Goal = NewGoal(d.Goals[0].X, d.Goals[0].Y, d.UnlockThreshold)
	lvl.World = NewCollisionWorld(lvl)
	return lvl, nil
}

// CollectiblesTotal returns how many collectibles the level started with.
func (l *Level) CollectiblesTotal() int {
	return len(l.Collectibles)
}

// DrawBackground paints the parallax backdrop layers, then a flat sky color
// when no layers are configured.
func (l *Level) DrawBackground(screen *ebiten.Image, camX, camY float64) {
	if len(l.Background) == 0 {
		screen.Fill(colornames.Skyblue)
		return
	}
	b := screen.Bounds()
	for _, layer := range l.Background {
		img := assets.Image(layer.Image, colornames.Skyblue)
		iw := float64(img.Bounds().Dx())
		ih := float64(img.Bounds().Dy())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(b.Dx())/iw, float64(b.Dy())/ih)
		// wrap horizontally so the layer tiles across wide levels
		offX := -camX * layer.Factor
		offX = offX - float64(b.Dx())*float64(int(offX/float64(b.Dx())))
		op.GeoM.Translate(offX, 0)
		screen.DrawImage(img, op)
		if offX > 0 {
			op2 := &ebiten.DrawImageOptions{}
			op2.GeoM.Scale(float64(b.Dx())/iw, float64(b.Dy())/ih)
			op2.GeoM.Translate(offX-float64(b.Dx()), 0)
			screen.DrawImage(img, op2)
		} else if offX < 0 {
			op2 := &ebiten.DrawImageOptions{}
			op2.GeoM.Scale(float64(b.Dx())/iw, float64(b.Dy())/ih)
			op2.GeoM.Translate(offX+float64(b.Dx()), 0)
			screen.DrawImage(img, op2)
		}
	}
}
