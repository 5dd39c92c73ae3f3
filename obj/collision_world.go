package obj

import (
	"github.com/njhgames/platform-adventure/common"
)

const contactEps = 0.001

type wallSide int

const (
	WALL_NONE wallSide = iota
	WALL_LEFT
	WALL_RIGHT
)

// CollisionWorld resolves moving rectangles against a level's static solid
// geometry. Movement is axis-separated: callers move fully along X and clamp,
// then fully along Y and clamp, which avoids tunneling through corners.
type CollisionWorld struct {
	walls []common.Rect
}

func NewCollisionWorld(level *Level) *CollisionWorld {
	cw := &CollisionWorld{}
	if level != nil {
		for _, w := range level.Walls {
			cw.walls = append(cw.walls, w.Rect)
		}
	}
	return cw
}

// MoveX displaces r by dx and clamps against any intersecting solid on the X
// axis. Returns the resolved rect and whether a solid was hit.
func (cw *CollisionWorld) MoveX(r common.Rect, dx float64) (common.Rect, bool) {
	r.X += dx
	hit := false
	for _, w := range cw.walls {
		if !r.Intersects(w) {
			continue
		}
		hit = true
		if dx > 0 {
			r.X = w.X - r.Width
		} else if dx < 0 {
			r.X = w.X + w.Width
		}
	}
	return r, hit
}

// MoveY displaces r by dy and clamps against any intersecting solid on the Y
// axis. landed is true when the rect was clamped onto a solid's top edge
// while moving downward.
func (cw *CollisionWorld) MoveY(r common.Rect, dy float64) (resolved common.Rect, hit, landed bool) {
	r.Y += dy
	for _, w := range cw.walls {
		if !r.Intersects(w) {
			continue
		}
		hit = true
		if dy > 0 {
			r.Y = w.Y - r.Height
			landed = true
		} else if dy < 0 {
			r.Y = w.Y + w.Height
		}
	}
	return r, hit, landed
}

// IsGrounded returns true when r's bottom edge rests on a solid's top edge
// (within a contact epsilon) while horizontally overlapping it.
func (cw *CollisionWorld) IsGrounded(r common.Rect) bool {
	bottom := r.Bottom()
	for _, w := range cw.walls {
		if r.Right() <= w.Left() || r.Left() >= w.Right() {
			continue
		}
		if bottom >= w.Top()-contactEps && bottom <= w.Top()+contactEps {
			return true
		}
	}
	return false
}

// IsTouchingWall returns which side of r is flush against a solid, for
// wall-slide detection.
func (cw *CollisionWorld) IsTouchingWall(r common.Rect) wallSide {
	for _, w := range cw.walls {
		if r.Bottom() <= w.Top() || r.Top() >= w.Bottom() {
			continue
		}
		if r.Left() >= w.Right()-contactEps && r.Left() <= w.Right()+contactEps {
			return WALL_LEFT
		}
		if r.Right() >= w.Left()-contactEps && r.Right() <= w.Left()+contactEps {
			return WALL_RIGHT
		}
	}
	return WALL_NONE
}

// LandedOn is the one-frame crossing test for landing on top of a target:
// the mover must be falling, its bottom edge must have been at or above the
// target's top before displacement and past it after, while horizontally
// overlapping. This disambiguates landing-on-top from side collision, which
// a plain overlap check cannot.
func LandedOn(prev, cur common.Rect, vy float64, target common.Rect) bool {
	if vy <= 0 {
		return false
	}
	if cur.Right() <= target.Left() || cur.Left() >= target.Right() {
		return false
	}
	return prev.Bottom() <= target.Top()+contactEps && cur.Bottom() > target.Top()
}
