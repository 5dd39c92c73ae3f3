package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHazardPatrolFlipsExactlyAtBoundary(t *testing.T) {
	h := NewHazard(100, 50, PatrolHorizontal, 40, 100, 5, "slime")
	assert.Equal(t, 1.0, h.Direction)

	// a step that would overshoot clamps to home+halfExtent and flips
	h.Update(1.0) // 100 px at speed 100, extent is only 40
	assert.Equal(t, 140.0, h.Rect.CenterX())
	assert.Equal(t, -1.0, h.Direction)

	// and the same on the way back
	h.Update(1.0)
	assert.Equal(t, 60.0, h.Rect.CenterX())
	assert.Equal(t, 1.0, h.Direction)
}

func TestHazardPatrolNeverLeavesRange(t *testing.T) {
	h := NewHazard(200, 80, PatrolHorizontal, 55, 130, 15, "bat")
	for i := 0; i < 1000; i++ {
		h.Update(0.016)
		cx := h.Rect.CenterX()
		assert.GreaterOrEqual(t, cx, 145.0)
		assert.LessOrEqual(t, cx, 255.0)
		assert.Equal(t, 80.0, h.Rect.CenterY(), "horizontal patrol must not move vertically")
	}
}

func TestHazardVerticalPatrol(t *testing.T) {
	h := NewHazard(100, 200, PatrolVertical, 60, 120, 15, "bat")
	for i := 0; i < 1000; i++ {
		h.Update(0.016)
		cy := h.Rect.CenterY()
		assert.GreaterOrEqual(t, cy, 140.0)
		assert.LessOrEqual(t, cy, 260.0)
		assert.Equal(t, 100.0, h.Rect.CenterX(), "vertical patrol must not move horizontally")
	}
}

func TestHazardDeadDoesNotMove(t *testing.T) {
	h := NewHazard(100, 50, PatrolHorizontal, 40, 100, 5, "slime")
	h.Alive = false
	before := h.Rect
	h.Update(1.0)
	assert.Equal(t, before, h.Rect)
}

func TestHazardFrameInBounds(t *testing.T) {
	h := NewHazard(0, 0, PatrolHorizontal, 10, 10, 5, "spider")
	for i := 0; i < 200; i++ {
		h.Update(0.05)
		assert.GreaterOrEqual(t, h.Frame(), 0)
		assert.Less(t, h.Frame(), 4)
	}
}
