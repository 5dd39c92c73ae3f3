package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 3, Height: 3}, true},
		{"touching_right_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"touching_bottom_edge", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"disjoint", Rect{X: 50, Y: 50, Width: 5, Height: 5}, false},
		{"horizontal_overlap_only", Rect{X: 5, Y: 20, Width: 10, Height: 5}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(base))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 3, Y: 7, Width: 10, Height: 20}
	assert.Equal(t, 3.0, r.Left())
	assert.Equal(t, 13.0, r.Right())
	assert.Equal(t, 7.0, r.Top())
	assert.Equal(t, 27.0, r.Bottom())
	assert.Equal(t, 8.0, r.CenterX())
	assert.Equal(t, 17.0, r.CenterY())
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(9.9, 9.9))
	assert.False(t, r.Contains(10, 10))
	assert.False(t, r.Contains(-0.1, 5))
}

func TestNormalize(t *testing.T) {
	nx, ny, l := Normalize(3, 4)
	assert.InDelta(t, 0.6, nx, 1e-9)
	assert.InDelta(t, 0.8, ny, 1e-9)
	assert.InDelta(t, 5.0, l, 1e-9)

	nx, ny, l = Normalize(0, 0)
	assert.Zero(t, nx)
	assert.Zero(t, ny)
	assert.Zero(t, l)
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(99, 0, 5))
	assert.Equal(t, 0.0, Clamp(-3, 0, 5))
	assert.Equal(t, 2.0, Clamp(2, 0, 5))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
}
