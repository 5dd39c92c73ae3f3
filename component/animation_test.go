package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimatorFrameAdvancesByRate(t *testing.T) {
	a := NewAnimator(map[AnimState]Clip{
		AnimRun: {FrameCount: 4, Rate: 0.1, Loop: true},
	}, AnimRun)

	assert.Equal(t, 0, a.Frame())
	a.Update(0.05)
	assert.Equal(t, 0, a.Frame())
	a.Update(0.05)
	assert.Equal(t, 1, a.Frame())
	a.Update(0.25)
	assert.Equal(t, 3, a.Frame())
	// wraps modulo the frame count
	a.Update(0.1)
	assert.Equal(t, 0, a.Frame())
}

func TestAnimatorFrameAlwaysInBounds(t *testing.T) {
	clips := DefaultClips()
	for state, clip := range clips {
		a := NewAnimator(clips, state)
		for i := 0; i < 500; i++ {
			a.Update(0.016)
			f := a.Frame()
			assert.GreaterOrEqual(t, f, 0, "state %s", state)
			assert.Less(t, f, clip.FrameCount, "state %s", state)
		}
	}
}

func TestAnimatorSetResetsTimer(t *testing.T) {
	a := NewAnimator(DefaultClips(), AnimIdle)
	a.Update(1.0)
	assert.NotEqual(t, 0, a.Frame())

	a.Set(AnimRun)
	assert.Equal(t, AnimRun, a.State())
	assert.Equal(t, 0, a.Frame())
}

func TestAnimatorSetSameStateKeepsTimer(t *testing.T) {
	a := NewAnimator(DefaultClips(), AnimRun)
	a.Update(0.2)
	before := a.Frame()
	a.Set(AnimRun)
	assert.Equal(t, before, a.Frame())
}

func TestAnimatorDeathFreezesAndFinishes(t *testing.T) {
	a := NewAnimator(DefaultClips(), AnimDeath)
	clip := DefaultClips()[AnimDeath]

	assert.False(t, a.Finished())
	a.Update(clip.Rate * float64(clip.FrameCount) * 2)
	assert.Equal(t, clip.FrameCount-1, a.Frame())
	assert.True(t, a.Finished())

	// stays frozen no matter how much more time passes
	a.Update(10)
	assert.Equal(t, clip.FrameCount-1, a.Frame())
}

func TestAnimatorUnknownStateIsSafe(t *testing.T) {
	a := NewAnimator(nil, AnimIdle)
	a.Update(5)
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Finished())
}
