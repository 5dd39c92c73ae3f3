package component

import "math"

// AnimState identifies one animation of an entity. States map one-to-one to
// rows or files in the entity's sprite set.
type AnimState string

const (
	AnimIdle      AnimState = "idle"
	AnimRun       AnimState = "run"
	AnimJump      AnimState = "jump"
	AnimFall      AnimState = "fall"
	AnimHit       AnimState = "hit"
	AnimDash      AnimState = "dash"
	AnimWallslide AnimState = "wallslide"
	AnimDeath     AnimState = "death"
)

// Clip describes one animation: how many frames it has, how long each frame
// shows, and whether it wraps. Non-looping clips freeze on their last frame.
type Clip struct {
	FrameCount int
	Rate       float64 // seconds per frame
	Loop       bool
}

// Animator advances a set of named clips. One clip is current at a time;
// switching clips resets the frame index and the per-state timer.
type Animator struct {
	clips   map[AnimState]Clip
	current AnimState
	elapsed float64
}

// NewAnimator creates an Animator starting in the given state. Unknown states
// passed to Set later fall back to a single-frame clip so a missing sprite
// sheet never breaks the game logic.
func NewAnimator(clips map[AnimState]Clip, initial AnimState) *Animator {
	if clips == nil {
		clips = map[AnimState]Clip{}
	}
	return &Animator{clips: clips, current: initial}
}

// DefaultClips returns the player clip table. Frame counts follow the sprite
// sheets; rates match the original tuning (dash fastest, death slowest).
func DefaultClips() map[AnimState]Clip {
	return map[AnimState]Clip{
		AnimIdle:      {FrameCount: 6, Rate: 0.1, Loop: true},
		AnimRun:       {FrameCount: 8, Rate: 0.07, Loop: true},
		AnimJump:      {FrameCount: 2, Rate: 0.1, Loop: true},
		AnimFall:      {FrameCount: 2, Rate: 0.1, Loop: true},
		AnimHit:       {FrameCount: 4, Rate: 0.08, Loop: true},
		AnimDash:      {FrameCount: 4, Rate: 0.05, Loop: true},
		AnimWallslide: {FrameCount: 2, Rate: 0.1, Loop: true},
		AnimDeath:     {FrameCount: 8, Rate: 0.15, Loop: false},
	}
}

// State returns the current animation state.
func (a *Animator) State() AnimState {
	return a.current
}

// Set switches to the given state. Switching to the already-current state is
// a no-op so callers can resolve the state every frame without restarting
// the animation.
func (a *Animator) Set(state AnimState) {
	if a == nil || state == a.current {
		return
	}
	a.current = state
	a.elapsed = 0
}

// Update advances the current clip's timer by dt seconds.
func (a *Animator) Update(dt float64) {
	if a == nil || dt <= 0 {
		return
	}
	a.elapsed += dt
}

// Frame returns the current frame index, always within
// [0, FrameCount-1] for the current clip.
func (a *Animator) Frame() int {
	clip, ok := a.clips[a.current]
	if !ok || clip.FrameCount <= 1 || clip.Rate <= 0 {
		return 0
	}
	idx := int(math.Floor(a.elapsed / clip.Rate))
	if clip.Loop {
		return idx % clip.FrameCount
	}
	if idx >= clip.FrameCount {
		return clip.FrameCount - 1
	}
	return idx
}

// Finished reports whether a non-looping clip has reached its last frame.
// Looping clips never finish.
func (a *Animator) Finished() bool {
	clip, ok := a.clips[a.current]
	if !ok || clip.Loop || clip.FrameCount <= 0 || clip.Rate <= 0 {
		return false
	}
	return a.elapsed >= clip.Rate*float64(clip.FrameCount)
}

// FrameCount returns the frame count of the current clip (at least 1).
func (a *Animator) FrameCount() int {
	clip, ok := a.clips[a.current]
	if !ok || clip.FrameCount <= 0 {
		return 1
	}
	return clip.FrameCount
}
