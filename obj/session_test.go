package obj

import (
	"testing"

	"github.com/njhgames/platform-adventure/common"
	"github.com/njhgames/platform-adventure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60.0

// testLevel builds a simple closed arena: floor at y=700, walls on either
// side, goal far to the right.
func testLevel() *Level {
	lvl := &Level{
		Name:   "arena",
		Width:  2000,
		Height: 800,
		Spawn:  common.Vec2{X: 100, Y: 646},
	}
	lvl.Walls = []*Wall{
		NewWall(0, 700, 2000, 20),
		NewWall(-20, 0, 20, 720),
		NewWall(2000, 0, 20, 720),
	}
	lvl.Goal = NewGoal(1900, 700, 7)
	lvl.World = NewCollisionWorld(lvl)
	return lvl
}

func newTestSession(lvl *Level) *Session {
	return NewSession(lvl, NewInput(), config.Default(), 1280, 800)
}

func settle(s *Session, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Update(dt)
	}
}

func TestCollectiblePickupScoresOnce(t *testing.T) {
	lvl := testLevel()
	coin := NewCollectible(100, 655, CollectibleCoin)
	gem := NewCollectible(110, 655, CollectibleGem)
	heart := NewCollectible(120, 655, CollectibleHeart)
	lvl.Collectibles = []*Collectible{coin, gem, heart}

	s := newTestSession(lvl)
	settle(s, 10)

	assert.Equal(t, 60, s.Player.Score, "coin 10 + gem 20 + heart 30")
	assert.Empty(t, lvl.Collectibles, "picked up collectibles are removed")

	// nothing more to collect; score stays put
	settle(s, 10)
	assert.Equal(t, 60, s.Player.Score)
}

func TestHeartHealsOneLife(t *testing.T) {
	lvl := testLevel()
	heart := NewCollectible(400, 655, CollectibleHeart)
	lvl.Collectibles = []*Collectible{heart}

	s := newTestSession(lvl)
	s.Player.Health.Current = 1
	s.Player.Rect.X = 400
	settle(s, 5)

	assert.Equal(t, 2, s.Player.Health.Current)
}

func TestInvincibilityWindowBlocksRepeatDamage(t *testing.T) {
	lvl := testLevel()
	h := NewHazard(118, 673, PatrolHorizontal, 0, 0, 5, "slime")
	// oversized so knockback cannot push the player out of overlap
	h.Rect = common.Rect{X: 0, Y: 500, Width: 600, Height: 300}
	lvl.Hazards = []*Hazard{h}

	s := newTestSession(lvl)
	require.Equal(t, 3, s.Player.Health.Current)

	s.Update(dt)
	assert.Equal(t, 2, s.Player.Health.Current, "first overlap costs one life")

	// window is 0.85s; 48 more ticks is 0.8s of simulated time
	for i := 0; i < 48; i++ {
		s.Update(dt)
		assert.Equal(t, 2, s.Player.Health.Current, "tick %d inside invincibility window", i)
	}

	// once the window closes the overlap costs another life
	settle(s, 20)
	assert.Equal(t, 1, s.Player.Health.Current)
}

func TestGoalUnlocksAtThresholdNeverBefore(t *testing.T) {
	lvl := testLevel()
	s := newTestSession(lvl)

	for score := 0; score < 7; score++ {
		s.Player.Score = score
		s.Update(dt)
		assert.False(t, lvl.Goal.Unlocked, "score %d below threshold", score)
	}

	s.Player.Score = 7
	s.Update(dt)
	assert.True(t, lvl.Goal.Unlocked)
}

func TestUnlockedGoalOverlapEndsLevel(t *testing.T) {
	lvl := testLevel()
	s := newTestSession(lvl)
	s.Player.Score = 7

	// walk the player into the goal
	s.Player.Rect.X = lvl.Goal.Rect.X
	s.Player.Rect.Y = lvl.Goal.Rect.Y

	status := s.Update(dt)
	assert.Equal(t, StatusGoalReached, status)
}

func TestLockedGoalOverlapDoesNothing(t *testing.T) {
	lvl := testLevel()
	s := newTestSession(lvl)

	s.Player.Rect.X = lvl.Goal.Rect.X
	s.Player.Rect.Y = lvl.Goal.Rect.Y

	status := s.Update(dt)
	assert.Equal(t, StatusPlaying, status)
	assert.False(t, lvl.Goal.Unlocked)
}

func TestSecretRewardsExactlyOnce(t *testing.T) {
	lvl := testLevel()
	sec := NewSecret(common.Rect{X: 80, Y: 600, Width: 100, Height: 100}, 200)
	lvl.Secrets = []*Secret{sec}

	s := newTestSession(lvl)
	settle(s, 5)
	assert.Equal(t, 200, s.Player.Score)
	assert.True(t, sec.Discovered)

	settle(s, 60)
	assert.Equal(t, 200, s.Player.Score, "re-entry never rewards again")
	assert.True(t, sec.RecentlyDiscovered(5.0))
}

func TestStompKillsHazardAndRespawns(t *testing.T) {
	lvl := testLevel()
	h := NewHazard(300, 400, PatrolHorizontal, 0, 0, 15, "bat")
	lvl.Hazards = []*Hazard{h}

	s := newTestSession(lvl)
	p := s.Player
	// drop the player onto the hazard's top edge
	p.Rect.X = h.Rect.CenterX() - p.Rect.Width/2
	p.Rect.Y = h.Rect.Top() - p.Rect.Height - 2
	p.VelY = 300

	s.Update(dt)

	assert.False(t, h.Alive, "stomp kills the hazard")
	assert.Equal(t, 15, p.Score)
	assert.Less(t, p.VelY, 0.0, "player bounces off the stomp")
	assert.Equal(t, 3, p.Health.Current, "stomp never damages the player")

	// the respawn rule always applies: the hazard comes back at home
	settle(s, int(hazardRespawnAfter/dt)+10)
	assert.True(t, h.Alive)
	assert.Equal(t, 300.0, h.Rect.CenterX())
	assert.Equal(t, 400.0, h.Rect.CenterY())
}

func TestDeathReportsGameOverOnceAfterDelay(t *testing.T) {
	cfg := config.Default()
	cfg.MaxLives = 1
	lvl := testLevel()
	h := NewHazard(118, 673, PatrolHorizontal, 0, 0, 5, "slime")
	h.Rect = common.Rect{X: 0, Y: 500, Width: 600, Height: 300}
	lvl.Hazards = []*Hazard{h}

	s := NewSession(lvl, NewInput(), cfg, 1280, 800)
	s.Update(dt)
	require.True(t, s.Player.Health.Dead)

	// the death animation delay holds off the gameover report
	deathTicks := int(cfg.DeathDuration/dt) - 5
	for i := 0; i < deathTicks; i++ {
		assert.Equal(t, StatusPlaying, s.Update(dt), "tick %d still inside death delay", i)
	}

	var done bool
	for i := 0; i < 30; i++ {
		if s.Update(dt) == StatusDead {
			done = true
			break
		}
	}
	assert.True(t, done, "gameover must be reported after the death delay")
}

func TestTimeLimitExpiryReportsTimeUp(t *testing.T) {
	lvl := testLevel()
	lvl.TimeLimit = 0.05
	s := newTestSession(lvl)

	var status SessionStatus
	for i := 0; i < 10; i++ {
		status = s.Update(dt)
		if status != StatusPlaying {
			break
		}
	}
	assert.Equal(t, StatusTimeUp, status)
}

func TestFallOffWorldCostsLifeAndRespawns(t *testing.T) {
	lvl := &Level{
		Name:   "pit",
		Width:  2000,
		Height: 800,
		Spawn:  common.Vec2{X: 100, Y: 646},
	}
	// floor only under the spawn; the rest is a pit
	lvl.Walls = []*Wall{NewWall(0, 700, 300, 20)}
	lvl.Goal = NewGoal(1900, 700, 7)
	lvl.World = NewCollisionWorld(lvl)

	s := newTestSession(lvl)
	s.Player.Rect.X = 800 // over the pit
	s.Player.Rect.Y = 600

	for i := 0; i < 300 && s.Player.Health.Current == 3; i++ {
		s.Update(dt)
	}

	assert.Equal(t, 2, s.Player.Health.Current)
	assert.Equal(t, lvl.Spawn.X, s.Player.Rect.X, "respawned at the spawn point")
	assert.Equal(t, lvl.Spawn.Y, s.Player.Rect.Y)
}

func TestSwapLevelPreservesScoreAndLives(t *testing.T) {
	first := testLevel()
	s := newTestSession(first)
	s.Player.Score = 120
	s.Player.Health.Current = 2
	s.Player.Health.InvincibleFor = 0.5

	second := testLevel()
	second.Name = "arena2"
	s.SwapLevel(second)

	assert.Equal(t, 120, s.Player.Score)
	assert.Equal(t, 2, s.Player.Health.Current)
	assert.False(t, s.Player.Health.IsInvincible(), "transient flags reset on level change")
	assert.Equal(t, second.Spawn.X, s.Player.Rect.X)
	assert.Same(t, second.World, s.Player.World)
}
