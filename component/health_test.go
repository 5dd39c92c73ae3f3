package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthDamageAndInvincibility(t *testing.T) {
	h := NewHealth(3)

	assert.True(t, h.ApplyDamage(0.85))
	assert.Equal(t, 2, h.Current)
	assert.True(t, h.IsInvincible())

	// damage inside the window never lands
	for i := 0; i < 10; i++ {
		assert.False(t, h.ApplyDamage(0.85))
	}
	assert.Equal(t, 2, h.Current)

	// tick just short of the window: still invincible
	h.Tick(0.84)
	assert.False(t, h.ApplyDamage(0.85))
	assert.Equal(t, 2, h.Current)

	// window closes, damage lands again
	h.Tick(0.02)
	assert.True(t, h.ApplyDamage(0.85))
	assert.Equal(t, 1, h.Current)
}

func TestHealthDeath(t *testing.T) {
	h := NewHealth(1)
	died := false
	h.OnDeath = func(*Health) { died = true }

	assert.True(t, h.ApplyDamage(0.5))
	assert.True(t, h.Dead)
	assert.True(t, died)
	assert.False(t, h.IsAlive())

	// the dead take no further damage
	h.Tick(1)
	assert.False(t, h.ApplyDamage(0.5))
}

func TestHealthHealCapsAtMax(t *testing.T) {
	h := NewHealth(3)
	h.ApplyDamage(0)
	h.Heal(5)
	assert.Equal(t, 3, h.Current)
}

func TestHealthReset(t *testing.T) {
	h := NewHealth(2)
	h.ApplyDamage(0.85)
	h.ApplyDamage(0.85) // blocked by window
	h.Tick(1)
	h.ApplyDamage(0.85)
	assert.True(t, h.Dead)

	h.Reset()
	assert.False(t, h.Dead)
	assert.Equal(t, 2, h.Current)
	assert.False(t, h.IsInvincible())
}
