package component

// Health tracks lives and the invincibility window for any entity that can
// take damage.
type Health struct {
	Max     int
	Current int
	// InvincibleFor counts down in seconds; damage is ignored while > 0.
	InvincibleFor float64
	Dead          bool

	OnDamage func(h *Health)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// IsInvincible reports whether the invincibility window is open.
func (h *Health) IsInvincible() bool {
	return h != nil && h.InvincibleFor > 0
}

// ApplyDamage removes one life and opens an invincibility window of the given
// duration. Damage during an open window is ignored. Returns true if damage
// was applied.
func (h *Health) ApplyDamage(invincibleFor float64) bool {
	if h == nil || h.Dead || h.IsInvincible() {
		return false
	}
	h.Current--
	if h.Current < 0 {
		h.Current = 0
	}
	h.InvincibleFor = invincibleFor
	if h.OnDamage != nil {
		h.OnDamage(h)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h)
		}
	}
	return true
}

// Heal restores lives up to Max.
func (h *Health) Heal(amount int) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Tick advances the invincibility timer by dt seconds.
func (h *Health) Tick(dt float64) {
	if h == nil || h.InvincibleFor <= 0 {
		return
	}
	h.InvincibleFor -= dt
	if h.InvincibleFor < 0 {
		h.InvincibleFor = 0
	}
}

// Reset restores full lives and clears death and invincibility state.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.InvincibleFor = 0
	h.Dead = false
}
