package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec holds the game tuning values resolved once at startup. Every field has
// a default so a missing or partial config file still produces a playable
// game.
type Spec struct {
	// Physics
	Gravity      float64 `yaml:"gravity"`        // px/s^2
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // px/s

	// Player
	PlayerSpeed    float64 `yaml:"player_speed"`    // px/s
	JumpImpulse    float64 `yaml:"jump_impulse"`    // px/s, applied upward
	MaxLives       int     `yaml:"max_lives"`
	InvincibleFor  float64 `yaml:"invincible_for"`  // seconds
	KnockbackForce float64 `yaml:"knockback_force"` // px/s
	DeathDuration  float64 `yaml:"death_duration"`  // seconds of death animation

	// Session
	TimeLimit           float64 `yaml:"time_limit"`            // seconds per level
	CelebrationDuration float64 `yaml:"celebration_duration"`  // seconds at goal
	SecretFlashDuration float64 `yaml:"secret_flash_duration"` // seconds of discovery feedback
}

// Default returns the built-in tuning, matching the original game constants.
func Default() Spec {
	return Spec{
		Gravity:             1800,
		MaxFallSpeed:        1200,
		PlayerSpeed:         300,
		JumpImpulse:         600,
		MaxLives:            3,
		InvincibleFor:       0.85,
		KnockbackForce:      520,
		DeathDuration:       2.0,
		TimeLimit:           60,
		CelebrationDuration: 5.0,
		SecretFlashDuration: 5.0,
	}
}

// Load reads a YAML spec from path, overlaying it on the defaults. A missing
// file is not an error; the defaults are returned unchanged.
func Load(path string) (Spec, error) {
	spec := Default()
	if path == "" {
		return spec, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return spec, nil
		}
		return spec, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	spec.applyFloors()
	return spec, nil
}

// applyFloors clamps nonsensical values back to defaults so a bad config
// can't produce a division by zero or an unwinnable game.
func (s *Spec) applyFloors() {
	def := Default()
	if s.Gravity <= 0 {
		s.Gravity = def.Gravity
	}
	if s.MaxFallSpeed <= 0 {
		s.MaxFallSpeed = def.MaxFallSpeed
	}
	if s.PlayerSpeed <= 0 {
		s.PlayerSpeed = def.PlayerSpeed
	}
	if s.JumpImpulse <= 0 {
		s.JumpImpulse = def.JumpImpulse
	}
	if s.MaxLives <= 0 {
		s.MaxLives = def.MaxLives
	}
	if s.InvincibleFor <= 0 {
		s.InvincibleFor = def.InvincibleFor
	}
	if s.KnockbackForce <= 0 {
		s.KnockbackForce = def.KnockbackForce
	}
	if s.DeathDuration <= 0 {
		s.DeathDuration = def.DeathDuration
	}
	if s.TimeLimit <= 0 {
		s.TimeLimit = def.TimeLimit
	}
	if s.CelebrationDuration <= 0 {
		s.CelebrationDuration = def.CelebrationDuration
	}
	if s.SecretFlashDuration <= 0 {
		s.SecretFlashDuration = def.SecretFlashDuration
	}
}
