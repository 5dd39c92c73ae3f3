package obj

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/njhgames/platform-adventure/common"
	"github.com/njhgames/platform-adventure/config"
)

// SessionStatus is what one tick of the session reports back to the
// top-level state machine.
type SessionStatus int

const (
	StatusPlaying SessionStatus = iota
	StatusGoalReached
	StatusDead
	StatusTimeUp
)

const hazardRespawnAfter = 5.0 // seconds after a stomp

// respawnIntent reschedules a stomped hazard. Intents collected during the
// interaction pass are applied after iteration so the hazard slice is never
// mutated mid-loop.
type respawnIntent struct {
	hazard *Hazard
	at     float64 // session time
}

// Session runs one level: it owns the Level, the Player, and the per-frame
// pipeline (input -> physics -> collision -> rules -> animation -> camera).
type Session struct {
	Level  *Level
	Player *Player
	Input  *Input
	Camera *Camera

	TimeLeft float64
	Debug    bool

	cfg      config.Spec
	elapsed  float64
	respawns []respawnIntent

	// scratch input used during the celebration, when the real input is
	// ignored and the player auto-hops
	hopInput *Input
}

func NewSession(lvl *Level, input *Input, cfg config.Spec, viewW, viewH float64) *Session {
	player := NewPlayer(lvl.Spawn, input, lvl.World, cfg)
	limit := lvl.TimeLimit
	if limit <= 0 {
		limit = cfg.TimeLimit
	}
	s := &Session{
		Level:    lvl,
		Player:   player,
		Input:    input,
		Camera:   NewCamera(viewW, viewH, lvl.Width, lvl.Height),
		TimeLeft: limit,
		cfg:      cfg,
		hopInput: NewInput(),
	}
	s.Camera.SnapTo(player.Rect.CenterX(), player.Rect.CenterY())
	return s
}

// SwapLevel replaces the active level, rebinding the player to its spawn and
// collision world. Score and lives carry over; transient flags reset.
func (s *Session) SwapLevel(lvl *Level) {
	s.Level = lvl
	s.Player.MoveTo(lvl.Spawn, lvl.World)
	limit := lvl.TimeLimit
	if limit <= 0 {
		limit = s.cfg.TimeLimit
	}
	s.TimeLeft = limit
	s.elapsed = 0
	s.respawns = nil
	s.Camera = NewCamera(s.Camera.viewW, s.Camera.viewH, lvl.Width, lvl.Height)
	s.Camera.SnapTo(s.Player.Rect.CenterX(), s.Player.Rect.CenterY())
	log.Info("level start", "level", lvl.Name, "score", s.Player.Score, "lives", s.Player.Health.Current)
}

// Update runs one tick. All work completes before it returns; nothing else
// mutates the level or the player.
func (s *Session) Update(dt float64) SessionStatus {
	s.elapsed += dt

	if s.Player.Health.Dead {
		s.Player.Update(dt)
		if s.Player.DeathFinished() {
			return StatusDead
		}
		return StatusPlaying
	}

	s.TimeLeft -= dt
	if s.TimeLeft <= 0 {
		s.TimeLeft = 0
		log.Info("time limit reached")
		return StatusTimeUp
	}

	prev := s.Player.Rect
	s.Player.Update(dt)

	for _, h := range s.Level.Hazards {
		h.Update(dt)
	}
	for _, sec := range s.Level.Secrets {
		sec.Update(dt)
	}

	s.resolveInteractions(prev, dt)
	s.applyRespawns()

	if s.fellOffWorld() {
		s.loseLifeToFall()
	}

	s.Level.Goal.Refresh(s.Player.Score)
	if s.Level.Goal.Unlocked && s.Player.Rect.Intersects(s.Level.Goal.Rect) {
		log.Info("goal reached", "level", s.Level.Name, "score", s.Player.Score)
		return StatusGoalReached
	}

	s.Camera.Update(s.Player.Rect.CenterX(), s.Player.Rect.CenterY())
	return StatusPlaying
}

// UpdateCelebration steps the world in its non-interactive post-goal form:
// real input is ignored and the player hops in place.
func (s *Session) UpdateCelebration(dt float64) {
	s.elapsed += dt
	s.hopInput.MoveX = 0
	s.hopInput.JumpPressed = s.Player.Grounded
	real := s.Player.Input
	s.Player.Input = s.hopInput
	s.Player.Update(dt)
	s.Player.Input = real
	for _, h := range s.Level.Hazards {
		h.Update(dt)
	}
	s.Camera.Update(s.Player.Rect.CenterX(), s.Player.Rect.CenterY())
}

// resolveInteractions applies the trigger rules for one frame. Removal and
// respawn are collected as intents and applied after iteration.
func (s *Session) resolveInteractions(prev common.Rect, dt float64) {
	p := s.Player

	// stomp velocity from actual vertical displacement this frame
	vy := (p.Rect.Bottom() - prev.Bottom()) / dt

	for _, h := range s.Level.Hazards {
		if !h.Alive {
			continue
		}
		if LandedOn(prev, p.Rect, vy, h.Rect) {
			h.Alive = false
			p.Score += h.Points
			p.Bounce()
			s.respawns = append(s.respawns, respawnIntent{hazard: h, at: s.elapsed + hazardRespawnAfter})
			log.Debug("hazard stomped", "points", h.Points)
			continue
		}
		if p.Rect.Intersects(h.Rect) {
			if p.Damage(h.Rect.CenterX(), h.Rect.CenterY()) {
				log.Info("player hit", "lives", p.Health.Current)
			}
		}
	}

	kept := s.Level.Collectibles[:0]
	for _, c := range s.Level.Collectibles {
		if !c.Taken && p.Rect.Intersects(c.Rect) {
			c.Taken = true
			p.Score += c.Points()
			if c.Kind == CollectibleHeart {
				p.Health.Heal(1)
			}
		}
		if !c.Taken {
			kept = append(kept, c)
		}
	}
	s.Level.Collectibles = kept

	for _, sec := range s.Level.Secrets {
		if !sec.Discovered && p.Rect.Intersects(sec.Rect) {
			if sec.Discover() {
				p.Score += sec.Points
				log.Info("secret found", "points", sec.Points)
			}
		}
	}
}

// applyRespawns puts stomped hazards back at their home point once their
// delay has elapsed. The rule is unconditional: every stomped hazard comes
// back.
func (s *Session) applyRespawns() {
	kept := s.respawns[:0]
	for _, ri := range s.respawns {
		if s.elapsed < ri.at {
			kept = append(kept, ri)
			continue
		}
		h := ri.hazard
		h.Rect.X = h.Home.X - h.Rect.Width/2
		h.Rect.Y = h.Home.Y - h.Rect.Height/2
		h.Direction = 1
		h.Alive = true
	}
	s.respawns = kept
}

func (s *Session) fellOffWorld() bool {
	return s.Player.Rect.Top() > s.Level.Height
}

// loseLifeToFall costs one life regardless of the invincibility window and
// respawns the survivor at the spawn point.
func (s *Session) loseLifeToFall() {
	p := s.Player
	p.Health.InvincibleFor = 0
	p.Health.ApplyDamage(s.cfg.InvincibleFor)
	log.Info("fell off the world", "lives", p.Health.Current)
	if !p.Health.Dead {
		p.Respawn()
		s.Camera.SnapTo(p.Rect.CenterX(), p.Rect.CenterY())
	}
}

// SetConfig swaps in new tuning values, e.g. after a live config reload.
func (s *Session) SetConfig(cfg config.Spec) {
	s.cfg = cfg
	s.Player.SetConfig(cfg)
}

// SecretFlashing reports whether any secret was discovered recently enough
// to still show HUD feedback.
func (s *Session) SecretFlashing() bool {
	for _, sec := range s.Level.Secrets {
		if sec.RecentlyDiscovered(s.cfg.SecretFlashDuration) {
			return true
		}
	}
	return false
}

// Draw renders the level and entities offset by the camera.
func (s *Session) Draw(screen *ebiten.Image) {
	camX, camY := s.Camera.X, s.Camera.Y
	s.Level.DrawBackground(screen, camX, camY)
	for _, w := range s.Level.Walls {
		w.Draw(screen, camX, camY)
	}
	for _, sec := range s.Level.Secrets {
		sec.Draw(screen, camX, camY, s.cfg.SecretFlashDuration)
	}
	for _, c := range s.Level.Collectibles {
		c.Draw(screen, camX, camY, s.elapsed)
	}
	for _, h := range s.Level.Hazards {
		h.Draw(screen, camX, camY)
	}
	s.Level.Goal.Draw(screen, camX, camY)
	s.Player.Draw(screen, camX, camY)

	if s.Debug {
		s.drawDebug(screen, camX, camY)
	}
}

func (s *Session) drawDebug(screen *ebiten.Image, camX, camY float64) {
	boxes := []common.Rect{s.Player.Rect, s.Level.Goal.Rect}
	for _, h := range s.Level.Hazards {
		if h.Alive {
			boxes = append(boxes, h.Rect)
		}
	}
	for _, c := range s.Level.Collectibles {
		boxes = append(boxes, c.Rect)
	}
	for _, sec := range s.Level.Secrets {
		boxes = append(boxes, sec.Rect)
	}
	tint := color.RGBA{R: 0xff, A: 0x60}
	if s.Player.Health.IsInvincible() {
		tint = color.RGBA{G: 0xff, A: 0x60}
	}
	for _, b := range boxes {
		drawRectOutline(screen, b.X-camX, b.Y-camY, b.Width, b.Height, tint)
	}
}
