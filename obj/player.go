package obj

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/njhgames/platform-adventure/assets"
	"github.com/njhgames/platform-adventure/common"
	"github.com/njhgames/platform-adventure/component"
	"github.com/njhgames/platform-adventure/config"
)

// playerState is the interface each concrete player state implements.
type playerState interface {
	Enter(p *Player)
	Exit(p *Player)
	HandleInput(p *Player)
	OnPhysics(p *Player, dt float64)
	Name() string
	Anim() component.AnimState
}

const (
	dashDuration    = 0.2  // seconds
	dashCooldownFor = 0.6  // seconds between dashes
	dashSpeedMult   = 2.5  // multiplier on the configured run speed
	wallSlideSpeed  = 120  // px/s max fall while sliding on a wall
	stompBounce     = 0.6  // fraction of jump impulse applied on a stomp
	knockbackDecay  = 6.0  // per-second exponential decay of knockback
	hitStateFor     = 0.32 // seconds the hit state owns control
)

// setState switches states and calls the Exit/Enter hooks.
func (p *Player) setState(s playerState) {
	if p.state == s {
		return
	}
	p.state.Exit(p)
	p.state = s
	p.state.Enter(p)
	p.anim.Set(s.Anim())
}

type idleState struct{}

func (idleState) Name() string              { return "idle" }
func (idleState) Anim() component.AnimState { return component.AnimIdle }
func (idleState) Enter(p *Player)           {}
func (idleState) Exit(p *Player)            {}
func (idleState) HandleInput(p *Player) {
	if p.Input.JumpPressed && p.Grounded {
		p.setState(stateJumping)
		return
	}
	if p.Input.DashPressed && p.canDash() {
		p.setState(stateDash)
		return
	}
	if p.Input.MoveX != 0 {
		p.setState(stateRunning)
	}
}
func (idleState) OnPhysics(p *Player, dt float64) {
	if !p.Grounded {
		p.setState(stateFalling)
	}
}

type runningState struct{}

func (runningState) Name() string              { return "running" }
func (runningState) Anim() component.AnimState { return component.AnimRun }
func (runningState) Enter(p *Player)           {}
func (runningState) Exit(p *Player)            {}
func (runningState) HandleInput(p *Player) {
	if p.Input.JumpPressed && p.Grounded {
		p.setState(stateJumping)
		return
	}
	if p.Input.DashPressed && p.canDash() {
		p.setState(stateDash)
		return
	}
	if p.Input.MoveX == 0 {
		p.setState(stateIdle)
	}
}
func (runningState) OnPhysics(p *Player, dt float64) {
	if !p.Grounded {
		p.setState(stateFalling)
	}
}

type jumpingState struct{}

func (jumpingState) Name() string              { return "jumping" }
func (jumpingState) Anim() component.AnimState { return component.AnimJump }
func (jumpingState) Enter(p *Player) {
	p.VelY = -p.cfg.JumpImpulse
}
func (jumpingState) Exit(p *Player) {}
func (jumpingState) HandleInput(p *Player) {
	if p.Input.DashPressed && p.canDash() {
		p.setState(stateDash)
	}
}
func (jumpingState) OnPhysics(p *Player, dt float64) {
	if p.VelY >= 0 {
		p.setState(stateFalling)
	}
}

type fallingState struct{}

func (fallingState) Name() string              { return "falling" }
func (fallingState) Anim() component.AnimState { return component.AnimFall }
func (fallingState) Enter(p *Player)           {}
func (fallingState) Exit(p *Player)            {}
func (fallingState) HandleInput(p *Player) {
	if p.Input.DashPressed && p.canDash() {
		p.setState(stateDash)
	}
}
func (fallingState) OnPhysics(p *Player, dt float64) {
	if p.Grounded {
		if p.Input.MoveX != 0 {
			p.setState(stateRunning)
		} else {
			p.setState(stateIdle)
		}
		return
	}
	if p.WallContact != WALL_NONE && p.VelY > 0 {
		p.setState(stateWallslide)
	}
}

// wallslideState slows the fall while the player hugs a wall in the air.
type wallslideState struct{}

func (wallslideState) Name() string              { return "wallslide" }
func (wallslideState) Anim() component.AnimState { return component.AnimWallslide }
func (wallslideState) Enter(p *Player)           {}
func (wallslideState) Exit(p *Player)            {}
func (wallslideState) HandleInput(p *Player) {
	if p.Input.JumpPressed {
		// push off the wall
		if p.WallContact == WALL_LEFT {
			p.knockX = p.cfg.PlayerSpeed
		} else if p.WallContact == WALL_RIGHT {
			p.knockX = -p.cfg.PlayerSpeed
		}
		p.setState(stateJumping)
	}
}
func (wallslideState) OnPhysics(p *Player, dt float64) {
	if p.VelY > wallSlideSpeed {
		p.VelY = wallSlideSpeed
	}
	if p.Grounded {
		p.setState(stateIdle)
		return
	}
	if p.WallContact == WALL_NONE {
		p.setState(stateFalling)
	}
}

// dashState is a short horizontal burst in the facing direction. Gravity is
// suspended for its duration.
type dashState struct {
	elapsed float64
	dir     float64
}

func (d *dashState) Name() string              { return "dash" }
func (d *dashState) Anim() component.AnimState { return component.AnimDash }
func (d *dashState) Enter(p *Player) {
	d.elapsed = 0
	d.dir = 1
	if !p.facingRight {
		d.dir = -1
	}
	p.Dashing = true
	p.dashCooldown = dashCooldownFor
	p.VelY = 0
}
func (d *dashState) Exit(p *Player) {
	p.Dashing = false
}
func (d *dashState) HandleInput(p *Player) {}
func (d *dashState) OnPhysics(p *Player, dt float64) {
	d.elapsed += dt
	p.VelX = d.dir * p.cfg.PlayerSpeed * dashSpeedMult
	p.VelY = 0
	if d.elapsed >= dashDuration {
		if p.Grounded {
			p.setState(stateIdle)
		} else {
			p.setState(stateFalling)
		}
	}
}

// hitState owns the player briefly after damage while knockback plays out.
type hitState struct {
	elapsed float64
}

func (h *hitState) Name() string              { return "hit" }
func (h *hitState) Anim() component.AnimState { return component.AnimHit }
func (h *hitState) Enter(p *Player) {
	h.elapsed = 0
}
func (h *hitState) Exit(p *Player)        {}
func (h *hitState) HandleInput(p *Player) {}
func (h *hitState) OnPhysics(p *Player, dt float64) {
	h.elapsed += dt
	if h.elapsed < hitStateFor {
		return
	}
	if p.Grounded {
		p.setState(stateIdle)
	} else {
		p.setState(stateFalling)
	}
}

// deathState is terminal; the session watches DeathFinished.
type deathState struct{}

func (deathState) Name() string                    { return "death" }
func (deathState) Anim() component.AnimState       { return component.AnimDeath }
func (deathState) Enter(p *Player)                 { p.VelX, p.VelY = 0, 0 }
func (deathState) Exit(p *Player)                  {}
func (deathState) HandleInput(p *Player)           {}
func (deathState) OnPhysics(p *Player, dt float64) {}

// singletons for each state to avoid allocating on every transition
var (
	stateIdle      playerState = idleState{}
	stateRunning   playerState = runningState{}
	stateJumping   playerState = jumpingState{}
	stateFalling   playerState = fallingState{}
	stateWallslide playerState = wallslideState{}
	stateDash      playerState = &dashState{}
	stateHit       playerState = &hitState{}
	stateDeath     playerState = deathState{}
)

// Player is the controllable character. Horizontal velocity comes straight
// from input each frame (no acceleration); vertical velocity accumulates
// gravity and is replaced by the jump impulse on takeoff. Movement resolves
// axis-separated against the collision world.
type Player struct {
	Rect common.Rect

	VelX, VelY  float64
	Grounded    bool
	WallContact wallSide
	Dashing     bool
	Score       int

	Health *component.Health
	Input  *Input
	World  *CollisionWorld

	spawn        common.Vec2
	cfg          config.Spec
	state        playerState
	anim         *component.Animator
	facingRight  bool
	knockX       float64 // decaying knockback velocity, px/s
	knockY       float64
	dashCooldown float64
	deathElapsed float64
}

func NewPlayer(spawn common.Vec2, input *Input, world *CollisionWorld, cfg config.Spec) *Player {
	p := &Player{
		Rect:        common.Rect{X: spawn.X, Y: spawn.Y, Width: 36, Height: 54},
		Health:      component.NewHealth(cfg.MaxLives),
		Input:       input,
		World:       world,
		spawn:       spawn,
		cfg:         cfg,
		state:       stateIdle,
		anim:        component.NewAnimator(component.DefaultClips(), component.AnimIdle),
		facingRight: true,
	}
	p.Grounded = world.IsGrounded(p.Rect)
	p.WallContact = world.IsTouchingWall(p.Rect)
	p.state.Enter(p)
	return p
}

// Update runs one tick of player simulation: state input handling, physics
// integration and axis-separated collision, then animation.
func (p *Player) Update(dt float64) {
	p.Health.Tick(dt)

	if p.Health.Dead {
		p.setState(stateDeath)
		p.deathElapsed += dt
		p.anim.Update(dt)
		return
	}

	if p.Input.MoveX < 0 {
		p.facingRight = false
	} else if p.Input.MoveX > 0 {
		p.facingRight = true
	}
	if p.dashCooldown > 0 {
		p.dashCooldown -= dt
	}

	p.state.HandleInput(p)

	// instant start/stop: horizontal velocity mirrors input directly,
	// except while a state drives it (dash) or knockback is live
	if !p.Dashing {
		p.VelX = p.Input.MoveX * p.cfg.PlayerSpeed
	}
	if !p.Dashing {
		p.VelY += p.cfg.Gravity * dt
		if p.VelY > p.cfg.MaxFallSpeed {
			p.VelY = p.cfg.MaxFallSpeed
		}
	}

	p.state.OnPhysics(p, dt)

	// knockback decays exponentially and adds on top of input velocity
	p.knockX -= p.knockX * knockbackDecay * dt
	p.knockY -= p.knockY * knockbackDecay * dt
	if p.knockX > -1 && p.knockX < 1 {
		p.knockX = 0
	}
	if p.knockY > -1 && p.knockY < 1 {
		p.knockY = 0
	}

	r, _ := p.World.MoveX(p.Rect, (p.VelX+p.knockX)*dt)
	r, hitY, _ := p.World.MoveY(r, (p.VelY+p.knockY)*dt)
	p.Rect = r
	if hitY {
		p.VelY = 0
		p.knockY = 0
	}

	p.Grounded = p.World.IsGrounded(p.Rect)
	p.WallContact = p.World.IsTouchingWall(p.Rect)

	p.anim.Update(dt)
}

func (p *Player) canDash() bool {
	return p.dashCooldown <= 0
}

// Damage applies one hazard hit from the given world point. It returns true
// when the hit landed (the player was not invincible).
func (p *Player) Damage(fromX, fromY float64) bool {
	if !p.Health.ApplyDamage(p.cfg.InvincibleFor) {
		return false
	}
	nx, ny, l := common.Normalize(p.Rect.CenterX()-fromX, p.Rect.CenterY()-fromY)
	if l == 0 {
		nx, ny = 1, 0 // centers coincide: push right
	}
	p.knockX = nx * p.cfg.KnockbackForce
	p.knockY = ny * p.cfg.KnockbackForce
	if p.Health.Dead {
		p.setState(stateDeath)
		log.Info("player died", "lives", p.Health.Current)
		return true
	}
	p.setState(stateHit)
	return true
}

// Bounce pops the player upward after stomping a hazard.
func (p *Player) Bounce() {
	p.setState(stateJumping)
	p.VelY = -p.cfg.JumpImpulse * stompBounce
}

// DeathFinished reports whether the death animation has played out for the
// configured duration.
func (p *Player) DeathFinished() bool {
	return p.Health.Dead && p.deathElapsed >= p.cfg.DeathDuration
}

// Respawn places the player at the spawn point with cleared velocity and
// transient flags. Score and lives are untouched.
func (p *Player) Respawn() {
	p.Rect.X = p.spawn.X
	p.Rect.Y = p.spawn.Y
	p.VelX, p.VelY = 0, 0
	p.knockX, p.knockY = 0, 0
	p.Health.InvincibleFor = 0
	if !p.Health.Dead {
		p.setState(stateFalling)
	}
}

// MoveTo rebinds the player to a new level: new spawn, new collision world,
// transient flags cleared. Score and lives persist.
func (p *Player) MoveTo(spawn common.Vec2, world *CollisionWorld) {
	p.spawn = spawn
	p.World = world
	p.Respawn()
}

// SetConfig swaps in new tuning values without disturbing live state.
func (p *Player) SetConfig(cfg config.Spec) {
	p.cfg = cfg
}

// StateName exposes the current state for the HUD debug overlay.
func (p *Player) StateName() string {
	return p.state.Name()
}

// AnimState exposes the current animation state.
func (p *Player) AnimState() component.AnimState {
	return p.anim.State()
}

// Frame exposes the current animation frame index.
func (p *Player) Frame() int {
	return p.anim.Frame()
}

func (p *Player) Draw(screen *ebiten.Image, camX, camY float64) {
	// blink during i-frames
	if p.Health.IsInvincible() && !p.Health.Dead && int(p.Health.InvincibleFor*20)%2 == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if sheet := assets.Sheet("player", string(p.anim.State())); sheet != nil {
		count := p.anim.FrameCount()
		fw := sheet.Bounds().Dx() / count
		fh := sheet.Bounds().Dy()
		frame := subFrame(sheet, p.anim.Frame(), fw, fh)
		sx := p.Rect.Width / float64(fw)
		sy := p.Rect.Height / float64(fh)
		if !p.facingRight {
			op.GeoM.Scale(-sx, sy)
			op.GeoM.Translate(p.Rect.X+p.Rect.Width-camX, p.Rect.Y-camY)
		} else {
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(p.Rect.X-camX, p.Rect.Y-camY)
		}
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
		return
	}
	img := assets.Fill(assets.PlayerColor)
	op.GeoM.Scale(p.Rect.Width, p.Rect.Height)
	op.GeoM.Translate(p.Rect.X-camX, p.Rect.Y-camY)
	screen.DrawImage(img, op)
}
