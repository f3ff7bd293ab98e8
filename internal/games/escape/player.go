package escape

import (
	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Player is the fleeing student.
type Player struct {
	Body
	FacingRight bool
	JumpCount   int
	Running     bool

	cfg       config.PlayerConfig
	steering  bool // A direction was applied since the last Tick
	sinceFire int  // Ticks since the last successful throw
}

// NewPlayer creates a player at its start position.
func NewPlayer(cfg config.PlayerConfig, world World) *Player {
	p := &Player{cfg: cfg}
	p.Reset(world)
	return p
}

// Reset puts the player back at the start position with no momentum.
// The throw is immediately available.
func (p *Player) Reset(world World) {
	p.Body = Body{
		Pos: core.Vec{X: p.cfg.StartX, Y: world.H - p.cfg.StartOffset},
		W:   p.cfg.Width,
		H:   p.cfg.Height,
	}
	p.FacingRight = true
	p.JumpCount = 0
	p.Running = false
	p.steering = false
	p.sinceFire = p.cfg.FireCooldownTicks + 1
}

func (p *Player) speed(running bool) float64 {
	if running {
		return p.cfg.MaxRunSpeed
	}
	return p.cfg.RunSpeed
}

// MoveLeft nudges the horizontal velocity toward -speed.
func (p *Player) MoveLeft(running bool) {
	p.steer(-1, running)
}

// MoveRight nudges the horizontal velocity toward +speed.
func (p *Player) MoveRight(running bool) {
	p.steer(1, running)
}

func (p *Player) steer(dir float64, running bool) {
	s := p.speed(running)
	p.Vel.X = core.ClampF(p.Vel.X+dir*p.cfg.Accel, -s, s)
	p.FacingRight = dir > 0
	p.Running = running
	p.steering = true
}

// Stop releases both directions; the next Tick applies friction.
func (p *Player) Stop() {
	p.steering = false
	p.Running = false
}

// TryJump starts a jump if any are left. The second jump works mid-air.
// It is a no-op returning false once MaxJumps is reached.
func (p *Player) TryJump() bool {
	if p.JumpCount >= p.cfg.MaxJumps {
		return false
	}
	p.Vel.Y = p.cfg.JumpPower
	p.JumpCount++
	if p.JumpCount == 1 {
		p.OnGround = false
	}
	return true
}

// CanFire reports whether the throw cooldown has elapsed.
func (p *Player) CanFire() bool {
	return p.sinceFire > p.cfg.FireCooldownTicks
}

// TryFire throws a projectile from the player's center in the facing
// direction. While the cooldown runs it returns false and changes nothing.
func (p *Player) TryFire() (Projectile, bool) {
	if !p.CanFire() {
		return Projectile{}, false
	}
	p.sinceFire = 0

	dir := -1
	if p.FacingRight {
		dir = 1
	}
	return Projectile{Pos: p.Center(), Dir: dir, Active: true}, true
}

// Tick advances the player by one step against the given platforms.
func (p *Player) Tick(platforms []Platform, world World) {
	if !p.steering {
		p.Vel.X *= p.cfg.Friction
	}
	p.steering = false

	prevY := p.Pos.Y
	p.Integrate(world.Gravity)
	p.ClampX(world.W, true)
	if p.Resolve(prevY, platforms, world.FloorY) {
		p.JumpCount = 0
	}

	if p.sinceFire <= p.cfg.FireCooldownTicks {
		p.sinceFire++
	}
}
