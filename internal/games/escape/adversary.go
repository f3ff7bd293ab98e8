package escape

import (
	"math/rand"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Behavior is the adversary's state.
type Behavior int

const (
	Pursuing Behavior = iota
	Wandering
	Stunned
)

// String returns the behavior name.
func (b Behavior) String() string {
	switch b {
	case Pursuing:
		return "pursuing"
	case Wandering:
		return "wandering"
	case Stunned:
		return "stunned"
	default:
		return "unknown"
	}
}

// Adversary is the pursuing menahel. It walks toward the player, never
// jumps, and freezes in place while stunned.
type Adversary struct {
	Body
	Behavior               Behavior
	StunTicks              int     // Remaining stun
	WanderBias             float64 // In [-1, 1]; drawn as the adversary's glance only
	DirectionChangeCounter int

	cfg          config.AdversaryConfig
	speed        float64
	stunDuration int
	rng          *rand.Rand
}

// NewAdversary creates an adversary at its start position.
func NewAdversary(cfg config.AdversaryConfig, world World, seed int64) *Adversary {
	a := &Adversary{cfg: cfg}
	a.Reset(world, seed)
	return a
}

// Reset returns the adversary to its start position, pursuing, with its
// wander sampler reseeded and its pace reset to the configured base.
func (a *Adversary) Reset(world World, seed int64) {
	a.Body = Body{
		Pos: core.Vec{X: world.W * a.cfg.StartXFrac, Y: world.H - a.cfg.StartOffset},
		W:   a.cfg.Width,
		H:   a.cfg.Height,
	}
	a.ClampX(world.W, false)
	a.Behavior = Pursuing
	a.StunTicks = 0
	a.WanderBias = 0
	a.DirectionChangeCounter = 0
	a.speed = a.cfg.Speed
	a.stunDuration = a.cfg.StunTicks
	a.rng = rand.New(rand.NewSource(seed))
}

// SetPace overrides walking speed and stun duration.
func (a *Adversary) SetPace(speed float64, stunTicks int) {
	a.speed = speed
	a.stunDuration = stunTicks
}

// Speed returns the current walking speed.
func (a *Adversary) Speed() float64 {
	return a.speed
}

// HitRadius returns the size used by projectile hit tests.
func (a *Adversary) HitRadius() float64 {
	return a.cfg.HitRadius
}

// Stun freezes the adversary for the full stun duration. Calling it while
// already stunned restarts the timer without extending it.
func (a *Adversary) Stun() {
	a.StunTicks = a.stunDuration
	a.Behavior = Stunned
}

// Tick advances the adversary by one step, chasing target (the player's
// position). A stun that expires this tick lets it chase this same tick.
func (a *Adversary) Tick(target core.Vec, platforms []Platform, world World) {
	if a.Behavior == Stunned {
		a.StunTicks--
		if a.StunTicks <= 0 {
			a.StunTicks = 0
			a.Behavior = Pursuing
		}
	}

	a.Vel.X = 0
	if a.Behavior != Stunned {
		a.DirectionChangeCounter++
		if a.DirectionChangeCounter >= a.cfg.WanderInterval {
			a.DirectionChangeCounter = 0
			a.WanderBias = a.rng.Float64()*2 - 1
		}

		dx := target.X - a.Pos.X
		switch {
		case dx > a.cfg.DeadZone:
			a.Vel.X = a.speed
		case dx < -a.cfg.DeadZone:
			a.Vel.X = -a.speed
		}
	}

	prevY := a.Pos.Y
	a.Integrate(world.Gravity)
	a.ClampX(world.W, false)
	a.Resolve(prevY, platforms, world.FloorY)
}
