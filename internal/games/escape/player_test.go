package escape

import (
	"testing"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

func testWorld() World {
	return NewWorld(config.DefaultEscapeConfig().World)
}

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultEscapeConfig().Player, testWorld())
}

// landedPlayer returns a player standing on the floor.
func landedPlayer(t *testing.T) *Player {
	t.Helper()
	p := newTestPlayer()
	p.Tick(nil, testWorld())
	if !p.OnGround {
		t.Fatal("player should start on the floor")
	}
	return p
}

func TestPlayerStart(t *testing.T) {
	p := newTestPlayer()
	if p.Pos != (core.Vec{X: 50, Y: 330}) {
		t.Errorf("start Pos = %v, expected (50, 330)", p.Pos)
	}
	if p.W != 40 || p.H != 50 {
		t.Errorf("size = %vx%v, expected 40x50", p.W, p.H)
	}
	if !p.FacingRight || !p.CanFire() {
		t.Error("player should start facing right with the throw ready")
	}
}

func TestPlayerSteering(t *testing.T) {
	p := landedPlayer(t)

	for range 10 {
		p.MoveRight(false)
	}
	if p.Vel.X != 6 {
		t.Errorf("walk Vel.X = %v, expected cap 6", p.Vel.X)
	}

	for range 10 {
		p.MoveRight(true)
	}
	if p.Vel.X != 12 {
		t.Errorf("run Vel.X = %v, expected cap 12", p.Vel.X)
	}

	p.MoveLeft(false)
	if p.Vel.X != 6 || p.FacingRight {
		t.Errorf("MoveLeft walking: Vel.X = %v FacingRight = %v, expected 6 and false", p.Vel.X, p.FacingRight)
	}
}

func TestPlayerFriction(t *testing.T) {
	p := landedPlayer(t)
	p.Vel.X = 6
	x := p.Pos.X

	p.Stop()
	p.Tick(nil, testWorld())

	want := 6 * p.cfg.Friction
	if p.Vel.X != want {
		t.Errorf("Vel.X = %v, expected %v", p.Vel.X, want)
	}
	if p.Pos.X != x+want {
		t.Errorf("Pos.X = %v, expected %v", p.Pos.X, x+want)
	}

	// Decay never stops abruptly.
	for range 20 {
		p.Tick(nil, testWorld())
	}
	if p.Vel.X <= 0 {
		t.Errorf("Vel.X = %v, expected exponential decay toward 0", p.Vel.X)
	}
}

func TestPlayerNoFrictionWhileSteering(t *testing.T) {
	p := landedPlayer(t)
	p.MoveRight(false)
	p.Tick(nil, testWorld())
	if p.Vel.X != 1 {
		t.Errorf("Vel.X = %v, expected 1", p.Vel.X)
	}
}

func TestPlayerWallKillsMomentum(t *testing.T) {
	p := landedPlayer(t)
	p.Pos.X = 5
	p.Vel.X = -6

	p.MoveLeft(false)
	p.Tick(nil, testWorld())

	if p.Pos.X != 0 || p.Vel.X != 0 {
		t.Errorf("Pos.X = %v, Vel.X = %v, expected both 0", p.Pos.X, p.Vel.X)
	}
}

func TestPlayerDoubleJump(t *testing.T) {
	p := landedPlayer(t)

	if !p.TryJump() {
		t.Fatal("first jump should succeed")
	}
	if p.OnGround {
		t.Error("first jump should clear OnGround")
	}
	if p.Vel.Y != -15 || p.JumpCount != 1 {
		t.Errorf("after jump Vel.Y = %v JumpCount = %d", p.Vel.Y, p.JumpCount)
	}

	p.Tick(nil, testWorld())
	if !p.TryJump() {
		t.Fatal("second jump mid-air should succeed")
	}

	vel, count := p.Vel, p.JumpCount
	if p.TryJump() {
		t.Error("third jump should fail")
	}
	if p.Vel != vel || p.JumpCount != count {
		t.Errorf("failed jump changed state: Vel %v -> %v, count %d -> %d", vel, p.Vel, count, p.JumpCount)
	}
}

func TestPlayerJumpCountInvariant(t *testing.T) {
	p := landedPlayer(t)
	world := testWorld()

	p.TryJump()
	landed := false
	for tick := range 200 {
		if tick == 10 {
			p.TryJump()
		}
		p.TryJump()
		if p.JumpCount < 0 || p.JumpCount > 2 {
			t.Fatalf("tick %d: JumpCount = %d out of [0, 2]", tick, p.JumpCount)
		}
		p.Tick(nil, world)
		if p.OnGround {
			landed = true
			if p.JumpCount != 0 {
				t.Fatalf("tick %d: landing should reset JumpCount, got %d", tick, p.JumpCount)
			}
			break
		}
	}
	if !landed {
		t.Fatal("player never landed")
	}
}

func TestPlayerLandingOnPlatformResetsJumps(t *testing.T) {
	p := newTestPlayer()
	p.Pos = core.Vec{X: 160, Y: 240}
	p.Vel = core.Vec{Y: 15}
	p.JumpCount = 2

	p.Tick([]Platform{{X: 150, Y: 300, W: 120, H: 25}}, testWorld())

	if !p.OnGround || p.JumpCount != 0 {
		t.Errorf("OnGround = %v JumpCount = %d, expected landed with 0", p.OnGround, p.JumpCount)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	p := landedPlayer(t)
	world := testWorld()

	shot, ok := p.TryFire()
	if !ok {
		t.Fatal("first throw should succeed")
	}
	if shot.Dir != 1 || shot.Pos != p.Center() || !shot.Active {
		t.Errorf("projectile = %+v, expected active from center heading right", shot)
	}

	// 18 ticks is exactly the 300ms cooldown at 60Hz.
	for tick := 1; tick <= 18; tick++ {
		p.Tick(nil, world)
		if _, ok := p.TryFire(); ok {
			t.Fatalf("throw succeeded %d ticks after the previous one", tick)
		}
	}

	p.Tick(nil, world)
	p.MoveLeft(false)
	shot, ok = p.TryFire()
	if !ok {
		t.Fatal("throw should succeed once the cooldown has elapsed")
	}
	if shot.Dir != -1 {
		t.Errorf("Dir = %d, expected -1 when facing left", shot.Dir)
	}
}

func TestPlayerFailedFireLeavesCooldown(t *testing.T) {
	p := landedPlayer(t)
	p.TryFire()
	p.Tick(nil, testWorld())

	before := p.sinceFire
	if _, ok := p.TryFire(); ok {
		t.Fatal("throw during cooldown should fail")
	}
	if p.sinceFire != before {
		t.Error("failed throw should not restart the cooldown")
	}
}
