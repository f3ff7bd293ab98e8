package escape

import (
	"math"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// PlayerPose is the player as the renderers see it.
type PlayerPose struct {
	Box         core.Box
	Vel         core.Vec
	FacingRight bool
	OnGround    bool
	JumpCount   int
	Running     bool
	CanFire     bool
}

// AdversaryPose is the adversary as the renderers see it.
type AdversaryPose struct {
	Box        core.Box
	Behavior   Behavior
	StunTicks  int
	WanderBias float64
}

// Snapshot is a read-only copy of the session after a tick. It shares no
// memory with the session.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Paused   bool
	Reason   string
	Level    int
	Score    int
	Stuns    int
	RunTicks int

	World            World
	Player           PlayerPose
	Adversary        AdversaryPose
	Projectiles      []core.Vec
	ProjectileRadius float64
	Platforms        []Platform
}

// Snapshot captures the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	p, a := s.player, s.adversary

	shots := make([]core.Vec, 0, s.projectiles.Len())
	for _, pr := range s.projectiles.items {
		shots = append(shots, pr.Pos)
	}

	return Snapshot{
		Tick:     s.tick,
		Phase:    s.Phase(),
		Paused:   s.Paused(),
		Reason:   s.Reason(),
		Level:    s.Level(),
		Score:    s.Score(),
		Stuns:    s.stuns,
		RunTicks: s.runTicks,

		World: s.world,
		Player: PlayerPose{
			Box:         p.Box(),
			Vel:         p.Vel,
			FacingRight: p.FacingRight,
			OnGround:    p.OnGround,
			JumpCount:   p.JumpCount,
			Running:     p.Running,
			CanFire:     p.CanFire(),
		},
		Adversary: AdversaryPose{
			Box:        a.Box(),
			Behavior:   a.Behavior,
			StunTicks:  a.StunTicks,
			WanderBias: a.WanderBias,
		},
		Projectiles:      shots,
		ProjectileRadius: s.projectiles.Radius(),
		Platforms:        s.director.Platforms(),
	}
}

// Distance returns the distance between the player and adversary centers.
func (snap *Snapshot) Distance() float64 {
	return snap.Player.Box.Center().Dist(snap.Adversary.Box.Center())
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RunTicks) //#nosec G115 -- hash computation
	h = hashBox(h, snap.Player.Box)
	h = hashFloat(h, snap.Player.Vel.X)
	h = hashFloat(h, snap.Player.Vel.Y)
	h = h*31 + uint64(snap.Player.JumpCount) //#nosec G115 -- hash computation
	h = hashBox(h, snap.Adversary.Box)
	h = h*31 + uint64(snap.Adversary.Behavior)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Adversary.StunTicks) //#nosec G115 -- hash computation
	h = hashFloat(h, snap.Adversary.WanderBias)

	for _, v := range snap.Projectiles {
		h = hashFloat(h, v.X)
		h = hashFloat(h, v.Y)
	}
	for _, p := range snap.Platforms {
		h = hashBox(h, p.Box())
	}
	for _, r := range snap.Reason {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	return h
}

func hashFloat(h uint64, f float64) uint64 {
	return h*31 + math.Float64bits(f)
}

func hashBox(h uint64, b core.Box) uint64 {
	h = hashFloat(h, b.X)
	h = hashFloat(h, b.Y)
	h = hashFloat(h, b.W)
	return hashFloat(h, b.H)
}
