package escape

import (
	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Projectile is a thrown felafel ball.
type Projectile struct {
	Pos    core.Vec
	Dir    int // -1 left, +1 right
	Active bool
}

// ProjectileSet holds the projectiles in flight.
type ProjectileSet struct {
	items  []Projectile
	radius float64
	speed  float64
}

// NewProjectileSet creates an empty set.
func NewProjectileSet(cfg config.ProjectileConfig) *ProjectileSet {
	return &ProjectileSet{radius: cfg.Radius, speed: cfg.Speed}
}

// Radius returns the projectile radius.
func (s *ProjectileSet) Radius() float64 {
	return s.radius
}

// Spawn adds a projectile to the set.
func (s *ProjectileSet) Spawn(p Projectile) {
	p.Active = true
	s.items = append(s.items, p)
}

// Tick moves every projectile, drops the ones that left [0, worldW], then
// stuns adv with each remaining projectile close enough to its center.
// Removed projectiles never come back. It returns the number of hits.
func (s *ProjectileSet) Tick(worldW float64, adv *Adversary) int {
	hits := 0
	kept := s.items[:0]
	for _, p := range s.items {
		if !p.Active {
			continue
		}
		p.Pos.X += float64(p.Dir) * s.speed

		if p.Pos.X < 0 || p.Pos.X > worldW {
			continue
		}
		if adv != nil && p.Pos.Dist(adv.Center()) < s.radius+adv.HitRadius()/2 {
			adv.Stun()
			hits++
			continue
		}
		kept = append(kept, p)
	}

	clear(s.items[len(kept):])
	s.items = kept
	return hits
}

// Active returns a copy of the projectiles in flight.
func (s *ProjectileSet) Active() []Projectile {
	out := make([]Projectile, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of projectiles in flight.
func (s *ProjectileSet) Len() int {
	return len(s.items)
}

// Clear removes every projectile.
func (s *ProjectileSet) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
