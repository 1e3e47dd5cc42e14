package garden

import (
	"github.com/vovakirdan/bee-garden/internal/config"
	"github.com/vovakirdan/bee-garden/internal/core"
)

// Spawner injects flowers and spiders at randomized intervals.
// Each kind has its own countdown and fires at most once per Advance,
// however large the elapsed time.
type Spawner struct {
	rng         Source
	pickups     config.PickupConfig
	hazards     config.HazardConfig
	pickupTimer float64 // Seconds until the next flower
	hazardTimer float64 // Seconds until the next spider
}

// NewSpawner creates a spawner with both countdowns at zero.
func NewSpawner(rng Source, pickups config.PickupConfig, hazards config.HazardConfig) *Spawner {
	return &Spawner{
		rng:     rng,
		pickups: pickups,
		hazards: hazards,
	}
}

// Reset zeroes both countdowns so the next Advance spawns one of each.
func (s *Spawner) Reset() {
	s.pickupTimer = 0
	s.hazardTimer = 0
}

// Timers returns the remaining countdowns in seconds.
func (s *Spawner) Timers() (pickup, hazard float64) {
	return s.pickupTimer, s.hazardTimer
}

// Advance runs both countdowns down by dt and returns whatever spawned.
func (s *Spawner) Advance(dt float64, board core.Vec2) (*Pickup, *Hazard) {
	var pickup *Pickup
	var hazard *Hazard

	s.pickupTimer -= dt
	if s.pickupTimer <= 0 {
		p := s.SpawnPickup(board)
		pickup = &p
		s.pickupTimer = s.draw(s.pickups.MinInterval, s.pickups.MaxInterval)
	}

	s.hazardTimer -= dt
	if s.hazardTimer <= 0 {
		h := s.SpawnHazard(board)
		hazard = &h
		s.hazardTimer = s.draw(s.hazards.MinInterval, s.hazards.MaxInterval)
	}

	return pickup, hazard
}

// SpawnPickup creates a flower somewhere inside the board's margin.
func (s *Spawner) SpawnPickup(board core.Vec2) Pickup {
	m := s.pickups.Margin
	x := m + s.rng.Float64()*(board.X-2*m)
	y := m + s.rng.Float64()*(board.Y-2*m)
	return Pickup{
		Pos:   core.V(x, y),
		Size:  s.pickups.Size,
		Color: core.FlowerPalette[s.rng.Intn(len(core.FlowerPalette))],
	}
}

// SpawnHazard creates a spider just outside a random edge, crawling inward
// with some sideways drift.
func (s *Spawner) SpawnHazard(board core.Vec2) Hazard {
	size := s.hazards.Size
	edge := Edge(s.rng.Intn(4))

	var pos, vel core.Vec2
	switch edge {
	case EdgeTop:
		pos = core.V(s.rng.Float64()*board.X, -size)
		vel.X = s.lateral()
		vel.Y = s.inward()
	case EdgeBottom:
		pos = core.V(s.rng.Float64()*board.X, board.Y+size)
		vel.X = s.lateral()
		vel.Y = -s.inward()
	case EdgeLeft:
		pos = core.V(-size, s.rng.Float64()*board.Y)
		vel.X = s.inward()
		vel.Y = s.lateral()
	default:
		pos = core.V(board.X+size, s.rng.Float64()*board.Y)
		vel.X = -s.inward()
		vel.Y = s.lateral()
	}

	return Hazard{Pos: pos, Size: size, Vel: vel}
}

func (s *Spawner) inward() float64 {
	return s.hazards.MinSpeed + s.rng.Float64()*s.hazards.SpeedRange
}

func (s *Spawner) lateral() float64 {
	return (s.rng.Float64() - 0.5) * s.hazards.LateralJitter
}

func (s *Spawner) draw(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
