package garden

import (
	"slices"

	"github.com/vovakirdan/bee-garden/internal/core"
)

// Phase is where a game is in its lifecycle.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first start
	PhaseRunning              // Simulation advancing
	PhaseEnded                // Hit by a spider, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Board   core.Vec2
	Score   int
	Best    int
	RunID   string
	Player  Player
	Pickups []Pickup
	Hazards []Hazard
}

// Snapshot returns the current state. The pools are copied, so the
// snapshot stays valid after further ticks.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.phase,
		Board:   g.board,
		Score:   g.score,
		Best:    g.best,
		RunID:   g.runID,
		Player:  g.player,
		Pickups: slices.Clone(g.pickups),
		Hazards: slices.Clone(g.hazards),
	}
}
