package garden

import "github.com/vovakirdan/bee-garden/internal/core"

// Pickup is a flower the bee collects for points.
type Pickup struct {
	Pos   core.Vec2
	Size  float64
	Color core.Color
	Age   float64 // Seconds since spawn; tracked but does not expire flowers
}

// Hazard is a spider crawling across the board.
type Hazard struct {
	Pos  core.Vec2
	Size float64
	Vel  core.Vec2 // Units per reference tick
}

// Edge is the board side a hazard enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// outsideBoard reports whether pos lies more than margin beyond any board edge.
func outsideBoard(pos, board core.Vec2, margin float64) bool {
	return pos.X < -margin || pos.X > board.X+margin ||
		pos.Y < -margin || pos.Y > board.Y+margin
}
