package garden

import "github.com/vovakirdan/bee-garden/internal/core"

// Collides reports whether two entities overlap, treating each as a circle
// whose diameter is its size. Touching exactly at the boundary is not a hit.
func Collides(a core.Vec2, sizeA float64, b core.Vec2, sizeB float64) bool {
	return core.Dist(a, b) < sizeA/2+sizeB/2
}

// collectPickups removes every pickup touching the player and returns how
// many were collected.
func (g *Game) collectPickups() int {
	collected := 0
	for i := len(g.pickups) - 1; i >= 0; i-- {
		p := g.pickups[i]
		if Collides(g.player.Pos, g.player.Size, p.Pos, p.Size) {
			g.pickups = append(g.pickups[:i], g.pickups[i+1:]...)
			collected++
		}
	}
	return collected
}

// hitHazard returns the index of the first hazard touching the player, or -1.
func (g *Game) hitHazard() int {
	for i, h := range g.hazards {
		if Collides(g.player.Pos, g.player.Size, h.Pos, h.Size) {
			return i
		}
	}
	return -1
}
