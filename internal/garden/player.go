package garden

import (
	"github.com/vovakirdan/bee-garden/internal/config"
	"github.com/vovakirdan/bee-garden/internal/core"
)

// Player is the bee.
type Player struct {
	Pos    core.Vec2
	Size   float64   // Side of the bounding square
	Speed  float64   // Units per reference tick
	Intent core.Vec2 // Raw direction, each component in {-1, 0, 1}
}

// NewPlayer creates a bee centered on the board.
func NewPlayer(cfg config.PlayerConfig, board core.Vec2) Player {
	p := Player{
		Size:  cfg.Size,
		Speed: cfg.Speed,
	}
	p.Center(board)
	return p
}

// Center moves the bee to the middle of the board.
func (p *Player) Center(board core.Vec2) {
	p.Pos = board.Scale(0.5)
}

// SetIntent sets the raw movement direction. Components are reduced to
// their sign so callers can pass key counts directly.
func (p *Player) SetIntent(dx, dy int) {
	p.Intent = core.V(float64(core.Sign(dx)), float64(core.Sign(dy)))
}

// Integrate moves the bee for dt seconds and keeps it on the board.
// Diagonal intent is normalized so every direction moves at the same speed.
func (p *Player) Integrate(dt, referenceFPS float64, board core.Vec2) {
	if !p.Intent.IsZero() {
		step := p.Intent.Normalize().Scale(p.Speed * dt * referenceFPS)
		p.Pos = p.Pos.Add(step)
	}
	p.Clamp(board)
}

// Clamp keeps the bee's bounding square fully inside the board.
func (p *Player) Clamp(board core.Vec2) {
	half := p.Size / 2
	p.Pos.X = core.ClampF(p.Pos.X, half, board.X-half)
	p.Pos.Y = core.ClampF(p.Pos.Y, half, board.Y-half)
}
