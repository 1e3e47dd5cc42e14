package garden

import (
	"fmt"

	"github.com/vovakirdan/bee-garden/internal/core"
)

// Visual characters for rendering
const (
	BeeChar    = '●'
	FlowerChar = '✿'
	SpiderChar = '✱'
	GrassChar  = '·'
	HUDLine    = '─'
)

// hudHeight is the number of rows above the playfield.
const hudHeight = 2

// Render draws a snapshot into dst. Board coordinates are scaled to the
// cells below the HUD; entities outside the board are clipped.
func Render(s Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudHeight {
		return
	}

	drawHUD(s, dst)

	field := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	drawGrass(field, dst)

	for _, p := range s.Pickups {
		x, y, ok := toCell(p.Pos, s.Board, field)
		if ok {
			dst.SetColored(x, y, FlowerChar, p.Color)
		}
	}
	for _, h := range s.Hazards {
		x, y, ok := toCell(h.Pos, s.Board, field)
		if ok {
			dst.SetColored(x, y, SpiderChar, core.ColorSpider)
		}
	}
	if s.Phase != PhaseIdle {
		if x, y, ok := toCell(s.Player.Pos, s.Board, field); ok {
			dst.SetColored(x, y, BeeChar, core.ColorBee)
		}
	}

	switch s.Phase {
	case PhaseIdle:
		DrawMessage(dst, core.ColorYellow,
			"PIXEL BEE GARDEN",
			"Collect flowers, avoid spiders",
			"Arrows/WASD move  |  Enter to play")
	case PhaseEnded:
		DrawMessage(dst, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d   Best: %d", s.Score, s.Best),
			"R restart  |  S share  |  Tab scores  |  Q quit")
	}
}

// drawHUD writes the score line and a separator.
func drawHUD(s Snapshot, dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorYellow)
	best := fmt.Sprintf("Best: %d", s.Best)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), HUDLine, core.ColorGray)
}

// drawGrass fills the playfield with a sparse dot grid.
func drawGrass(field core.Rect, dst *core.Screen) {
	for y := field.Y; y < field.Bottom(); y += 2 {
		for x := field.X; x < field.Right(); x += 4 {
			dst.SetColored(x, y, GrassChar, core.ColorGrass)
		}
	}
}

// toCell maps a board position to a playfield cell.
func toCell(pos, board core.Vec2, field core.Rect) (x, y int, ok bool) {
	if pos.X < 0 || pos.Y < 0 || pos.X >= board.X || pos.Y >= board.Y {
		return 0, 0, false
	}
	x = field.X + int(pos.X/board.X*float64(field.W))
	y = field.Y + int(pos.Y/board.Y*float64(field.H))
	return x, y, field.Contains(x, y)
}

// DrawMessage draws a boxed, centered block of lines. The first line is the
// title and is separated from the rest by a blank row.
func DrawMessage(dst *core.Screen, c core.Color, lines ...string) {
	if len(lines) == 0 {
		return
	}
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 3
	if len(lines) == 1 {
		boxH = 3
	}
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	row := boxY + 1
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextColored(x, row, l, color)
		row++
		if i == 0 {
			row++
		}
	}
}
