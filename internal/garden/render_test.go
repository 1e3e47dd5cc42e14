package garden

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bee-garden/internal/core"
)

func TestRenderIdleShowsTitle(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(60, 24)

	Render(g.Snapshot(), screen)

	out := screen.String()
	if !strings.Contains(out, "PIXEL BEE GARDEN") {
		t.Error("Idle screen should show the title")
	}
	if strings.ContainsRune(out, BeeChar) {
		t.Error("Bee should not be drawn before the first run")
	}
}

func TestRenderRunning(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start()
	g.score = 30
	g.pickups = []Pickup{{Pos: core.V(10, 10), Size: 8, Color: core.ColorTeal}}
	g.hazards = []Hazard{
		{Pos: core.V(470, 470), Size: 12},
		{Pos: core.V(-12, 100), Size: 12}, // off canvas
	}
	screen := core.NewScreen(60, 24)

	Render(g.Snapshot(), screen)

	if !strings.Contains(screen.Row(0), "Score: 30") {
		t.Errorf("HUD should show the score, got %q", screen.Row(0))
	}
	if strings.Count(screen.String(), string(SpiderChar)) != 1 {
		t.Error("Only the on-board spider should be drawn")
	}

	// Bee is in the middle of the playfield
	bx, by := 30, hudHeight+11
	if c := screen.GetCell(bx, by); c.Rune != BeeChar || c.Color != core.ColorBee {
		t.Errorf("Expected bee at (%d, %d), got %q", bx, by, c.Rune)
	}
	if c := screen.GetCell(1, hudHeight); c.Rune != FlowerChar || c.Color != core.ColorTeal {
		t.Errorf("Expected teal flower in the top-left, got %q", c.Rune)
	}
}

func TestRenderGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start()
	g.score = 40
	g.end()
	screen := core.NewScreen(60, 24)

	Render(g.Snapshot(), screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 40   Best: 40") {
		t.Errorf("Game over box missing:\n%s", out)
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g, _ := newTestGame(t)
	g.Start()

	// Must not panic
	Render(g.Snapshot(), core.NewScreen(0, 0))
	Render(g.Snapshot(), core.NewScreen(3, 2))
	Render(g.Snapshot(), core.NewScreen(5, 5))
}
