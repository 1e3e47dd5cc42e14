package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bee-garden/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGrass:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2f6b4c")),
	core.ColorBee:     lipgloss.NewStyle().Foreground(lipgloss.Color("#f9c74f")).Bold(true),
	core.ColorSpider:  lipgloss.NewStyle().Foreground(lipgloss.Color("#b5838d")).Bold(true),
	core.ColorRose:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6f91")),
	core.ColorAmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffc857")),
	core.ColorLeaf:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9add7f")),
	core.ColorTeal:    lipgloss.NewStyle().Foreground(lipgloss.Color("#50bfa0")),
	core.ColorLilac:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f0a6ca")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// shareBox renders the share message and link in a bordered panel
// centered in a width x height area.
func shareBox(text, link string, width, height int) string {
	boxWidth := min(max(width-8, 20), 72)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f9c74f")).
		Render("SHARE YOUR GARDEN")
	body := lipgloss.NewStyle().Render(text)
	url := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#50bfa0")).
		Underline(true).
		Render(link)
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("esc back  |  r restart  |  q quit")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Width(boxWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", url, "", hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
