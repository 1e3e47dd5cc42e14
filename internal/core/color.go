package core

// Color represents a foreground color for a screen cell.
// The platform layer decides how each value is drawn.
type Color uint8

// Predefined colors for garden elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
	ColorGrass  // Board background
	ColorBee    // Player body
	ColorSpider // Hazards
	ColorRose   // Flower palette
	ColorAmber
	ColorLeaf
	ColorTeal
	ColorLilac
)

// FlowerPalette is the fixed set of colors a pickup may be spawned with.
var FlowerPalette = [...]Color{ColorRose, ColorAmber, ColorLeaf, ColorTeal, ColorLilac}
