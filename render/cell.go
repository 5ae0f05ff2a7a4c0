package render

import colorful "github.com/lucasb-eyer/go-colorful"

// Cell is one terminal character with colors in linear-friendly float form
// Rune 0 marks the trailing half of a wide rune and is skipped on flush
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
	Bold bool
}

// Background is the default canvas color (Tokyo Night)
var Background = colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255}

func blankCell() Cell {
	return Cell{Rune: ' ', Fg: Background, Bg: Background}
}
