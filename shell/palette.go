package shell

import "image/color"

// Palette maps each cell state to a fill colour.
type Palette map[CellState]color.RGBA

// DefaultPalette is the demo's colour scheme.
var DefaultPalette = Palette{
	Unvisited: {R: 75, G: 54, B: 95, A: 255},
	Explored:  {R: 223, G: 215, B: 200, A: 255},
	Start:     {R: 170, G: 219, B: 30, A: 255},
	Goal:      {R: 244, G: 54, B: 76, A: 255},
	Path:      {R: 255, G: 255, B: 0, A: 255},
}

// Outline is the border colour drawn around every cell.
var Outline = color.RGBA{A: 255}

func (p Palette) of(st CellState) color.RGBA {
	if c, ok := p[st]; ok {
		return c
	}

	return DefaultPalette[st]
}
