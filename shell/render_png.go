package shell

import (
	"image"
	"io"

	"github.com/fogleman/gg"
)

// PNGRenderer rasterises a Board: one filled square per cell with a thin
// outline, the same picture the interactive window shows.
type PNGRenderer struct {
	CellSize int
	Palette  Palette
}

// Draw returns the board as an image of side CellSize·N pixels.
func (r *PNGRenderer) Draw(b *Board) image.Image {
	return r.context(b).Image()
}

// Encode writes the board as PNG to w.
func (r *PNGRenderer) Encode(w io.Writer, b *Board) error {
	return r.context(b).EncodePNG(w)
}

// Save writes the board as a PNG file at path.
func (r *PNGRenderer) Save(path string, b *Board) error {
	return r.context(b).SavePNG(path)
}

func (r *PNGRenderer) context(b *Board) *gg.Context {
	cs := r.CellSize
	if cs <= 0 {
		cs = CellSizeFor(WindowSize, b.Size())
	}
	n := b.Size()
	dc := gg.NewContext(cs*n, cs*n)

	for i, st := range b.states {
		c := b.grid.Coordinate(i)
		x, y := float64(c.Col*cs), float64(c.Row*cs)
		fill := r.Palette.of(st)
		dc.DrawRectangle(x, y, float64(cs), float64(cs))
		dc.SetRGB255(int(fill.R), int(fill.G), int(fill.B))
		dc.FillPreserve()
		dc.SetRGB255(int(Outline.R), int(Outline.G), int(Outline.B))
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	return dc
}
