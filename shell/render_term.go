package shell

import (
	"bufio"
	"io"

	"github.com/gookit/color"
)

// TerminalRenderer draws a Board as text, one line per row.
// In colour mode each cell is a two-column block painted with the palette;
// in plain mode each cell is a single glyph (. + S G *).
type TerminalRenderer struct {
	W       io.Writer
	Plain   bool
	Palette Palette
	// Home, if set, moves the cursor to the top-left before each frame so
	// successive frames overwrite each other.
	Home bool
}

const cursorHome = "\x1b[H"

// Render writes one frame of b.
func (r *TerminalRenderer) Render(b *Board) error {
	w := bufio.NewWriter(r.W)
	if r.Home {
		if _, err := w.WriteString(cursorHome); err != nil {
			return err
		}
	}

	n := b.Size()
	for i := 0; i < n*n; i++ {
		st := b.states[i]
		if r.Plain {
			if err := w.WriteByte(st.glyph()); err != nil {
				return err
			}
		} else {
			c := r.Palette.of(st)
			if _, err := w.WriteString(color.RGB(c.R, c.G, c.B, true).Sprint("  ")); err != nil {
				return err
			}
		}
		if (i+1)%n == 0 {
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	return w.Flush()
}
