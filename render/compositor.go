package render

import (
	"bytes"
	"strings"

	"github.com/timson/pirinfetch/logo"
)

// Compose lays the logo and the text block side by side into buf. An image
// logo is written first and reserved as blank padding; ASCII lines are
// padded to the logo's padding width. Output continues until both the text
// and the logo's rows are used up.
func Compose(buf *bytes.Buffer, block logo.Block, text []string, pal *Palette) {
	if len(block.Prelude) > 0 {
		buf.Write(block.Prelude)
	}

	n := max(len(text), block.Rows)
	blank := strings.Repeat(" ", block.Padding)
	for i := 0; i < n; i++ {
		line := ""
		if i < len(text) {
			line = text[i]
		}

		cell := ""
		if block.Mode == logo.ModeASCII && i < len(block.Lines) {
			cell = block.Lines[i]
		}
		if line != "" {
			if cell == "" {
				cell = blank
			} else {
				cell = logo.PadRight(cell, block.Padding)
			}
		}
		if pal != nil {
			cell = pal.PaintGlyphs(block.Color, cell)
		}

		buf.WriteString(cell)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}
