package logo

import (
	"github.com/timson/pirinfetch/terminal"
	"golang.org/x/exp/constraints"
)

// imageGap is the blank space between an image and the text block.
const imageGap = 2

func ceilDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

func nonNegative[T constraints.Signed](v T) T {
	if v < 0 {
		return 0
	}
	return v
}

// CellSpan converts a pixel size to the number of terminal cells it covers.
func CellSpan(w, h int, g terminal.Geometry) (cols, rows int) {
	cw, ch := g.CellWidth, g.CellHeight
	if cw <= 0 {
		cw = terminal.FallbackCellWidth
	}
	if ch <= 0 {
		ch = terminal.FallbackCellHeight
	}
	return ceilDiv(w, cw), ceilDiv(h, ch)
}

// Layout returns the column where text starts and the number of rows the
// image occupies. Configured values win over computed ones.
func Layout(cols, rows int, spec Spec) (padding, rowSpan int) {
	padding = nonNegative(spec.HorizontalOffset) + cols + imageGap
	rowSpan = nonNegative(spec.VerticalOffset) + rows
	if spec.PaddingColumns != nil {
		padding = nonNegative(*spec.PaddingColumns)
	}
	if spec.RowSpan != nil {
		rowSpan = nonNegative(*spec.RowSpan)
	}
	return padding, rowSpan
}
