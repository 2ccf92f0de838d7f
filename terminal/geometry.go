package terminal

const (
	FallbackCellWidth  = 8
	FallbackCellHeight = 16
	FallbackCols       = 80
	FallbackRows       = 24
)

// Geometry is the size of the terminal and of one character cell in pixels.
type Geometry struct {
	CellWidth  int
	CellHeight int
	Cols       int
	Rows       int
}

func FallbackGeometry() Geometry {
	return Geometry{
		CellWidth:  FallbackCellWidth,
		CellHeight: FallbackCellHeight,
		Cols:       FallbackCols,
		Rows:       FallbackRows,
	}
}

// GeometryFromWinsize derives cell size from a TIOCGWINSZ reply. Terminals
// that leave the pixel fields at zero get the fallback cell size.
func GeometryFromWinsize(cols, rows, xpixel, ypixel uint16) Geometry {
	g := FallbackGeometry()
	if cols > 0 {
		g.Cols = int(cols)
	}
	if rows > 0 {
		g.Rows = int(rows)
	}
	if cols > 0 && rows > 0 && xpixel > 0 && ypixel > 0 {
		if w := int(xpixel) / int(cols); w > 0 {
			g.CellWidth = w
		}
		if h := int(ypixel) / int(rows); h > 0 {
			g.CellHeight = h
		}
	}
	return g
}
