package render

// DefaultSeparator sits between a key and its value.
const DefaultSeparator = ": "

// TextRenderer formats resolved items into the right-hand text block.
type TextRenderer struct {
	Separator string
	Palette   *Palette
}

func (r TextRenderer) Render(lines []ResolvedLine) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, r.Line(l))
	}
	return out
}

// Line renders one item. A key with an empty value still prints the key and
// separator so every item keeps its row.
func (r TextRenderer) Line(l ResolvedLine) string {
	if l.Item.Blank() {
		return ""
	}
	if l.Item.Key == "" {
		return r.paint(l.Item.ValueColor, l.Text)
	}
	sep := r.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	return r.paint(l.Item.KeyColor, l.Item.Key+sep) + r.paint(l.Item.ValueColor, l.Text)
}

func (r TextRenderer) paint(name, s string) string {
	if r.Palette == nil {
		return s
	}
	return r.Palette.Paint(name, s)
}
