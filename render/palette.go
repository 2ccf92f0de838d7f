package render

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"
)

var namedColors = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright_black":   color.FgHiBlack,
	"gray":           color.FgHiBlack,
	"grey":           color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
	"orange":         color.FgHiRed,
	"purple":         color.FgMagenta,
	"violet":         color.FgHiMagenta,
}

// Palette resolves colour names to fatih/color printers. Entries of the
// user colour table are tried before the built-in names.
type Palette struct {
	table   map[string]string
	enabled bool
	logger  *slog.Logger
	cache   map[string]*color.Color
}

func NewPalette(table map[string]string, enabled bool, logger *slog.Logger) *Palette {
	if logger == nil {
		logger = slog.Default()
	}
	t := make(map[string]string, len(table))
	for k, v := range table {
		t[strings.ToLower(k)] = v
	}
	return &Palette{table: t, enabled: enabled, logger: logger, cache: map[string]*color.Color{}}
}

// Lookup returns nil for unset, reset and unknown colours.
func (p *Palette) Lookup(name string) *color.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	if c, ok := p.cache[name]; ok {
		return c
	}

	spec := name
	if v, ok := p.table[name]; ok {
		spec = strings.ToLower(strings.TrimSpace(v))
	}
	c, ok := parseColor(spec)
	if !ok {
		p.logger.Warn("unknown color", "name", name)
	}
	if c != nil {
		if p.enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	p.cache[name] = c
	return c
}

func parseColor(spec string) (*color.Color, bool) {
	switch spec {
	case "reset", "default":
		return nil, true
	}
	if attr, ok := namedColors[spec]; ok {
		return color.New(attr), true
	}
	if r, g, b, ok := parseHex(spec); ok {
		return color.RGB(r, g, b), true
	}
	return nil, false
}

func parseHex(s string) (int, int, int, bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// Paint colours s. Empty strings stay empty so no stray escapes are written.
func (p *Palette) Paint(name, s string) string {
	if s == "" {
		return ""
	}
	c := p.Lookup(name)
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// PaintGlyphs colours each run of non-space characters and leaves the
// whitespace between them plain.
func (p *Palette) PaintGlyphs(name, s string) string {
	c := p.Lookup(name)
	if c == nil || s == "" {
		return s
	}
	var b strings.Builder
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				b.WriteString(c.Sprint(s[start:i]))
				start = -1
			}
			b.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		b.WriteString(c.Sprint(s[start:]))
	}
	return b.String()
}
