package terminal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestSupportsGraphics(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		tty  bool
		want bool
	}{
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, true, true},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, true, false},
		{"ghostty masquerading", map[string]string{"TERM": "xterm-256color", "TERM_PROGRAM": "ghostty"}, true, true},
		{"wezterm pane", map[string]string{"TERM": "xterm-256color", "WEZTERM_PANE": "0"}, true, true},
		{"kitty window id", map[string]string{"TERM": "screen", "KITTY_WINDOW_ID": "1"}, true, true},
		{"kitty but piped", map[string]string{"TERM": "xterm-kitty"}, false, false},
		{"forced", map[string]string{"TERM": "dumb", ForceGraphicsEnv: "1"}, false, true},
		{"forced off value", map[string]string{"TERM": "dumb", ForceGraphicsEnv: "0"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := CapabilitiesFromEnv(envOf(tt.env), tt.tty)
			require.Equal(t, tt.want, SupportsGraphics(caps))
		})
	}
}

func TestGeometryFromWinsize(t *testing.T) {
	g := GeometryFromWinsize(100, 40, 1000, 800)
	require.Equal(t, Geometry{CellWidth: 10, CellHeight: 20, Cols: 100, Rows: 40}, g)

	g = GeometryFromWinsize(120, 30, 0, 0)
	require.Equal(t, Geometry{CellWidth: FallbackCellWidth, CellHeight: FallbackCellHeight, Cols: 120, Rows: 30}, g)

	require.Equal(t, FallbackGeometry(), GeometryFromWinsize(0, 0, 0, 0))
}
