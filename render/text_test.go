package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextRendererLine(t *testing.T) {
	r := TextRenderer{Palette: NewPalette(nil, false, quietLogger())}

	cases := []struct {
		name string
		line ResolvedLine
		want string
	}{
		{"key and value", ResolvedLine{Item: Item{Key: "Message", Kind: KindText, Value: "Hello, world!"}, Text: "Hello, world!"}, "Message: Hello, world!"},
		{"blank", ResolvedLine{Item: Item{Kind: KindCommand}}, ""},
		{"no key", ResolvedLine{Item: Item{Value: "user_info"}, Text: "pirin@box"}, "pirin@box"},
		{"empty value keeps key", ResolvedLine{Item: Item{Key: "Broken", Kind: KindCommand, Value: "false"}}, "Broken: "},
		{"no key empty value", ResolvedLine{Item: Item{Kind: KindCommand, Value: "false"}}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, r.Line(tc.line))
		})
	}
}

func TestTextRendererSeparatorAndColour(t *testing.T) {
	r := TextRenderer{Separator: " -> ", Palette: NewPalette(nil, true, quietLogger())}
	line := ResolvedLine{Item: Item{Key: "OS", KeyColor: "blue", ValueColor: "red"}, Text: "Arch"}

	require.Equal(t, "\x1b[34mOS -> \x1b[0m\x1b[31mArch\x1b[0m", r.Line(line))
}

func TestTextRendererRenderCount(t *testing.T) {
	r := TextRenderer{}
	lines := []ResolvedLine{
		{Item: Item{Key: "A"}, Text: "1"},
		{},
		{Item: Item{Key: "B"}, Text: "2"},
	}
	require.Equal(t, []string{"A: 1", "", "B: 2"}, r.Render(lines))
}
