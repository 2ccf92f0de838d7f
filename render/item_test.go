package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"":         KindDefault,
		"default":  KindDefault,
		"Text":     KindText,
		" command": KindCommand,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseKind("script")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestItemBlank(t *testing.T) {
	require.True(t, Item{}.Blank())
	require.True(t, Item{Kind: KindCommand, KeyColor: "red"}.Blank())
	require.False(t, Item{Key: "OS"}.Blank())
	require.False(t, Item{Value: "x"}.Blank())
}
