package logo

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func tempFileName(suffix string) string {
	return filepath.Join(os.TempDir(), uuid.New().String()+suffix)
}

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	name := tempFileName(".png")
	f, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	t.Cleanup(func() { _ = os.Remove(name) })
	return name
}

func writeTestFile(t *testing.T, suffix, content string) string {
	t.Helper()
	name := tempFileName(suffix)
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	t.Cleanup(func() { _ = os.Remove(name) })
	return name
}

func intPtr(v int) *int {
	return &v
}
