package logo

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTargetDims(t *testing.T) {
	cases := []struct {
		name         string
		srcW, srcH   int
		wantW, wantH int
		w, h         int
	}{
		{"native", 640, 480, 0, 0, 640, 480},
		{"width only", 400, 100, 200, 0, 200, 50},
		{"height only", 400, 100, 0, 50, 200, 50},
		{"rounded", 333, 200, 200, 0, 200, 120},
		{"both", 400, 100, 30, 30, 30, 30},
		{"tiny", 1000, 1, 10, 0, 10, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h, err := TargetDims(tc.srcW, tc.srcH, tc.wantW, tc.wantH)
			require.NoError(t, err)
			require.Equal(t, tc.w, w)
			require.Equal(t, tc.h, h)
		})
	}

	_, _, err := TargetDims(0, 10, 5, 0)
	require.ErrorIs(t, err, ErrInvalidDimensions)
	_, _, err = TargetDims(10, 10, -5, 0)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestPrepareImagePreservesAspectRatio(t *testing.T) {
	path := writeTestPNG(t, 300, 170)

	payload, w, h, err := PrepareImage(path, 200, 0)
	require.NoError(t, err)
	require.Equal(t, 200, w)
	require.InDelta(t, 200.0*170/300, float64(h), 1.0)

	img, err := png.Decode(bytes.NewReader(payload))
	require.NoError(t, err)
	require.Equal(t, w, img.Bounds().Dx())
	require.Equal(t, h, img.Bounds().Dy())
}

func TestPrepareImageNativeSize(t *testing.T) {
	path := writeTestPNG(t, 16, 32)

	_, w, h, err := PrepareImage(path, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 16, w)
	require.Equal(t, 32, h)
}

func TestPrepareImageErrors(t *testing.T) {
	_, _, _, err := PrepareImage(tempFileName(".png"), 10, 0)
	require.Error(t, err)

	garbage := writeTestFile(t, ".png", "definitely not a png")
	_, _, _, err = PrepareImage(garbage, 10, 0)
	require.Error(t, err)
}
