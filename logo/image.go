package logo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage reads any registered raster format.
func DecodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyImage)
	}
	logger.Debug("image decoded", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	return img, nil
}

// TargetDims fills in a missing target dimension from the source aspect
// ratio. With neither set the native size is kept.
func TargetDims(srcW, srcH, wantW, wantH int) (int, int, error) {
	if srcW <= 0 || srcH <= 0 || wantW < 0 || wantH < 0 {
		return 0, 0, ErrInvalidDimensions
	}
	switch {
	case wantW == 0 && wantH == 0:
		return srcW, srcH, nil
	case wantH == 0:
		h := int(math.Round(float64(wantW) * float64(srcH) / float64(srcW)))
		return wantW, max(h, 1), nil
	case wantW == 0:
		w := int(math.Round(float64(wantH) * float64(srcW) / float64(srcH)))
		return max(w, 1), wantH, nil
	}
	return wantW, wantH, nil
}

// Resize scales img to exactly w x h with Catmull-Rom. An image already at
// that size is returned unchanged.
func Resize(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// PrepareImage decodes, scales and re-encodes the image as PNG, returning
// the payload and its final pixel size.
func PrepareImage(path string, wantW, wantH int) ([]byte, int, int, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, 0, 0, err
	}
	b := img.Bounds()
	w, h, err := TargetDims(b.Dx(), b.Dy(), wantW, wantH)
	if err != nil {
		return nil, 0, 0, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Resize(img, w, h)); err != nil {
		return nil, 0, 0, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), w, h, nil
}
