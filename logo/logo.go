// Package logo builds the left-hand block of the report: a coloured ASCII
// picture or an image sent with the kitty graphics protocol.
package logo

import (
	"fmt"
	"strings"

	"github.com/timson/pirinfetch/terminal"
)

type Mode int

const (
	ModeASCII Mode = iota
	ModeImage
)

func (m Mode) String() string {
	switch m {
	case ModeASCII:
		return "ascii"
	case ModeImage:
		return "image"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "ascii" and "image". "kitty" is kept as an alias of
// image for older configs.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ascii":
		return ModeASCII, nil
	case "image", "kitty":
		return ModeImage, nil
	}
	return ModeASCII, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Spec describes the configured logo. Zero TargetWidth/TargetHeight mean
// unset; nil PaddingColumns/RowSpan are computed from the image size.
type Spec struct {
	Mode            Mode
	ASCIIArt        string
	ASCIIPath       string
	UseDefaultASCII bool
	Color           string

	ImagePath        string
	TargetWidth      int
	TargetHeight     int
	PaddingColumns   *int
	RowSpan          *int
	HorizontalOffset int
	VerticalOffset   int
}

// Environment is everything Build needs to know about the host.
type Environment struct {
	Geometry terminal.Geometry
	Graphics bool
	Distro   string
}

// Block is a ready-to-compose logo. ASCII blocks carry Lines; image blocks
// carry the escape sequence in Prelude and leave Lines empty.
type Block struct {
	Mode    Mode
	Lines   []string
	Color   string
	Width   int
	Padding int
	Rows    int
	Prelude []byte
}

// Build never fails: a broken image setup is logged and the ASCII block
// for the same spec is returned instead.
func Build(spec Spec, env Environment) Block {
	if spec.Mode == ModeImage {
		block, err := buildImage(spec, env)
		if err == nil {
			return block
		}
		logger.Warn("image logo unavailable, falling back to ascii",
			"path", spec.ImagePath, "error", err)
	}
	return buildASCII(spec, env.Distro)
}

func buildASCII(spec Spec, distro string) Block {
	lines := loadASCII(spec, distro)
	width := displayWidth(lines)
	padding := 0
	if len(lines) > 0 {
		padding = width + asciiGap
	}
	return Block{
		Mode:    ModeASCII,
		Lines:   lines,
		Color:   spec.Color,
		Width:   width,
		Padding: padding,
		Rows:    len(lines),
	}
}

func buildImage(spec Spec, env Environment) (Block, error) {
	if !env.Graphics {
		return Block{}, ErrGraphicsUnsupported
	}
	if strings.TrimSpace(spec.ImagePath) == "" {
		return Block{}, ErrNoImagePath
	}

	payload, w, h, err := PrepareImage(spec.ImagePath, spec.TargetWidth, spec.TargetHeight)
	if err != nil {
		return Block{}, err
	}

	cols, rows := CellSpan(w, h, env.Geometry)
	padding, rowSpan := Layout(cols, rows, spec)
	seq := EncodeKitty(payload, Placement{
		Cols:    cols,
		Rows:    rows,
		OffsetX: spec.HorizontalOffset,
		OffsetY: spec.VerticalOffset,
	})

	logger.Debug("image logo prepared",
		"path", spec.ImagePath, "width", w, "height", h,
		"cols", cols, "rows", rows, "bytes", len(seq))

	return Block{
		Mode:    ModeImage,
		Width:   cols,
		Padding: padding,
		Rows:    rowSpan,
		Prelude: seq,
	}, nil
}
