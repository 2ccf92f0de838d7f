package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/timson/pirinfetch/facts"
	"github.com/timson/pirinfetch/logo"
	"github.com/timson/pirinfetch/pkg/utils"
)

// Pipeline evaluates items, builds the logo and writes the composed report.
type Pipeline struct {
	Facts     facts.Provider
	Evaluator *Evaluator
	Palette   *Palette
	Logger    *slog.Logger
}

func NewPipeline(p facts.Provider, runner utils.Runner, pal *Palette, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Facts:     p,
		Evaluator: NewEvaluator(p, runner, logger),
		Palette:   pal,
		Logger:    logger,
	}
}

// Render writes the whole report with a single Write. Only that write can
// fail; every other problem degrades the output instead.
func (pl *Pipeline) Render(ctx context.Context, rc Context, w io.Writer) error {
	items := rc.Items
	if rc.ShowAllGPUs && pl.Facts != nil {
		if gpus, err := pl.Facts.GPUs(ctx); err == nil {
			items = ExpandItems(items, len(gpus))
		} else {
			pl.Logger.Debug("gpu listing failed", "error", err)
		}
	}

	lines := pl.Evaluator.EvaluateAll(ctx, items)
	text := TextRenderer{Separator: rc.Separator, Palette: pl.Palette}.Render(lines)

	block := logo.Build(rc.Logo, logo.Environment{
		Geometry: rc.Geometry,
		Graphics: rc.Graphics,
		Distro:   pl.distro(ctx),
	})

	var buf bytes.Buffer
	Compose(&buf, block, text, pl.Palette)
	_, err := w.Write(buf.Bytes())
	return err
}

func (pl *Pipeline) distro(ctx context.Context) string {
	if pl.Facts == nil {
		return ""
	}
	id, err := pl.Facts.DistroID(ctx)
	if err != nil {
		pl.Logger.Debug("distro id unavailable", "error", err)
		return ""
	}
	return id
}
