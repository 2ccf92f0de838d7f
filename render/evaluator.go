package render

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/timson/pirinfetch/facts"
	"github.com/timson/pirinfetch/pkg/utils"
)

// Evaluator resolves items to display strings. Nothing it does can fail:
// unknown facts read "Unknown" and failed commands read "".
type Evaluator struct {
	Facts  facts.Provider
	Runner utils.Runner
	Logger *slog.Logger
}

func NewEvaluator(p facts.Provider, runner utils.Runner, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{Facts: p, Runner: runner, Logger: logger}
}

func (e *Evaluator) Evaluate(ctx context.Context, it Item) ResolvedLine {
	if it.Blank() {
		return ResolvedLine{Item: it}
	}

	var text string
	switch it.Kind {
	case KindText:
		text = it.Value
	case KindDefault:
		text = e.fact(ctx, it)
	case KindCommand:
		text = e.command(ctx, it.Value)
	default:
		e.Logger.Error("item with invalid kind", "key", it.Key, "kind", it.Kind)
		text = it.Value
	}
	return ResolvedLine{Item: it, Text: text}
}

// EvaluateAll keeps the configured order and runs items one at a time.
func (e *Evaluator) EvaluateAll(ctx context.Context, items []Item) []ResolvedLine {
	lines := make([]ResolvedLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, e.Evaluate(ctx, it))
	}
	return lines
}

// fact tries the value as a fact name, then the key, then gives up and
// shows the value as text.
func (e *Evaluator) fact(ctx context.Context, it Item) string {
	if e.Facts != nil {
		for _, name := range []string{it.Value, it.Key} {
			if strings.TrimSpace(name) == "" || !facts.Known(name) {
				continue
			}
			if v, ok := facts.Resolve(ctx, e.Facts, name); ok {
				return v
			}
		}
	}
	return it.Value
}

func (e *Evaluator) command(ctx context.Context, cmd string) string {
	if e.Runner == nil {
		return ""
	}
	out, err := e.Runner.Shell(ctx, cmd)
	if err != nil {
		e.Logger.Debug("command item failed", "command", cmd, "error", err)
		return ""
	}
	return out
}

// ExpandItems replaces every default gpu item with one item per GPU
// (gpu1..gpuN). With no GPUs the item is kept so it still reads Unknown.
func ExpandItems(items []Item, gpuCount int) []Item {
	out := make([]Item, 0, len(items)+gpuCount)
	for _, it := range items {
		if it.Kind != KindDefault || facts.Canonical(it.Value) != "gpu" || gpuCount < 1 {
			out = append(out, it)
			continue
		}
		for i := 1; i <= gpuCount; i++ {
			gpu := it
			gpu.Value = "gpu" + strconv.Itoa(i)
			out = append(out, gpu)
		}
	}
	return out
}
