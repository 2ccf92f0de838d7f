package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	json "github.com/neilotoole/jsoncolor"
	"github.com/timson/pirinfetch/facts"
)

// printFacts dumps every fact as an indented JSON object, coloured when w
// is a colour terminal.
func printFacts(ctx context.Context, w io.Writer, p facts.Provider) error {
	return printJSON(w, facts.Snapshot(ctx, p))
}

func printJSON(w io.Writer, data any) error {
	var enc *json.Encoder
	if f, ok := w.(*os.File); ok && json.IsColorTerminal(f) {
		enc = json.NewEncoder(colorable.NewColorable(f)) // needed for Windows
		enc.SetColors(json.DefaultColors())
	} else {
		enc = json.NewEncoder(w)
	}
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
