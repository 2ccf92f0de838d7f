package render

import (
	"github.com/timson/pirinfetch/logo"
	"github.com/timson/pirinfetch/terminal"
)

// Context is everything a single render pass reads. It is built once and
// not modified afterwards.
type Context struct {
	Items       []Item
	Separator   string
	Logo        logo.Spec
	Geometry    terminal.Geometry
	Graphics    bool
	ShowAllGPUs bool
}
