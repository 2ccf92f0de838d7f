// Package render turns configured display items into the final report.
package render

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown item type")

// Kind selects how an item's value is produced.
type Kind int

const (
	KindDefault Kind = iota // system fact
	KindText                // literal value
	KindCommand             // shell command output
)

func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindText:
		return "text"
	case KindCommand:
		return "command"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a config type string to a Kind. An empty string means
// default; anything unrecognised is rejected.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return KindDefault, nil
	case "text":
		return KindText, nil
	case "command":
		return KindCommand, nil
	}
	return KindDefault, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Item is one configured row of the report.
type Item struct {
	Key        string
	Kind       Kind
	Value      string
	KeyColor   string
	ValueColor string
}

// Blank items render as an empty line whatever their kind.
func (it Item) Blank() bool {
	return it.Key == "" && it.Value == ""
}

// ResolvedLine is an item together with the value it evaluated to.
type ResolvedLine struct {
	Item Item
	Text string
}

// DefaultItems is the item list used when the configuration has none.
func DefaultItems() []Item {
	return []Item{
		{Kind: KindDefault, Value: "user_info", ValueColor: "bright_blue"},
		{},
		{Key: "OS", Kind: KindDefault, Value: "os", KeyColor: "blue"},
		{Key: "Kernel", Kind: KindDefault, Value: "kernel", KeyColor: "blue"},
		{Key: "Uptime", Kind: KindDefault, Value: "uptime", KeyColor: "blue"},
		{Key: "Packages", Kind: KindDefault, Value: "packages", KeyColor: "blue"},
		{Key: "Shell", Kind: KindDefault, Value: "shell", KeyColor: "blue"},
		{Key: "Terminal", Kind: KindDefault, Value: "terminal", KeyColor: "blue"},
		{Key: "WM", Kind: KindDefault, Value: "wm", KeyColor: "blue"},
		{Key: "Editor", Kind: KindDefault, Value: "editor", KeyColor: "blue"},
		{Key: "CPU", Kind: KindDefault, Value: "cpu", KeyColor: "blue"},
		{Key: "GPU", Kind: KindDefault, Value: "gpu", KeyColor: "blue"},
		{Key: "Memory", Kind: KindDefault, Value: "memory", KeyColor: "blue"},
		{Key: "Disk", Kind: KindDefault, Value: "disk_usage", KeyColor: "blue"},
		{Key: "OS Age", Kind: KindDefault, Value: "os_age", KeyColor: "blue"},
	}
}
