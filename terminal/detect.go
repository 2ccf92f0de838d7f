package terminal

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ForceGraphicsEnv turns graphics support on regardless of what the terminal reports.
const ForceGraphicsEnv = "PIRINFETCH_GRAPHICS"

// Capabilities holds the environment signals used for protocol detection.
type Capabilities struct {
	Term          string
	TermProgram   string
	KittyWindowID string
	GhosttyDir    string
	WeztermPane   string
	Forced        bool
	IsTTY         bool
}

// DetectCapabilities reads the process environment and stdout.
func DetectCapabilities() Capabilities {
	return CapabilitiesFromEnv(os.Getenv, isatty.IsTerminal(os.Stdout.Fd()))
}

// CapabilitiesFromEnv builds Capabilities from an arbitrary lookup function.
func CapabilitiesFromEnv(getenv func(string) string, tty bool) Capabilities {
	return Capabilities{
		Term:          getenv("TERM"),
		TermProgram:   getenv("TERM_PROGRAM"),
		KittyWindowID: getenv("KITTY_WINDOW_ID"),
		GhosttyDir:    getenv("GHOSTTY_RESOURCES_DIR"),
		WeztermPane:   getenv("WEZTERM_PANE"),
		Forced:        isTruthy(getenv(ForceGraphicsEnv)),
		IsTTY:         tty,
	}
}

// SupportsGraphics decides whether the Kitty graphics protocol can be used.
// Ghostty and WezTerm usually advertise themselves as xterm-256color, so
// their own variables are checked as well.
func SupportsGraphics(c Capabilities) bool {
	if c.Forced {
		return true
	}
	if !c.IsTTY {
		return false
	}
	if strings.Contains(strings.ToLower(c.Term), "kitty") || strings.Contains(strings.ToLower(c.Term), "ghostty") {
		return true
	}
	switch strings.ToLower(c.TermProgram) {
	case "wezterm", "ghostty", "kitty":
		return true
	}
	return c.KittyWindowID != "" || c.GhosttyDir != "" || c.WeztermPane != ""
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
