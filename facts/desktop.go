package facts

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

var knownWindowManagers = []string{
	"sway", "hyprland", "Hyprland", "kwin_wayland", "kwin_x11", "niri", "mutter", "xfwm4",
	"openbox", "i3", "bspwm", "awesome", "weston", "dwm", "qtile", "river", "labwc", "gnome-session",
}

func (h *HostProvider) WindowManager(ctx context.Context) (string, error) {
	if name, ok := windowManagerFromEnv(h.Getenv); ok {
		return name, nil
	}
	if h.SkipProcs {
		return "", fmt.Errorf("window manager: %w", ErrNotFound)
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if wm, ok := matchWindowManager(name); ok {
			return wm, nil
		}
	}
	return "", fmt.Errorf("window manager: %w", ErrNotFound)
}

func windowManagerFromEnv(getenv func(string) string) (string, bool) {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			// XDG_CURRENT_DESKTOP may be a list like "ubuntu:GNOME"
			parts := strings.Split(v, ":")
			return capitalizeFirst(parts[len(parts)-1]), true
		}
	}
	if getenv("WAYLAND_DISPLAY") != "" {
		return "Wayland", true
	}
	return "", false
}

func matchWindowManager(proc string) (string, bool) {
	for _, wm := range knownWindowManagers {
		if proc != wm && !strings.HasPrefix(proc, wm) {
			continue
		}
		if strings.HasPrefix(proc, "gnome-session") {
			return "GNOME", true
		}
		return capitalizeFirst(wm), true
	}
	return "", false
}
