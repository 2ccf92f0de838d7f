package facts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	tagIntegrated = " [Integrated]"
	tagDiscrete   = " [Discrete]"
)

var pciVendors = map[string]string{
	"0x10de": "NVIDIA",
	"0x1002": "AMD",
	"0x8086": "Intel",
	"0x1af4": "Virtio",
	"0x15ad": "VMware",
	"0x1234": "QEMU",
}

// GPUs lists every display adapter, discrete ones first. lspci gives the
// nicest names; sysfs is used when it is missing.
func (h *HostProvider) GPUs(ctx context.Context) ([]string, error) {
	var gpus []string
	if h.Runner != nil && h.LookPath != nil && h.LookPath("lspci") {
		if out, err := h.Runner.Run(ctx, "lspci"); err == nil {
			gpus = parseLspci(out)
		}
	}
	if len(gpus) == 0 {
		gpus = h.gpusFromSysfs()
	}
	if len(gpus) == 0 {
		return nil, fmt.Errorf("gpu: %w", ErrNotFound)
	}
	sortDiscreteFirst(gpus)
	return gpus, nil
}

func (h *HostProvider) gpusFromSysfs() []string {
	cards, err := filepath.Glob(h.path("/sys/class/drm/card*"))
	if err != nil {
		return nil
	}
	var gpus []string
	for _, card := range cards {
		if strings.Contains(filepath.Base(card), "-") {
			continue // connectors such as card0-HDMI-A-1
		}
		vendorID, err := readFirstLine(filepath.Join(card, "device", "vendor"))
		if err != nil {
			continue
		}
		name := pciVendors[vendorID]
		if name == "" {
			name = "GPU " + vendorID
		}
		uevent, _ := os.ReadFile(filepath.Join(card, "device", "uevent"))
		if driver := parseKeyValues(string(uevent))["DRIVER"]; driver != "" {
			name += " (" + driver + ")"
		}
		slot := ""
		if target, err := os.Readlink(filepath.Join(card, "device")); err == nil {
			slot = filepath.Base(target)
		}
		if vendorID == "0x8086" || strings.HasPrefix(slot, "0000:00:02") {
			name += tagIntegrated
		} else {
			name += tagDiscrete
		}
		gpus = append(gpus, name)
	}
	return gpus
}

func parseLspci(out string) []string {
	var gpus []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "VGA compatible controller") &&
			!strings.Contains(line, "3D controller") &&
			!strings.Contains(line, "Display controller") {
			continue
		}
		if gpu, ok := parseLspciLine(line); ok {
			gpus = append(gpus, gpu)
		}
	}
	return gpus
}

// parseLspciLine turns one lspci display line into a short model name with
// an integrated/discrete tag.
func parseLspciLine(line string) (string, bool) {
	_, desc, ok := strings.Cut(line, "controller: ")
	if !ok {
		return "", false
	}
	desc, _, _ = strings.Cut(desc, " (rev ")
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", false
	}

	var name string
	switch {
	case strings.Contains(desc, "NVIDIA"):
		name = nvidiaName(desc)
	case strings.Contains(desc, "AMD") || strings.Contains(desc, "Advanced Micro Devices"):
		name = amdName(desc)
	case strings.Contains(desc, "Intel"):
		name = "Intel " + strings.TrimSpace(strings.Replace(lastBracketTrimmed(desc), "Intel Corporation", "", 1))
	default:
		if b := lastBracket(desc); b != "" && !strings.Contains(b, "/") {
			name = b
		} else {
			name = desc
		}
	}
	return name + gpuTag(line, name), true
}

func nvidiaName(desc string) string {
	if b := lastBracket(desc); b != "" {
		return b
	}
	return "NVIDIA GPU"
}

func amdName(desc string) string {
	b := lastBracket(desc)
	if b != "" && !strings.Contains(b, "AMD/ATI") {
		if strings.Contains(b, " / ") {
			parts := strings.Split(b, " / ")
			last := strings.TrimSpace(parts[len(parts)-1])
			// "Radeon RX 7700 XT / 7800 XT" -> "Radeon RX 7800 XT"
			if first := strings.Fields(parts[0]); len(first) > 2 && !strings.HasPrefix(last, first[0]) {
				last = strings.Join(first[:2], " ") + " " + last
			}
			return "AMD " + last
		}
		return "AMD " + b
	}
	return "AMD GPU"
}

// lastBracketTrimmed drops a trailing bracket group, keeping the text before it.
func lastBracketTrimmed(desc string) string {
	if i := strings.LastIndex(desc, " ["); i > 0 {
		return desc[:i]
	}
	return desc
}

func lastBracket(desc string) string {
	start := strings.LastIndex(desc, "[")
	if start < 0 {
		return ""
	}
	end := strings.Index(desc[start:], "]")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(desc[start+1 : start+end])
}

func gpuTag(line, name string) string {
	l := strings.ToLower(line)
	n := strings.ToLower(name)
	switch {
	case strings.HasPrefix(line, "00:02.0") && strings.Contains(l, "intel"),
		strings.Contains(n, "uhd"), strings.Contains(n, "iris"), strings.Contains(n, "hd graphics"),
		strings.Contains(n, "raphael"), strings.Contains(n, "renoir"), strings.Contains(n, "cezanne"):
		return tagIntegrated
	}
	return tagDiscrete
}

func sortDiscreteFirst(gpus []string) {
	sort.SliceStable(gpus, func(i, j int) bool {
		return !strings.HasSuffix(gpus[i], tagIntegrated) && strings.HasSuffix(gpus[j], tagIntegrated)
	})
}

func (h *HostProvider) InitSystem(_ context.Context) (string, error) {
	checks := []struct {
		name  string
		paths []string
	}{
		{"systemd", []string{"/run/systemd/system", "/usr/lib/systemd/systemd", "/lib/systemd/systemd"}},
		{"OpenRC", []string{"/sbin/openrc", "/usr/sbin/openrc", "/run/openrc"}},
		{"runit", []string{"/etc/runit", "/run/runit"}},
		{"s6", []string{"/etc/s6", "/run/s6"}},
		{"SysV", []string{"/etc/inittab", "/etc/init.d"}},
	}
	for _, c := range checks {
		for _, p := range c.paths {
			if fileExists(h.path(p)) {
				return c.name, nil
			}
		}
	}
	return "", fmt.Errorf("init system: %w", ErrNotFound)
}

func (h *HostProvider) Battery(_ context.Context) (string, error) {
	supplies, err := filepath.Glob(h.path("/sys/class/power_supply/BAT*"))
	if err != nil || len(supplies) == 0 {
		return "", ErrNoBattery
	}
	sort.Strings(supplies)
	for _, dir := range supplies {
		capacity, err := readFirstLine(filepath.Join(dir, "capacity"))
		if err != nil {
			continue
		}
		status, err := readFirstLine(filepath.Join(dir, "status"))
		if err != nil || status == "" {
			status = "Unknown"
		}
		return fmt.Sprintf("%s%% [%s]", capacity, status), nil
	}
	return "", ErrNoBattery
}
