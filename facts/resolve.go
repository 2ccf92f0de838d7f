package facts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type resolver func(ctx context.Context, p Provider) (string, error)

var resolvers = map[string]resolver{
	"os": func(ctx context.Context, p Provider) (string, error) {
		return p.OSName(ctx)
	},
	"distro": func(ctx context.Context, p Provider) (string, error) {
		return p.DistroID(ctx)
	},
	"kernel": func(ctx context.Context, p Provider) (string, error) {
		return p.KernelVersion(ctx)
	},
	"cpu": func(ctx context.Context, p Provider) (string, error) {
		return p.CPUModel(ctx)
	},
	"gpu": func(ctx context.Context, p Provider) (string, error) {
		return gpuAt(ctx, p, 0)
	},
	"memory": func(ctx context.Context, p Provider) (string, error) {
		m, err := p.Memory(ctx)
		if err != nil {
			return "", err
		}
		return FormatMemory(m), nil
	},
	"disk_usage": func(ctx context.Context, p Provider) (string, error) {
		d, err := p.Disk(ctx)
		if err != nil {
			return "", err
		}
		return FormatDisk(d), nil
	},
	"uptime": resolveUptime,
	"os_age": func(ctx context.Context, p Provider) (string, error) {
		days, err := p.DistroAge(ctx)
		if err != nil {
			return "", err
		}
		return FormatAge(days), nil
	},
	"pkg_count": func(ctx context.Context, p Provider) (string, error) {
		counts, err := p.Packages(ctx)
		if err != nil {
			return "", err
		}
		for _, c := range counts {
			if c.Manager != Flatpak {
				return strconv.Itoa(c.Count), nil
			}
		}
		return "0", nil
	},
	"flatpak_pkg_count": func(ctx context.Context, p Provider) (string, error) {
		counts, err := p.Packages(ctx)
		if err != nil && !errors.Is(err, ErrNoPackageManager) {
			return "", err
		}
		for _, c := range counts {
			if c.Manager == Flatpak {
				return strconv.Itoa(c.Count), nil
			}
		}
		return "0", nil
	},
	"packages": func(ctx context.Context, p Provider) (string, error) {
		counts, err := p.Packages(ctx)
		if err != nil {
			return "", err
		}
		return FormatPackages(counts), nil
	},
	"shell": func(ctx context.Context, p Provider) (string, error) {
		return p.Shell(ctx)
	},
	"terminal": func(ctx context.Context, p Provider) (string, error) {
		return p.Terminal(ctx)
	},
	"editor": func(ctx context.Context, p Provider) (string, error) {
		return p.Editor(ctx)
	},
	"wm": func(ctx context.Context, p Provider) (string, error) {
		return p.WindowManager(ctx)
	},
	"username": func(ctx context.Context, p Provider) (string, error) {
		return p.Username(ctx)
	},
	"hostname": func(ctx context.Context, p Provider) (string, error) {
		return p.Hostname(ctx)
	},
	"user_info": func(ctx context.Context, p Provider) (string, error) {
		u, err := p.Username(ctx)
		if err != nil {
			u = Unknown
		}
		host, err := p.Hostname(ctx)
		if err != nil {
			host = Unknown
		}
		return u + "@" + host, nil
	},
	"init_system": func(ctx context.Context, p Provider) (string, error) {
		return p.InitSystem(ctx)
	},
	"battery": func(ctx context.Context, p Provider) (string, error) {
		return p.Battery(ctx)
	},
}

var aliases = map[string]string{
	"uptime_seconds": "uptime",
	"kernel_version": "kernel",
	"cpu_brand":      "cpu",
	"de":             "wm",
	"wm_de":          "wm",
	"disk":           "disk_usage",
	"user":           "username",
	"host":           "hostname",
	"init":           "init_system",
	"age":            "os_age",
	"pkgs":           "packages",
}

func resolveUptime(ctx context.Context, p Provider) (string, error) {
	d, err := p.Uptime(ctx)
	if err != nil {
		return "", err
	}
	return FormatUptime(d), nil
}

func gpuAt(ctx context.Context, p Provider, idx int) (string, error) {
	gpus, err := p.GPUs(ctx)
	if err != nil {
		return "", err
	}
	if idx >= len(gpus) {
		return "", fmt.Errorf("gpu%d: %w", idx+1, ErrNotFound)
	}
	return gpus[idx], nil
}

// Canonical lower-cases name and follows aliases.
func Canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	if target, ok := aliases[name]; ok {
		return target
	}
	return name
}

func gpuIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "gpu")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

// Known reports whether name refers to a fact Resolve can answer.
func Known(name string) bool {
	name = Canonical(name)
	if _, ok := resolvers[name]; ok {
		return true
	}
	_, ok := gpuIndex(name)
	return ok
}

// Resolve looks up a fact by name. The bool is false for names that are
// not facts at all. Probe errors never escape: they become Unknown.
func Resolve(ctx context.Context, p Provider, name string) (string, bool) {
	name = Canonical(name)
	var (
		value string
		err   error
	)
	if r, ok := resolvers[name]; ok {
		value, err = r(ctx, p)
	} else if idx, ok := gpuIndex(name); ok {
		value, err = gpuAt(ctx, p, idx)
	} else {
		return "", false
	}

	if err != nil {
		logger.Debug("fact probe failed", "fact", name, "error", err)
		return Unknown, true
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return Unknown, true
	}
	return value, true
}

// Names returns every canonical fact name in sorted order.
func Names() []string {
	names := make([]string, 0, len(resolvers))
	for name := range resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot resolves every canonical fact.
func Snapshot(ctx context.Context, p Provider) map[string]string {
	out := make(map[string]string, len(resolvers))
	for _, name := range Names() {
		out[name], _ = Resolve(ctx, p, name)
	}
	return out
}
