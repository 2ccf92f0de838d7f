package facts

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/timson/pirinfetch/pkg/utils"
)

// HostProvider answers fact queries about the machine it runs on.
// Root prefixes every file path it reads, which lets tests point it at a
// fake filesystem tree; gopsutil probes ignore it.
type HostProvider struct {
	Root      string
	Getenv    func(string) string
	Runner    utils.Runner
	LookPath  func(string) bool
	Now       func() time.Time
	DiskPath  string
	SkipProcs bool // disables process-table scans
}

func NewHostProvider(runner utils.Runner) *HostProvider {
	return &HostProvider{
		Root:     "/",
		Getenv:   os.Getenv,
		Runner:   runner,
		LookPath: utils.CommandExists,
		Now:      time.Now,
		DiskPath: "/",
	}
}

func (h *HostProvider) path(p string) string {
	if h.Root == "" {
		return p
	}
	return filepath.Join(h.Root, p)
}

func (h *HostProvider) osRelease() (map[string]string, error) {
	for _, p := range []string{"/etc/os-release", "/usr/lib/os-release"} {
		data, err := os.ReadFile(h.path(p))
		if err == nil {
			return parseKeyValues(string(data)), nil
		}
	}
	return nil, fmt.Errorf("os-release: %w", ErrNotFound)
}

func (h *HostProvider) OSName(ctx context.Context) (string, error) {
	if rel, err := h.osRelease(); err == nil {
		if name := rel["PRETTY_NAME"]; name != "" {
			return name, nil
		}
		if name := rel["NAME"]; name != "" {
			return strings.TrimSpace(name + " " + rel["VERSION_ID"]), nil
		}
	}
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	if info.Platform == "" {
		return "", fmt.Errorf("os name: %w", ErrNotFound)
	}
	return strings.TrimSpace(capitalizeFirst(info.Platform) + " " + info.PlatformVersion), nil
}

func (h *HostProvider) DistroID(ctx context.Context) (string, error) {
	if rel, err := h.osRelease(); err == nil && rel["ID"] != "" {
		return strings.ToLower(rel["ID"]), nil
	}
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	if info.Platform == "" {
		return "", fmt.Errorf("distro id: %w", ErrNotFound)
	}
	return strings.ToLower(info.Platform), nil
}

func (h *HostProvider) KernelVersion(ctx context.Context) (string, error) {
	if v, err := readFirstLine(h.path("/proc/sys/kernel/osrelease")); err == nil && v != "" {
		return v, nil
	}
	return host.KernelVersionWithContext(ctx)
}

func (h *HostProvider) CPUModel(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		return strings.Join(strings.Fields(infos[0].ModelName), " "), nil
	}
	return h.cpuModelFromProc()
}

func (h *HostProvider) cpuModelFromProc() (string, error) {
	data, err := os.ReadFile(h.path("/proc/cpuinfo"))
	if err != nil {
		return "", err
	}
	var hardware string
	for _, line := range strings.Split(string(data), "\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "model name":
			return strings.TrimSpace(v), nil
		case "Hardware":
			hardware = strings.TrimSpace(v)
		}
	}
	if hardware != "" {
		return hardware, nil
	}
	return "", fmt.Errorf("cpu model: %w", ErrNotFound)
}

func (h *HostProvider) Memory(ctx context.Context) (MemoryStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStat{}, err
	}
	used := vm.Used
	if vm.Available > 0 && vm.Available <= vm.Total {
		used = vm.Total - vm.Available
	}
	return MemoryStat{Total: vm.Total, Used: used}, nil
}

func (h *HostProvider) Disk(ctx context.Context) (DiskStat, error) {
	p := h.DiskPath
	if p == "" {
		p = "/"
	}
	usage, err := disk.UsageWithContext(ctx, p)
	if err != nil {
		return DiskStat{}, err
	}
	return DiskStat{Total: usage.Total, Used: usage.Used, UsedPercent: usage.UsedPercent}, nil
}

func (h *HostProvider) Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

func (h *HostProvider) DistroAge(ctx context.Context) (int, error) {
	born, err := birthTime(h.path("/"))
	if err != nil {
		logger.Debug("statx birth time unavailable, trying stat", "error", err)
		born, err = h.birthTimeFromStat(ctx)
		if err != nil {
			return 0, err
		}
	}
	days := int(h.Now().Sub(born).Hours()) / 24
	if days < 0 {
		days = 0
	}
	return days, nil
}

func (h *HostProvider) birthTimeFromStat(ctx context.Context) (time.Time, error) {
	if h.Runner == nil {
		return time.Time{}, ErrBirthTimeMissing
	}
	out, err := h.Runner.Run(ctx, "stat", "-c", "%W", h.path("/"))
	if err != nil {
		return time.Time{}, err
	}
	var secs int64
	if _, err = fmt.Sscan(out, &secs); err != nil || secs <= 0 {
		return time.Time{}, ErrBirthTimeMissing
	}
	return time.Unix(secs, 0), nil
}

func (h *HostProvider) Terminal(_ context.Context) (string, error) {
	if prog := h.Getenv("TERM_PROGRAM"); prog != "" {
		return prog, nil
	}
	term := h.Getenv("TERM")
	if term == "" {
		return "", fmt.Errorf("terminal: %w", ErrNotFound)
	}
	return strings.TrimPrefix(term, "xterm-"), nil
}

func (h *HostProvider) Editor(_ context.Context) (string, error) {
	for _, key := range []string{"EDITOR", "VISUAL"} {
		if f := strings.Fields(h.Getenv(key)); len(f) > 0 {
			return filepath.Base(f[0]), nil
		}
	}
	return DefaultEditor, nil
}

// DefaultEditor is reported when neither EDITOR nor VISUAL is set.
const DefaultEditor = "nano"

func (h *HostProvider) Username(_ context.Context) (string, error) {
	if name := h.Getenv("USER"); name != "" {
		return name, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (h *HostProvider) Hostname(ctx context.Context) (string, error) {
	if name, err := readFirstLine(h.path("/proc/sys/kernel/hostname")); err == nil && name != "" {
		return name, nil
	}
	info, err := host.InfoWithContext(ctx)
	if err == nil && info.Hostname != "" {
		return info.Hostname, nil
	}
	return os.Hostname()
}
