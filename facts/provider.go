// Package facts probes the host for the values shown in a report. Every
// probe is read-only; a probe that cannot answer returns an error, which
// Resolve turns into the Unknown sentinel.
package facts

import (
	"context"
	"time"
)

// Unknown is shown in place of any fact whose probe failed.
const Unknown = "Unknown"

type MemoryStat struct {
	Total uint64
	Used  uint64
}

type DiskStat struct {
	Total       uint64
	Used        uint64
	UsedPercent float64
}

type PackageManager string

const (
	Pacman  PackageManager = "pacman"
	Dpkg    PackageManager = "dpkg"
	Rpm     PackageManager = "rpm"
	Xbps    PackageManager = "xbps"
	Portage PackageManager = "portage"
	Nix     PackageManager = "nix"
	Flatpak PackageManager = "flatpak"
)

type PackageCount struct {
	Manager PackageManager
	Count   int
}

// Provider exposes one query per fact kind.
type Provider interface {
	OSName(ctx context.Context) (string, error)
	DistroID(ctx context.Context) (string, error)
	KernelVersion(ctx context.Context) (string, error)
	CPUModel(ctx context.Context) (string, error)
	GPUs(ctx context.Context) ([]string, error)
	Memory(ctx context.Context) (MemoryStat, error)
	Disk(ctx context.Context) (DiskStat, error)
	Uptime(ctx context.Context) (time.Duration, error)
	DistroAge(ctx context.Context) (int, error)
	Packages(ctx context.Context) ([]PackageCount, error)
	Shell(ctx context.Context) (string, error)
	Terminal(ctx context.Context) (string, error)
	Editor(ctx context.Context) (string, error)
	WindowManager(ctx context.Context) (string, error)
	Username(ctx context.Context) (string, error)
	Hostname(ctx context.Context) (string, error)
	InitSystem(ctx context.Context) (string, error)
	Battery(ctx context.Context) (string, error)
}
