package facts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func staticHost() *Static {
	return &Static{
		OS:         "Arch Linux",
		ID:         "arch",
		Kernel:     "6.9.3-arch1-1",
		CPU:        "AMD Ryzen 7 7700X",
		GPUList:    []string{"GeForce RTX 3070 [Discrete]", "AMD Raphael [Integrated]"},
		Mem:        MemoryStat{Used: 4 * 1024 * 1024 * 1024, Total: 32 * 1024 * 1024 * 1024},
		DiskUsage:  DiskStat{Used: 1024 * 1024 * 1024, Total: 4 * 1024 * 1024 * 1024, UsedPercent: 25},
		Up:         3661 * time.Second,
		AgeDays:    1,
		Pkgs:       []PackageCount{{Manager: Pacman, Count: 1203}, {Manager: Flatpak, Count: 7}},
		ShellName:  "zsh",
		Term:       "kitty",
		EditorName: "nvim",
		WM:         "Hyprland",
		User:       "pirin",
		Host:       "box",
		Init:       "systemd",
		Bat:        "87% [Charging]",
	}
}

func TestResolveKnownFacts(t *testing.T) {
	ctx := context.Background()
	p := staticHost()

	want := map[string]string{
		"os":                "Arch Linux",
		"kernel":            "6.9.3-arch1-1",
		"cpu":               "AMD Ryzen 7 7700X",
		"gpu":               "GeForce RTX 3070 [Discrete]",
		"gpu2":              "AMD Raphael [Integrated]",
		"memory":            "4.00 GiB / 32.00 GiB",
		"disk_usage":        "1.00 GiB / 4.00 GiB (25%)",
		"uptime":            "1h 1m",
		"uptime_seconds":    "1h 1m",
		"os_age":            "1 day",
		"pkg_count":         "1203",
		"flatpak_pkg_count": "7",
		"packages":          "1203 (pacman), 7 (flatpak)",
		"shell":             "zsh",
		"terminal":          "kitty",
		"editor":            "nvim",
		"wm":                "Hyprland",
		"user_info":         "pirin@box",
		"init_system":       "systemd",
		"battery":           "87% [Charging]",
		"Kernel Version":    "6.9.3-arch1-1",
	}
	for name, expected := range want {
		got, ok := Resolve(ctx, p, name)
		require.True(t, ok, name)
		require.Equal(t, expected, got, name)
	}
}

func TestResolveUnknownName(t *testing.T) {
	_, ok := Resolve(context.Background(), staticHost(), "favourite_colour")
	require.False(t, ok)
	require.False(t, Known("gpu0"))
	require.False(t, Known("gpux"))
	require.True(t, Known("gpu3"))
	require.True(t, Known("Uptime_Seconds"))
}

func TestResolveProbeFailureIsUnknown(t *testing.T) {
	p := &Static{Err: errors.New("probe exploded")}

	for _, name := range Names() {
		got, ok := Resolve(context.Background(), p, name)
		require.True(t, ok, name)
		if name == "user_info" {
			require.Equal(t, Unknown+"@"+Unknown, got)
			continue
		}
		require.Equal(t, Unknown, got, name)
	}
}

func TestResolveMissingGPUIndex(t *testing.T) {
	got, ok := Resolve(context.Background(), staticHost(), "gpu3")
	require.True(t, ok)
	require.Equal(t, Unknown, got)
}

func TestResolveWithoutPackageManager(t *testing.T) {
	p := staticHost()
	p.Pkgs = nil

	got, _ := Resolve(context.Background(), p, "pkg_count")
	require.Equal(t, Unknown, got)
	got, _ = Resolve(context.Background(), p, "flatpak_pkg_count")
	require.Equal(t, "0", got)
}

func TestSnapshot(t *testing.T) {
	snap := Snapshot(context.Background(), staticHost())
	require.Len(t, snap, len(Names()))
	require.Equal(t, "Arch Linux", snap["os"])
	require.Equal(t, "arch", snap["distro"])
}
