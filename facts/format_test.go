package facts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{8 * 1024 * 1024 * 1024, "8.00 GiB"},
		{16_493_776_896, "15.36 GiB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3.00 TiB"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, HumanBytes(tt.in), "HumanBytes(%d)", tt.in)
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "0m"},
		{59, "0m"},
		{61, "1m"},
		{3661, "1h 1m"},
		{3600*23 + 59*60 + 59, "23h 59m"},
		{86400, "1d 0h 0m"},
		{86400*3 + 3600*4 + 60*5 + 59, "3d 4h 5m"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatUptime(time.Duration(tt.secs)*time.Second), "uptime %ds", tt.secs)
	}
}

func TestFormatUptimeFormatIsStable(t *testing.T) {
	a := FormatUptime(3661 * time.Second)
	b := FormatUptime(3721 * time.Second)
	require.Regexp(t, `^\d+h \d+m$`, a)
	require.Regexp(t, `^\d+h \d+m$`, b)
}

func TestFormatMemoryAndDisk(t *testing.T) {
	gib := uint64(1024 * 1024 * 1024)
	require.Equal(t, "2.50 GiB / 16.00 GiB", FormatMemory(MemoryStat{Used: gib * 5 / 2, Total: 16 * gib}))
	require.Equal(t, "100.00 GiB / 400.00 GiB (25%)", FormatDisk(DiskStat{Used: 100 * gib, Total: 400 * gib, UsedPercent: 25.9}))
}

func TestFormatAgeAndPackages(t *testing.T) {
	require.Equal(t, "1 day", FormatAge(1))
	require.Equal(t, "0 days", FormatAge(0))
	require.Equal(t, "412 days", FormatAge(412))

	got := FormatPackages([]PackageCount{{Manager: Pacman, Count: 1203}, {Manager: Flatpak, Count: 7}})
	require.Equal(t, "1203 (pacman), 7 (flatpak)", got)
}
