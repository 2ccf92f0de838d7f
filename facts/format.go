package facts

import (
	"fmt"
	"strings"
	"time"
)

var binaryUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// HumanBytes formats b with binary prefixes and two decimals, e.g. "7.50 GiB".
func HumanBytes(b uint64) string {
	if b < 1024 {
		return fmt.Sprintf("%d B", b)
	}
	value := float64(b)
	unit := 0
	for value >= 1024 && unit < len(binaryUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, binaryUnits[unit])
}

func FormatMemory(m MemoryStat) string {
	return HumanBytes(m.Used) + " / " + HumanBytes(m.Total)
}

func FormatDisk(d DiskStat) string {
	return fmt.Sprintf("%s / %s (%d%%)", HumanBytes(d.Used), HumanBytes(d.Total), int(d.UsedPercent))
}

// FormatUptime truncates to whole minutes; seconds are never shown and
// nothing is rounded up.
func FormatUptime(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

func FormatAge(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func FormatPackages(counts []PackageCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d (%s)", c.Count, c.Manager))
	}
	return strings.Join(parts, ", ")
}
