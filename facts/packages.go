package facts

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Packages reports the system package manager count followed by flatpak,
// when either is installed.
func (h *HostProvider) Packages(ctx context.Context) ([]PackageCount, error) {
	var counts []PackageCount

	if pm, ok := h.detectPackageManager(); ok {
		n, err := h.countPackages(ctx, pm)
		if err != nil {
			logger.Debug("package count failed", "manager", pm, "error", err)
		} else {
			counts = append(counts, PackageCount{Manager: pm, Count: n})
		}
	}

	if n, err := countDirs(h.path("/var/lib/flatpak/app")); err == nil && n > 0 {
		counts = append(counts, PackageCount{Manager: Flatpak, Count: n})
	}

	if len(counts) == 0 {
		return nil, ErrNoPackageManager
	}
	return counts, nil
}

// detectPackageManager checks package databases before looking for binaries.
func (h *HostProvider) detectPackageManager() (PackageManager, bool) {
	switch {
	case fileExists(h.path("/var/lib/pacman/local")):
		return Pacman, true
	case fileExists(h.path("/var/lib/dpkg/status")):
		return Dpkg, true
	case fileExists(h.path("/var/lib/rpm")):
		return Rpm, true
	case fileExists(h.path("/var/db/xbps")):
		return Xbps, true
	case fileExists(h.path("/var/db/pkg")):
		return Portage, true
	}

	lookPath := h.LookPath
	if lookPath == nil {
		return "", false
	}
	switch {
	case lookPath("nix-store"):
		return Nix, true
	case lookPath("xbps-query"):
		return Xbps, true
	case lookPath("dpkg-query"):
		return Dpkg, true
	case lookPath("rpm"):
		return Rpm, true
	}
	return "", false
}

func (h *HostProvider) countPackages(ctx context.Context, pm PackageManager) (int, error) {
	switch pm {
	case Pacman:
		return countDirs(h.path("/var/lib/pacman/local"))
	case Dpkg:
		if n, err := countDpkgStatus(h.path("/var/lib/dpkg/status")); err == nil {
			return n, nil
		}
		return h.countLines(ctx, "dpkg-query", "-f", "${binary:Package}\n", "-W")
	case Rpm:
		return h.countLines(ctx, "rpm", "-qa")
	case Xbps:
		// /var/db/xbps holds a single pkgdb plist, so ask xbps-query.
		return h.countLines(ctx, "xbps-query", "-l")
	case Portage:
		return countPortage(h.path("/var/db/pkg"))
	case Nix:
		return h.countLines(ctx, "nix-store", "--query", "--requisites", "/run/current-system/sw")
	case Flatpak:
		return countDirs(h.path("/var/lib/flatpak/app"))
	}
	return 0, fmt.Errorf("%w: %s", ErrNoPackageManager, pm)
}

func (h *HostProvider) countLines(ctx context.Context, name string, args ...string) (int, error) {
	if h.Runner == nil {
		return 0, fmt.Errorf("%s: no command runner", name)
	}
	out, err := h.Runner.Run(ctx, name, args...)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n, nil
}

func countDirs(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() {
			n++
		}
	}
	return n, nil
}

// countPortage counts category/package directories under /var/db/pkg.
func countPortage(root string) (int, error) {
	categories, err := os.ReadDir(root)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range categories {
		if !c.IsDir() {
			continue
		}
		if k, err := countDirs(filepath.Join(root, c.Name())); err == nil {
			n += k
		}
	}
	return n, nil
}

func countDpkgStatus(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "Status: install ok installed" {
			n++
		}
	}
	return n, sc.Err()
}
