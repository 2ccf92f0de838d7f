package logo

import (
	"embed"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/timson/pirinfetch/pkg/utils"
)

// asciiGap separates the picture from the text block.
const asciiGap = 2

//go:embed art/*.txt
var bundledArt embed.FS

var artAliases = map[string]string{
	"archarm":     "arch",
	"endeavouros": "arch",
	"manjaro":     "arch",
	"cachyos":     "arch",
	"pop":         "ubuntu",
	"linuxmint":   "ubuntu",
	"raspbian":    "debian",
}

// loadASCII picks, in order: inline art, the art file, bundled art for the
// distro. A missing art file falls through to the bundled art when allowed.
func loadASCII(spec Spec, distro string) []string {
	if spec.ASCIIArt != "" {
		return splitLines(spec.ASCIIArt)
	}
	if p := strings.TrimSpace(spec.ASCIIPath); p != "" {
		data, err := os.ReadFile(utils.ExpandHome(p))
		if err == nil {
			return splitLines(string(data))
		}
		logger.Warn("cannot read ascii art", "path", p, "error", err)
	}
	if !spec.UseDefaultASCII {
		return nil
	}
	return splitLines(DefaultArt(distro))
}

// DefaultArt returns the bundled art for a distro ID, or the generic Linux
// picture.
func DefaultArt(distro string) string {
	id := strings.ToLower(strings.TrimSpace(distro))
	if alias, ok := artAliases[id]; ok {
		id = alias
	}
	if id != "" && !strings.ContainsAny(id, "/.") {
		if data, err := bundledArt.ReadFile("art/" + id + ".txt"); err == nil {
			return string(data)
		}
	}
	data, _ := bundledArt.ReadFile("art/linux.txt")
	return string(data)
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(strings.TrimRight(l, " \t"), "\t", "    ")
	}
	return lines
}

func displayWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return w
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
