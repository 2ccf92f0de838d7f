package facts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

const maxProcessDepth = 10

var knownShells = []string{"bash", "zsh", "fish", "nu", "nushell", "ksh", "mksh", "csh", "tcsh", "elvish", "xonsh", "oil", "osh", "ion", "moonsh"}

// Shell walks up the parent process chain looking for a known interactive
// shell; terminals, editors and plain sh wrappers are walked past.
// $SHELL is the fallback.
func (h *HostProvider) Shell(ctx context.Context) (string, error) {
	if !h.SkipProcs {
		if name, ok := h.shellFromProcessTree(ctx); ok {
			return name, nil
		}
	}
	return shellFromEnv(h.Getenv("SHELL"))
}

func (h *HostProvider) shellFromProcessTree(ctx context.Context) (string, bool) {
	pid := int32(os.Getppid())
	for range maxProcessDepth {
		if pid <= 1 {
			return "", false
		}
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			return "", false
		}
		name, err := p.NameWithContext(ctx)
		if err == nil {
			if shell, ok := classifyShell(name); ok {
				return shell, true
			}
		}
		if pid, err = p.PpidWithContext(ctx); err != nil {
			return "", false
		}
	}
	return "", false
}

// classifyShell returns the shell name when proc is a known shell.
func classifyShell(proc string) (string, bool) {
	name := strings.ToLower(filepath.Base(proc))
	name = strings.TrimPrefix(name, "-") // login shells
	if slices.Contains(knownShells, name) {
		return name, true
	}
	return "", false
}

func shellFromEnv(shell string) (string, error) {
	shell = strings.TrimSpace(shell)
	if shell == "" {
		return "", fmt.Errorf("shell: %w", ErrNotFound)
	}
	return filepath.Base(shell), nil
}
