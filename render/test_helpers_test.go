package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/timson/pirinfetch/facts"
	"github.com/timson/pirinfetch/pkg/utils"
)

type fakeShell struct {
	outputs map[string]string
	calls   []string
}

func (f *fakeShell) Run(ctx context.Context, name string, args ...string) (string, error) {
	return "", fmt.Errorf("%w: %s", utils.ErrCommandNotFound, name)
}

func (f *fakeShell) Shell(_ context.Context, command string) (string, error) {
	f.calls = append(f.calls, command)
	out, ok := f.outputs[command]
	if !ok {
		return "", fmt.Errorf("%w: exit status 1", utils.ErrCommandFailed)
	}
	return out, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, nil))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func testFacts() *facts.Static {
	return &facts.Static{
		OS:         "Arch Linux",
		ID:         "arch",
		Kernel:     "6.9.3-arch1-1",
		CPU:        "AMD Ryzen 7 7700X",
		GPUList:    []string{"GeForce RTX 3070 [Discrete]", "AMD Raphael [Integrated]"},
		Mem:        facts.MemoryStat{Used: 1 << 30, Total: 8 << 30},
		Up:         3661 * time.Second,
		ShellName:  "zsh",
		EditorName: "nvim",
		User:       "pirin",
		Host:       "box",
	}
}

func tempFileName(suffix string) string {
	return filepath.Join(os.TempDir(), uuid.New().String()+suffix)
}

func writeTempFile(t *testing.T, suffix, content string) string {
	t.Helper()
	name := tempFileName(suffix)
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	t.Cleanup(func() { _ = os.Remove(name) })
	return name
}
