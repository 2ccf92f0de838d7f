package facts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/timson/pirinfetch/pkg/utils"
)

type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.calls = append(f.calls, key)
	out, ok := f.outputs[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", utils.ErrCommandFailed, key)
	}
	return out, nil
}

func (f *fakeRunner) Shell(ctx context.Context, command string) (string, error) {
	return f.Run(ctx, "sh", "-c", command)
}

func newTestProvider(t *testing.T, env map[string]string) (*HostProvider, *fakeRunner) {
	t.Helper()
	runner := &fakeRunner{outputs: map[string]string{}}
	return &HostProvider{
		Root:      t.TempDir(),
		Getenv:    func(k string) string { return env[k] },
		Runner:    runner,
		LookPath:  func(string) bool { return false },
		Now:       time.Now,
		SkipProcs: true,
	}, runner
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func mkdirs(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		require.NoError(t, os.MkdirAll(filepath.Join(root, rel), 0o755))
	}
}
