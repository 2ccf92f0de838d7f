package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShellCapturesTrimmedStdout(t *testing.T) {
	r := NewExecRunner(0)

	out, err := r.Shell(context.Background(), "printf 'hello  \\n\\n'")
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestShellNonZeroExit(t *testing.T) {
	r := NewExecRunner(0)

	out, err := r.Shell(context.Background(), "echo partial; exit 3")
	require.ErrorIs(t, err, ErrCommandFailed)
	require.Empty(t, out)
}

func TestRunMissingBinary(t *testing.T) {
	r := NewExecRunner(0)

	_, err := r.Run(context.Background(), "definitely-not-a-real-binary-4321")
	require.ErrorIs(t, err, ErrCommandNotFound)
}

func TestShellEmptyCommand(t *testing.T) {
	r := NewExecRunner(0)

	_, err := r.Shell(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyCommand)
}

func TestShellTimeout(t *testing.T) {
	r := NewExecRunner(50 * time.Millisecond)

	start := time.Now()
	_, err := r.Shell(context.Background(), "sleep 5")
	require.Error(t, err)
	require.Less(t, time.Since(start), 4*time.Second)
}

func TestCommandExists(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-pm")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	require.True(t, CommandExists("fake-pm"))
	require.False(t, CommandExists("other-pm"))
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/pirin")

	require.Equal(t, "/home/pirin/.config/art.txt", ExpandHome("~/.config/art.txt"))
	require.Equal(t, "/etc/art.txt", ExpandHome("/etc/art.txt"))
	require.Equal(t, "~user/x", ExpandHome("~user/x"))
}
