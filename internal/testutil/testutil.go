// Package testutil holds small helpers shared by the package tests.
package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemFs returns a fresh in-memory filesystem.
func MemFs(t *testing.T) afero.Fs {
	t.Helper()
	return afero.NewMemMapFs()
}

// SeedFile writes content at path on fs, creating parent directories.
func SeedFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

// Int returns a pointer to n, for optional-int parameters.
func Int(n int) *int {
	return &n
}
