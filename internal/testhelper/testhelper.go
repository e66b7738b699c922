// Package testhelper contains helpers to simplify tests
package testhelper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempDir creates a temp dir and returns a cleanup method.
// The returned path has its symbolic links resolved so it can be
// compared with paths computed by the library
func TempDir(t *testing.T) (out string, cleanup func()) {
	t.Helper()

	out, err := os.MkdirTemp("", strings.ReplaceAll(t.Name(), "/", "_")+"_")
	require.NoError(t, err)
	out, err = filepath.EvalSymlinks(out)
	require.NoError(t, err)

	cleanup = func() {
		require.NoError(t, os.RemoveAll(out))
	}
	return out, cleanup
}

// WriteFile creates a file and all its parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// ReadFile returns the content of a file
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// SkipIfRoot skips the test when running as root, since root ignores
// file permissions
func SkipIfRoot(t *testing.T) {
	t.Helper()

	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
}
