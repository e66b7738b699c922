package main

import (
	"bytes"
	"testing"

	"github.com/Nivl/minigit/internal/env"
	"github.com/Nivl/minigit/internal/testhelper"
	"github.com/stretchr/testify/require"
)

// runCmd runs minigit in the given directory and returns its output
func runCmd(t *testing.T, cwd string, e *env.Env, args ...string) (string, error) {
	t.Helper()

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd := newRootCmd(cwd, e)
	cmd.SetArgs(args)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)

	var err error
	require.NotPanics(t, func() {
		err = cmd.Execute()
	})
	return outBuf.String(), err
}

// newTestRepo creates a repository using the init command, and returns
// its path
func newTestRepo(t *testing.T) string {
	t.Helper()

	dir, cleanup := testhelper.TempDir(t)
	t.Cleanup(cleanup)

	_, err := runCmd(t, dir, env.NewFromKVList([]string{}), "init")
	require.NoError(t, err)
	return dir
}
