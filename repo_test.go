package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/config"
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/internal/env"
	"github.com/Nivl/minigit/internal/testhelper"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo creates a new repository in a temporary directory
func newTestRepo(t *testing.T) (r *Repository, workTree string) {
	t.Helper()

	dir, cleanup := testhelper.TempDir(t)
	t.Cleanup(cleanup)

	r, err := InitRepository(dir)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, r.Close())
	})
	return r, dir
}

func TestInit(t *testing.T) {
	t.Parallel()

	t.Run("should create the layout and a root commit", func(t *testing.T) {
		t.Parallel()

		r, dir := newTestRepo(t)

		assert.Equal(t, dir, r.Config.WorkTreePath)
		assert.Equal(t, filepath.Join(dir, config.DefaultDotDirName), r.Config.GitDirPath)
		for _, p := range []string{
			filepath.Join(dir, ".minigit", "objects"),
			filepath.Join(dir, ".minigit", "index"),
			filepath.Join(dir, ".minigit", "HEAD"),
			filepath.Join(dir, ".minigit", "config"),
		} {
			_, err := os.Stat(p)
			require.NoError(t, err, p)
		}

		head, err := r.Head()
		require.NoError(t, err)
		require.False(t, head.IsZero(), "a root commit should have been created")

		c, err := r.GetCommit(head)
		require.NoError(t, err)
		assert.True(t, c.IsRoot())
		assert.Equal(t, RootCommitAuthor, c.Author())
		assert.Equal(t, RootCommitMessage, c.Message())
		// the first tree is empty
		assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", c.TreeID().String())

		raw := testhelper.ReadFile(t, filepath.Join(dir, ".minigit", "objects", head.String()))
		assert.Contains(t, raw, "\nparent \n", "the root commit should have an empty parent")
		assert.Empty(t, testhelper.ReadFile(t, filepath.Join(dir, ".minigit", "index")))
	})

	t.Run("should fail on an existing repository", func(t *testing.T) {
		t.Parallel()

		_, dir := newTestRepo(t)
		_, err := InitRepository(dir)
		require.ErrorIs(t, err, ErrRepositoryExists)
	})

	t.Run("should work on a directory with content", func(t *testing.T) {
		t.Parallel()

		dir, cleanup := testhelper.TempDir(t)
		t.Cleanup(cleanup)
		testhelper.WriteFile(t, filepath.Join(dir, "README.md"), "readme")

		r, err := InitRepository(dir)
		require.NoError(t, err)
		require.NoError(t, r.Close())

		assert.Equal(t, "readme", testhelper.ReadFile(t, filepath.Join(dir, "README.md")))
	})

	t.Run("should work in memory", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadConfigSkipEnv(config.LoadConfigOptions{
			FS:           afero.NewMemMapFs(),
			WorkTreePath: "/repo",
			GitDirPath:   "/repo/.minigit",
		})
		require.NoError(t, err)
		r, err := InitRepositoryWithOptions("/repo", InitOptions{Config: cfg})
		require.NoError(t, err)
		t.Cleanup(func() {
			require.NoError(t, r.Close())
		})

		head, err := r.Head()
		require.NoError(t, err)
		assert.False(t, head.IsZero())
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("should open an existing repository", func(t *testing.T) {
		t.Parallel()

		r, dir := newTestRepo(t)
		head, err := r.Head()
		require.NoError(t, err)

		r2, err := OpenRepository(dir)
		require.NoError(t, err)
		t.Cleanup(func() {
			require.NoError(t, r2.Close())
		})

		head2, err := r2.Head()
		require.NoError(t, err)
		assert.Equal(t, head, head2)
		assert.Equal(t, "sha1", r2.Hash().Name())
	})

	t.Run("should fail if there's no repository", func(t *testing.T) {
		t.Parallel()

		dir, cleanup := testhelper.TempDir(t)
		t.Cleanup(cleanup)

		_, err := OpenRepository(dir)
		require.ErrorIs(t, err, ErrRepositoryNotExist)
	})

	t.Run("should fail with an unsupported version", func(t *testing.T) {
		t.Parallel()

		_, dir := newTestRepo(t)
		cfgPath := filepath.Join(dir, ".minigit", "config")
		cfg := strings.Replace(testhelper.ReadFile(t, cfgPath), "= 0", "= 1", 1)
		testhelper.WriteFile(t, cfgPath, cfg)

		_, err := OpenRepository(dir)
		require.ErrorIs(t, err, ErrRepositoryUnsupportedVersion)
	})

	t.Run("should fail with an unknown hash", func(t *testing.T) {
		t.Parallel()

		_, dir := newTestRepo(t)
		cfgPath := filepath.Join(dir, ".minigit", "config")
		cfg := strings.Replace(testhelper.ReadFile(t, cfgPath), "sha1", "md5", 1)
		testhelper.WriteFile(t, cfgPath, cfg)

		_, err := OpenRepository(dir)
		require.ErrorIs(t, err, githash.ErrDigestUnavailable)
	})
}

func TestIndependentRepositories(t *testing.T) {
	t.Parallel()

	r1, dir1 := newTestRepo(t)
	r2, dir2 := newTestRepo(t)

	testhelper.WriteFile(t, filepath.Join(dir1, "a.txt"), "repo 1")
	testhelper.WriteFile(t, filepath.Join(dir2, "a.txt"), "repo 2")

	_, err := r1.Stage("a.txt")
	require.NoError(t, err)

	idx1, err := r1.Index()
	require.NoError(t, err)
	assert.Len(t, idx1, 1)

	idx2, err := r2.Index()
	require.NoError(t, err)
	assert.Empty(t, idx2)

	_, err = os.Stat(ginternals.ObjectPath(r2.Config, r1.Hash().Sum([]byte("repo 1")).String()))
	assert.True(t, os.IsNotExist(err), "objects should not be shared")
}

// mustLoadConfig returns the config of a repository in dir, that uses
// the given object directory
func mustLoadConfig(t *testing.T, dir, objectDir string) *config.Config {
	t.Helper()

	cfg, err := config.LoadConfig(env.NewFromKVList([]string{
		"MINIGIT_OBJECT_DIRECTORY=" + objectDir,
	}), config.LoadConfigOptions{
		WorkingDirectory: dir,
		SkipGitDirLookUp: true,
	})
	require.NoError(t, err)
	return cfg
}
