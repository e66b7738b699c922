package config

import (
	"testing"

	"github.com/Nivl/minigit/internal/env"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileAggregate(t *testing.T) {
	t.Parallel()

	t.Run("should work with no files available", func(t *testing.T) {
		t.Parallel()

		f, err := NewFileAggregate(env.NewFromKVList([]string{}), &Config{
			FS:               afero.NewMemMapFs(),
			LocalConfig:      "/repo/.minigit/config",
			SkipGlobalConfig: true,
		})
		require.NoError(t, err)
		require.NotNil(t, f)

		_, ok := f.RepoFormatVersion()
		assert.False(t, ok)
		assert.Equal(t, "", f.HashName())
	})
}

func TestGetters(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	globalConfigPath := "/home/jane/.minigitconfig"
	localConfigPath := "/repo/.minigit/config"

	require.NoError(t, afero.WriteFile(fs, globalConfigPath, []byte(`
	[user]
		name = Global Jane
	[checkout]
		protect = global.txt
	`), 0o644))
	require.NoError(t, afero.WriteFile(fs, localConfigPath, []byte(`
	[core]
		repositoryformatversion = 0
		hash = sha1
	[checkout]
		protect = Makefile, *.md ,, go.mod
	`), 0o644))

	cfg := &Config{
		FS:          fs,
		LocalConfig: localConfigPath,
	}
	f, err := NewFileAggregate(env.NewFromKVList([]string{"HOME=/home/jane"}), cfg)
	require.NoError(t, err)

	version, ok := f.RepoFormatVersion()
	require.True(t, ok)
	assert.Equal(t, 0, version)

	assert.Equal(t, "sha1", f.HashName())

	name, ok := f.UserName()
	require.True(t, ok)
	assert.Equal(t, "Global Jane", name, "the global config should be used as fallback")

	assert.Equal(t, []string{"Makefile", "*.md", "go.mod"}, f.ProtectedPaths(), "the local config should win")

	t.Run("global config can be skipped", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{
			FS:               fs,
			LocalConfig:      localConfigPath,
			SkipGlobalConfig: true,
		}
		f, err := NewFileAggregate(env.NewFromKVList([]string{"HOME=/home/jane"}), cfg)
		require.NoError(t, err)
		_, ok := f.UserName()
		assert.False(t, ok)
	})
}
