package backend

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/config"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// Init creates the layout of a repository: the repository directory,
// the objects directory, an empty index, an empty HEAD, and the default
// config file.
// Existing files are left untouched
func (b *Backend) Init() error {
	dirs := []string{
		ginternals.DotGitPath(b.config),
		ginternals.ObjectsPath(b.config),
	}
	for _, d := range dirs {
		if err := b.fs.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("could not create directory %s: %w", d, ginternals.FSError("create", d, err))
		}
	}

	files := []string{
		ginternals.IndexPath(b.config),
		ginternals.HeadPath(b.config),
	}
	for _, f := range files {
		if err := b.createIfMissing(f, nil); err != nil {
			return err
		}
	}

	if err := b.setDefaultCfg(); err != nil {
		return fmt.Errorf("could not set the default config: %w", err)
	}
	return nil
}

// createIfMissing creates the file at the given path if it doesn't
// exist yet
func (b *Backend) createIfMissing(p string, content []byte) error {
	_, err := b.fs.Stat(p)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return ginternals.FSError("stat", p, err)
	}
	if err := afero.WriteFile(b.fs, p, content, 0o644); err != nil {
		return ginternals.FSError("create", p, err)
	}
	return nil
}

// setDefaultCfg set and persists the default configuration for
// the repository, unless a config file already exists
func (b *Backend) setDefaultCfg() error {
	cfg := ini.Empty()

	core, err := cfg.NewSection(config.CfgCore)
	if err != nil {
		return fmt.Errorf("could not create core section: %w", err)
	}
	coreCfg := []struct{ k, v string }{
		{config.CfgCoreFormatVersion, "0"},
		{config.CfgCoreHash, b.hash.Name()},
	}
	for _, kv := range coreCfg {
		if _, err := core.NewKey(kv.k, kv.v); err != nil {
			return fmt.Errorf("could not set %s: %w", kv.k, err)
		}
	}

	// ini can only write to an io.Writer or to the OS filesystem, so
	// we serialize the file ourselves
	data := new(bytes.Buffer)
	if _, err := cfg.WriteTo(data); err != nil {
		return fmt.Errorf("could not serialize the config: %w", err)
	}
	return b.createIfMissing(ginternals.ConfigPath(b.config), data.Bytes())
}
