package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nivl/minigit/internal/env"
	"gopkg.in/ini.v1"
)

// Sections and keys of the config files
const (
	CfgCore              = "core"
	CfgCoreFormatVersion = "repositoryformatversion"
	CfgCoreHash          = "hash"
	CfgUser              = "user"
	CfgUserName          = "name"
	CfgCheckout          = "checkout"
	CfgCheckoutProtect   = "protect"
)

// defaultLoadOption contains the params used to load the config files
//nolint:gochecknoglobals // It's a global because we
// don't want to have to redefine it all the time.
// Treat this as a const, don't ever change it from a method, even for
// testing.
var defaultLoadOption = ini.LoadOptions{
	SkipUnrecognizableLines: true,
}

// FileAggregate represents the aggregate of all the config files
// impacting a repository. Values of the local config file overwrite
// the values of the global one
type FileAggregate struct {
	agg *ini.File
}

// RepoFormatVersion returns the version of the format of the repo
func (cfg *FileAggregate) RepoFormatVersion() (version int, ok bool) {
	v, err := cfg.agg.Section(CfgCore).Key(CfgCoreFormatVersion).Int()
	if err != nil {
		return 0, false
	}
	return v, true
}

// HashName returns the name of the digest used to fingerprint objects.
// An empty string means the default digest
func (cfg *FileAggregate) HashName() string {
	return cfg.agg.Section(CfgCore).Key(CfgCoreHash).String()
}

// UserName returns the default author of the commits
func (cfg *FileAggregate) UserName() (name string, ok bool) {
	v := cfg.agg.Section(CfgUser).Key(CfgUserName).String()
	return v, v != ""
}

// ProtectedPaths returns the glob patterns of the top-level entries of
// the working tree that should never be removed by a checkout
func (cfg *FileAggregate) ProtectedPaths() []string {
	patterns := cfg.agg.Section(CfgCheckout).Key(CfgCheckoutProtect).Strings(",")
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewFileAggregate loads all the available config files and returns an object
// with accessor
func NewFileAggregate(e *env.Env, cfg *Config) (confFile *FileAggregate, err error) {
	confFile = &FileAggregate{}
	configPaths := getPaths(e, cfg)

	// Because we want to use afero instead of the file system, we cannot
	// just provide the the file paths to ini.Load. Instead we need to open
	// all the files ourselves, provide the files to ini, and close everything.
	// We use []interface{} because "ini.Load" wants a slice of interfaces
	files := make([]interface{}, 0, len(configPaths))
	for _, p := range configPaths {
		_, sErr := cfg.FS.Stat(p)
		if sErr != nil {
			// not every config files are expected to exists on disk
			// so we skip all the one that doesn't
			if errors.Is(sErr, os.ErrNotExist) {
				continue
			}
			err = fmt.Errorf("could not check file %s: %w", p, sErr)
			break
		}

		f, fErr := cfg.FS.Open(p)
		if fErr != nil {
			err = fmt.Errorf("could not open file %s: %w", p, fErr)
			break
		}
		files = append(files, f)
	}
	defer func() {
		// we need to cleanup the file descriptors to avoid a leak
		for _, f := range files {
			//nolint:errcheck // it's expected to fail as the files are already closed.
			f.(io.ReadCloser).Close()
		}
	}()
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return emptyFileAggregate(), nil
	}

	// ini.Load wants the config file separated over 2 args, the second args
	// being a spreadable.
	src := files[0]
	others := files[1:]
	confFile.agg, err = ini.LoadSources(defaultLoadOption, src, others...)
	if err != nil {
		return nil, fmt.Errorf("could not load config file: %w", err)
	}
	return confFile, nil
}

func emptyFileAggregate() *FileAggregate {
	return &FileAggregate{
		agg: ini.Empty(defaultLoadOption),
	}
}

func getPaths(e *env.Env, cfg *Config) []string {
	configPaths := []string{}

	// global
	if !cfg.SkipGlobalConfig {
		switch {
		case e.Get("MINIGIT_CONFIG_GLOBAL") != "":
			configPaths = append(configPaths, e.Get("MINIGIT_CONFIG_GLOBAL"))
		case e.Get("HOME") != "":
			configPaths = append(configPaths, filepath.Join(e.Get("HOME"), ".minigitconfig"))
		}
	}
	// local
	configPaths = append(configPaths, cfg.LocalConfig)
	return configPaths
}
