// Package config contains structs to interact with the repository
// configuration, whether it comes from the env, config files, or the
// caller
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nivl/minigit/internal/env"
	"github.com/Nivl/minigit/internal/pathutil"
	"github.com/spf13/afero"
)

// Default names of the files and directories of a repository
const (
	DefaultDotDirName     = ".minigit"
	defaultObjectsDirName = "objects"
	defaultConfigFileName = "config"
)

// ErrNoWorkTreeAlone is thrown when a work tree path is given without
// a repository path
var ErrNoWorkTreeAlone = errors.New("cannot specify a work tree without also specifying a repository dir")

// Config represents the config of a repository, whether it's from
// the config files or from the options that can be set using
// the env.
//
// If you decide to create a Config by yourself, make sure to set correct
// values everywhere
type Config struct {
	// FS represents the file system implementation to use to look for
	// files and directories.
	// Defaults to the regular filesystem.
	FS afero.Fs

	// fromFiles contains a reference to the config values held in
	// files
	fromFiles *FileAggregate
	env       *env.Env

	// GitDirPath represents the path to the directory holding
	// the repository's data (objects, index, HEAD, config)
	// Maps to $MINIGIT_DIR if set
	// Defaults to finding a ".minigit" folder in the current directory,
	// going up in the tree until reaching /
	GitDirPath string
	// WorkTreePath represents the path to the working tree
	// Maps to $MINIGIT_WORK_TREE
	// Defaults to the directory containing GitDirPath
	WorkTreePath string
	// ObjectDirPath represents the path to the objects directory
	// Maps to $MINIGIT_OBJECT_DIRECTORY
	// Defaults to $(GitDirPath)/objects
	ObjectDirPath string
	// LocalConfig represents the config file to load
	// Maps to $MINIGIT_CONFIG
	// Defaults to $(GitDirPath)/config if not sets
	LocalConfig string
	// SkipGlobalConfig states whether we should use the global config
	// ($HOME/.minigitconfig) or not
	// Maps to $MINIGIT_CONFIG_NOGLOBAL
	// Defaults to false
	SkipGlobalConfig bool
}

// LoadConfigOptions represents all the params used to set the default
// values of a Config object
type LoadConfigOptions struct {
	// FS represents the file system implementation to use to look for
	// files and directories.
	// Defaults to the regular filesystem.
	FS afero.Fs
	// WorkingDirectory represents the current working directory
	// Defaults to the current working directory
	WorkingDirectory string
	// WorkTreePath corresponds to the directory that should contain
	// the repository.
	// Set this value to change the default behavior and overwrite
	// $MINIGIT_WORK_TREE.
	WorkTreePath string
	// GitDirPath corresponds to the repository directory.
	// Set this value to change the default behavior and overwrite
	// $MINIGIT_DIR.
	GitDirPath string
	// SkipGitDirLookUp will disable automatic lookup of the repository
	// directory.
	// Defaults to false which means that if no path is provided
	// to GitDirPath or $MINIGIT_DIR, the method will look for a .minigit
	// dir in WorkingDirectory and will go up the tree until it finds one.
	//
	// You should only set this value to true if you want to initialize a
	// new repository.
	SkipGitDirLookUp bool
}

// LoadConfig returns a new Config that fetches the data from the
// env
func LoadConfig(e *env.Env, p LoadConfigOptions) (*Config, error) {
	cfg := &Config{
		env:              e,
		GitDirPath:       e.Get("MINIGIT_DIR"),
		WorkTreePath:     e.Get("MINIGIT_WORK_TREE"),
		ObjectDirPath:    e.Get("MINIGIT_OBJECT_DIRECTORY"),
		LocalConfig:      e.Get("MINIGIT_CONFIG"),
		SkipGlobalConfig: e.GetBool("MINIGIT_CONFIG_NOGLOBAL"),
	}

	if err := setConfig(cfg, p); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigSkipEnv returns a new Config that skips the env
// and uses the default values
func LoadConfigSkipEnv(opts LoadConfigOptions) (*Config, error) {
	return LoadConfig(env.NewFromKVList([]string{}), opts)
}

func setConfig(p *Config, opts LoadConfigOptions) (err error) {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	p.FS = opts.FS

	if opts.WorkingDirectory == "" || !filepath.IsAbs(opts.WorkingDirectory) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("could not get the current directory: %w", err)
		}
		opts.WorkingDirectory = filepath.Join(wd, opts.WorkingDirectory)
	}

	// $MINIGIT_WORK_TREE cannot be set if $MINIGIT_DIR isn't
	if opts.GitDirPath == "" && p.GitDirPath == "" && (opts.WorkTreePath == "" && p.WorkTreePath != "") {
		return ErrNoWorkTreeAlone
	}

	// GitDir rules:
	// - p.GitDirPath contains either nothing or $MINIGIT_DIR
	// - opts.GitDirPath contains either nothing or a value used to
	//   override p.GitDirPath.
	// - If nothing is set, a .minigit directory will looked for by
	//   walking up the working tree (or current directory).
	// - If relative, the path will be appended to the current working
	//   directory.
	if opts.GitDirPath != "" {
		p.GitDirPath = opts.GitDirPath
	}
	guessedWorkingTree := opts.WorkingDirectory
	if opts.WorkTreePath != "" {
		guessedWorkingTree = opts.WorkTreePath
		if !filepath.IsAbs(guessedWorkingTree) {
			guessedWorkingTree = filepath.Join(opts.WorkingDirectory, guessedWorkingTree)
		}
	}
	switch p.GitDirPath {
	default:
		if !filepath.IsAbs(p.GitDirPath) {
			p.GitDirPath = filepath.Join(opts.WorkingDirectory, p.GitDirPath)
		}
	case "":
		if !opts.SkipGitDirLookUp {
			guessedWorkingTree, err = pathutil.WorkingTreeFromPath(guessedWorkingTree, DefaultDotDirName)
			if err != nil {
				return fmt.Errorf("could not find working tree: %w", err)
			}
		}
		p.GitDirPath = filepath.Join(guessedWorkingTree, DefaultDotDirName)
	}

	// LocalConfig and ObjectDirPath rules:
	// - Contains either nothing or the value from the env
	// - Fallback to a file/dir inside GitDirPath
	//
	// If relative, the path will be appended to the current working
	// directory.
	if p.LocalConfig == "" {
		p.LocalConfig = filepath.Join(p.GitDirPath, defaultConfigFileName)
	}
	if !filepath.IsAbs(p.LocalConfig) {
		p.LocalConfig = filepath.Join(opts.WorkingDirectory, p.LocalConfig)
	}
	if p.ObjectDirPath == "" {
		p.ObjectDirPath = filepath.Join(p.GitDirPath, defaultObjectsDirName)
	}
	if !filepath.IsAbs(p.ObjectDirPath) {
		p.ObjectDirPath = filepath.Join(opts.WorkingDirectory, p.ObjectDirPath)
	}

	// Worktree rules:
	// - p.WorkTreePath contains either nothing, $MINIGIT_WORK_TREE.
	// - opts.WorkTreePath overrides p.WorkTreePath
	// - Fallback on the directory containing the repository dir
	if opts.WorkTreePath != "" {
		p.WorkTreePath = opts.WorkTreePath
	}
	if p.WorkTreePath == "" {
		p.WorkTreePath = guessedWorkingTree
	}
	if !filepath.IsAbs(p.WorkTreePath) {
		p.WorkTreePath = filepath.Join(opts.WorkingDirectory, p.WorkTreePath)
	}

	return p.Reload()
}

// Reload reads the config files again.
// Needed after the files have been updated, like after the
// initialization of a repository
func (cfg *Config) Reload() (err error) {
	e := cfg.env
	if e == nil {
		e = env.NewFromKVList([]string{})
	}
	cfg.fromFiles, err = NewFileAggregate(e, cfg)
	if err != nil {
		return fmt.Errorf("could not load config files: %w", err)
	}
	return nil
}

// FromFiles returns the values of the config files
func (cfg *Config) FromFiles() *FileAggregate {
	if cfg.fromFiles == nil {
		return emptyFileAggregate()
	}
	return cfg.fromFiles
}
