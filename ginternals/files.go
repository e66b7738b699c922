package ginternals

import (
	"path/filepath"
	"strings"

	"github.com/Nivl/minigit/ginternals/config"
)

// Files of the repository directory
const (
	indexFileName = "index"
	headFileName  = "HEAD"
)

// DotGitPath returns the path to the repository directory
func DotGitPath(cfg *config.Config) string {
	return cfg.GitDirPath
}

// ObjectsPath returns the path to the directory that contains
// the objects
func ObjectsPath(cfg *config.Config) string {
	return cfg.ObjectDirPath
}

// ObjectPath returns the path of an object.
// Objects are stored flat, in a file named after their fingerprint
//
// Ex. path of fcfe68a0e44e04bd7fd564fc0b75f1ae457e18b3 is:
// .minigit/objects/fcfe68a0e44e04bd7fd564fc0b75f1ae457e18b3
func ObjectPath(cfg *config.Config, sha string) string {
	return filepath.Join(ObjectsPath(cfg), sha)
}

// IndexPath returns the path of the staging index
func IndexPath(cfg *config.Config) string {
	return filepath.Join(DotGitPath(cfg), indexFileName)
}

// HeadPath returns the path of the file containing the fingerprint
// of the latest commit
func HeadPath(cfg *config.Config) string {
	return filepath.Join(DotGitPath(cfg), headFileName)
}

// ConfigPath returns the path to the local config file
func ConfigPath(cfg *config.Config) string {
	return cfg.LocalConfig
}

// IsRepositoryPath returns whether p is one of the paths owned by the
// repository (its directory, its object directory, or its config
// file). Those paths are never part of a tree, and are never touched
// by a checkout
func IsRepositoryPath(cfg *config.Config, p string) bool {
	p = filepath.Clean(p)
	for _, owned := range []string{DotGitPath(cfg), ObjectsPath(cfg), ConfigPath(cfg)} {
		if owned != "" && p == filepath.Clean(owned) {
			return true
		}
	}
	return false
}

// HoldsRepositoryPath returns whether p is a repository path, or a
// directory containing one
func HoldsRepositoryPath(cfg *config.Config, p string) bool {
	p = filepath.Clean(p)
	for _, owned := range []string{DotGitPath(cfg), ObjectsPath(cfg), ConfigPath(cfg)} {
		if owned == "" {
			continue
		}
		owned = filepath.Clean(owned)
		if owned == p || strings.HasPrefix(owned, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
