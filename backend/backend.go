// Package backend contains the code that stores and retrieves the data
// of a repository: its objects, its HEAD, and its staging index
package backend

import (
	"fmt"

	"github.com/Nivl/minigit/ginternals/config"
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/internal/cache"
	"github.com/spf13/afero"
)

// Backend is a Backend implementation that uses the filesystem to store
// data.
//
// A Backend has no internal locking. It's up to the caller to make sure
// no two operations are running concurrently on the same repository
type Backend struct {
	fs     afero.Fs
	config *config.Config
	hash   githash.Hash

	cache *cache.LRU
}

// NewFS returns a new Backend object that uses the filesystem set in
// the config
func NewFS(cfg *config.Config, hash githash.Hash) (*Backend, error) {
	c, err := cache.NewLRU(cache.DefaultObjectCacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not create the object cache: %w", err)
	}

	fs := cfg.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Backend{
		fs:     fs,
		config: cfg,
		hash:   hash,
		cache:  c,
	}, nil
}

// Path returns the path of the repository directory
func (b *Backend) Path() string {
	return b.config.GitDirPath
}

// Hash returns the hash used to fingerprint the objects
func (b *Backend) Hash() githash.Hash {
	return b.hash
}

// Close frees the resources used by the Backend
// This method cannot be called concurrently with other methods
func (b *Backend) Close() error {
	b.cache.Clear()
	return nil
}
