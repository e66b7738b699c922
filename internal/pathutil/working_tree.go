// Package pathutil contains methods to find and validate paths
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoRepo is an error returned when no repo are found
var ErrNoRepo = errors.New("not a minigit repository (or any of the parent directories)")

// WorkingTree returns the absolute path to the working tree containing
// the current directory
func WorkingTree(dotDirName string) (path string, err error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not get current working directory: %w", err)
	}
	return WorkingTreeFromPath(wd, dotDirName)
}

// WorkingTreeFromPath returns the absolute path to the root of a repo
// containing the provided directory. The root of a repo is the first
// directory, going up, that contains a dotDirName directory
func WorkingTreeFromPath(p, dotDirName string) (path string, err error) {
	prev := ""
	for p != prev {
		info, err := os.Stat(filepath.Join(p, dotDirName))
		if err == nil && info.IsDir() {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}
