package git

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// treeNode represents an object computed by a TreeBuilder, along with
// where it has been read from
type treeNode struct {
	// entry is the entry of the object, as written in its parent
	entry object.TreeEntry
	// name is the name of the entry in its parent directory
	name string
	// diskPath is the path the object has been read from. Symbolic
	// links are resolved
	diskPath string
	tree     *object.Tree
	children []*treeNode
}

// TreeBuilder is used to build the trees of directories.
//
// A TreeBuilder keeps track of all the directories it visited, so
// the same directory cannot be processed twice by the same builder.
// A new builder should be used for every independent operation
type TreeBuilder struct {
	repo    *Repository
	visited map[string]struct{}
}

// NewTreeBuilder create a new tree builder
func (r *Repository) NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{
		repo:    r,
		visited: map[string]struct{}{},
	}
}

// Build creates and persists the tree of the given directory, and all
// the objects it references.
//
// Entries are sorted by name. Regular entries are recorded using their
// name, entries reached through a symbolic link are recorded using
// their resolved absolute path.
// ginternals.ErrCycleDetected is returned if a directory is reached
// twice
func (tb *TreeBuilder) Build(dir string) (*object.Tree, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, xerrors.Errorf("could not get the absolute path of %s: %w", dir, err)
	}
	n, err := tb.buildDir(dir)
	if err != nil {
		return nil, err
	}
	return n.tree, nil
}

func (tb *TreeBuilder) buildDir(dir string) (*treeNode, error) {
	id := tb.identity(dir)
	if _, ok := tb.visited[id]; ok {
		return nil, xerrors.Errorf("%s: %w", dir, ginternals.ErrCycleDetected)
	}
	tb.visited[id] = struct{}{}

	// ReadDir returns the entries sorted by name
	infos, err := afero.ReadDir(tb.repo.wt, dir)
	if err != nil {
		return nil, ginternals.FSError("read directory", dir, err)
	}

	n := &treeNode{
		name:     filepath.Base(dir),
		diskPath: dir,
	}
	entries := make([]object.TreeEntry, 0, len(infos))
	for _, info := range infos {
		p := filepath.Join(dir, info.Name())
		if ginternals.IsRepositoryPath(tb.repo.Config, p) {
			continue
		}

		if err = checkEntryPath(p); err != nil {
			return nil, err
		}

		recordedPath := info.Name()
		if info.Mode()&os.ModeSymlink != 0 {
			if p, err = tb.resolve(p); err != nil {
				return nil, err
			}
			if ginternals.IsRepositoryPath(tb.repo.Config, p) {
				continue
			}
			if err = checkEntryPath(p); err != nil {
				return nil, err
			}
			recordedPath = p
			if info, err = tb.repo.wt.Stat(p); err != nil {
				return nil, ginternals.FSError("stat", p, err)
			}
		}

		var child *treeNode
		switch {
		case info.IsDir():
			child, err = tb.buildDir(p)
		case info.Mode().IsRegular():
			child, err = tb.buildBlob(p)
		default:
			// sockets, devices, pipes, etc. have no content to store
			continue
		}
		if err != nil {
			return nil, err
		}
		child.name = info.Name()
		child.entry.Path = recordedPath
		n.children = append(n.children, child)
		entries = append(entries, child.entry)
	}

	n.tree = object.NewTree(tb.repo.hash, entries)
	if _, err = tb.repo.dotGit.WriteObject(n.tree.ToObject()); err != nil {
		return nil, xerrors.Errorf("could not write the tree of %s: %w", dir, err)
	}
	n.entry = object.TreeEntry{
		Type: object.TypeTree,
		ID:   n.tree.ID(),
		Path: n.name,
	}
	return n, nil
}

func (tb *TreeBuilder) buildBlob(p string) (*treeNode, error) {
	data, err := afero.ReadFile(tb.repo.wt, p)
	if err != nil {
		return nil, ginternals.FSError("read", p, err)
	}
	o := object.New(tb.repo.hash, object.TypeBlob, data)
	if _, err = tb.repo.dotGit.WriteObject(o); err != nil {
		return nil, xerrors.Errorf("could not write the blob of %s: %w", p, err)
	}
	return &treeNode{
		entry: object.TreeEntry{
			Type: object.TypeBlob,
			ID:   o.ID(),
			Path: filepath.Base(p),
		},
		name:     filepath.Base(p),
		diskPath: p,
	}, nil
}

// checkEntryPath returns an error if p cannot be written in a tree or
// in the index. Entries are stored one per line, so a path cannot
// contain a line break
func checkEntryPath(p string) error {
	if strings.Contains(p, "\n") {
		return xerrors.Errorf("%q cannot contain a line break: %w", p, object.ErrTreeInvalid)
	}
	return nil
}

// resolve returns the absolute path targeted by a symbolic link
func (tb *TreeBuilder) resolve(p string) (string, error) {
	if !tb.repo.onOsFs() {
		return filepath.Clean(p), nil
	}
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", ginternals.FSError("resolve", p, err)
	}
	return filepath.Abs(resolved)
}

// identity returns a value that uniquely identifies a directory,
// no matter which link has been followed to reach it
func (tb *TreeBuilder) identity(dir string) string {
	if tb.repo.onOsFs() {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return resolved
		}
	}
	return filepath.Clean(dir)
}
