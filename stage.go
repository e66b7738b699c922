package git

import (
	"path/filepath"
	"strings"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"golang.org/x/xerrors"
)

// hiddenPrefix is the prefix of the files and directories that are
// never staged
const hiddenPrefix = "."

func isHidden(name string) bool {
	return strings.HasPrefix(name, hiddenPrefix)
}

// Stage stores the file or directory at the given path, and adds
// it to the index. If path is a directory, all the files and
// directories it contains are staged as well, except the hidden ones.
//
// Relative paths are relative to the working tree.
// Staging a hidden path does nothing and returns the null oid.
// Paths containing a line break are rejected with
// object.ErrTreeInvalid, and nothing is added to the index.
// An entry is only added to the index if no other entry has the same
// fingerprint.
//
// Returns the fingerprint of the staged object
func (r *Repository) Stage(path string) (githash.Oid, error) {
	p := r.absPath(path)
	// the working tree itself may be in a hidden directory
	isRoot := p == filepath.Clean(r.Config.WorkTreePath)
	if (!isRoot && isHidden(filepath.Base(p))) || ginternals.IsRepositoryPath(r.Config, p) {
		return r.hash.NullOid(), nil
	}
	if err := checkEntryPath(p); err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not stage %s: %w", path, err)
	}

	info, err := r.wt.Stat(p)
	if err != nil {
		return r.hash.NullOid(), ginternals.FSError("stat", p, err)
	}

	tb := r.NewTreeBuilder()
	var n *treeNode
	if info.IsDir() {
		n, err = tb.buildDir(p)
	} else {
		n, err = tb.buildBlob(p)
	}
	if err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not stage %s: %w", path, err)
	}

	idx, err := r.dotGit.Index()
	if err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not read the index: %w", err)
	}
	if err = r.stageNode(idx, n); err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not stage %s: %w", path, err)
	}
	return n.entry.ID, nil
}

// stageNode adds n and all its non-hidden children to the index
func (r *Repository) stageNode(idx *ginternals.Index, n *treeNode) error {
	e := object.TreeEntry{
		Type: n.entry.Type,
		ID:   n.entry.ID,
		Path: r.indexPath(n.diskPath),
	}
	if idx.Add(e) {
		if err := r.dotGit.AppendIndexEntry(e); err != nil {
			return err
		}
	}

	for _, child := range n.children {
		if isHidden(child.name) {
			continue
		}
		if err := r.stageNode(idx, child); err != nil {
			return err
		}
	}
	return nil
}

// indexPath returns the path of p relative to the working tree, using
// slashes. Paths outside of the working tree are kept absolute
func (r *Repository) indexPath(p string) string {
	rel, err := filepath.Rel(r.Config.WorkTreePath, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return filepath.ToSlash(rel)
}
