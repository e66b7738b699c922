package git

import (
	"path/filepath"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Checkout replaces the content of the working tree by the content of
// the given commit.
//
// Everything at the root of the working tree is removed first, except
// the repository files and the paths matching checkout.protect.
// The removal cannot be undone: if the commit or one of its objects
// is missing, the working tree stays in whatever state it was when
// the error happened
func (r *Repository) Checkout(oid githash.Oid) error {
	if err := r.clearWorkTree(); err != nil {
		return xerrors.Errorf("could not clear the working tree: %w", err)
	}

	data, err := r.dotGit.Object(oid)
	if err != nil {
		return xerrors.Errorf("could not get commit %s: %w", oid.String(), err)
	}
	treeID, err := object.TreeIDFromCommitBytes(r.hash, data)
	if err != nil {
		return xerrors.Errorf("could not get the tree of commit %s: %w", oid.String(), err)
	}

	if err = r.restoreTree(treeID, r.Config.WorkTreePath); err != nil {
		return xerrors.Errorf("could not restore commit %s: %w", oid.String(), err)
	}
	return nil
}

// clearWorkTree removes everything at the root of the working tree,
// except the protected paths
func (r *Repository) clearWorkTree() error {
	root := r.Config.WorkTreePath
	infos, err := afero.ReadDir(r.wt, root)
	if err != nil {
		return ginternals.FSError("read directory", root, err)
	}

	protected := r.Config.FromFiles().ProtectedPaths()
	for _, info := range infos {
		p := filepath.Join(root, info.Name())
		if ginternals.HoldsRepositoryPath(r.Config, p) || isProtected(protected, info.Name()) {
			continue
		}
		if err = r.wt.RemoveAll(p); err != nil {
			return ginternals.FSError("remove", p, err)
		}
	}
	return nil
}

// isProtected returns whether name matches one of the patterns.
// Invalid patterns never match
func isProtected(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if match, err := filepath.Match(pattern, name); err == nil && match {
			return true
		}
	}
	return false
}

// restoreTree writes the content of a tree in the given directory.
// Entries with a relative path are relative to dir
func (r *Repository) restoreTree(treeID githash.Oid, dir string) error {
	t, err := r.GetTree(treeID)
	if err != nil {
		return err
	}

	for _, e := range t.Entries() {
		target := e.Path
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, filepath.FromSlash(target))
		}

		switch e.Type {
		case object.TypeBlob:
			blob, err := r.GetBlob(e.ID)
			if err != nil {
				return err
			}
			parent := filepath.Dir(target)
			if err = r.wt.MkdirAll(parent, 0o755); err != nil {
				return ginternals.FSError("create", parent, err)
			}
			if err = afero.WriteFile(r.wt, target, blob.Bytes(), 0o644); err != nil {
				return ginternals.FSError("write", target, err)
			}
		case object.TypeTree:
			if err = r.wt.MkdirAll(target, 0o755); err != nil {
				return ginternals.FSError("create", target, err)
			}
			if err = r.restoreTree(e.ID, target); err != nil {
				return err
			}
		default:
			return xerrors.Errorf("unexpected %s entry %s: %w", e.Type, e.Path, object.ErrTreeInvalid)
		}
	}
	return nil
}
