package git

import (
	"strings"
	"time"

	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"golang.org/x/xerrors"
)

// Commit creates a new commit containing the staged entries, moves HEAD
// to it, and empties the index.
//
// The tree of the new commit is the content of the tree of the previous
// commit, followed by the content of the index. This means a tree
// contains all the entries ever committed.
//
// There is no atomicity: if something fails, the data written so far
// is kept
func (r *Repository) Commit(author, message string) (githash.Oid, error) {
	if strings.ContainsAny(author, "\r\n") {
		return r.hash.NullOid(), xerrors.Errorf("author cannot contain line breaks: %w", object.ErrCommitInvalid)
	}

	parentID, err := r.dotGit.Head()
	if err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not get HEAD: %w", err)
	}

	var treeData []byte
	if !parentID.IsZero() {
		parent, err := r.GetCommit(parentID)
		if err != nil {
			return r.hash.NullOid(), xerrors.Errorf("could not get the parent commit: %w", err)
		}
		prevTree, err := r.dotGit.Object(parent.TreeID())
		if err != nil {
			return r.hash.NullOid(), xerrors.Errorf("could not get the tree of the parent commit: %w", err)
		}
		treeData = append(treeData, prevTree...)
	}

	idx, err := r.dotGit.IndexData()
	if err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not read the index: %w", err)
	}
	treeData = append(treeData, idx...)

	treeID, err := r.dotGit.WriteObject(object.New(r.hash, object.TypeTree, treeData))
	if err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not write the tree: %w", err)
	}

	c := object.NewCommit(r.hash, treeID, parentID, author, time.Now(), message)
	if _, err = r.dotGit.WriteObject(c.ToObject()); err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not write the commit: %w", err)
	}
	if err = r.dotGit.WriteHead(c.ID()); err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not update HEAD: %w", err)
	}
	if err = r.dotGit.TruncateIndex(); err != nil {
		return r.hash.NullOid(), xerrors.Errorf("could not empty the index: %w", err)
	}
	return c.ID(), nil
}
