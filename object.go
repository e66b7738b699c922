package git

import (
	"errors"

	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"golang.org/x/xerrors"
)

// WalkStop is a fake error used to tell WalkHistory() to stop
var WalkStop = errors.New("stop walking") //nolint // the linter expects all errors to start with Err, but since here we're faking an error we don't want that

// HistoryWalkFunc represents a function that will be applied on all
// the commits found by WalkHistory()
type HistoryWalkFunc = func(c *object.Commit) error

// getObject returns the object matching the given ID.
// Since the type of an object is never stored, the caller has to
// provide it
func (r *Repository) getObject(oid githash.Oid, typ object.Type) (*object.Object, error) {
	data, err := r.dotGit.Object(oid)
	if err != nil {
		return nil, err
	}
	return object.NewWithID(r.hash, oid, typ, data), nil
}

// GetCommit returns the commit matching the given ID
func (r *Repository) GetCommit(oid githash.Oid) (*object.Commit, error) {
	o, err := r.getObject(oid, object.TypeCommit)
	if err != nil {
		return nil, xerrors.Errorf("could not get commit %s: %w", oid.String(), err)
	}
	return o.AsCommit()
}

// GetTree returns the tree matching the given ID
func (r *Repository) GetTree(oid githash.Oid) (*object.Tree, error) {
	o, err := r.getObject(oid, object.TypeTree)
	if err != nil {
		return nil, xerrors.Errorf("could not get tree %s: %w", oid.String(), err)
	}
	return o.AsTree()
}

// GetBlob returns the blob matching the given ID
func (r *Repository) GetBlob(oid githash.Oid) (*object.Blob, error) {
	o, err := r.getObject(oid, object.TypeBlob)
	if err != nil {
		return nil, xerrors.Errorf("could not get blob %s: %w", oid.String(), err)
	}
	return o.AsBlob(), nil
}

// WalkHistory runs the provided method on the commit matching from,
// and on all its ancestors, from the newest to the oldest.
// Returning WalkStop from f ends the walk without error
func (r *Repository) WalkHistory(from githash.Oid, f HistoryWalkFunc) error {
	for oid := from; !oid.IsZero(); {
		c, err := r.GetCommit(oid)
		if err != nil {
			return err
		}
		if err = f(c); err != nil {
			if err == WalkStop { //nolint:errorlint // it's a fake error so no need to use errors.Is()
				return nil
			}
			return err
		}
		oid = c.ParentID()
	}
	return nil
}

// NewBlob creates, stores, and returns a new Blob object
func (r *Repository) NewBlob(data []byte) (*object.Blob, error) {
	o := object.New(r.hash, object.TypeBlob, data)
	if _, err := r.dotGit.WriteObject(o); err != nil {
		return nil, xerrors.Errorf("could not write the object to the odb: %w", err)
	}
	return o.AsBlob(), nil
}
