package backend

import (
	"errors"
	"fmt"
	"os"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/spf13/afero"
)

// Object returns the raw content of the object that has given oid.
// ginternals.ErrObjectNotFound is returned if the object doesn't exist
func (b *Backend) Object(oid githash.Oid) ([]byte, error) {
	sha := oid.String()
	if data, found := b.cache.Get(sha); found {
		return data, nil
	}

	p := ginternals.ObjectPath(b.config, sha)
	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", sha, ginternals.ErrObjectNotFound)
		}
		return nil, ginternals.FSError("read object", p, err)
	}

	// Objects are immutable, so a content that doesn't match its name
	// means the file has been altered
	if b.hash.Sum(data).String() != sha {
		return nil, fmt.Errorf("content of %s doesn't match its fingerprint: %w", p, object.ErrObjectInvalid)
	}

	b.cache.Add(sha, data)
	return data, nil
}

// HasObject returns whether an object exists in the odb
func (b *Backend) HasObject(oid githash.Oid) (bool, error) {
	sha := oid.String()
	if b.cache.Contains(sha) {
		return true, nil
	}

	p := ginternals.ObjectPath(b.config, sha)
	_, err := b.fs.Stat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, ginternals.FSError("stat object", p, err)
}

// WriteObject adds an object to the odb.
// Objects are write-once: if an object with the same ID already
// exists, nothing is written
func (b *Backend) WriteObject(o *object.Object) (githash.Oid, error) {
	found, err := b.HasObject(o.ID())
	if err != nil {
		return b.hash.NullOid(), fmt.Errorf("could not check if object (%s) already exists: %w", o.ID().String(), err)
	}
	if found {
		return o.ID(), nil
	}

	// We need to make sure the dest dir exists
	dest := ginternals.ObjectsPath(b.config)
	if err = b.fs.MkdirAll(dest, 0o755); err != nil {
		return b.hash.NullOid(), ginternals.FSError("create", dest, err)
	}

	// We use 444 because objects are read-only
	sha := o.ID().String()
	p := ginternals.ObjectPath(b.config, sha)
	if err = afero.WriteFile(b.fs, p, o.Bytes(), 0o444); err != nil {
		return b.hash.NullOid(), ginternals.FSError("write object", p, err)
	}

	b.cache.Add(sha, o.Bytes())
	return o.ID(), nil
}
