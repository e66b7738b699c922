package backend

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/spf13/afero"
)

// Head returns the fingerprint of the latest commit.
// The null oid is returned if HEAD is empty or doesn't exist yet
func (b *Backend) Head() (githash.Oid, error) {
	p := ginternals.HeadPath(b.config)
	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return b.hash.NullOid(), nil
		}
		return b.hash.NullOid(), ginternals.FSError("read", p, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return b.hash.NullOid(), nil
	}
	oid, err := b.hash.ConvertFromChars(data)
	if err != nil {
		return b.hash.NullOid(), fmt.Errorf("invalid HEAD: %w", err)
	}
	return oid, nil
}

// WriteHead overwrites HEAD with the given fingerprint
func (b *Backend) WriteHead(oid githash.Oid) error {
	p := ginternals.HeadPath(b.config)
	if err := afero.WriteFile(b.fs, p, []byte(oid.String()+"\n"), 0o644); err != nil {
		return ginternals.FSError("write", p, err)
	}
	return nil
}
