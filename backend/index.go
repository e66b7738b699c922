package backend

import (
	"errors"
	"os"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/Nivl/minigit/internal/errutil"
	"github.com/spf13/afero"
)

// IndexData returns the raw content of the staging index.
// A missing index is treated as an empty one
func (b *Backend) IndexData() ([]byte, error) {
	p := ginternals.IndexPath(b.config)
	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []byte{}, nil
		}
		return nil, ginternals.FSError("read", p, err)
	}
	return data, nil
}

// Index returns the parsed staging index
func (b *Backend) Index() (*ginternals.Index, error) {
	data, err := b.IndexData()
	if err != nil {
		return nil, err
	}
	return ginternals.NewIndexFromBytes(b.hash, data)
}

// AppendIndexEntry appends an entry at the end of the staging index.
// No dedup is done at this level
func (b *Backend) AppendIndexEntry(e object.TreeEntry) (err error) {
	p := ginternals.IndexPath(b.config)
	f, err := b.fs.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return ginternals.FSError("open", p, err)
	}
	defer errutil.Close(f, &err)

	if _, err = f.Write([]byte(e.String() + "\n")); err != nil {
		return ginternals.FSError("write", p, err)
	}
	return nil
}

// TruncateIndex empties the staging index
func (b *Backend) TruncateIndex() error {
	p := ginternals.IndexPath(b.config)
	if err := afero.WriteFile(b.fs, p, []byte{}, 0o644); err != nil {
		return ginternals.FSError("truncate", p, err)
	}
	return nil
}
