package ginternals

import (
	"fmt"

	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
)

// Index represents the staging index: the list of entries that will be
// appended to the tree of the next commit.
//
// The index is stored as plain text, one entry per line, using the
// same format as the trees:
//
// {type} {sha} {path}\n
//
// An entry is never staged twice: entries are identified by their
// fingerprint. The index is emptied after each commit.
type Index struct {
	hash    githash.Hash
	entries []object.TreeEntry
	ids     map[string]struct{}
}

// NewIndex returns an empty index
func NewIndex(hash githash.Hash) *Index {
	return &Index{
		hash: hash,
		ids:  map[string]struct{}{},
	}
}

// NewIndexFromBytes parses the content of an index file
func NewIndexFromBytes(hash githash.Hash, data []byte) (*Index, error) {
	entries, err := object.ParseEntries(hash, data)
	if err != nil {
		return nil, fmt.Errorf("could not parse index: %w", err)
	}
	idx := NewIndex(hash)
	for _, e := range entries {
		idx.Add(e)
	}
	return idx, nil
}

// Add adds an entry to the index, unless an entry with the same
// fingerprint already exists.
// Returns whether the entry has been added
func (idx *Index) Add(e object.TreeEntry) bool {
	if idx.Has(e.ID) {
		return false
	}
	idx.ids[e.ID.String()] = struct{}{}
	idx.entries = append(idx.entries, e)
	return true
}

// Has returns whether an entry with the given fingerprint is staged
func (idx *Index) Has(oid githash.Oid) bool {
	_, ok := idx.ids[oid.String()]
	return ok
}

// Entries returns a copy of the staged entries, in the order they've
// been added
func (idx *Index) Entries() []object.TreeEntry {
	out := make([]object.TreeEntry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Len returns the number of staged entries
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Bytes returns the serialized index
func (idx *Index) Bytes() []byte {
	return object.SerializeEntries(idx.entries)
}
