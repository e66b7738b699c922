package object

import (
	"bytes"

	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/internal/readutil"
	"golang.org/x/xerrors"
)

// TreeEntry represents an entry inside a tree, or inside the staging
// index (both share the same format)
type TreeEntry struct {
	Type Type
	ID   githash.Oid
	Path string
}

// String returns the serialized version of the entry, without the
// trailing \n:
//
// {type} {sha} {path}
func (e TreeEntry) String() string {
	return e.Type.String() + " " + e.ID.String() + " " + e.Path
}

// NewTreeEntryFromBytes parses a single entry line (without its \n)
func NewTreeEntryFromBytes(hash githash.Hash, line []byte) (TreeEntry, error) {
	e := TreeEntry{}

	typ := readutil.ReadTo(line, ' ')
	if len(typ) == 0 {
		return e, xerrors.Errorf("could not retrieve the type of %q: %w", line, ErrTreeInvalid)
	}
	t, err := NewTypeFromString(string(typ))
	if err != nil || t == TypeCommit {
		return e, xerrors.Errorf("unsupported entry type %q: %w", typ, ErrTreeInvalid)
	}
	e.Type = t
	offset := len(typ) + 1 // +1 for the space

	// The oid has a fixed size, and the path can contain spaces so
	// we don't look for a separator
	end := offset + hash.HexSize()
	if end+1 > len(line) || line[end] != ' ' {
		return e, xerrors.Errorf("could not retrieve the oid of %q: %w", line, ErrTreeInvalid)
	}
	e.ID, err = hash.ConvertFromChars(line[offset:end])
	if err != nil {
		return e, xerrors.Errorf("invalid oid in %q (%s): %w", line, err.Error(), ErrTreeInvalid)
	}

	e.Path = string(line[end+1:])
	if e.Path == "" {
		return e, xerrors.Errorf("could not retrieve the path of %q: %w", line, ErrTreeInvalid)
	}
	return e, nil
}

// Tree represents a tree object
type Tree struct {
	rawObject *Object
	// we don't use pointers to make sure entries are immutable
	entries []TreeEntry
}

// NewTree returns a new tree with the given entries
func NewTree(hash githash.Hash, entries []TreeEntry) *Tree {
	t := &Tree{
		entries: entries,
	}
	t.rawObject = New(hash, TypeTree, SerializeEntries(entries))
	return t
}

// NewTreeFromObject returns a new tree from an object
//
// A tree has following format:
//
// {type} {sha} {path}\n
//
// Note:
// - a Tree may have multiple entries, or none
// - a path may appear more than once. A tree created by a commit
//   contains the text of the previous commit's tree, followed by
//   the staged entries.
func NewTreeFromObject(o *Object) (*Tree, error) {
	if o.Type() != TypeTree {
		return nil, xerrors.Errorf("type %s is not a tree: %w", o.typ, ErrObjectInvalid)
	}

	entries, err := ParseEntries(o.Hash(), o.Bytes())
	if err != nil {
		return nil, err
	}
	return &Tree{
		rawObject: o,
		entries:   entries,
	}, nil
}

// ParseEntries parses a list of \n terminated entries
func ParseEntries(hash githash.Hash, data []byte) ([]TreeEntry, error) {
	lines := readutil.Lines(data)
	entries := make([]TreeEntry, 0, len(lines))
	for i, line := range lines {
		e, err := NewTreeEntryFromBytes(hash, line)
		if err != nil {
			return nil, xerrors.Errorf("entry %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// SerializeEntries returns the serialized version of the entries,
// one per line
func SerializeEntries(entries []TreeEntry) []byte {
	// Quick reminder that the Write* methods on bytes.Buffer never fails,
	// the error returned is always nil
	buf := new(bytes.Buffer)
	for _, e := range entries {
		buf.WriteString(e.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Entries returns a copy of tree entries
func (t *Tree) Entries() []TreeEntry {
	out := make([]TreeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// ID returns the object's ID
func (t *Tree) ID() githash.Oid {
	return t.rawObject.ID()
}

// Size returns the size of the serialized tree
func (t *Tree) Size() int {
	return t.rawObject.Size()
}

// ToObject returns an Object representing the tree
func (t *Tree) ToObject() *Object {
	return t.rawObject
}
