// Package object contains methods and objects to work with the objects
// of the store: blobs, trees and commits
package object

import (
	"errors"
	"fmt"

	"github.com/Nivl/minigit/ginternals/githash"
)

var (
	// ErrObjectUnknown represents an error thrown when encoutering an
	// unknown object type
	ErrObjectUnknown = errors.New("invalid object type")

	// ErrObjectInvalid represents an error thrown when an object contains
	// unexpected data or when the wrong object is provided to a method.
	ErrObjectInvalid = errors.New("invalid object")

	// ErrTreeInvalid represents an error thrown when parsing an invalid
	// tree object
	ErrTreeInvalid = errors.New("invalid tree")

	// ErrCommitInvalid represents an error thrown when parsing an invalid
	// commit object
	ErrCommitInvalid = errors.New("invalid commit")
)

// Type represents the type of an object.
// The type is never persisted with the object, it's always known
// from the context (a tree entry, a commit field, HEAD, etc.)
type Type int8

// List of all the possible object types
const (
	TypeCommit Type = 1
	TypeTree   Type = 2
	TypeBlob   Type = 3
)

func (t Type) String() string {
	switch t {
	case TypeCommit:
		return "commit"
	case TypeTree:
		return "tree"
	case TypeBlob:
		return "blob"
	default:
		panic(fmt.Sprintf("unknown object type %d", t))
	}
}

// IsValid check id the object type is an existing type
func (t Type) IsValid() bool {
	switch t {
	case TypeCommit,
		TypeTree,
		TypeBlob:
		return true
	default:
		return false
	}
}

// NewTypeFromString returns an Type from its string
// representation
func NewTypeFromString(t string) (Type, error) {
	switch t {
	case "commit":
		return TypeCommit, nil
	case "tree":
		return TypeTree, nil
	case "blob":
		return TypeBlob, nil
	default:
		return 0, ErrObjectUnknown
	}
}

// Object represents an object of the store. An object can be of
// multiple types but they are all stored the same way: their raw
// content in a file named after the fingerprint of that content.
// Objects are immutable.
type Object struct {
	hash    githash.Hash
	id      githash.Oid
	typ     Type
	content []byte
}

// New creates a new object of the given type, fingerprinted using the
// given hash
func New(hash githash.Hash, typ Type, content []byte) *Object {
	return &Object{
		hash:    hash,
		id:      hash.Sum(content),
		typ:     typ,
		content: content,
	}
}

// NewWithID creates an object for which the ID is already known,
// like an object retrieved from the store
func NewWithID(hash githash.Hash, id githash.Oid, typ Type, content []byte) *Object {
	return &Object{
		hash:    hash,
		id:      id,
		typ:     typ,
		content: content,
	}
}

// ID returns the ID of the object.
func (o *Object) ID() githash.Oid {
	return o.id
}

// Hash returns the hash method used to fingerprint the object
func (o *Object) Hash() githash.Hash {
	return o.hash
}

// Size returns the size of the object
func (o *Object) Size() int {
	return len(o.content)
}

// Type returns the Type for this object
func (o *Object) Type() Type {
	return o.typ
}

// Bytes returns the object's contents
func (o *Object) Bytes() []byte {
	return o.content
}

// AsBlob parses the object as Blob
func (o *Object) AsBlob() *Blob {
	return NewBlob(o)
}

// AsTree parses the object as Tree
func (o *Object) AsTree() (*Tree, error) {
	return NewTreeFromObject(o)
}

// AsCommit parses the object as Commit
func (o *Object) AsCommit() (*Commit, error) {
	return NewCommitFromObject(o)
}
