package object

import (
	"bytes"
	"strings"
	"time"

	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/internal/readutil"
	"golang.org/x/xerrors"
)

// DateFormat is the layout of the date of a commit (MM/dd/yyyy HH:mm:ss).
// The date is written in local time, without timezone.
const DateFormat = "01/02/2006 15:04:05"

// Commit represents a commit object
type Commit struct {
	rawObject *Object

	author  string
	date    time.Time
	message string

	parentID githash.Oid
	treeID   githash.Oid
}

// NewCommit creates a new Commit object.
// parentID is expected to be NullOid for the first commit of a
// repository.
// Any provided Oids won't be checked
func NewCommit(hash githash.Hash, treeID, parentID githash.Oid, author string, date time.Time, message string) *Commit {
	if parentID == nil {
		parentID = hash.NullOid()
	}
	c := &Commit{
		treeID:   treeID,
		parentID: parentID,
		author:   author,
		// the date is stored with a precision of a second
		date:    date.Truncate(time.Second),
		message: message,
	}
	c.rawObject = New(hash, TypeCommit, c.serialize())
	return c
}

// NewCommitFromObject creates a commit from a raw object
//
// A commit has following format:
//
// tree {sha}
// parent {sha or nothing}
// author {author_name}
// date {MM/dd/yyyy HH:mm:ss}
// message {commit message}
//
// Note:
// - The tree sha is always at the same position: right after "tree "
// - The first commit of a repository has an empty parent
// - The message is the last field and may span multiple lines
func NewCommitFromObject(o *Object) (*Commit, error) {
	if o.typ != TypeCommit {
		return nil, xerrors.Errorf("type %s is not a commit: %w", o.typ, ErrObjectInvalid)
	}
	hash := o.Hash()
	ci := &Commit{
		rawObject: o,
		parentID:  hash.NullOid(),
	}

	treeID, err := TreeIDFromCommitBytes(hash, o.Bytes())
	if err != nil {
		return nil, err
	}
	ci.treeID = treeID

	objData := o.Bytes()
	offset := len("tree ") + hash.HexSize() + 1 // +1 for the \n
	var hasParent, hasAuthor, hasDate, hasMessage bool
	for offset < len(objData) {
		line := readutil.ReadTo(objData[offset:], '\n')
		if line == nil {
			line = objData[offset:]
		}

		kv := bytes.SplitN(line, []byte{' '}, 2)
		if len(kv) != 2 {
			return nil, xerrors.Errorf("unexpected line %q: %w", line, ErrCommitInvalid)
		}
		switch string(kv[0]) {
		case "parent":
			hasParent = true
			if len(kv[1]) == 0 {
				break
			}
			ci.parentID, err = hash.ConvertFromChars(kv[1])
			if err != nil {
				return nil, xerrors.Errorf("could not parse parent id %q: %w", kv[1], err)
			}
		case "author":
			hasAuthor = true
			ci.author = string(kv[1])
		case "date":
			hasDate = true
			ci.date, err = time.ParseInLocation(DateFormat, string(kv[1]), time.Local)
			if err != nil {
				return nil, xerrors.Errorf("invalid date %q: %s: %w", kv[1], err.Error(), ErrCommitInvalid)
			}
		case "message":
			hasMessage = true
			// everything left is the message
			msg := objData[offset+len("message "):]
			ci.message = strings.TrimSuffix(string(msg), "\n")
			offset = len(objData)
			continue
		default:
			return nil, xerrors.Errorf("unexpected field %q: %w", kv[0], ErrCommitInvalid)
		}
		offset += len(line) + 1 // +1 to count the \n
	}

	switch {
	case !hasParent:
		return nil, xerrors.Errorf("commit has no parent field: %w", ErrCommitInvalid)
	case !hasAuthor:
		return nil, xerrors.Errorf("commit has no author: %w", ErrCommitInvalid)
	case !hasDate:
		return nil, xerrors.Errorf("commit has no date: %w", ErrCommitInvalid)
	case !hasMessage:
		return nil, xerrors.Errorf("commit has no message: %w", ErrCommitInvalid)
	}
	return ci, nil
}

// TreeIDFromCommitBytes extracts the tree ID of a serialized commit.
// The ID is read at a fixed offset, right after the "tree " label
func TreeIDFromCommitBytes(hash githash.Hash, data []byte) (githash.Oid, error) {
	const label = "tree "
	end := len(label) + hash.HexSize()
	if !bytes.HasPrefix(data, []byte(label)) || len(data) < end {
		return hash.NullOid(), xerrors.Errorf("could not find the tree: %w", ErrCommitInvalid)
	}
	if len(data) > end && data[end] != '\n' {
		return hash.NullOid(), xerrors.Errorf("tree id has an invalid size: %w", ErrCommitInvalid)
	}
	oid, err := hash.ConvertFromChars(data[len(label):end])
	if err != nil {
		return hash.NullOid(), xerrors.Errorf("could not parse tree id %q: %s: %w", data[len(label):end], err.Error(), ErrCommitInvalid)
	}
	return oid, nil
}

// ID returns the SHA of the commit object
func (c *Commit) ID() githash.Oid {
	return c.rawObject.ID()
}

// Author returns the name of the person that made the commit
func (c *Commit) Author() string {
	return c.author
}

// Date returns the date the commit was made, in local time
func (c *Commit) Date() time.Time {
	return c.date
}

// Message returns the commit's message
func (c *Commit) Message() string {
	return c.message
}

// ParentID returns the SHA of the parent commit. NullOid is returned
// for the first commit of the repository
func (c *Commit) ParentID() githash.Oid {
	return c.parentID
}

// IsRoot returns whether the commit is the first commit of its
// repository
func (c *Commit) IsRoot() bool {
	return c.parentID.IsZero()
}

// TreeID returns the SHA of the commit's tree
func (c *Commit) TreeID() githash.Oid {
	return c.treeID
}

// ToObject returns the underlying Object
func (c *Commit) ToObject() *Object {
	return c.rawObject
}

func (c *Commit) serialize() []byte {
	// Quick reminder that the Write* methods on bytes.Buffer never fails,
	// the error returned is always nil
	buf := new(bytes.Buffer)
	buf.WriteString("tree ")
	buf.WriteString(c.treeID.String())
	buf.WriteByte('\n')

	buf.WriteString("parent ")
	if !c.parentID.IsZero() {
		buf.WriteString(c.parentID.String())
	}
	buf.WriteByte('\n')

	buf.WriteString("author ")
	buf.WriteString(c.author)
	buf.WriteByte('\n')

	buf.WriteString("date ")
	buf.WriteString(c.date.Local().Format(DateFormat))
	buf.WriteByte('\n')

	buf.WriteString("message ")
	buf.WriteString(c.message)
	buf.WriteByte('\n')
	return buf.Bytes()
}
