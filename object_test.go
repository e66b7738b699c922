package git

import (
	"testing"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustHead returns the HEAD of the repository
func mustHead(t *testing.T, r *Repository) githash.Oid {
	t.Helper()

	oid, err := r.Head()
	require.NoError(t, err)
	return oid
}

func TestGetObjects(t *testing.T) {
	t.Parallel()

	r, _ := newTestRepo(t)
	missing := r.Hash().Sum([]byte("missing"))

	_, err := r.GetCommit(missing)
	assert.ErrorIs(t, err, ginternals.ErrObjectNotFound)
	_, err = r.GetTree(missing)
	assert.ErrorIs(t, err, ginternals.ErrObjectNotFound)
	_, err = r.GetBlob(missing)
	assert.ErrorIs(t, err, ginternals.ErrObjectNotFound)

	// a blob is not a commit
	blobID, err := r.dotGit.WriteObject(object.New(r.Hash(), object.TypeBlob, []byte("not a commit")))
	require.NoError(t, err)
	_, err = r.GetCommit(blobID)
	assert.ErrorIs(t, err, object.ErrCommitInvalid)
}

func TestWalkHistory(t *testing.T) {
	t.Parallel()

	r, _ := newTestRepo(t)
	root := mustHead(t, r)
	c1, err := r.Commit("me", "first")
	require.NoError(t, err)
	c2, err := r.Commit("me", "second")
	require.NoError(t, err)

	t.Run("should walk from the newest to the oldest", func(t *testing.T) {
		t.Parallel()

		ids := []githash.Oid{}
		err := r.WalkHistory(c2, func(c *object.Commit) error {
			ids = append(ids, c.ID())
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []githash.Oid{c2, c1, root}, ids)
	})

	t.Run("should stop on WalkStop", func(t *testing.T) {
		t.Parallel()

		count := 0
		err := r.WalkHistory(c2, func(c *object.Commit) error {
			count++
			return WalkStop
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("should return the errors", func(t *testing.T) {
		t.Parallel()

		err := r.WalkHistory(c2, func(c *object.Commit) error {
			return ginternals.ErrIOFailure
		})
		require.ErrorIs(t, err, ginternals.ErrIOFailure)
	})
}

func TestNewBlob(t *testing.T) {
	t.Parallel()

	r, _ := newTestRepo(t)
	blob, err := r.NewBlob([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", blob.ID().String())

	stored, err := r.GetBlob(blob.ID())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(stored.Bytes()))
}
