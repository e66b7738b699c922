package ginternals_test

import (
	"testing"

	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	hash := githash.NewSHA1()
	hello := hash.Sum([]byte("hello"))
	world := hash.Sum([]byte("world"))

	t.Run("should dedupe by fingerprint", func(t *testing.T) {
		t.Parallel()

		idx := ginternals.NewIndex(hash)
		assert.True(t, idx.Add(object.TreeEntry{Type: object.TypeBlob, ID: hello, Path: "a.txt"}))
		assert.False(t, idx.Add(object.TreeEntry{Type: object.TypeBlob, ID: hello, Path: "b.txt"}))
		assert.True(t, idx.Add(object.TreeEntry{Type: object.TypeBlob, ID: world, Path: "a.txt"}))

		require.Equal(t, 2, idx.Len())
		assert.True(t, idx.Has(hello))
		assert.False(t, idx.Has(hash.Sum([]byte("nope"))))

		expected := "blob " + hello.String() + " a.txt\n" +
			"blob " + world.String() + " a.txt\n"
		assert.Equal(t, expected, string(idx.Bytes()))
	})

	t.Run("should parse an index file", func(t *testing.T) {
		t.Parallel()

		data := "blob " + hello.String() + " dir/a file.txt\n" +
			"tree " + world.String() + " dir\n" +
			"blob " + hello.String() + " duplicate.txt\n"
		idx, err := ginternals.NewIndexFromBytes(hash, []byte(data))
		require.NoError(t, err)

		entries := idx.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "dir/a file.txt", entries[0].Path)
		assert.Equal(t, object.TypeTree, entries[1].Type)
	})

	t.Run("empty index", func(t *testing.T) {
		t.Parallel()

		idx, err := ginternals.NewIndexFromBytes(hash, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, idx.Len())
		assert.Empty(t, idx.Bytes())
	})

	t.Run("invalid index should fail", func(t *testing.T) {
		t.Parallel()

		_, err := ginternals.NewIndexFromBytes(hash, []byte("blob nope a.txt\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, object.ErrTreeInvalid)
	})
}
