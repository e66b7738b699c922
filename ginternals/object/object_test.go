package object_test

import (
	"fmt"
	"testing"

	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFromString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		expectedType object.Type
		expectsError bool
	}{
		{name: "blob", expectedType: object.TypeBlob},
		{name: "tree", expectedType: object.TypeTree},
		{name: "commit", expectedType: object.TypeCommit},
		{name: "tag", expectsError: true},
		{name: "", expectsError: true},
	}
	for i, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%d/%s", i, tc.name), func(t *testing.T) {
			t.Parallel()

			typ, err := object.NewTypeFromString(tc.name)
			if tc.expectsError {
				require.ErrorIs(t, err, object.ErrObjectUnknown)
				assert.False(t, typ.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedType, typ)
			assert.Equal(t, tc.name, typ.String())
			assert.True(t, typ.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("the ID is the fingerprint of the raw content", func(t *testing.T) {
		t.Parallel()

		o := object.New(githash.NewSHA1(), object.TypeBlob, []byte("hello"))
		assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", o.ID().String())
		assert.Equal(t, 5, o.Size())
		assert.Equal(t, object.TypeBlob, o.Type())
		assert.Equal(t, []byte("hello"), o.AsBlob().Bytes())
	})

	t.Run("the type doesn't change the ID", func(t *testing.T) {
		t.Parallel()

		h := githash.NewSHA1()
		blob := object.New(h, object.TypeBlob, []byte(""))
		tree := object.New(h, object.TypeTree, []byte(""))
		assert.Equal(t, blob.ID(), tree.ID())
	})
}

func TestBlob(t *testing.T) {
	t.Parallel()

	o := object.New(githash.NewSHA1(), object.TypeBlob, []byte("hello"))
	b := o.AsBlob()
	assert.Equal(t, o.ID(), b.ID())
	assert.Equal(t, 5, b.Size())
	assert.Equal(t, o, b.ToObject())

	cp := b.BytesCopy()
	cp[0] = 'j'
	assert.Equal(t, []byte("hello"), b.Bytes(), "BytesCopy should not share memory")
}
