package githash_test

import (
	"testing"

	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "sha1", "SHA1", "sha-1"} {
		h, err := githash.NewFromName(name)
		require.NoError(t, err, name)
		assert.Equal(t, "sha1", h.Name())
	}

	h, err := githash.NewFromName("md5")
	require.ErrorIs(t, err, githash.ErrDigestUnavailable)
	assert.Nil(t, h)
}
