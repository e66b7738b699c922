package githash_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA1ConvertFromString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc          string
		id            string
		expectError   bool
		expectedError error
	}{
		{
			desc: "valid oid should work",
			id:   "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
		},
		{
			desc:        "invalid char should fail",
			id:          "aaf4c6 ddcc5e8a2dabede0f3b482cd9aea9434d",
			expectError: true,
		},
		{
			desc:          "short oid should fail",
			id:            "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9",
			expectError:   true,
			expectedError: githash.ErrInvalidOid,
		},
		{
			desc:          "empty oid should fail",
			id:            "",
			expectError:   true,
			expectedError: githash.ErrInvalidOid,
		},
	}
	for i, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%d/%s", i, tc.desc), func(t *testing.T) {
			t.Parallel()

			oid, err := githash.NewSHA1().ConvertFromString(tc.id)
			if tc.expectError {
				require.Error(t, err)
				assert.True(t, oid.IsZero(), "oid should be Zero")
				if tc.expectedError != nil {
					assert.True(t, errors.Is(err, tc.expectedError), "invalid error returned: %s", err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, oid.String())

			fromChars, err := githash.NewSHA1().ConvertFromChars([]byte(tc.id))
			require.NoError(t, err)
			assert.Equal(t, oid, fromChars)
		})
	}
}

func TestSHA1ConvertFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("20 bytes should work", func(t *testing.T) {
		t.Parallel()

		raw := []byte{0x00, 0x0f, 0x96, 0x6f, 0xf7, 0x9d, 0x8f, 0x61, 0x95, 0x8a, 0xae, 0xfe, 0x16, 0x36, 0x20, 0xd9, 0x52, 0x60, 0x65, 0x16}
		oid, err := githash.NewSHA1().ConvertFromBytes(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, oid.Bytes())
		// leading zero bytes must be kept in the hex form
		assert.Equal(t, "000f966ff79d8f61958aaefe163620d952606516", oid.String())
	})

	t.Run("19 bytes should fail", func(t *testing.T) {
		t.Parallel()

		oid, err := githash.NewSHA1().ConvertFromBytes(make([]byte, 19))
		require.ErrorIs(t, err, githash.ErrInvalidOid)
		assert.True(t, oid.IsZero())
	})
}

func TestSHA1Sum(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc       string
		content    []byte
		expectedID string
	}{
		{
			desc:       "hello",
			content:    []byte("hello"),
			expectedID: "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
		},
		{
			desc:       "digits",
			content:    []byte("123456789"),
			expectedID: "f7c3bc1d808e04732adf679965ccc34ca7ae3441",
		},
		{
			desc:       "empty content",
			content:    []byte{},
			expectedID: "da39a3ee5e6b4b0d3255bfef95601890afd80709",
		},
	}
	for i, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%d/%s", i, tc.desc), func(t *testing.T) {
			t.Parallel()

			h := githash.NewSHA1()
			oid := h.Sum(tc.content)
			assert.Equal(t, tc.expectedID, oid.String())
			assert.Len(t, oid.String(), h.HexSize())
			// the same content always gives the same oid
			assert.Equal(t, oid, h.Sum(append([]byte{}, tc.content...)))
		})
	}
}

func TestSHA1NullOid(t *testing.T) {
	t.Parallel()

	h := githash.NewSHA1()
	assert.True(t, h.NullOid().IsZero())
	assert.False(t, h.Sum([]byte("hello")).IsZero())
	assert.Equal(t, "0000000000000000000000000000000000000000", h.NullOid().String())
}
