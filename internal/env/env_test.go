package env

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromKVList(t *testing.T) {
	t.Parallel()

	e := NewFromKVList([]string{
		"MINIGIT_DIR=/tmp/repo/.minigit",
		"OPTS=a=b",
		"EMPTY=",
		"garbage",
	})
	assert.Equal(t, map[string]string{
		"MINIGIT_DIR": "/tmp/repo/.minigit",
		"OPTS":        "a=b",
		"EMPTY":       "",
	}, e.env)
}

func TestGetAndHas(t *testing.T) {
	t.Parallel()

	e := NewFromKVList([]string{
		"MINIGIT_DIR=/tmp/repo",
		"EMPTY=",
	})

	testCases := []struct {
		desc        string
		input       string
		expected    string
		expectedHas bool
	}{
		{
			desc:        "existing key",
			input:       "MINIGIT_DIR",
			expected:    "/tmp/repo",
			expectedHas: true,
		},
		{
			desc:        "existing key invalid case",
			input:       "minigit_dir",
			expected:    "",
			expectedHas: false,
		},
		{
			desc:        "existing key without value",
			input:       "EMPTY",
			expected:    "",
			expectedHas: true,
		},
		{
			desc:        "non existing key",
			input:       "nope",
			expected:    "",
			expectedHas: false,
		},
	}
	for i, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%d/%s", i, tc.desc), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, e.Get(tc.input))
			assert.Equal(t, tc.expectedHas, e.Has(tc.input))
		})
	}
}

func TestGetBool(t *testing.T) {
	t.Parallel()

	e := NewFromKVList([]string{"A=yes", "B=TRUE", "C=1", "D=0", "E=nope"})
	assert.True(t, e.GetBool("A"))
	assert.True(t, e.GetBool("B"))
	assert.True(t, e.GetBool("C"))
	assert.False(t, e.GetBool("D"))
	assert.False(t, e.GetBool("E"))
	assert.False(t, e.GetBool("F"))
}
