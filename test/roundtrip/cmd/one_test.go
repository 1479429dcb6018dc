package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	got, err := canonicalize("item", "4.5")
	require.NoError(t, err)
	assert.Equal(t, "4.5", got)

	got, err = canonicalize("list", "a ,b")
	require.NoError(t, err)
	assert.Equal(t, "a, b", got)

	got, err = canonicalize("dict", "a=?1")
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	_, err = canonicalize("list", "a,")
	assert.Error(t, err)

	_, err = canonicalize("frob", "a")
	assert.Error(t, err)
}
