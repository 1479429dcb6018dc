package priority_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-sfv/priority"
)

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := priority.Parse("u=0, i")
	require.NoError(t, err)
	assert.Equal(t, priority.Priority{Urgency: 0, Incremental: true}, p)

	p, err = priority.Parse("u=5")
	require.NoError(t, err)
	assert.Equal(t, priority.Priority{Urgency: 5}, p)

	// absent header reads as the defaults
	p, err = priority.Parse("")
	require.NoError(t, err)
	assert.Equal(t, priority.Default(), p)
}

func TestParseIgnoresNonsense(t *testing.T) {
	t.Parallel()

	// out-of-range urgency, wrongly typed flag, unknown key: all
	// ignored per RFC 9218
	p, err := priority.Parse("u=9, i=1, spin=fast")
	require.NoError(t, err)
	assert.Equal(t, priority.Default(), p)

	// later occurrences win before interpretation
	p, err = priority.Parse("u=9, u=1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Urgency)

	// broken syntax still fails whole
	_, err = priority.Parse("u=1,")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "u=0, i", priority.Priority{Urgency: 0, Incremental: true}.Render())
	assert.Equal(t, "i", priority.Priority{Urgency: 3, Incremental: true}.Render())
	assert.Equal(t, "u=7", priority.Priority{Urgency: 7}.Render())
	assert.Equal(t, "", priority.Default().Render())
}
