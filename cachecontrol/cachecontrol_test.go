package cachecontrol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sfv "github.com/zostay/go-sfv"
	"github.com/zostay/go-sfv/cachecontrol"
)

func TestParse(t *testing.T) {
	t.Parallel()

	d, err := cachecontrol.Parse("max-age=3600, must-revalidate, no-transform")
	require.NoError(t, err)
	require.NotNil(t, d.MaxAge)
	assert.Equal(t, int64(3600), *d.MaxAge)
	assert.True(t, d.MustRevalidate)
	assert.True(t, d.NoTransform)
	assert.False(t, d.NoStore)
	assert.Nil(t, d.Extensions)

	d, err = cachecontrol.Parse("")
	require.NoError(t, err)
	assert.Equal(t, cachecontrol.Directives{}, d)
}

func TestParseExtensions(t *testing.T) {
	t.Parallel()

	// unknown directives and wrongly typed known ones are kept but
	// not interpreted
	d, err := cachecontrol.Parse(`max-age="soon", tier=edge, stale-if-error=30`)
	require.NoError(t, err)
	assert.Nil(t, d.MaxAge)
	require.NotNil(t, d.StaleIfError)
	assert.Equal(t, int64(30), *d.StaleIfError)

	require.NotNil(t, d.Extensions)
	assert.Equal(t, []string{"max-age", "tier"}, d.Extensions.Keys())

	tier, ok := d.Extensions.Get("tier")
	require.True(t, ok)
	assert.Equal(t, sfv.Item{Value: sfv.Token("edge")}, tier)
}

func TestParseRejectsBrokenSyntax(t *testing.T) {
	t.Parallel()

	_, err := cachecontrol.Parse("max-age=3600,")
	assert.Error(t, err)
	_, err = cachecontrol.Parse("max-age=3600 no-store")
	assert.Error(t, err)
}

func TestRenderRoundTrip(t *testing.T) {
	t.Parallel()

	value := "max-age=3600, no-store, stale-while-revalidate=60, tier=edge"
	d, err := cachecontrol.Parse(value)
	require.NoError(t, err)
	assert.Equal(t, value, d.Render())

	assert.Equal(t, "", cachecontrol.Directives{}.Render())
}
