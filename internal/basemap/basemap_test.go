package basemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	reg, err := New(Defaults())
	require.NoError(t, err)

	assert.Equal(t, []string{"Grayscale", "Water color", "Topography", "Default"}, reg.Names())

	osm, err := reg.Get("Default")
	require.NoError(t, err)
	assert.Equal(t, "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", osm.URL)
	assert.Equal(t, 19, osm.MaxZoom)
	assert.Nil(t, osm.MinZoom)

	gray, err := reg.Get("Grayscale")
	require.NoError(t, err)
	assert.Equal(t, "abcd", gray.Subdomains)
	assert.Equal(t, "png", gray.Ext)
	require.NotNil(t, gray.MinZoom)
	assert.Equal(t, 0, *gray.MinZoom)

	water, err := reg.Get("Water color")
	require.NoError(t, err)
	assert.Equal(t, "jpg", water.Ext)
	assert.Equal(t, 16, water.MaxZoom)
}

func TestRegistry_Unknown(t *testing.T) {
	reg, err := New(Defaults())
	require.NoError(t, err)

	_, err = reg.Get("Satellite")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New([]TileSource{{Name: "A", URL: "x"}, {Name: "A", URL: "y"}})
	assert.ErrorContains(t, err, "registered twice")

	_, err = New([]TileSource{{URL: "x"}})
	assert.ErrorContains(t, err, "name is required")

	_, err = New([]TileSource{{Name: "A"}})
	assert.ErrorContains(t, err, "url is required")
}

func TestSources_ReturnsCopy(t *testing.T) {
	reg, err := New(Defaults())
	require.NoError(t, err)

	src := reg.Sources()
	src[0].Name = "changed"
	assert.Equal(t, "Grayscale", reg.Names()[0])
}
