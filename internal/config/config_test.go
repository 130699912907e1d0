package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/quakemap/internal/geo"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "map", cfg.Map.Element)
	assert.Equal(t, geo.LatLng{36.7783, -119.4179}, cfg.Map.Center)
	assert.Equal(t, 4, cfg.Map.Zoom)
	assert.Equal(t, []string{"Default", "Grayscale"}, cfg.Map.Active)
	assert.Equal(t, "bottomright", cfg.Map.LegendPosition)
	assert.Len(t, cfg.Basemaps, 4)
	assert.Equal(t, "Tectonic Plates", cfg.Overlays.Plates.Name)
	assert.Equal(t, PlatesURL, cfg.Overlays.Plates.URL)
	assert.Equal(t, "Earthquake Data", cfg.Overlays.Earthquakes.Name)
	assert.Equal(t, EarthquakesURL, cfg.Overlays.Earthquakes.URL)
	assert.Zero(t, cfg.Fetch.Timeout)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
map:
  center: [51.5, -0.12]
  zoom: 6
  active: [Default]
overlays:
  earthquakes:
    url: http://localhost:9000/quakes.geojson
fetch:
  timeout: 30s
basemaps:
  - name: Local
    url: http://localhost:8080/{z}/{x}/{y}.png
    max_zoom: 12
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, geo.LatLng{51.5, -0.12}, cfg.Map.Center)
	assert.Equal(t, 6, cfg.Map.Zoom)
	assert.Equal(t, []string{"Default"}, cfg.Map.Active)
	assert.Equal(t, "map", cfg.Map.Element)
	assert.Equal(t, "http://localhost:9000/quakes.geojson", cfg.Overlays.Earthquakes.URL)
	assert.Equal(t, "Earthquake Data", cfg.Overlays.Earthquakes.Name)
	assert.Equal(t, PlatesURL, cfg.Overlays.Plates.URL)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	require.Len(t, cfg.Basemaps, 1)
	assert.Equal(t, "Local", cfg.Basemaps[0].Name)
	assert.Equal(t, 12, cfg.Basemaps[0].MaxZoom)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "map: [",
		"latitude":        "map:\n  center: [95, 0]",
		"zoom":            "map:\n  zoom: -1",
		"element":         "map:\n  element: \"\"",
		"duplicate names": "overlays:\n  plates:\n    name: Earthquake Data",
		"timeout":         "fetch:\n  timeout: -1s",
		"no basemaps":     "basemaps: []",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map:\n  zoom: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Map.Zoom)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_RepositoryConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
