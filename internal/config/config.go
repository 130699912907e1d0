// Package config handles configuration loading and shared data structures.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/woozymasta/quakemap/internal/basemap"
	"github.com/woozymasta/quakemap/internal/geo"

	"gopkg.in/yaml.v3"
)

// Default feed locations.
const (
	PlatesURL      = "https://raw.githubusercontent.com/fraxen/tectonicplates/master/GeoJSON/PB2002_boundaries.json"
	EarthquakesURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_week.geojson"
)

// Config represents the root configuration file structure.
type Config struct {
	Map      Map                  `yaml:"map"`
	Overlays Overlays             `yaml:"overlays"`
	Basemaps []basemap.TileSource `yaml:"basemaps,omitempty"`
	Fetch    Fetch                `yaml:"fetch"`
}

// Map is the initial viewport and the page element it binds to.
type Map struct {
	Element        string     `yaml:"element"`
	LegendPosition string     `yaml:"legend_position"`
	Active         []string   `yaml:"active"` // basemaps added at start, in order
	Center         geo.LatLng `yaml:"center"` // [Lat, Lon]
	Zoom           int        `yaml:"zoom"`
}

// Overlay is a remote GeoJSON feed drawn into its own layer group.
type Overlay struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Overlays lists the two feeds.
type Overlays struct {
	Plates      Overlay `yaml:"plates"`
	Earthquakes Overlay `yaml:"earthquakes"`
}

// Fetch tunes the outbound feed requests. A zero timeout waits forever.
type Fetch struct {
	UserAgent string        `yaml:"user_agent,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Map: Map{
			Element:        "map",
			Center:         geo.LatLng{36.7783, -119.4179},
			Zoom:           4,
			Active:         []string{"Default", "Grayscale"},
			LegendPosition: "bottomright",
		},
		Basemaps: basemap.Defaults(),
		Overlays: Overlays{
			Plates:      Overlay{Name: "Tectonic Plates", URL: PlatesURL},
			Earthquakes: Overlay{Name: "Earthquake Data", URL: EarthquakesURL},
		},
		Fetch: Fetch{UserAgent: "quakemap"},
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Values missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Map.Element == "" {
		return errors.New("map.element is required")
	}
	if err := c.Map.Center.Validate(); err != nil {
		return fmt.Errorf("map.center: %w", err)
	}
	if c.Map.Zoom < 0 {
		return fmt.Errorf("map.zoom must be >= 0, got %d", c.Map.Zoom)
	}
	if len(c.Basemaps) == 0 {
		return errors.New("at least one basemap is required")
	}
	if c.Overlays.Plates.URL == "" || c.Overlays.Earthquakes.URL == "" {
		return errors.New("overlay urls are required")
	}
	if c.Overlays.Plates.Name == "" || c.Overlays.Earthquakes.Name == "" {
		return errors.New("overlay names are required")
	}
	if c.Overlays.Plates.Name == c.Overlays.Earthquakes.Name {
		return fmt.Errorf("overlay name %q used twice", c.Overlays.Plates.Name)
	}
	if c.Fetch.Timeout < 0 {
		return errors.New("fetch.timeout must not be negative")
	}

	return nil
}
