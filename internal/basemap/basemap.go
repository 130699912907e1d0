// Package basemap holds the tile layers offered as map backgrounds.
package basemap

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned when a basemap name is not registered.
var ErrUnknown = errors.New("unknown basemap")

const (
	osmAttribution    = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	stamenAttribution = `Map tiles by <a href="http://stamen.com">Stamen Design</a>, <a href="http://creativecommons.org/licenses/by/3.0">CC BY 3.0</a> &mdash; Map data &copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	topoAttribution   = `Map data: &copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors, <a href="http://viewfinderpanoramas.org">SRTM</a> | Map style: &copy; <a href="https://opentopomap.org">OpenTopoMap</a> (<a href="https://creativecommons.org/licenses/by-sa/3.0/">CC-BY-SA</a>)`
)

// TileSource describes a templated raster tile layer.
type TileSource struct {
	MinZoom     *int   `yaml:"min_zoom,omitempty" json:"minZoom,omitempty"`
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url"`
	Attribution string `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Subdomains  string `yaml:"subdomains,omitempty" json:"subdomains,omitempty"`
	Ext         string `yaml:"ext,omitempty" json:"ext,omitempty"`
	MaxZoom     int    `yaml:"max_zoom,omitempty" json:"maxZoom,omitempty"`
}

// Defaults returns the built-in basemaps in registration order.
func Defaults() []TileSource {
	return []TileSource{
		{
			Name:        "Grayscale",
			URL:         "https://stamen-tiles-{s}.a.ssl.fastly.net/toner-lite/{z}/{x}/{y}{r}.{ext}",
			Attribution: stamenAttribution,
			Subdomains:  "abcd",
			MinZoom:     intPtr(0),
			MaxZoom:     20,
			Ext:         "png",
		},
		{
			Name:        "Water color",
			URL:         "https://stamen-tiles-{s}.a.ssl.fastly.net/watercolor/{z}/{x}/{y}.{ext}",
			Attribution: stamenAttribution,
			Subdomains:  "abcd",
			MinZoom:     intPtr(1),
			MaxZoom:     16,
			Ext:         "jpg",
		},
		{
			Name:        "Topography",
			URL:         "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
			Attribution: topoAttribution,
			MaxZoom:     17,
		},
		{
			Name:        "Default",
			URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution: osmAttribution,
			MaxZoom:     19,
		},
	}
}

// Registry maps basemap names to tile sources, keeping registration order.
type Registry struct {
	byName  map[string]int
	sources []TileSource
}

// New builds a registry. Names must be unique and non-empty.
func New(sources []TileSource) (*Registry, error) {
	r := &Registry{
		byName:  make(map[string]int, len(sources)),
		sources: make([]TileSource, 0, len(sources)),
	}

	for _, src := range sources {
		if src.Name == "" {
			return nil, errors.New("basemap name is required")
		}
		if src.URL == "" {
			return nil, fmt.Errorf("basemap %q: url is required", src.Name)
		}
		if _, exists := r.byName[src.Name]; exists {
			return nil, fmt.Errorf("basemap %q registered twice", src.Name)
		}
		r.byName[src.Name] = len(r.sources)
		r.sources = append(r.sources, src)
	}

	return r, nil
}

// Get returns the tile source registered under name.
func (r *Registry) Get(name string) (TileSource, error) {
	i, ok := r.byName[name]
	if !ok {
		return TileSource{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return r.sources[i], nil
}

// Names lists basemap names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.sources))
	for i, src := range r.sources {
		names[i] = src.Name
	}
	return names
}

// Sources returns a copy of all tile sources in registration order.
func (r *Registry) Sources() []TileSource {
	out := make([]TileSource, len(r.sources))
	copy(out, r.sources)
	return out
}

func intPtr(v int) *int { return &v }
