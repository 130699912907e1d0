// Package geo decodes the remote GeoJSON feeds drawn on the map.
package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Quake is a single seismic event from the USGS summary feed.
// Mag and Place are nil when the feed carries a JSON null.
type Quake struct {
	Mag   *float64
	Place *string
	ID    string
	Lon   float64
	Lat   float64
	// Depth in km, NaN when the coordinate triple is incomplete.
	Depth float64
}

// Point returns the event position. Depth is not part of it.
func (q Quake) Point() orb.Point {
	return orb.Point{q.Lon, q.Lat}
}

// Magnitude returns the magnitude, zero when unknown.
func (q Quake) Magnitude() float64 {
	if q.Mag == nil {
		return 0
	}
	return *q.Mag
}

// Internal structures for JSON parsing
type usgsCollection struct {
	Features []usgsFeature `json:"features"`
}

type usgsFeature struct {
	ID         string `json:"id"`
	Properties struct {
		Mag   *float64 `json:"mag"`
		Place *string  `json:"place"`
	} `json:"properties"`
	Geometry *struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"` // [Lon, Lat, Depth]
	} `json:"geometry"`
}

// DecodeQuakes parses a USGS GeoJSON summary feed.
// Features without a point geometry are skipped.
func DecodeQuakes(r io.Reader) ([]Quake, error) {
	var root usgsCollection
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode earthquake feed: %w", err)
	}

	quakes := make([]Quake, 0, len(root.Features))
	for _, f := range root.Features {
		if f.Geometry == nil || f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
			continue
		}

		c := f.Geometry.Coordinates
		depth := math.NaN()
		if len(c) > 2 {
			depth = c[2]
		}

		quakes = append(quakes, Quake{
			ID:    f.ID,
			Mag:   f.Properties.Mag,
			Place: f.Properties.Place,
			Lon:   c[0],
			Lat:   c[1],
			Depth: depth,
		})
	}

	return quakes, nil
}

// DecodeFeatureCollection parses any GeoJSON FeatureCollection.
func DecodeFeatureCollection(r io.Reader) (*geojson.FeatureCollection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read feature collection: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}

	return fc, nil
}
