package overlay

import (
	"io"

	"github.com/paulmach/orb/geojson"

	"github.com/woozymasta/quakemap/internal/geo"
	"github.com/woozymasta/quakemap/internal/style"
)

// Property keys read by the page script.
const (
	PropStyle = "style"
	PropPopup = "popup"
)

// RenderFunc decodes a feed body into styled features.
type RenderFunc func(io.Reader) (*geojson.FeatureCollection, error)

// RenderPlateFeed decodes a plate boundary feed and styles every feature as a line.
func RenderPlateFeed(r io.Reader) (*geojson.FeatureCollection, error) {
	fc, err := geo.DecodeFeatureCollection(r)
	if err != nil {
		return nil, err
	}
	return RenderPlates(fc), nil
}

// RenderEarthquakeFeed decodes a USGS feed and turns every event into a styled marker.
func RenderEarthquakeFeed(r io.Reader) (*geojson.FeatureCollection, error) {
	quakes, err := geo.DecodeQuakes(r)
	if err != nil {
		return nil, err
	}
	return RenderQuakes(quakes), nil
}

// RenderPlates keeps geometry and properties of each boundary and attaches the line style.
func RenderPlates(src *geojson.FeatureCollection) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	lineStyle := style.Plate()

	for _, f := range src.Features {
		if f == nil || f.Geometry == nil {
			continue
		}

		line := geojson.NewFeature(f.Geometry)
		line.ID = f.ID
		for k, v := range f.Properties {
			line.Properties[k] = v
		}
		line.Properties[PropStyle] = lineStyle

		out.Append(line)
	}

	return out
}

// RenderQuakes builds one circle marker feature per event.
func RenderQuakes(quakes []geo.Quake) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()

	for _, q := range quakes {
		marker := geojson.NewFeature(q.Point())
		if q.ID != "" {
			marker.ID = q.ID
		}
		marker.Properties["mag"] = q.Mag
		marker.Properties["place"] = q.Place
		marker.Properties[PropStyle] = style.Quake(q)
		marker.Properties[PropPopup] = style.Popup(q)

		out.Append(marker)
	}

	return out
}
