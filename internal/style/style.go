// Package style maps earthquake and plate records to Leaflet path styles.
//
// Every function here is pure: the same record always yields the same style.
package style

import "github.com/woozymasta/quakemap/internal/geo"

// Depth colors, deepest first.
const (
	ColorDeepest  = "red"
	ColorDeep     = "#fc6203"
	ColorMidDeep  = "#fc8803"
	ColorMid      = "#fcb603"
	ColorShallow  = "#cafc03"
	ColorSurface  = "green"
	ColorPlate    = "red"
	ColorOutline  = "#000000"
	plateWeight   = 1
	markerWeight  = 0.5
	markerFill    = 0.5
	markerOpacity = 5 // out of Leaflet's [0,1] range, renders fully opaque
)

// MarkerStyle holds circle marker path options as Leaflet expects them.
type MarkerStyle struct {
	Color       string  `json:"color" yaml:"color"`
	FillColor   string  `json:"fillColor" yaml:"fillColor"`
	Opacity     float64 `json:"opacity" yaml:"opacity"`
	FillOpacity float64 `json:"fillOpacity" yaml:"fillOpacity"`
	Radius      float64 `json:"radius" yaml:"radius"`
	Weight      float64 `json:"weight" yaml:"weight"`
	Stroke      bool    `json:"stroke" yaml:"stroke"`
}

// LineStyle holds polyline path options.
type LineStyle struct {
	Color  string  `json:"color" yaml:"color"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// DataColor picks the marker fill color for a depth in km.
// Bounds are exclusive on the lower side: a depth of exactly 90 is not red.
func DataColor(depth float64) string {
	switch {
	case depth > 90:
		return ColorDeepest
	case depth > 70:
		return ColorDeep
	case depth > 50:
		return ColorMidDeep
	case depth > 30:
		return ColorMid
	case depth > 10:
		return ColorShallow
	default:
		return ColorSurface
	}
}

// RadiusSize scales the marker radius linearly with magnitude.
// Zero magnitude still gets a visible radius of 1; negative values are not clamped.
func RadiusSize(mag float64) float64 {
	if mag == 0 {
		return 1
	}
	return mag * 5
}

// Quake returns the marker style for an earthquake.
func Quake(q geo.Quake) MarkerStyle {
	return MarkerStyle{
		Color:       ColorOutline,
		FillColor:   DataColor(q.Depth),
		Opacity:     markerOpacity,
		FillOpacity: markerFill,
		Radius:      RadiusSize(q.Magnitude()),
		Weight:      markerWeight,
		Stroke:      true,
	}
}

// Plate returns the style shared by every plate boundary line.
func Plate() LineStyle {
	return LineStyle{Color: ColorPlate, Weight: plateWeight}
}
