package geo

import "fmt"

// LatLng is a geographic position in Leaflet order.
type LatLng [2]float64

// Lat returns the latitude.
func (p LatLng) Lat() float64 { return p[0] }

// Lng returns the longitude.
func (p LatLng) Lng() float64 { return p[1] }

// Validate checks the position is within WGS84 bounds.
func (p LatLng) Validate() error {
	if p[0] < -90 || p[0] > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", p[0])
	}
	if p[1] < -180 || p[1] > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", p[1])
	}
	return nil
}
