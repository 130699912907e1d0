package style

import (
	"fmt"
	"math"
	"strconv"

	"github.com/woozymasta/quakemap/internal/geo"
)

// Popup renders the popup markup for an earthquake.
// Fields are interpolated as-is; the feed is trusted.
func Popup(q geo.Quake) string {
	mag := "null"
	if q.Mag != nil {
		mag = formatNumber(*q.Mag)
	}

	place := "null"
	if q.Place != nil {
		place = *q.Place
	}

	return fmt.Sprintf("Magnitude: <b>%s</b><br>Depth: <b>%s</b><br>Location: <b>%s</b>",
		mag, formatNumber(q.Depth), place)
}

// formatNumber prints the shortest decimal form, the way a browser would.
func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return "undefined"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
