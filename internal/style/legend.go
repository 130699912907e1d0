package style

import "strconv"

// Legend bounds and colors. This table mirrors the DataColor thresholds and must be
// edited together with them.
var (
	legendIntervals = []float64{-10, 10, 30, 50, 70, 90}
	legendColors    = []string{ColorSurface, ColorShallow, ColorMid, ColorMidDeep, ColorDeep, ColorDeepest}
)

// LegendRow is one swatch of the depth legend.
type LegendRow struct {
	Upper *float64 `json:"upper,omitempty" yaml:"upper,omitempty"`
	Color string   `json:"color" yaml:"color"`
	Label string   `json:"label" yaml:"label"`
	Lower float64  `json:"lower" yaml:"lower"`
}

// Legend returns the fixed depth legend, shallowest first. The last row is open-ended.
func Legend() []LegendRow {
	rows := make([]LegendRow, 0, len(legendIntervals))
	for i, lower := range legendIntervals {
		row := LegendRow{
			Color: legendColors[i],
			Lower: lower,
		}

		if i+1 < len(legendIntervals) {
			upper := legendIntervals[i+1]
			row.Upper = &upper
			row.Label = km(lower) + " — " + km(upper)
		} else {
			row.Label = strconv.FormatFloat(lower, 'f', -1, 64) + "+"
		}

		rows = append(rows, row)
	}

	return rows
}

func km(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "km"
}
