package style

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	legendPadding = 8
	legendSwatch  = 14
	legendRowH    = 18
	legendGap     = 6
)

// RenderLegend draws the legend rows as a semi-transparent white box with
// a color swatch and a label per row.
func RenderLegend(rows []LegendRow) (*image.RGBA, error) {
	face := basicfont.Face7x13

	labels := make([]string, len(rows))
	textWidth := 0
	for i, row := range rows {
		// basicfont only covers ASCII
		labels[i] = strings.ReplaceAll(row.Label, "—", "-")
		if w := font.MeasureString(face, labels[i]).Ceil(); w > textWidth {
			textWidth = w
		}
	}

	width := legendPadding*2 + legendSwatch + legendGap + textWidth
	height := legendPadding*2 + legendRowH*len(rows)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 204}), image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: img, Src: image.Black, Face: face}

	for i, row := range rows {
		c, err := ParseColor(row.Color)
		if err != nil {
			return nil, err
		}

		top := legendPadding + i*legendRowH
		swatch := image.Rect(legendPadding, top+2, legendPadding+legendSwatch, top+2+legendSwatch)
		draw.Draw(img, swatch, image.NewUniform(c), image.Point{}, draw.Src)

		drawer.Dot = fixed.P(legendPadding+legendSwatch+legendGap, top+legendRowH-4)
		drawer.DrawString(labels[i])
	}

	return img, nil
}

// ScaleLegend enlarges img by an integer factor for high density screens.
func ScaleLegend(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	// nearest neighbour keeps the bitmap font sharp
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// EncodeLegend renders rows at scale and writes them in the given format ("png" or "webp").
func EncodeLegend(w io.Writer, format string, scale int, rows []LegendRow) error {
	src, err := RenderLegend(rows)
	if err != nil {
		return err
	}
	img := ScaleLegend(src, scale)

	switch format {
	case "png":
		return png.Encode(w, img)
	case "webp":
		return webp.Encode(w, img, &webp.Options{Lossless: true})
	default:
		return fmt.Errorf("unsupported legend format %q", format)
	}
}

// ParseColor resolves a CSS named color or a #rgb / #rrggbb hex value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
