package server

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/quakemap/internal/mapview"
	"github.com/woozymasta/quakemap/internal/style"
)

// Legend images served under /api/legend.<format>?scale=<n>.
var (
	legendFormats = []string{"png", "webp"}
	legendScales  = []int{1, 2}
)

func legendKey(format string, scale int) string {
	return format + "@" + strconv.Itoa(scale)
}

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Map       *mapview.Map
	IndexHTML []byte
	IndexETag string
	Favicon   []byte
	Legends   map[string][]byte
}

// NewServerContext renders the page and the legend images once.
func NewServerContext(m *mapview.Map) (*ServerContext, error) {
	doc := m.Document()

	page, err := RenderIndex(doc.Element)
	if err != nil {
		return nil, err
	}

	icon, err := RenderFavicon()
	if err != nil {
		return nil, err
	}

	legends := make(map[string][]byte, len(legendFormats)*len(legendScales))
	for _, format := range legendFormats {
		for _, scale := range legendScales {
			var buf bytes.Buffer
			if err := style.EncodeLegend(&buf, format, scale, doc.Legend.Rows); err != nil {
				return nil, fmt.Errorf("legend %s: %w", format, err)
			}
			legends[legendKey(format, scale)] = buf.Bytes()

			log.Trace().
				Str("format", format).
				Int("scale", scale).
				Int("bytes", buf.Len()).
				Msg("Legend image rendered")
		}
	}

	log.Info().
		Int("index_bytes", len(page)).
		Int("basemaps", len(doc.Basemaps)).
		Int("overlays", len(doc.Overlays)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Map:       m,
		IndexHTML: page,
		IndexETag: fmt.Sprintf(`"%08x"`, crc32.ChecksumIEEE(page)),
		Favicon:   icon,
		Legends:   legends,
	}, nil
}
