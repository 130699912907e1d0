// Package mapview is the composition root of the earthquake map: it owns the
// basemaps, the overlay groups and the controls, and starts the feed loads.
package mapview

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/quakemap/internal/basemap"
	"github.com/woozymasta/quakemap/internal/config"
	"github.com/woozymasta/quakemap/internal/geo"
	"github.com/woozymasta/quakemap/internal/overlay"
	"github.com/woozymasta/quakemap/internal/style"
)

// Overlay group keys, also used in URLs and metric labels.
const (
	PlatesID      = "plates"
	EarthquakesID = "earthquakes"
)

// Map holds everything the page draws.
type Map struct {
	cfg         *config.Config
	basemaps    *basemap.Registry
	loader      *overlay.Loader
	plates      *overlay.Group
	earthquakes *overlay.Group
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// New builds the map from configuration. Feeds are not fetched until Start.
func New(cfg *config.Config, loader *overlay.Loader) (*Map, error) {
	reg, err := basemap.New(cfg.Basemaps)
	if err != nil {
		return nil, err
	}

	for _, name := range cfg.Map.Active {
		if _, err := reg.Get(name); err != nil {
			return nil, fmt.Errorf("map.active: %w", err)
		}
	}

	return &Map{
		cfg:         cfg,
		basemaps:    reg,
		loader:      loader,
		plates:      overlay.NewGroup(PlatesID, cfg.Overlays.Plates.Name),
		earthquakes: overlay.NewGroup(EarthquakesID, cfg.Overlays.Earthquakes.Name),
	}, nil
}

// Start launches the two feed loads. Each runs once, independently, and
// writes only to its own group.
func (m *Map) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	m.start(ctx, m.plates, m.cfg.Overlays.Plates.URL, overlay.RenderPlateFeed)
	m.start(ctx, m.earthquakes, m.cfg.Overlays.Earthquakes.URL, overlay.RenderEarthquakeFeed)

	log.Info().
		Str("plates", m.cfg.Overlays.Plates.URL).
		Str("earthquakes", m.cfg.Overlays.Earthquakes.URL).
		Msg("Overlay loads started")
}

func (m *Map) start(ctx context.Context, g *overlay.Group, url string, render overlay.RenderFunc) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		// failures are logged and counted by the loader; the group stays empty
		_ = m.loader.Load(ctx, g, url, render)
	}()
}

// Load fetches both feeds and waits for them. Unlike Start it reports the
// failures; a failed feed does not stop the other one.
func (m *Map) Load(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		return m.loader.Load(ctx, m.plates, m.cfg.Overlays.Plates.URL, overlay.RenderPlateFeed)
	})
	g.Go(func() error {
		return m.loader.Load(ctx, m.earthquakes, m.cfg.Overlays.Earthquakes.URL, overlay.RenderEarthquakeFeed)
	})
	return g.Wait()
}

// Close cancels pending loads and waits for them to return.
func (m *Map) Close() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}

// Overlay returns the group registered under id.
func (m *Map) Overlay(id string) (*overlay.Group, bool) {
	switch id {
	case PlatesID:
		return m.plates, true
	case EarthquakesID:
		return m.earthquakes, true
	default:
		return nil, false
	}
}

// Overlays returns the groups in layer control order.
func (m *Map) Overlays() []*overlay.Group {
	return []*overlay.Group{m.plates, m.earthquakes}
}

// Legend returns the legend rows drawn by the legend control.
func (m *Map) Legend() []style.LegendRow {
	return style.Legend()
}

// Document describes the map for the page script.
type Document struct {
	Center       geo.LatLng           `json:"center"`
	Element      string               `json:"element"`
	Basemaps     []basemap.TileSource `json:"basemaps"`
	Active       []string             `json:"active"`
	Overlays     []OverlayRef         `json:"overlays"`
	Legend       LegendControl        `json:"legend"`
	LayerControl LayerControl         `json:"layerControl"`
	Zoom         int                  `json:"zoom"`
}

// OverlayRef points the page at an overlay endpoint.
type OverlayRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LayerControl lists basemaps (one active at a time) and overlays (toggled independently).
type LayerControl struct {
	Basemaps []string `json:"basemaps"`
	Overlays []string `json:"overlays"`
}

// LegendControl is the static depth key.
type LegendControl struct {
	Position string            `json:"position"`
	Rows     []style.LegendRow `json:"rows"`
}

// Document returns the page description. Overlay URLs are relative to the server root.
func (m *Map) Document() Document {
	overlays := m.Overlays()
	refs := make([]OverlayRef, len(overlays))
	names := make([]string, len(overlays))
	for i, g := range overlays {
		refs[i] = OverlayRef{ID: g.ID(), Name: g.Name(), URL: "/api/overlays/" + g.ID()}
		names[i] = g.Name()
	}

	active := make([]string, len(m.cfg.Map.Active))
	copy(active, m.cfg.Map.Active)

	return Document{
		Element:  m.cfg.Map.Element,
		Center:   m.cfg.Map.Center,
		Zoom:     m.cfg.Map.Zoom,
		Basemaps: m.basemaps.Sources(),
		Active:   active,
		Overlays: refs,
		LayerControl: LayerControl{
			Basemaps: m.basemaps.Names(),
			Overlays: names,
		},
		Legend: LegendControl{
			Position: m.cfg.Map.LegendPosition,
			Rows:     m.Legend(),
		},
	}
}
