// Package overlay loads the remote feeds into independently toggled layer groups.
package overlay

import (
	"errors"
	"sync"
	"time"

	"github.com/paulmach/orb/geojson"
)

// ErrAlreadyFilled is returned when a group is filled a second time.
var ErrAlreadyFilled = errors.New("layer group already filled")

// Group is a named container of rendered features. It starts empty and is
// filled at most once, when its feed has been fetched and styled.
type Group struct {
	loadedAt time.Time
	features []*geojson.Feature
	done     chan struct{}
	id       string
	name     string
	mu       sync.RWMutex
}

// NewGroup creates an empty group. id is the URL-safe key, name the label
// shown in the layer control.
func NewGroup(id, name string) *Group {
	return &Group{
		id:   id,
		name: name,
		done: make(chan struct{}),
	}
}

// ID returns the group key.
func (g *Group) ID() string { return g.id }

// Name returns the display name.
func (g *Group) Name() string { return g.name }

// Fill stores the rendered features and releases everyone waiting on Done.
func (g *Group) Fill(fc *geojson.FeatureCollection, at time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	select {
	case <-g.done:
		return ErrAlreadyFilled
	default:
	}

	g.features = fc.Features
	g.loadedAt = at
	close(g.done)

	return nil
}

// Done is closed once the group has been filled. A group whose feed never
// arrives is never closed.
func (g *Group) Done() <-chan struct{} {
	return g.done
}

// Len returns the number of rendered features.
func (g *Group) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.features)
}

// LoadedAt returns when the group was filled.
func (g *Group) LoadedAt() (time.Time, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.loadedAt, !g.loadedAt.IsZero()
}

// FeatureCollection returns a snapshot of the group. An unfilled group
// yields an empty collection.
func (g *Group) FeatureCollection() *geojson.FeatureCollection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fc := geojson.NewFeatureCollection()
	fc.Features = make([]*geojson.Feature, len(g.features))
	copy(fc.Features, g.features)

	return fc
}
