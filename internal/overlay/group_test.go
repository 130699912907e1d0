package overlay

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_EmptyUntilFilled(t *testing.T) {
	g := NewGroup("plates", "Tectonic Plates")

	assert.Equal(t, "plates", g.ID())
	assert.Equal(t, "Tectonic Plates", g.Name())
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.FeatureCollection().Features)

	_, ok := g.LoadedAt()
	assert.False(t, ok)

	select {
	case <-g.Done():
		t.Fatal("done closed before fill")
	default:
	}
}

func TestGroup_Fill(t *testing.T) {
	g := NewGroup("plates", "Tectonic Plates")
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.LineString{{0, 0}, {1, 1}}))
	require.NoError(t, g.Fill(fc, at))

	select {
	case <-g.Done():
	default:
		t.Fatal("done not closed after fill")
	}

	assert.Equal(t, 1, g.Len())
	loadedAt, ok := g.LoadedAt()
	assert.True(t, ok)
	assert.Equal(t, at, loadedAt)

	err := g.Fill(fc, at)
	assert.ErrorIs(t, err, ErrAlreadyFilled)
	assert.Equal(t, 1, g.Len())
}

func TestGroup_SnapshotIsIndependent(t *testing.T) {
	g := NewGroup("plates", "Tectonic Plates")
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{1, 2}))
	require.NoError(t, g.Fill(fc, time.Now()))

	snap := g.FeatureCollection()
	snap.Append(geojson.NewFeature(orb.Point{3, 4}))

	assert.Equal(t, 1, g.Len())
}
