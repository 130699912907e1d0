// Package snapshot writes loaded overlay groups to disk.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/quakemap/internal/overlay"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Extension returns the file extension used for format.
func Extension(format string) (string, error) {
	switch format {
	case FormatJSON:
		return ".geojson", nil
	case FormatYAML:
		return ".yaml", nil
	default:
		return "", fmt.Errorf("unknown snapshot format %q", format)
	}
}

// Encode writes fc to w in format.
func Encode(w io.Writer, format string, fc *geojson.FeatureCollection) error {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feature collection: %w", err)
	}

	switch format {
	case FormatJSON:
		data = append(data, '\n')
	case FormatYAML:
		// orb has no yaml tags; go through the generic JSON tree
		var tree any
		if err := json.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("convert to yaml: %w", err)
		}
		if data, err = yaml.Marshal(tree); err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}

	_, err = w.Write(data)
	return err
}

// Write stores every group as <dir>/<id><ext> and returns the written paths.
func Write(dir, format string, groups []*overlay.Group) ([]string, error) {
	ext, err := Extension(format)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(groups))
	for _, g := range groups {
		path := filepath.Join(dir, g.ID()+ext)
		if err := writeFile(path, format, g.FeatureCollection()); err != nil {
			return paths, err
		}

		log.Debug().
			Str("overlay", g.ID()).
			Str("path", path).
			Int("features", g.Len()).
			Msg("Snapshot written")

		paths = append(paths, path)
	}

	return paths, nil
}

func writeFile(path, format string, fc *geojson.FeatureCollection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, format, fc); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
