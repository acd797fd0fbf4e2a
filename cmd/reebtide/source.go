package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/reebtide/ingest"
	"github.com/katalvlaran/reebtide/polygon"
)

// fileSource is a reeb.IslandSource over a lexicographically-ordered list
// of time-slice files, parsed on demand and cached per layer.
type fileSource struct {
	paths []string
	delta float64
	cache map[int][]polygon.Polygon
}

func newFileSource(paths []string, delta float64) *fileSource {
	return &fileSource{paths: paths, delta: delta, cache: make(map[int][]polygon.Polygon)}
}

func (f *fileSource) Islands(_ context.Context, layer int) ([]polygon.Polygon, error) {
	if polys, ok := f.cache[layer]; ok {
		return polys, nil
	}
	if layer < 0 || layer >= len(f.paths) {
		return nil, fmt.Errorf("layer %d out of range (have %d time slices)", layer, len(f.paths))
	}

	file, err := os.Open(f.paths[layer])
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.paths[layer], err)
	}
	defer file.Close()

	net, err := ingest.ParseNetwork(file, f.delta)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.paths[layer], err)
	}

	g := net.ToIsland()
	g.Reduce()
	polys, err := g.Polygons()
	if err != nil {
		return nil, fmt.Errorf("building faces for %s: %w", f.paths[layer], err)
	}

	f.cache[layer] = polys
	return polys, nil
}

func (f *fileSource) Len() int { return len(f.paths) }
