package reeb

import (
	"context"

	"github.com/katalvlaran/reebtide/polygon"
)

// IslandSource is the collaborator boundary: Tracker asks it for the island
// polygons at a given layer index, on demand, and never parses or
// enumerates anything itself.
type IslandSource interface {
	// Islands returns the polygons for layer, in the deterministic order
	// their originating DCEL construction produced them.
	Islands(ctx context.Context, layer int) ([]polygon.Polygon, error)

	// Len returns the total number of layers available.
	Len() int
}
