package reeb

import (
	"github.com/katalvlaran/reebtide/geom"
	"github.com/katalvlaran/reebtide/polygon"
)

// Method selects which representative point of a polygon the linking
// predicate compares.
type Method int

const (
	// MethodCentroid uses Polygon.Centroid (the signed-area centroid).
	MethodCentroid Method = iota
	// MethodDisk uses Polygon.SmallestDiskCentroid (the centre of the
	// smallest enclosing disk over the polygon's vertices).
	MethodDisk
)

// String renders the CLI spelling of m ("centroid" or "disk").
func (m Method) String() string {
	if m == MethodDisk {
		return "disk"
	}
	return "centroid"
}

// representative returns p's representative point under m. ok is false
// when p has none: under MethodCentroid for fewer than 3 vertices or zero
// area, under MethodDisk only for a polygon with no vertices. The tracker
// treats such a polygon as unlinkable in either direction that step.
func representative(p polygon.Polygon, m Method) (geom.Point, bool) {
	if m == MethodDisk {
		return p.SmallestDiskCentroid()
	}
	return p.Centroid()
}
