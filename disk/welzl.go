package disk

import "github.com/katalvlaran/reebtide/geom"

// SmallestEnclosingDisk returns the unique smallest closed disk containing
// every point in points. ok is false only when points is empty.
func SmallestEnclosingDisk(points []geom.Point, opts ...Option) (d Disk, ok bool) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	pts := make([]geom.Point, len(points))
	copy(pts, points)
	if cfg.rng != nil {
		cfg.rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
	}

	return minDisk(pts, nil)
}

// minDisk implements Welzl's recursive incremental construction:
// trivial(B) when P is empty or |B| = 3; otherwise pop p from P and only
// add it to the boundary set when the disk found without it fails to
// contain it.
func minDisk(points []geom.Point, boundary []geom.Point) (Disk, bool) {
	if len(points) == 0 || len(boundary) == 3 {
		return trivial(boundary)
	}

	p := points[len(points)-1]
	rest := points[:len(points)-1]

	if d, ok := minDisk(rest, boundary); ok && d.Contains(p) {
		return d, true
	}

	nextBoundary := make([]geom.Point, len(boundary), len(boundary)+1)
	copy(nextBoundary, boundary)
	nextBoundary = append(nextBoundary, p)
	return minDisk(rest, nextBoundary)
}

func trivial(boundary []geom.Point) (Disk, bool) {
	switch len(boundary) {
	case 0:
		return Disk{}, false
	case 1:
		return Disk{Center: boundary[0], Radius: 0}, true
	case 2:
		return trivialPair(boundary[0], boundary[1]), true
	case 3:
		return trivialTriple(boundary[0], boundary[1], boundary[2])
	default:
		return Disk{}, false
	}
}

func trivialPair(a, b geom.Point) Disk {
	center := geom.New((a.X+b.X)/2, (a.Y+b.Y)/2)
	radius := geom.Distance(a, b) / 2
	return Disk{Center: center, Radius: radius}
}

// trivialTriple returns the circumscribed circle of a, b, c via
// perpendicular-bisector intersection. When the three points are collinear
// or two coincide (the bisectors are parallel or identical), it falls back
// to the three pairwise diameter disks and returns the first one that
// contains all three points — an enrichment over the reference
// implementation, which simply gives up in that case (see DESIGN.md).
func trivialTriple(a, b, c geom.Point) (Disk, bool) {
	bisectorAB := perpendicularBisector(a, b)
	bisectorCB := perpendicularBisector(c, b)

	if !bisectorAB.IsOverlappingWith(bisectorCB) && !bisectorAB.IsParallelTo(bisectorCB) {
		center, ok := bisectorAB.Intersection(bisectorCB)
		if ok {
			return Disk{Center: center, Radius: geom.Distance(a, center)}, true
		}
	}

	pts := []geom.Point{a, b, c}
	for _, pair := range [][2]geom.Point{{a, b}, {b, c}, {c, a}} {
		d := trivialPair(pair[0], pair[1])
		if d.containsAll(pts) {
			return d, true
		}
	}
	return Disk{}, false
}

func perpendicularBisector(a, b geom.Point) geom.Line {
	center := geom.New((a.X+b.X)/2, (a.Y+b.Y)/2)
	left, right := a, b
	if b.X <= a.X {
		left, right = b, a
	}
	// Slope of a-b is (right.Y-left.Y)/(right.X-left.X); the perpendicular
	// slope is the negative reciprocal. Dividing by zero (a horizontal
	// segment) yields +/-Inf, which geom.NewLine treats as vertical.
	slope := -1 * (right.X - left.X) / (right.Y - left.Y)
	return geom.NewLine(slope, center)
}
