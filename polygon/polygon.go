package polygon

import (
	"github.com/katalvlaran/reebtide/disk"
	"github.com/katalvlaran/reebtide/geom"
)

// Polygon is an ordered sequence of distinct points describing a simple
// closed boundary (the last vertex is implicitly connected back to the
// first).
type Polygon struct {
	Vertices []geom.Point
}

// New constructs a Polygon from an ordered vertex list. The slice is copied;
// mutating it afterwards does not affect the Polygon.
func New(vertices []geom.Point) Polygon {
	v := make([]geom.Point, len(vertices))
	copy(v, vertices)
	return Polygon{Vertices: v}
}

// Contains reports whether p lies inside the polygon, via the standard
// ray-casting algorithm. Boundary inclusion is unspecified (see package doc)
// but stable for a given Polygon value.
func (p Polygon) Contains(q geom.Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > q.Y) != (vj.Y > q.Y) {
			xCross := (vj.X-vi.X)*(q.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if q.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// signedArea2 returns twice the signed area of the polygon (positive for
// counter-clockwise vertex order).
func (p Polygon) signedArea2() float64 {
	n := len(p.Vertices)
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
	}
	return sum
}

// Centroid returns the signed-area centroid of the simple polygon it
// describes. ok is false if the polygon has fewer than 3 vertices or zero
// signed area (degenerate — all vertices collinear).
func (p Polygon) Centroid() (c geom.Point, ok bool) {
	n := len(p.Vertices)
	if n < 3 {
		return geom.Point{}, false
	}

	area2 := p.signedArea2()
	if area2 == 0 {
		return geom.Point{}, false
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		cx += (vi.X + vj.X) * cross
		cy += (vi.Y + vj.Y) * cross
	}
	factor := 1 / (3 * area2)
	return geom.New(cx*factor, cy*factor), true
}

// SmallestDiskCentroid returns the centre of disk.SmallestEnclosingDisk over
// the polygon's vertex set. ok is false only if the polygon has no
// vertices.
func (p Polygon) SmallestDiskCentroid() (geom.Point, bool) {
	d, ok := disk.SmallestEnclosingDisk(p.Vertices)
	if !ok {
		return geom.Point{}, false
	}
	return d.Center, true
}

// Simplify returns a copy of p with the middle point of every collinear
// boundary triple removed.
func (p Polygon) Simplify() Polygon {
	n := len(p.Vertices)
	if n < 3 {
		return New(p.Vertices)
	}

	var out []geom.Point
	for i := 0; i < n; i++ {
		prev := p.Vertices[(i-1+n)%n]
		cur := p.Vertices[i]
		next := p.Vertices[(i+1)%n]
		if isCollinear(prev, cur, next) {
			continue
		}
		out = append(out, cur)
	}
	return New(out)
}

func isCollinear(a, b, c geom.Point) bool {
	return (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) == 0
}
