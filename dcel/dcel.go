package dcel

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/reebtide/geom"
	"github.com/katalvlaran/reebtide/polygon"
)

// BuildFromGraph constructs a DCEL (mode A) from a vertex coordinate list
// and a list of undirected edges given as vertex-index pairs. Every edge
// becomes a twin half-edge pair; each vertex's incoming half-edges are then
// sorted into counter-clockwise angular order and stitched into face
// cycles. Call AddFaces afterwards to assign faces.
//
// BuildFromGraph returns ErrDanglingVertex if an edge references an index
// outside vertices, ErrSelfLoop if an edge's two endpoints are equal, and
// ErrDuplicateEdge if the same undirected edge appears twice.
func BuildFromGraph(vertices []geom.Point, edges [][2]int) (*DCEL, error) {
	d := New()
	for _, p := range vertices {
		d.addVertex(p)
	}

	incoming := make([][]int, len(vertices))
	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= len(vertices) || v < 0 || v >= len(vertices) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDanglingVertex, u, v)
		}
		if u == v {
			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
		}
		key := edgeKey(u, v)
		if seen[key] {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, u, v)
		}
		seen[key] = true

		huv, hvu := d.AddTwins()
		d.HalfEdges[huv].Origin = u
		d.HalfEdges[hvu].Origin = v
		d.Vertices[u].Incident = huv
		d.Vertices[v].Incident = hvu

		// The half-edge recorded at a vertex is the one arriving there;
		// its twin is the one leaving.
		incoming[v] = append(incoming[v], huv)
		incoming[u] = append(incoming[u], hvu)
	}

	d.buildRotations(incoming)
	return d, nil
}

func edgeKey(u, v int) [2]int {
	if u < v {
		return [2]int{u, v}
	}
	return [2]int{v, u}
}

// buildRotations sorts each vertex's incoming half-edges into
// counter-clockwise angular order (by the direction from the vertex to the
// half-edge's origin) and stitches next(twin(a)) = b, prev(b) = twin(a) for
// every consecutive pair a, b in that order, wrapping around.
func (d *DCEL) buildRotations(incoming [][]int) {
	for v, list := range incoming {
		if len(list) == 0 {
			continue
		}
		center := d.Vertices[v].Coord

		sorted := make([]int, len(list))
		copy(sorted, list)
		sort.Slice(sorted, func(i, j int) bool {
			pi := d.Vertices[d.HalfEdges[sorted[i]].Origin].Coord
			pj := d.Vertices[d.HalfEdges[sorted[j]].Origin].Coord
			return rotationAngle(pi.Sub(center)) < rotationAngle(pj.Sub(center))
		})

		for i, a := range sorted {
			b := sorted[(i+1)%len(sorted)]
			e1 := d.HalfEdges[a].Twin
			d.HalfEdges[e1].Next = b
			d.HalfEdges[b].Prev = e1
		}
	}
}

// rotationAngle computes a monotonic angular key for a direction vector
// using a two-branch arctangent rather than atan2: the positive-x half
// plane (dir.X >= 0) maps to atan(y/x) in [-pi/2, pi/2], the negative-x half
// maps to atan(y/x)+pi in [pi/2, 3pi/2]. This is the same angular ordering
// the vertex rotations were originally built with; it does not distinguish
// +0 from -0 on the vertical axis the way atan2 would, which only matters
// for edges pointing along the exact -y direction from dir.X == 0.
func rotationAngle(dir geom.Point) float64 {
	if dir.X < 0 {
		return math.Atan(dir.Y/dir.X) + math.Pi
	}
	return math.Atan(dir.Y / dir.X)
}

// AddFaces walks every alive half-edge's Next-cycle exactly once, assigning
// each cycle a new Face. It returns ErrFacesAlreadyBuilt if faces have
// already been added to this DCEL.
func (d *DCEL) AddFaces() error {
	if len(d.Faces) > 0 {
		return ErrFacesAlreadyBuilt
	}

	visited := make([]bool, len(d.HalfEdges))
	for start, he := range d.HalfEdges {
		if visited[start] || !he.Alive {
			continue
		}

		faceIdx := len(d.Faces)
		d.Faces = append(d.Faces, Face{Outer: start, Alive: true})

		cur := start
		for {
			visited[cur] = true
			d.HalfEdges[cur].Face = faceIdx
			cur = d.HalfEdges[cur].Next
			if cur == start {
				break
			}
		}
	}
	return nil
}

// MakePolygons converts every alive face's boundary cycle into a
// polygon.Polygon, sorts them by ascending vertex count, and drops the last
// (most-vertex) one — the conventional outer/unbounded face. It returns nil
// if AddFaces produced no faces at all.
func (d *DCEL) MakePolygons() []polygon.Polygon {
	if len(d.Faces) == 0 {
		return nil
	}

	polys := make([]polygon.Polygon, 0, len(d.Faces))
	for _, f := range d.Faces {
		if !f.Alive {
			continue
		}

		var pts []geom.Point
		cur := f.Outer
		for {
			pts = append(pts, d.Vertices[d.HalfEdges[cur].Origin].Coord)
			cur = d.HalfEdges[cur].Next
			if cur == f.Outer {
				break
			}
		}
		polys = append(polys, polygon.New(pts))
	}
	if len(polys) == 0 {
		return nil
	}

	sort.Slice(polys, func(i, j int) bool {
		return len(polys[i].Vertices) < len(polys[j].Vertices)
	})
	return polys[:len(polys)-1]
}
