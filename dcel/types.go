package dcel

import "github.com/katalvlaran/reebtide/geom"

// nilIndex marks an index field that has not been wired yet.
const nilIndex = -1

// Vertex is an arena entry: a coordinate plus one incident outgoing
// half-edge index, usable as a rotation start point.
type Vertex struct {
	Coord     geom.Point
	Incident  int
	Alive     bool
}

// HalfEdge is one directed side of an edge. Origin is the vertex it leaves
// from; Twin is its oppositely-directed partner; Next/Prev link it into the
// boundary cycle of its Face.
type HalfEdge struct {
	Origin int
	Twin   int
	Next   int
	Prev   int
	Face   int
	Alive  bool
}

// Face is a boundary cycle, identified by one half-edge on that cycle.
type Face struct {
	Outer int
	Alive bool
}

// DCEL is an arena-indexed half-edge planar subdivision. The zero value is
// not usable; construct with New or BuildFromGraph.
type DCEL struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face
}

// New returns an empty DCEL with no vertices, half-edges, or faces.
func New() *DCEL {
	return &DCEL{}
}

// addVertex appends a vertex at coord with no incident edge yet and returns
// its index.
func (d *DCEL) addVertex(coord geom.Point) int {
	idx := len(d.Vertices)
	d.Vertices = append(d.Vertices, Vertex{Coord: coord, Incident: nilIndex, Alive: true})
	return idx
}

// AddTwins allocates a new pair of mutually-twinned half-edges with no
// origin, face, next, or prev wired yet, and returns their indices.
func (d *DCEL) AddTwins() (h1, h2 int) {
	h1 = len(d.HalfEdges)
	h2 = h1 + 1
	d.HalfEdges = append(d.HalfEdges,
		HalfEdge{Origin: nilIndex, Twin: h2, Next: nilIndex, Prev: nilIndex, Face: nilIndex, Alive: true},
		HalfEdge{Origin: nilIndex, Twin: h1, Next: nilIndex, Prev: nilIndex, Face: nilIndex, Alive: true},
	)
	return h1, h2
}

// Next advances from half-edge h around its face cycle.
func (d *DCEL) Next(h int) int { return d.HalfEdges[h].Next }

// Prev retreats from half-edge h around its face cycle.
func (d *DCEL) Prev(h int) int { return d.HalfEdges[h].Prev }

// TwinOf returns the twin of half-edge h.
func (d *DCEL) TwinOf(h int) int { return d.HalfEdges[h].Twin }

// OriginOf returns the coordinate half-edge h departs from.
func (d *DCEL) OriginOf(h int) geom.Point { return d.Vertices[d.HalfEdges[h].Origin].Coord }
