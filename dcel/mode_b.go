package dcel

import (
	"sort"

	"github.com/katalvlaran/reebtide/geom"
)

// crossingHit records a single strict interior crossing of an inserted
// segment with an existing half-edge.
type crossingHit struct {
	point    geom.Point
	halfEdge int
}

// InsertLine (mode B) splices the segment a-b into the DCEL, splitting every
// existing edge it crosses and creating two new vertices (at a and b) plus
// one new vertex per crossing. Within this module only tests call it; the
// production pipeline builds exclusively with BuildFromGraph (mode A).
//
// InsertLine assumes faces have not yet been assigned on this DCEL; call
// AddFaces only after every line has been inserted.
func (d *DCEL) InsertLine(a, b geom.Point) {
	seg := geom.Segment{A: a, B: b}

	hits := d.segmentCrossings(seg)
	sort.Slice(hits, func(i, j int) bool { return hits[i].point.Less(hits[j].point) })

	startPt, endPt := a, b
	if !a.Less(b) {
		startPt, endPt = b, a
	}

	lineNeedsNext, lineNeedsPrev, _ := d.addTwinsFromPoint(startPt)
	d.HalfEdges[lineNeedsPrev].Next = lineNeedsNext
	prevPt := startPt

	for _, hit := range hits {
		intPt := hit.point
		newNext, newPrev, newVertex := d.addTwinsFromPoint(intPt)
		d.HalfEdges[lineNeedsPrev].Origin = newVertex

		cutEdge := hit.halfEdge
		if geom.LeftTurn(prevPt, intPt, d.Vertices[d.HalfEdges[cutEdge].Origin].Coord) {
			cutEdge = d.HalfEdges[cutEdge].Twin
		}

		oldCutNext := d.HalfEdges[cutEdge].Next
		oldCutTwin := d.HalfEdges[cutEdge].Twin
		d.HalfEdges[cutEdge].Next = lineNeedsPrev

		cutExt := len(d.HalfEdges)
		d.HalfEdges = append(d.HalfEdges, HalfEdge{
			Origin: newVertex, Next: oldCutNext, Twin: oldCutTwin, Face: nilIndex, Prev: nilIndex, Alive: true,
		})
		d.HalfEdges[lineNeedsNext].Next = cutExt

		oldTwinNext := d.HalfEdges[oldCutTwin].Next
		d.HalfEdges[oldCutTwin].Next = newNext

		twinExt := len(d.HalfEdges)
		d.HalfEdges = append(d.HalfEdges, HalfEdge{
			Origin: newVertex, Next: oldTwinNext, Twin: cutEdge, Face: nilIndex, Prev: nilIndex, Alive: true,
		})
		d.HalfEdges[newPrev].Next = twinExt

		d.HalfEdges[cutEdge].Twin = twinExt
		d.HalfEdges[oldCutTwin].Twin = cutExt

		lineNeedsNext, lineNeedsPrev = newNext, newPrev
	}

	d.HalfEdges[lineNeedsNext].Next = lineNeedsPrev
	endVertex := d.addVertex(endPt)
	d.Vertices[endVertex].Incident = lineNeedsPrev
	d.HalfEdges[lineNeedsPrev].Origin = endVertex
}

// addTwinsFromPoint allocates a fresh vertex at pt plus a twin half-edge
// pair whose first half originates there, and returns (next-slot,
// prev-slot, vertex index) for the caller to splice further.
func (d *DCEL) addTwinsFromPoint(pt geom.Point) (next, prev, vertexIdx int) {
	h1, h2 := d.AddTwins()
	vertexIdx = d.addVertex(pt)
	d.Vertices[vertexIdx].Incident = h1
	d.HalfEdges[h1].Origin = vertexIdx
	return h1, h2, vertexIdx
}

// segmentCrossings finds every strict interior crossing of seg against the
// DCEL's existing edges, visiting each undirected edge (twin pair) once.
func (d *DCEL) segmentCrossings(seg geom.Segment) []crossingHit {
	visited := make([]bool, len(d.HalfEdges))
	var hits []crossingHit
	for i, he := range d.HalfEdges {
		if !he.Alive || visited[i] {
			continue
		}
		twin := he.Twin
		other := geom.Segment{A: d.Vertices[he.Origin].Coord, B: d.Vertices[d.HalfEdges[twin].Origin].Coord}
		if pt, ok := geom.SegmentIntersection(seg, other); ok {
			hits = append(hits, crossingHit{point: pt, halfEdge: i})
		}
		visited[i] = true
		visited[twin] = true
	}
	return hits
}
