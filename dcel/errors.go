package dcel

import "errors"

// Sentinel errors returned by BuildFromGraph and AddFaces. Wrap with %w when
// adding positional context.
var (
	// ErrDanglingVertex is returned when an edge references a vertex index
	// outside the supplied vertex list.
	ErrDanglingVertex = errors.New("dcel: edge references a dangling vertex index")

	// ErrDuplicateEdge is returned when the same undirected edge appears
	// more than once in the edge list. The island-graph collaborator is
	// expected to deduplicate before calling BuildFromGraph.
	ErrDuplicateEdge = errors.New("dcel: duplicate edge")

	// ErrSelfLoop is returned for an edge whose two endpoints are the same
	// vertex index; self-loops have no well-defined rotational order.
	ErrSelfLoop = errors.New("dcel: self-loop edge")

	// ErrFacesAlreadyBuilt is returned by AddFaces when called more than
	// once on the same DCEL.
	ErrFacesAlreadyBuilt = errors.New("dcel: faces already built")
)
