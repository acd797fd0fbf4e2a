package ingest

import "errors"

// Sentinel errors wrapped with line/field context by ParseNetwork.
var (
	// ErrTruncated is returned when the input ends before the declared
	// vertex or edge count is satisfied.
	ErrTruncated = errors.New("ingest: input truncated before declared count")

	// ErrMalformedLine is returned when a line does not have the expected
	// number or type of fields for its position in the format.
	ErrMalformedLine = errors.New("ingest: malformed line")

	// ErrVertexIndex is returned when a vertex declaration's own index, or
	// an edge's endpoint reference, falls outside [0, n).
	ErrVertexIndex = errors.New("ingest: vertex index out of range")
)
