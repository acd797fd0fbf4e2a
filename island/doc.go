// Package island represents one time-slice of the thresholded planar graph
// (an "island" snapshot) as an integer-coordinate adjacency graph, and
// exposes its bounded faces as polygons via the dcel package.
//
// What:
//
//   - Graph: vertices are deduplicated by integer coordinate; edges are
//     deduplicated by unordered coordinate pair, so AddEdge is idempotent —
//     calling it twice for the same pair (in either order) has no
//     additional effect. This matters because the ingest collaborator may
//     observe the same grid edge from both of its incident polyline paths.
//   - Reduce: iteratively strips vertices with degree <= 1 until none
//     remain, exactly as the originating network-graph routine does
//     (pruning dangling spurs before face enumeration).
//   - Polygons: builds a dcel.DCEL from the current vertex/edge set (mode
//     A), assigns faces, and returns the bounded-face polygons. This is the
//     entry point the Reeb tracker calls once per time step.
package island
