// Package geom provides the geometry primitives the rest of reebtide is
// built on: points, orientation tests, Euclidean distance, segment
// intersection, and a minimal Line type.
//
// What:
//
//   - Point: an immutable (x, y) pair with lexicographic ordering.
//   - LeftTurn: the classic orientation predicate used by DCEL line
//     insertion (dcel.InsertLine) to decide which side of a crossed edge
//     an inserted segment continues on.
//   - Distance: Euclidean distance between two points.
//   - SegmentIntersection: the unique interior crossing point of two closed
//     segments, or ok=false on parallel/collinear/endpoint-only cases.
//   - Line: slope-intercept representation with an explicit vertical flag,
//     used by the disk package's circumcenter construction (trivialTriple).
//
// Why:
//
//   - Every other package (disk, polygon, dcel, reeb) operates on these
//     primitives; keeping them in one leaf package avoids import cycles.
//
// Numerics:
//
//   - Parallelism and overlap on Line use exact floating-point equality.
//     This is a known limitation inherited from the reference
//     implementation (see DESIGN.md) rather than an oversight.
package geom
