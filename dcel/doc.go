// Package dcel builds a planar subdivision from an undirected planar graph
// using a Doubly-Connected Edge List (half-edge) representation, and
// enumerates its bounded faces as polygons.
//
// What:
//
//   - DCEL: arena-indexed vertices, half-edges, and faces. All entities are
//     plain integer indices into their respective slices; deletion is a
//     tombstone (Alive = false), never a structural removal, so indices
//     stay stable across the whole construction.
//   - BuildFromGraph (mode A): the construction the island-graph collaborator
//     and the Reeb tracker use. Given vertex coordinates and undirected
//     edges as vertex-index pairs, it allocates twin half-edge pairs,
//     angularly sorts each vertex's incoming half-edges, and stitches the
//     face cycles.
//   - InsertLine (mode B): incremental line-segment insertion into an
//     existing DCEL, splitting every edge it crosses. Within this module
//     only tests call it; the production pipeline (island.Graph.Polygons)
//     uses mode A exclusively.
//   - AddFaces: walks every alive half-edge's next-cycle once and assigns it
//     a face, including exactly one unbounded outer face.
//   - MakePolygons: converts each alive face's boundary cycle into a
//     polygon.Polygon, then drops the polygon with the most vertices — a
//     heuristic for identifying the outer face (see DESIGN.md open
//     question (a)).
//
// Invariants (post-Build, post-AddFaces):
//
//  1. Twin symmetry: Twin(Twin(h)) == h; Origin(h) != Origin(Twin(h)).
//  2. Cycle closure: following Next from any alive half-edge returns to it
//     in finitely many steps; Prev is its inverse.
//  3. Rotational order: at each vertex v, half-edges whose origin is v
//     appear in counter-clockwise angular order when walked by
//     Twin(Next(h)).
//  4. Face assignment: every alive half-edge belongs to exactly one face;
//     all half-edges in one next-cycle share that face.
//  5. Exactly one unbounded outer face exists.
//
// Failure semantics: BuildFromGraph is fatal on malformed input (duplicate
// edges, a dangling vertex index) — the island-graph collaborator is
// responsible for deduplication, so these return a wrapped sentinel error
// rather than silently recovering.
package dcel
