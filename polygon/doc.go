// Package polygon represents a simple closed boundary as an ordered
// sequence of distinct points, and provides the representative-point
// operations the Reeb tracker needs: point-in-polygon containment,
// signed-area centroid, and smallest-enclosing-disk centroid.
//
// What:
//
//   - Polygon: an ordered, simplification-optional vertex list.
//   - Contains: ray-casting point-in-polygon test. Boundary inclusion is not
//     normalized, only consistent within one Polygon value; callers only
//     rely on it for interior representative points.
//   - Centroid: the standard 2D signed-area centroid formula; none for
//     degenerate polygons (fewer than 3 vertices, or zero signed area).
//   - SmallestDiskCentroid: centre of disk.SmallestEnclosingDisk over the
//     vertex set.
//   - Simplify: drops the middle point of any collinear triple along the
//     boundary.
package polygon
