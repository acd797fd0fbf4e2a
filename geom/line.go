package geom

import "math"

// Line is a 2D line represented by a slope and a contact point it passes
// through. A vertical line has no finite slope; Vertical reports true and
// Slope/Intercept are meaningless in that case.
//
// Parallelism and overlap checks use exact floating-point equality — a
// documented limitation carried over from the reference implementation
// (see DESIGN.md): callers constructing a Line from computed midpoints
// should expect two "parallel" lines built from slightly different
// arithmetic paths to compare as non-parallel.
type Line struct {
	slope     float64
	vertical  bool
	contact   Point
	intercept float64
}

// NewLine constructs a Line with the given slope through contact. A slope of
// +Inf or -Inf (or NaN produced by a vertical perpendicular-bisector
// construction) marks the line as vertical.
func NewLine(slope float64, contact Point) Line {
	if math.IsInf(slope, 0) || math.IsNaN(slope) {
		return Line{vertical: true, contact: contact}
	}
	return Line{
		slope:     slope,
		contact:   contact,
		intercept: contact.Y - slope*contact.X,
	}
}

// LineThrough constructs the Line passing through a and b.
func LineThrough(a, b Point) Line {
	left, right := a, b
	if b.Less(a) {
		left, right = b, a
	}
	if right.X == left.X {
		return NewLine(math.Inf(1), a)
	}
	return NewLine((right.Y-left.Y)/(right.X-left.X), a)
}

// Vertical reports whether the line has no finite slope.
func (l Line) Vertical() bool {
	return l.vertical
}

// At evaluates the line at the given x. Panics-free; callers must not call
// this on a vertical line (check Vertical first).
func (l Line) At(x float64) float64 {
	return l.slope*x + l.intercept
}

// IsParallelTo reports whether l and other have the same slope (both
// vertical counts as parallel), using exact equality.
func (l Line) IsParallelTo(other Line) bool {
	if l.vertical || other.vertical {
		return l.vertical && other.vertical
	}
	return l.slope == other.slope
}

// IsOverlappingWith reports whether l and other are the same line (parallel
// and sharing a point), using exact equality on slope/intercept, or on the
// shared x-coordinate in the vertical case.
func (l Line) IsOverlappingWith(other Line) bool {
	if !l.vertical {
		if other.vertical {
			return false
		}
		return l.slope == other.slope && l.intercept == other.intercept
	}
	if !other.vertical {
		return other.IsOverlappingWith(l)
	}
	return l.contact.X == other.contact.X
}

// Intersection returns the point where l and other cross, or ok=false if
// they are parallel (including overlapping).
func (l Line) Intersection(other Line) (Point, bool) {
	if l.IsParallelTo(other) {
		return Point{}, false
	}
	if l.vertical {
		return New(l.contact.X, other.At(l.contact.X)), true
	}
	if other.vertical {
		return New(other.contact.X, l.At(other.contact.X)), true
	}
	x := (other.intercept - l.intercept) / (l.slope - other.slope)
	return New(x, l.At(x)), true
}
