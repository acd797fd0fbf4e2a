package geom

// Point is an ordered pair of finite real numbers. Point is an immutable
// value type; every operation that would "modify" a Point returns a new one.
type Point struct {
	X, Y float64
}

// New returns the Point (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Less reports whether p sorts before q in lexicographic order (x then y).
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Sub returns p - q as a displacement vector.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}
