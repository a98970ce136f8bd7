package bouncy

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a position or displacement in normalized device coordinates:
// x grows to the right, y grows upward, and the visible area is [-1, 1].
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func fromVec(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return fromVec(p.vec().Add(q.vec()))
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return fromVec(p.vec().Sub(q.vec()))
}

// Mul scales p by m.
func (p Point) Mul(m float64) Point {
	return fromVec(p.vec().Mul(m))
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.vec().Dot(q.vec())
}

// Norm returns the length of p.
func (p Point) Norm() float64 {
	return p.vec().Norm()
}

// Edge is one side of a closed polygon.
type Edge struct {
	P1, P2 Point
}

// BoxContains reports whether p lies inside the edge's bounding box grown by
// slack.X horizontally and slack.Y vertically, edges included. Compared
// against the raw endpoints so no width rounding creeps in.
func (e Edge) BoxContains(p, slack Point) bool {
	minX, maxX := minMax(e.P1.X, e.P2.X)
	minY, maxY := minMax(e.P1.Y, e.P2.Y)
	return p.X >= minX-slack.X && p.X <= maxX+slack.X &&
		p.Y >= minY-slack.Y && p.Y <= maxY+slack.Y
}

// Normal returns the unit normal (p2.y-p1.y, -(p2.x-p1.x)). ok is false for a
// zero-length edge, which has no direction.
func (e Edge) Normal() (n Point, ok bool) {
	v := r2.Point{X: e.P2.Y - e.P1.Y, Y: -(e.P2.X - e.P1.X)}
	l := v.Norm()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Point{}, false
	}
	return fromVec(v.Mul(1 / l)), true
}

func minMax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// Polygon is an ordered, implicitly closed sequence of vertices.
type Polygon []Point

// Clone returns a copy that shares no storage with p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Edges returns consecutive vertex pairs, wrapping from the last vertex to
// the first. Fewer than two vertices yield no edges.
func (p Polygon) Edges() []Edge {
	n := len(p)
	if n < 2 {
		return nil
	}
	edges := make([]Edge, n)
	for i := range p {
		edges[i] = Edge{P1: p[i], P2: p[(i+1)%n]}
	}
	return edges
}

// Centroid returns the arithmetic mean of the vertices, or the origin for an
// empty polygon.
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var sum r2.Point
	for _, pt := range p {
		sum = sum.Add(pt.vec())
	}
	return fromVec(sum.Mul(1 / float64(len(p))))
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p[1:] {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether pt lies inside p using a cross-product sign test.
// Only meaningful for convex polygons in either winding order; points on an
// edge count as inside.
func (p Polygon) Contains(pt Point) bool {
	n := len(p)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Transform applies an affine matrix to every vertex.
func (p Polygon) Transform(m [6]float64) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		x, y := transformPoint(m, pt.X, pt.Y)
		out[i] = Point{X: x, Y: y}
	}
	return out
}
