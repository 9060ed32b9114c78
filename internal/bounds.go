package internal

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Bounds is a closed axis-aligned rectangle.
type Bounds struct {
	r2.Rect
}

func NewBounds(x1, y1, x2, y2 float64) Bounds {
	return Bounds{r2.Rect{X: r1.Interval{Lo: x1, Hi: x2}, Y: r1.Interval{Lo: y1, Hi: y2}}}
}

// The smallest bounds containing all of the points. Empty if there are no
// points.
func BoundsOf(points ...Point) Bounds {
	rect := r2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(p.R2())
	}
	return Bounds{rect}
}

func (b Bounds) Min() Point {
	lo := b.Lo()
	return Point{lo.X, lo.Y}
}

func (b Bounds) Max() Point {
	hi := b.Hi()
	return Point{hi.X, hi.Y}
}

// Whether the two closed rectangles share at least one point. Touching along an
// edge counts.
func (b Bounds) Touches(other Bounds) bool {
	return b.Intersects(other.Rect)
}

// Vertices of a triangle that strictly contains the bounds, with a margin of one
// unit plus three times the extent beyond the far corners.
func (b Bounds) SuperTriangle() [3]Point {
	lo, hi := b.Min(), b.Max()
	return [3]Point{
		{lo.X - 1, lo.Y - 1},
		{4*hi.X - 3*lo.X + 1, lo.Y - 1},
		{lo.X - 1, 4*hi.Y - 3*lo.Y + 1},
	}
}
