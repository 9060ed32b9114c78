package internal

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// Tolerance for positional equality. Tiles build their diagrams independently,
// so the same circumcenter or centroid is computed more than once, from the
// same inputs in a different order. The results agree to far better than this,
// but never exactly.
const Tolerance = 1e-8

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

type Point struct {
	X float64
	Y float64
}

// Per-axis tolerance equality. This does not handle infinities, which never
// make it into a graph.
func (p Point) Equals(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

// Membership in the half-open area [x1, x2) × [y1, y2). Including the start and
// excluding the end means every point belongs to exactly one tile.
func (p Point) InArea(x1, y1, x2, y2 float64) bool {
	return p.X >= x1 && p.X < x2 && p.Y >= y1 && p.Y < y2
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Comparator for sorting points by polar angle around a center. Points in the
// left half plane come first, then the right half plane, and within a half
// plane the order is counterclockwise, so the full ordering winds
// counterclockwise. Returns a negative value if a sorts before b.
func compareAround(center, a, b Point) float64 {
	da := a.R2().Sub(center.R2())
	db := b.R2().Sub(center.R2())
	if da.X >= 0 && db.X < 0 {
		return 1
	}
	if da.X < 0 && db.X >= 0 {
		return -1
	}
	if da.X == 0 && db.X == 0 {
		if da.Y >= 0 || db.Y >= 0 {
			return a.Y - b.Y
		}
		return b.Y - a.Y
	}
	// Cross product of (center -> a) x (center -> b). Positive means b is
	// counterclockwise from a, so a goes first.
	return -da.Cross(db)
}

func sortByAngle[T any](center Point, items []T, position func(T) Point) {
	sort.SliceStable(items, func(i, j int) bool {
		return compareAround(center, position(items[i]), position(items[j])) < 0
	})
}
