package internal

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestPointEquals(t *testing.T) {
	p := Point{1, 2}
	assert.True(t, p.Equals(Point{1 + Tolerance/2, 2 - Tolerance/2}))
	assert.False(t, p.Equals(Point{1 + Tolerance*2, 2}))
	assert.False(t, p.Equals(Point{1, 2 + Tolerance*2}))
}

func TestPointInArea(t *testing.T) {
	testCases := []struct {
		point    Point
		expected bool
	}{
		{Point{0, 0}, true},
		{Point{0.5, 0.5}, true},
		{Point{0.999, 0}, true},
		{Point{1, 0.5}, false},
		{Point{0.5, 1}, false},
		{Point{-0.001, 0.5}, false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.point.InArea(0, 0, 1, 1), "%v", tc.point)
	}
}

func TestSortByAngle(t *testing.T) {
	expected := []Point{
		{-1, 0},
		{0, -1},
		{1, 0},
		{0, 1},
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		points := append([]Point(nil), expected...)
		rng.Shuffle(len(points), func(i, j int) {
			points[i], points[j] = points[j], points[i]
		})
		sortByAngle(Point{}, points, func(p Point) Point { return p })
		if diff := cmp.Diff(expected, points); diff != "" {
			t.Errorf("sorted points mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSortByAngle_WindsCounterclockwise(t *testing.T) {
	center := Point{0.3, -0.2}
	points := LoadFixture("scatter")
	for i := range points {
		// Shrink the fixture around the center, so that it surrounds it
		points[i] = Point{center.X + (points[i].X-5)/10, center.Y + (points[i].Y-5)/10}
	}
	sortByAngle(center, points, func(p Point) Point { return p })
	for i := range points {
		next := points[CircularIndex(i+1, len(points))]
		assert.Greater(t, Orientation(center, points[i], next), 0.0, "%v then %v", points[i], next)
	}
}
