package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	triangulation := TriangulateFixture("scatter")
	diagram := Extract(triangulation)

	// Only the synthetic triangle's sides lack a second triangle, so every real
	// site gets a cell.
	require.Len(t, diagram.Cells, len(triangulation.Sites))
	for i, cell := range diagram.Cells {
		assert.Equal(t, triangulation.Graph.Point(triangulation.Sites[i]).Point, cell.Site)
		assert.True(t, cell.Complete, "%v", cell)
		assert.True(t, cell.IsClosedRing(), "%v", cell)
		assert.True(t, cell.Centroid().IsFinite())

		// Edge i joins vertex i and vertex i+1
		for j, edge := range cell.Edges {
			a, b := cell.Verts[j], cell.Verts[CircularIndex(j+1, len(cell.Verts))]
			assert.True(t, (edge.A == a && edge.B == b) || (edge.A == b && edge.B == a), "%v edge %d", cell, j)
			assert.True(t, edge.HasCell(cell))
		}

		// Cells are convex, wind counterclockwise and contain their site
		for j, vert := range cell.Verts {
			next := cell.Verts[CircularIndex(j+1, len(cell.Verts))]
			assert.Greater(t, Orientation(vert.Point, next.Point, cell.Site), 0.0, "%v", cell)
		}
	}

	// Vertices know their edges
	for _, edge := range diagram.Edges {
		assert.True(t, edge.A.HasEdge(edge))
		assert.True(t, edge.B.HasEdge(edge))
	}
	assert.Len(t, diagram.Points, triangulation.Graph.NumTriangles())
}

func TestExtract_SharedEdges(t *testing.T) {
	diagram := Extract(TriangulateFixture("scatter"))
	shared := 0
	for _, edge := range diagram.Edges {
		if edge.Cells[1] != nil {
			shared++
			assert.NotSame(t, edge.Cells[0], edge.Cells[1])
		}
	}
	assert.NotZero(t, shared)
}

func TestExtract_Hexagon(t *testing.T) {
	diagram := Extract(TriangulateFixture("hexagon"))
	require.Len(t, diagram.Cells, 7)

	// The center cell is a regular hexagon around the origin
	center := diagram.Cells[0]
	require.Len(t, center.Verts, 6)
	require.Len(t, center.Edges, 6)
	for _, vert := range center.Verts {
		assert.InDelta(t, 1/math.Sqrt(3), math.Hypot(vert.X, vert.Y), 1e-9)
	}
	centroid := center.Centroid()
	assert.InDelta(t, 0, centroid.X, 1e-9)
	assert.InDelta(t, 0, centroid.Y, 1e-9)

	// It shares an edge with every other cell
	neighbors := make(map[*VorCell]struct{})
	for _, edge := range center.Edges {
		require.NotNil(t, edge.Cells[1])
		if edge.Cells[0] == center {
			neighbors[edge.Cells[1]] = struct{}{}
		} else {
			neighbors[edge.Cells[0]] = struct{}{}
		}
	}
	assert.Len(t, neighbors, 6)
}

func TestVorEdgeCells(t *testing.T) {
	a := &VorPoint{Point: Point{0, 0}}
	b := &VorPoint{Point: Point{2, 1}}
	edge := NewVorEdge(a, b)
	assert.True(t, a.HasEdge(edge))
	assert.True(t, b.HasEdge(edge))
	assert.True(t, edge.Joins(Point{2, 1}, Point{0, 0}))
	assert.True(t, edge.Joins(Point{0, 0}, Point{2, 1 + Tolerance/2}))
	assert.False(t, edge.Joins(Point{0, 0}, Point{2, 2}))
	assert.Equal(t, Point{1, 0.5}, edge.Midpoint())

	first, second := &VorCell{}, &VorCell{}
	edge.AddCell(first)
	edge.AddCell(second)
	assert.True(t, edge.HasCell(first))
	assert.True(t, edge.HasCell(second))

	err := catchFatal(func() { edge.AddCell(&VorCell{}) })
	assert.ErrorContains(t, err, "three cells")

	edge.RemoveCell(first)
	assert.Same(t, second, edge.Cells[0])
	assert.Nil(t, edge.Cells[1])

	// Removing a cell that isn't there does nothing
	edge.RemoveCell(first)
	assert.Same(t, second, edge.Cells[0])
}
