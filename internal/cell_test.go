package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquareCell() (*VorCell, []*VorPoint) {
	verts := []*VorPoint{
		{Point: Point{0, 0}},
		{Point: Point{1, 0}},
		{Point: Point{1, 1}},
		{Point: Point{0, 1}},
	}
	// Deliberately out of ring order
	edges := []*VorEdge{
		NewVorEdge(verts[2], verts[3]),
		NewVorEdge(verts[0], verts[1]),
		NewVorEdge(verts[3], verts[0]),
		NewVorEdge(verts[1], verts[2]),
	}
	return NewVorCell(Point{0.5, 0.5}, edges), verts
}

func TestNewVorCell(t *testing.T) {
	cell, verts := unitSquareCell()
	assert.True(t, cell.Complete)
	assert.True(t, cell.IsClosedRing())
	require.Len(t, cell.Verts, 4)
	for _, vert := range verts {
		assert.True(t, cell.HasVert(vert))
	}
	for i, edge := range cell.Edges {
		a, b := cell.Verts[i], cell.Verts[CircularIndex(i+1, 4)]
		assert.True(t, (edge.A == a && edge.B == b) || (edge.A == b && edge.B == a), "edge %d", i)
		assert.Same(t, cell, edge.Cells[0])
	}

	bounds := cell.Bounds()
	assert.Equal(t, Point{0, 0}, bounds.Min())
	assert.Equal(t, Point{1, 1}, bounds.Max())
	assert.True(t, bounds.Touches(NewBounds(1, 1, 2, 2)))
	assert.False(t, bounds.Touches(NewBounds(1.1, 0, 2, 1)))
}

func TestVorCellCentroid(t *testing.T) {
	cell, _ := unitSquareCell()
	centroid := cell.Centroid()
	assert.InDelta(t, 0.5, centroid.X, 1e-12)
	assert.InDelta(t, 0.5, centroid.Y, 1e-12)

	// Cached
	cell.Verts[0].X = -10
	assert.Equal(t, centroid, cell.Centroid())
}

func TestVorCellCentroid_Triangle(t *testing.T) {
	a := &VorPoint{Point: Point{0, 0}}
	b := &VorPoint{Point: Point{3, 0}}
	c := &VorPoint{Point: Point{0, 3}}
	cell := NewVorCell(Point{0.5, 0.5}, []*VorEdge{NewVorEdge(a, b), NewVorEdge(b, c), NewVorEdge(c, a)})
	centroid := cell.Centroid()
	assert.InDelta(t, 1, centroid.X, 1e-12)
	assert.InDelta(t, 1, centroid.Y, 1e-12)
}

func TestVorCellCentroid_ZeroArea(t *testing.T) {
	a := &VorPoint{Point: Point{0, 0}}
	b := &VorPoint{Point: Point{1, 0}}
	c := &VorPoint{Point: Point{2, 0}}
	site := Point{1, 0}
	cell := NewVorCell(site, []*VorEdge{NewVorEdge(a, b), NewVorEdge(b, c), NewVorEdge(c, a)})
	assert.Equal(t, site, cell.Centroid())
}

func TestNewVorCell_MissingEdge(t *testing.T) {
	a := &VorPoint{Point: Point{0, 0}}
	b := &VorPoint{Point: Point{1, 0}}
	cell := NewVorCell(Point{0.5, 0.5}, []*VorEdge{NewVorEdge(a, b), nil})
	assert.False(t, cell.Complete)
	assert.False(t, cell.IsClosedRing())
	assert.Len(t, cell.Edges, 1)
}

func TestVorCellString(t *testing.T) {
	cell, _ := unitSquareCell()
	assert.Contains(t, cell.String(), "site: (0.5, 0.5), verts: 4, edges: 4")
}
