package internal

import (
	"bytes"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSVG(t *testing.T) {
	diagram := Extract(TriangulateFixture("scatter"))
	// Only the cells near the middle, so the image stays a sensible size
	var cells []*VorCell
	for _, cell := range diagram.Cells {
		if cell.Site.InArea(2, 2, 8, 8) {
			cells = append(cells, cell)
		}
	}
	require.NotEmpty(t, cells)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, cells, 10))

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, "svg", root.Name)
	polygons := root.FindAll("polygon")
	require.Len(t, polygons, len(cells))
	for _, polygon := range polygons {
		assert.NotEmpty(t, polygon.Attributes["points"])
		assert.Contains(t, polygon.Attributes["style"], "fill:rgb(")
	}
	assert.Len(t, root.FindAll("circle"), len(cells))
}

func TestWriteSVG_Errors(t *testing.T) {
	cell, _ := unitSquareCell()
	var buf bytes.Buffer
	assert.Error(t, WriteSVG(&buf, []*VorCell{cell}, 0))
	assert.Error(t, WriteSVG(&buf, nil, 10))
	assert.Zero(t, buf.Len())
}
