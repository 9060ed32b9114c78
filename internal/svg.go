package internal

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/tilevoronoi/dbg"
	"github.com/pkg/errors"
)

const (
	svgPadding      = 10
	svgEdgeStyle    = "stroke:rgb(40,40,40);stroke-width:1;stroke-linejoin:round"
	svgCentroidFill = "fill:rgb(0,0,0)"
)

// Write cells as an SVG document, one polygon per cell (in the order given)
// followed by one circle per centroid. The y axis is flipped so that the image
// matches the world orientation.
func WriteSVG(w io.Writer, cells []*VorCell, scale float64) error {
	if scale <= 0 {
		return errors.Errorf("invalid scale %g", scale)
	}
	frame := BoundsOf()
	for _, cell := range cells {
		frame = Bounds{frame.Union(cell.Bounds().Rect)}
	}
	if frame.IsEmpty() {
		return errors.New("nothing to draw")
	}
	lo, hi := frame.Min(), frame.Max()
	toScreen := func(p Point) (int, int) {
		return int((p.X-lo.X)*scale) + svgPadding, int((hi.Y-p.Y)*scale) + svgPadding
	}

	width := int((hi.X-lo.X)*scale) + svgPadding*2
	height := int((hi.Y-lo.Y)*scale) + svgPadding*2
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	xs := make([]int, 0)
	ys := make([]int, 0)
	for _, cell := range cells {
		xs = xs[:0]
		ys = ys[:0]
		for _, v := range cell.Verts {
			x, y := toScreen(v.Point)
			xs = append(xs, x)
			ys = append(ys, y)
		}
		r, g, b := dbg.Color(cell)
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:rgb(%d,%d,%d);%s", r, g, b, svgEdgeStyle))
	}
	for _, cell := range cells {
		x, y := toScreen(cell.Centroid())
		canvas.Circle(x, y, 2, svgCentroidFill)
	}
	canvas.End()
	return nil
}
