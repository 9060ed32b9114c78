package internal

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/tilevoronoi/dbg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

// Padding around the diagram, in pixels
const dbgDrawPadding = 20

type DrawOptions struct {
	// Pixels per world unit
	Scale float64
	// World area to draw. If empty, the bounds of the cells are used.
	Frame Bounds
	// Draw the name of each cell at its centroid
	Labels bool
	// Draw the unit tile grid
	Grid bool
}

func DefaultDrawOptions() DrawOptions {
	return DrawOptions{Scale: 200, Frame: BoundsOf(), Grid: true}
}

// Draw cells into an image. Each cell is filled with its debug colour, and its
// centroid and site are marked.
func RenderImage(cells []*VorCell, opts DrawOptions) (image.Image, error) {
	frame := opts.Frame
	if frame.IsEmpty() {
		for _, cell := range cells {
			frame = Bounds{frame.Union(cell.Bounds().Rect)}
		}
	}
	if frame.IsEmpty() {
		return nil, errors.New("nothing to draw")
	}
	if opts.Scale <= 0 {
		return nil, errors.Errorf("invalid scale %g", opts.Scale)
	}
	lo, hi := frame.Min(), frame.Max()

	width := int(opts.Scale*(hi.X-lo.X)) + dbgDrawPadding*2
	height := int(opts.Scale*(hi.Y-lo.Y)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(opts.Scale, opts.Scale)
	// Translate to min
	c.Translate(-lo.X, -lo.Y)

	c.SetLineWidth(1.5)
	for _, cell := range cells {
		if len(cell.Verts) < 3 {
			continue
		}
		c.MoveTo(cell.Verts[0].X, cell.Verts[0].Y)
		for _, v := range cell.Verts[1:] {
			c.LineTo(v.X, v.Y)
		}
		c.ClosePath()
		r, g, b := dbg.Color(cell)
		c.SetRGBA255(int(r), int(g), int(b), 160)
		c.Fill()
	}

	// Edges go on after all of the fills, so no fill covers a neighbor's
	// boundary.
	c.SetRGB(1, 1, 1)
	for _, cell := range cells {
		for _, edge := range cell.Edges {
			c.MoveTo(edge.A.X, edge.A.Y)
			c.LineTo(edge.B.X, edge.B.Y)
		}
	}
	c.Stroke()

	dotRadius := 3 / opts.Scale
	for _, cell := range cells {
		centroid := cell.Centroid()
		c.DrawCircle(centroid.X, centroid.Y, dotRadius)
		c.SetRGB(1, 1, 0)
		c.Fill()
		c.DrawCircle(cell.Site.X, cell.Site.Y, dotRadius/2)
		c.SetRGB(1, 0, 0)
		c.Fill()
	}

	if opts.Grid {
		c.SetRGBA(0, 1, 1, 0.6)
		c.SetLineWidth(1)
		for x := math.Ceil(lo.X); x <= hi.X; x++ {
			c.MoveTo(x, lo.Y)
			c.LineTo(x, hi.Y)
		}
		for y := math.Ceil(lo.Y); y <= hi.Y; y++ {
			c.MoveTo(lo.X, y)
			c.LineTo(hi.X, y)
		}
		c.Stroke()
	}

	if opts.Labels {
		if err := drawLabels(c, cells); err != nil {
			return nil, err
		}
	}
	return c.Image(), nil
}

func drawLabels(c *gg.Context, cells []*VorCell) error {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return errors.Wrap(err, "parsing label font")
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 10})
	defer face.Close()

	c.SetRGB(1, 1, 1)
	for _, cell := range cells {
		centroid := cell.Centroid()
		// We have to go back to identity to draw the text, so get the point in
		// native coordinates
		x, y := c.TransformPoint(centroid.X, centroid.Y)
		c.Push()
		c.Identity()
		c.SetFontFace(face)
		c.DrawStringAnchored(dbg.Name(cell), x, y-8, 0.5, 0.5)
		c.Pop()
	}
	return nil
}

func RenderPNG(w io.Writer, cells []*VorCell, opts DrawOptions) error {
	img, err := RenderImage(cells, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(gg.NewContextForImage(img).EncodePNG(w), "encoding png")
}

// Helper to draw and print cells in the terminal (iTerm only) for debugging.
func dbgDraw(cells []*VorCell, scale float64) {
	opts := DefaultDrawOptions()
	opts.Scale = scale
	opts.Labels = true
	img, err := RenderImage(cells, opts)
	if err != nil {
		return
	}
	const path = "/tmp/voronoi_cells.png"
	if err := gg.SavePNG(path, img); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
