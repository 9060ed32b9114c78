package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/tilevoronoi/internal"
	"github.com/osuushi/tilevoronoi/world"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("tilevoronoi", "Generate and draw tiles of an infinite Voronoi diagram.")
	verbose    = app.Flag("verbose", "Log tile resolution to stderr.").Short('v').Bool()
	configPath = app.Flag("config", "YAML file with map parameters.").ExistingFile()

	render      = app.Command("render", "Draw the cells owned by a range of tiles.")
	renderX1    = render.Flag("x1", "First tile column.").Default("0").Int()
	renderY1    = render.Flag("y1", "First tile row.").Default("0").Int()
	renderX2    = render.Flag("x2", "Last tile column.").Default("2").Int()
	renderY2    = render.Flag("y2", "Last tile row.").Default("2").Int()
	renderOut   = render.Flag("out", "Output file.").Short('o').Default("tiles.png").String()
	renderFmt   = render.Flag("format", "Output format.").Default("png").Enum("png", "svg")
	renderScale = render.Flag("scale", "Pixels per tile.").Default("200").Float64()
	renderLabel = render.Flag("labels", "Label each cell with its debug name.").Bool()

	sites      = app.Command("sites", "Diagram the sites on stdin and write the cells as SVG.")
	sitesOut   = sites.Flag("out", "Output file.").Short('o').Default("sites.svg").String()
	sitesScale = sites.Flag("scale", "Pixels per unit.").Default("100").Float64()
)

// Demo of the tiled diagram. The render command draws a block of tiles from a
// map. The sites command reads newline separated points in the form "x y" from
// stdin, and draws the complete cells of their (untiled) diagram.
func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		app.FatalIfError(err, "creating logger")
	}
	defer logger.Sync()

	switch command {
	case render.FullCommand():
		app.FatalIfError(runRender(logger), "render")
	case sites.FullCommand():
		app.FatalIfError(runSites(logger), "sites")
	}
}

func loadConfig() (world.Config, error) {
	if *configPath == "" {
		return world.DefaultConfig(), nil
	}
	f, err := os.Open(*configPath)
	if err != nil {
		return world.Config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	return world.LoadConfig(f)
}

func runRender(logger *zap.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := world.New(cfg, world.WithLogger(logger))
	if err != nil {
		return err
	}
	cells, err := m.CellsInRegion(*renderX1, *renderY1, *renderX2, *renderY2)
	if err != nil {
		return err
	}
	logger.Info("generated cells", zap.Int("cells", len(cells)), zap.Int("tiles", len(m.CachedTiles())))

	out, err := os.Create(*renderOut)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer out.Close()

	if *renderFmt == "svg" {
		return internal.WriteSVG(out, cells, *renderScale)
	}
	opts := internal.DefaultDrawOptions()
	opts.Scale = *renderScale
	opts.Labels = *renderLabel
	opts.Frame = internal.NewBounds(
		float64(*renderX1), float64(*renderY1),
		float64(*renderX2+1), float64(*renderY2+1),
	)
	return internal.RenderPNG(out, cells, opts)
}

func runSites(logger *zap.Logger) (err error) {
	defer func() {
		if recovered := internal.HandlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	points, err := readSites(os.Stdin)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return errors.New("no sites on stdin")
	}
	triangulation := internal.Triangulate(points, internal.BoundsOf(points...), internal.WithLogger(logger))
	diagram := internal.Extract(triangulation)
	logger.Info("diagrammed sites",
		zap.Int("sites", len(points)),
		zap.Int("skipped", len(triangulation.Skipped())),
		zap.Int("cells", len(diagram.Cells)),
	)

	out, err := os.Create(*sitesOut)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer out.Close()
	return internal.WriteSVG(out, diagram.Cells, *sitesScale)
}

func readSites(in io.Reader) ([]internal.Point, error) {
	var points []internal.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		// Blank lines and comments are ignored
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.Wrap(scanner.Err(), "reading sites")
}

func parsePoint(line string) (internal.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return internal.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrap(err, "parsing y")
	}
	return internal.Point{X: x, Y: y}, nil
}
