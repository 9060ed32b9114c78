package world

import (
	"github.com/osuushi/tilevoronoi/internal"
	"go.uber.org/zap"
)

// A relaxation level of one tile, used to detect recursion cycles.
type levelKey struct {
	coord TileCoord
	level int
}

// The seed points of the given relaxation level for every tile in the
// inclusive block (x1, y1)-(x2, y2). Tiles are visited column by column.
func (m *Map) pointsWithRelaxations(x1, y1, x2, y2, level int) []internal.Point {
	var points []internal.Point
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			points = append(points, m.generation(TileCoord{x, y}, level)...)
		}
	}
	return points
}

// The seed points of one tile at a relaxation level, computing and caching any
// missing levels on the way.
func (m *Map) generation(coord TileCoord, level int) []internal.Point {
	tile := m.tile(coord)
	for len(tile.Generations) <= level {
		next := len(tile.Generations)
		key := levelKey{coord, next}
		if _, ok := m.inProgress[key]; ok {
			internal.Fatalf("relaxation cycle at tile %v level %d", coord, next)
		}
		m.inProgress[key] = struct{}{}

		var points []internal.Point
		for _, cell := range m.cellsWithRelaxations(coord, next-1) {
			centroid := cell.Centroid()
			if coord.Contains(centroid) {
				points = append(points, centroid)
			}
		}
		tile.Generations = append(tile.Generations, points)
		delete(m.inProgress, key)

		m.logger.Debug("relaxed tile",
			zap.Stringer("tile", coord),
			zap.Int("level", next),
			zap.Int("points", len(points)),
		)
	}
	return tile.Generations[level]
}

// Diagram the padded neighborhood of a tile at a relaxation level, and return
// the cells whose bounding box touches the tile. Cells come back in seed order,
// and still reference the rest of the neighborhood's diagram.
func (m *Map) cellsWithRelaxations(coord TileCoord, level int) []*internal.VorCell {
	p := m.cfg.Padding
	points := m.pointsWithRelaxations(coord.X-p, coord.Y-p, coord.X+p, coord.Y+p, level)
	bounds := internal.NewBounds(
		float64(coord.X-p), float64(coord.Y-p),
		float64(coord.X+p+1), float64(coord.Y+p+1),
	)
	triangulation := internal.Triangulate(points, bounds, internal.WithLogger(m.logger))
	diagram := internal.Extract(triangulation)

	square := coord.Square()
	var cells []*internal.VorCell
	for _, cell := range diagram.Cells {
		if cell.Bounds().Touches(square) {
			cells = append(cells, cell)
		}
	}
	return cells
}
