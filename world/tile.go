package world

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"

	"github.com/osuushi/tilevoronoi/internal"
)

// TileCoord identifies a unit tile of the world grid. Tile (x, y) covers
// [x, x+1) × [y, y+1).
type TileCoord struct {
	X, Y int
}

func (c TileCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Whether the tile owns a point. Ownership is half open, so that every point
// has exactly one owner.
func (c TileCoord) Contains(p internal.Point) bool {
	return p.InArea(float64(c.X), float64(c.Y), float64(c.X+1), float64(c.Y+1))
}

// The closed square covered by the tile, for overlap tests.
func (c TileCoord) Square() internal.Bounds {
	return internal.NewBounds(float64(c.X), float64(c.Y), float64(c.X+1), float64(c.Y+1))
}

// Tile is the cached state of one world tile. Tiles are created on first
// access and live as long as their map.
type Tile struct {
	Coord TileCoord
	// Seed points by relaxation level. Level 0 is the raw samples, and level k
	// holds the centroids of level k-1 cells that fall in this tile. Levels are
	// only ever appended.
	Generations [][]internal.Point
	// Cells whose centroid lies in the tile, once resolved
	Owned []*internal.VorCell
	// Every cell touching the tile, once resolved. This is what neighboring
	// tiles stitch against.
	Overlapping []*internal.VorCell

	resolved bool
	// Bounds of the overlapping cells' vertices
	extent internal.Bounds
}

func newTile(coord TileCoord, pointsPerTile int) *Tile {
	return &Tile{
		Coord:       coord,
		Generations: [][]internal.Point{seedPoints(coord, pointsPerTile)},
	}
}

func (t *Tile) Resolved() bool {
	return t.resolved
}

// The seed stream for a tile is keyed by a string encoding of its coordinates,
// so it doesn't depend on the order that tiles are visited in.
func seedKey(coord TileCoord) string {
	return "a" + strconv.Itoa(coord.X) + "," + strconv.Itoa(coord.Y)
}

func tileRNG(coord TileCoord) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(seedKey(coord)))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func seedPoints(coord TileCoord, n int) []internal.Point {
	rng := tileRNG(coord)
	points := make([]internal.Point, n)
	for i := range points {
		x := float64(coord.X) + rng.Float64()
		y := float64(coord.Y) + rng.Float64()
		points[i] = internal.Point{X: x, Y: y}
	}
	return points
}
