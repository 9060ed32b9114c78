package world

import (
	"sort"
	"sync"

	"github.com/osuushi/tilevoronoi/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrInvalidRegion = errors.New("invalid region")

// Map is an infinite Voronoi diagram, computed lazily one tile at a time. The
// result for any tile depends only on the config and the tile's coordinates,
// not on which tiles were requested before it, and cells that straddle tile
// borders are shared between the tiles they touch.
//
// A Map is safe for concurrent use. Tiles that are already resolved are read
// concurrently, and resolution is serialized. Returned cells are not
// snapshots: resolving a tile appends to the Edges of published vertices and
// fills the empty Cells slot of published edges, so the graph reachable from
// cells returned earlier changes under a concurrent resolve. Walk it inside
// View when other goroutines may be resolving tiles.
type Map struct {
	cfg    Config
	logger *zap.Logger

	mu         sync.RWMutex
	tiles      map[TileCoord]*Tile
	inProgress map[levelKey]struct{}
	// The furthest any resolved tile's overlapping cells reach beyond its
	// square, in tiles
	reach int
}

type Option func(*Map)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Map) {
		m.logger = logger
	}
}

func New(cfg Config, opts ...Option) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Map{
		cfg:        cfg,
		logger:     zap.NewNop(),
		tiles:      make(map[TileCoord]*Tile),
		inProgress: make(map[levelKey]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Map) Config() Config {
	return m.cfg
}

// The cells owned by tile (x, y): every cell whose centroid lies in
// [x, x+1) × [y, y+1). Repeated calls return the same cell objects.
func (m *Map) GetCells(x, y int) (cells []*internal.VorCell, err error) {
	coord := TileCoord{x, y}
	m.mu.RLock()
	if tile, ok := m.tiles[coord]; ok && tile.resolved {
		cells = tile.Owned
		m.mu.RUnlock()
		return cells, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		if err = m.recovered(recover()); err != nil {
			cells = nil
		}
	}()
	return m.resolve(coord).Owned, nil
}

// The cells owned by every tile in the inclusive tile range (x1, y1)-(x2, y2),
// tile by tile, column by column.
func (m *Map) CellsInRegion(x1, y1, x2, y2 int) (cells []*internal.VorCell, err error) {
	if err := validateRegion(x1, y1, x2, y2); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		if err = m.recovered(recover()); err != nil {
			cells = nil
		}
	}()
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			cells = append(cells, m.resolve(TileCoord{x, y}).Owned...)
		}
	}
	return cells, nil
}

// The seed points of a relaxation level for every tile in the inclusive tile
// range (x1, y1)-(x2, y2). Level 0 is the raw samples.
func (m *Map) SeedsInRegion(x1, y1, x2, y2, level int) (points []internal.Point, err error) {
	if err := validateRegion(x1, y1, x2, y2); err != nil {
		return nil, err
	}
	if level < 0 || level > m.cfg.Relaxations {
		return nil, errors.Errorf("relaxation level %d out of range [0, %d]", level, m.cfg.Relaxations)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		if err = m.recovered(recover()); err != nil {
			points = nil
		}
	}()
	return m.pointsWithRelaxations(x1, y1, x2, y2, level), nil
}

// Run fn with resolution blocked, so that the cell graph can't change while fn
// walks it. fn must not call back into the map.
func (m *Map) View(fn func()) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn()
}

// The cached state of a tile, if it has been touched.
func (m *Map) Tile(x, y int) (*Tile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tile, ok := m.tiles[TileCoord{x, y}]
	return tile, ok
}

// Coordinates of every cached tile, resolved or not, sorted by x then y.
func (m *Map) CachedTiles() []TileCoord {
	m.mu.RLock()
	coords := make([]TileCoord, 0, len(m.tiles))
	for coord := range m.tiles {
		coords = append(coords, coord)
	}
	m.mu.RUnlock()
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].X != coords[j].X {
			return coords[i].X < coords[j].X
		}
		return coords[i].Y < coords[j].Y
	})
	return coords
}

func validateRegion(x1, y1, x2, y2 int) error {
	if x2 < x1 || y2 < y1 {
		return errors.Wrapf(ErrInvalidRegion, "(%d, %d)-(%d, %d)", x1, y1, x2, y2)
	}
	return nil
}

// Convert a recovered TilesError panic into an error. Must be called while
// holding the write lock. Any partial work is abandoned, so the in-progress
// markers are reset.
func (m *Map) recovered(r interface{}) error {
	err := internal.HandlePanicRecover(r)
	if err != nil {
		m.inProgress = make(map[levelKey]struct{})
		m.logger.Error("tile resolution failed", zap.Error(err))
	}
	return err
}

// The tile at coord, created with its raw seeds if it's new.
func (m *Map) tile(coord TileCoord) *Tile {
	tile, ok := m.tiles[coord]
	if !ok {
		tile = newTile(coord, m.cfg.PointsPerTile)
		m.tiles[coord] = tile
	}
	return tile
}

// The tile at coord, which must already be cached.
func (m *Map) existingTile(coord TileCoord) *Tile {
	tile, ok := m.tiles[coord]
	if !ok {
		internal.Fatalf("tile %v is missing", coord)
	}
	return tile
}
