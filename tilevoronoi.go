// An infinite, seamless Voronoi diagram for Go.
//
// This package generates a Lloyd-relaxed Voronoi diagram over the whole plane,
// one unit tile at a time and only on demand. The cells of any tile are the
// same no matter which tiles were generated before it, and a cell that
// straddles tile borders is a single shared object, so adjacent tiles fit
// together exactly.
package tilevoronoi

import (
	"github.com/osuushi/tilevoronoi/internal"
	"github.com/osuushi/tilevoronoi/world"
)

type Map = world.Map
type Config = world.Config
type Option = world.Option
type TileCoord = world.TileCoord

type Point = internal.Point
type Cell = internal.VorCell
type Edge = internal.VorEdge
type Vertex = internal.VorPoint

var (
	WithLogger       = world.WithLogger
	LoadConfig       = world.LoadConfig
	ErrInvalidRegion = world.ErrInvalidRegion
)

func DefaultConfig() Config {
	return world.DefaultConfig()
}

// Create a map with the default config.
func New(opts ...Option) *Map {
	m, err := world.New(world.DefaultConfig(), opts...)
	if err != nil {
		// The default config is always valid
		panic(err)
	}
	return m
}

func NewWithConfig(cfg Config, opts ...Option) (*Map, error) {
	return world.New(cfg, opts...)
}
