package world

import (
	"testing"

	"github.com/osuushi/tilevoronoi/internal"
	"github.com/stretchr/testify/assert"
)

func TestSeedPoints(t *testing.T) {
	coord := TileCoord{-3, 7}
	points := seedPoints(coord, 5)
	assert.Len(t, points, 5)
	for _, p := range points {
		assert.True(t, coord.Contains(p), "%v outside %v", p, coord)
	}

	// Seeds depend only on the coordinates
	assert.Equal(t, points, seedPoints(coord, 5))
	assert.NotEqual(t, points, seedPoints(TileCoord{7, -3}, 5))

	// A longer stream starts with the shorter one
	assert.Equal(t, points, seedPoints(coord, 8)[:5])
}

func TestSeedKey(t *testing.T) {
	assert.Equal(t, "a-3,7", seedKey(TileCoord{-3, 7}))
	assert.NotEqual(t, seedKey(TileCoord{1, 23}), seedKey(TileCoord{12, 3}))
}

func TestOverhang(t *testing.T) {
	coord := TileCoord{2, -1}
	assert.Equal(t, 0, overhang(coord, coord.Square()))
	assert.Equal(t, 0, overhang(coord, internal.NewBounds(2.2, -0.8, 2.7, -0.1)))
	assert.Equal(t, 1, overhang(coord, internal.NewBounds(1.6, -1, 3, 0)))
	assert.Equal(t, 1, overhang(coord, internal.NewBounds(2, -1, 3, 0.4)))
	assert.Equal(t, 2, overhang(coord, internal.NewBounds(2, -2.5, 3, 0)))
}

func TestTileCoordContains(t *testing.T) {
	coord := TileCoord{1, 1}
	assert.True(t, coord.Contains(internal.Point{X: 1, Y: 1}))
	assert.True(t, coord.Contains(internal.Point{X: 1.5, Y: 1.999}))
	assert.False(t, coord.Contains(internal.Point{X: 2, Y: 1.5}))
	assert.False(t, coord.Contains(internal.Point{X: 1.5, Y: 2}))

	// The closed square still touches its neighbors
	assert.True(t, coord.Square().Touches(TileCoord{2, 2}.Square()))
	assert.False(t, coord.Square().Touches(TileCoord{3, 1}.Square()))
}
