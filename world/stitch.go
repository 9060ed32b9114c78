package world

import (
	"math"

	"github.com/osuushi/tilevoronoi/internal"
	"go.uber.org/zap"
)

// Each tile is diagrammed independently, so a cell that straddles a tile
// boundary is built once per tile it touches. Stitching makes those copies
// collapse into one object: when a tile is resolved, every cell, vertex and
// edge that matches one already published by another tile is replaced by the
// published object, and the new tile's remaining objects are linked into the
// published graph.

// Spatial lookup over the objects already published by a tile's neighbors.
type published struct {
	cells *internal.Index[*internal.VorCell]
	verts *internal.Index[*internal.VorPoint]
	edges *internal.Index[*internal.VorEdge]
}

// Index every published cell that could share a vertex with the local cells:
// the overlapping cells of every resolved tile whose extent touches theirs.
// This is wider than the eight neighbors, since two resolved tiles with an
// unresolved tile between them can both have published cells reaching into
// it.
func (m *Map) publishedNear(local []*internal.VorCell) *published {
	if len(local) == 0 {
		return indexPublished(nil)
	}
	extent := extentOf(local)
	// Positions that match within tolerance may sit just outside the extent
	search := internal.Bounds{Rect: extent.ExpandedByMargin(internal.Tolerance)}

	var cells []*internal.VorCell
	seen := make(map[*internal.VorCell]struct{})
	lo, hi := search.Min(), search.Max()
	for x := int(math.Floor(lo.X)) - m.reach - 1; x <= int(math.Floor(hi.X))+m.reach; x++ {
		for y := int(math.Floor(lo.Y)) - m.reach - 1; y <= int(math.Floor(hi.Y))+m.reach; y++ {
			tile, ok := m.tiles[TileCoord{x, y}]
			if !ok || !tile.resolved || !tile.extent.Touches(search) {
				continue
			}
			for _, cell := range tile.Overlapping {
				// Cells shared between tiles are the same object, so only index
				// them once
				if _, ok := seen[cell]; !ok {
					seen[cell] = struct{}{}
					cells = append(cells, cell)
				}
			}
		}
	}
	return indexPublished(cells)
}

// The bounds of every vertex of the cells.
func extentOf(cells []*internal.VorCell) internal.Bounds {
	var points []internal.Point
	for _, cell := range cells {
		for _, v := range cell.Verts {
			points = append(points, v.Point)
		}
	}
	return internal.BoundsOf(points...)
}

// How many whole tiles the extent reaches beyond the tile's square.
func overhang(coord TileCoord, extent internal.Bounds) int {
	lo, hi := extent.Min(), extent.Max()
	beyond := math.Max(
		math.Max(float64(coord.X)-lo.X, hi.X-float64(coord.X+1)),
		math.Max(float64(coord.Y)-lo.Y, hi.Y-float64(coord.Y+1)),
	)
	if beyond <= 0 {
		return 0
	}
	return int(math.Ceil(beyond))
}

func indexPublished(cells []*internal.VorCell) *published {
	p := &published{
		cells: internal.NewIndex[*internal.VorCell](),
		verts: internal.NewIndex[*internal.VorPoint](),
		edges: internal.NewIndex[*internal.VorEdge](),
	}
	seenVerts := make(map[*internal.VorPoint]struct{})
	seenEdges := make(map[*internal.VorEdge]struct{})
	for _, cell := range cells {
		p.cells.Insert(cell.Centroid(), cell)
		for _, vert := range cell.Verts {
			if _, ok := seenVerts[vert]; !ok {
				seenVerts[vert] = struct{}{}
				p.verts.Insert(vert.Point, vert)
			}
		}
		for _, edge := range cell.Edges {
			if _, ok := seenEdges[edge]; !ok {
				seenEdges[edge] = struct{}{}
				p.edges.Insert(edge.Midpoint(), edge)
			}
		}
	}
	return p
}

// The published edge with the same endpoints as edge, if any.
func (p *published) findEdge(edge *internal.VorEdge) *internal.VorEdge {
	for _, candidate := range p.edges.FindAll(edge.Midpoint()) {
		if candidate.Joins(edge.A.Point, edge.B.Point) {
			return candidate
		}
	}
	return nil
}

// Build the remapping from a tile's fresh cells to the published objects they
// duplicate. Vertices and edges are matched for every cell, including cells
// that are new, since a new cell can still share a boundary with a published
// one.
func (p *published) match(local []*internal.VorCell) *remap {
	r := newRemap()
	for _, cell := range local {
		if canonical, ok := p.cells.Find(cell.Centroid()); ok {
			r.cells[cell] = canonical
		}
		for _, vert := range cell.Verts {
			if _, ok := r.verts[vert]; ok {
				continue
			}
			if canonical, ok := p.verts.Find(vert.Point); ok {
				r.verts[vert] = canonical
			}
		}
		for _, edge := range cell.Edges {
			if _, ok := r.edges[edge]; ok {
				continue
			}
			if canonical := p.findEdge(edge); canonical != nil {
				r.edges[edge] = canonical
			}
		}
	}
	return r
}

// Cut the links from kept cells to cells that were filtered out. Those cells
// are never published, so nothing may reach them. Edges left with no cell at
// all are dropped from their vertices.
func detachUnpublished(cells []*internal.VorCell) {
	kept := make(map[*internal.VorCell]struct{}, len(cells))
	for _, cell := range cells {
		kept[cell] = struct{}{}
	}
	for _, cell := range cells {
		for _, vert := range cell.Verts {
			edges := vert.Edges[:0]
			for _, edge := range vert.Edges {
				for _, other := range edge.Cells {
					if other == nil {
						continue
					}
					if _, ok := kept[other]; !ok {
						edge.RemoveCell(other)
					}
				}
				if edge.Cells[0] != nil {
					edges = append(edges, edge)
				}
			}
			vert.Edges = edges
		}
	}
}

// Diagram a tile, stitch it into its resolved neighbors, and store the result.
func (m *Map) resolve(coord TileCoord) *Tile {
	if tile, ok := m.tiles[coord]; ok && tile.resolved {
		return tile
	}
	m.logger.Debug("resolving tile", zap.Stringer("tile", coord))

	local := m.cellsWithRelaxations(coord, m.cfg.Relaxations)
	detachUnpublished(local)
	r := m.publishedNear(local).match(local)
	overlapping, stats := r.reconcile(local)

	tile := m.existingTile(coord)
	tile.Overlapping = overlapping
	tile.Owned = nil
	for _, cell := range overlapping {
		if coord.Contains(cell.Centroid()) {
			tile.Owned = append(tile.Owned, cell)
		}
	}
	tile.resolved = true
	if len(overlapping) > 0 {
		tile.extent = extentOf(overlapping)
		if reach := overhang(coord, tile.extent); reach > m.reach {
			m.reach = reach
		}
	}

	m.logger.Debug("resolved tile",
		zap.Stringer("tile", coord),
		zap.Int("owned", len(tile.Owned)),
		zap.Int("overlapping", len(tile.Overlapping)),
		zap.Object("stitch", stats),
	)
	if stats.Conflicts > 0 {
		m.logger.Warn("edges with conflicting cells while stitching",
			zap.Stringer("tile", coord),
			zap.Int("conflicts", stats.Conflicts),
		)
	}
	return tile
}
