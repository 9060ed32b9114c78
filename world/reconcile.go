package world

import (
	"github.com/osuushi/tilevoronoi/internal"
	"go.uber.org/zap/zapcore"
)

// Replacement of fresh objects by the published objects they duplicate.
// Anything not in a map stands for itself.
type remap struct {
	cells map[*internal.VorCell]*internal.VorCell
	verts map[*internal.VorPoint]*internal.VorPoint
	edges map[*internal.VorEdge]*internal.VorEdge
}

func newRemap() *remap {
	return &remap{
		cells: make(map[*internal.VorCell]*internal.VorCell),
		verts: make(map[*internal.VorPoint]*internal.VorPoint),
		edges: make(map[*internal.VorEdge]*internal.VorEdge),
	}
}

func (r *remap) cell(c *internal.VorCell) *internal.VorCell {
	if canonical, ok := r.cells[c]; ok {
		return canonical
	}
	return c
}

func (r *remap) vert(v *internal.VorPoint) *internal.VorPoint {
	if canonical, ok := r.verts[v]; ok {
		return canonical
	}
	return v
}

func (r *remap) edge(e *internal.VorEdge) *internal.VorEdge {
	if canonical, ok := r.edges[e]; ok {
		return canonical
	}
	return e
}

type stitchStats struct {
	Cells, Verts, Edges int
	// Published edges that gained their second cell
	Filled int
	// Published edges that already had two other cells
	Conflicts int
}

func (s stitchStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("cells", s.Cells)
	enc.AddInt("verts", s.Verts)
	enc.AddInt("edges", s.Edges)
	enc.AddInt("filled", s.Filled)
	enc.AddInt("conflicts", s.Conflicts)
	return nil
}

// The graph objects reachable from a tile's fresh cells, split into the ones
// that survive and the ones being replaced. Each list is in discovery order.
type reachable struct {
	cells    []*internal.VorCell
	verts    []*internal.VorPoint
	edges    []*internal.VorEdge
	dupVerts []*internal.VorPoint
	dupEdges []*internal.VorEdge
}

func (r *remap) walk(local []*internal.VorCell) *reachable {
	found := &reachable{}
	seenVerts := make(map[*internal.VorPoint]struct{})
	seenEdges := make(map[*internal.VorEdge]struct{})
	addEdge := func(e *internal.VorEdge) {
		if _, ok := seenEdges[e]; ok {
			return
		}
		seenEdges[e] = struct{}{}
		if _, dup := r.edges[e]; dup {
			found.dupEdges = append(found.dupEdges, e)
		} else {
			found.edges = append(found.edges, e)
		}
	}
	for _, cell := range local {
		if _, dup := r.cells[cell]; !dup {
			found.cells = append(found.cells, cell)
		}
		for _, v := range cell.Verts {
			if _, ok := seenVerts[v]; !ok {
				seenVerts[v] = struct{}{}
				if _, dup := r.verts[v]; dup {
					found.dupVerts = append(found.dupVerts, v)
				} else {
					found.verts = append(found.verts, v)
				}
			}
			for _, e := range v.Edges {
				addEdge(e)
			}
		}
		for _, e := range cell.Edges {
			addEdge(e)
		}
	}
	return found
}

// Apply the remapping in one pass, so that every surviving object references
// only canonical objects, and published objects gain links to the surviving
// new ones. Returns the canonical version of each local cell, in order and
// without repeats.
func (r *remap) reconcile(local []*internal.VorCell) ([]*internal.VorCell, stitchStats) {
	stats := stitchStats{Cells: len(r.cells), Verts: len(r.verts), Edges: len(r.edges)}
	found := r.walk(local)

	// Published vertices pick up the new edges meeting them
	for _, old := range found.dupVerts {
		canonical := r.verts[old]
		for _, e := range old.Edges {
			e = r.edge(e)
			if !canonical.HasEdge(e) {
				canonical.Edges = append(canonical.Edges, e)
			}
		}
	}

	// Published edges that were on the border of their tile pick up the cell
	// across the border
	for _, old := range found.dupEdges {
		canonical := r.edges[old]
		for _, c := range old.Cells {
			if c == nil {
				continue
			}
			c = r.cell(c)
			if canonical.HasCell(c) {
				continue
			}
			if canonical.Cells[1] != nil {
				stats.Conflicts++
				continue
			}
			canonical.AddCell(c)
			stats.Filled++
		}
	}

	for _, cell := range found.cells {
		for i, v := range cell.Verts {
			cell.Verts[i] = r.vert(v)
		}
		for i, e := range cell.Edges {
			cell.Edges[i] = r.edge(e)
		}
	}

	for _, e := range found.edges {
		e.A = r.vert(e.A)
		e.B = r.vert(e.B)
		for i, c := range e.Cells {
			if c != nil {
				e.Cells[i] = r.cell(c)
			}
		}
	}

	for _, v := range found.verts {
		edges := make([]*internal.VorEdge, 0, len(v.Edges))
		for _, e := range v.Edges {
			e = r.edge(e)
			if !containsEdge(edges, e) {
				edges = append(edges, e)
			}
		}
		v.Edges = edges
	}

	result := make([]*internal.VorCell, 0, len(local))
	seen := make(map[*internal.VorCell]struct{}, len(local))
	for _, cell := range local {
		cell = r.cell(cell)
		if _, ok := seen[cell]; ok {
			continue
		}
		seen[cell] = struct{}{}
		result = append(result, cell)
	}
	return result, stats
}

func containsEdge(edges []*internal.VorEdge, edge *internal.VorEdge) bool {
	for _, e := range edges {
		if e == edge {
			return true
		}
	}
	return false
}
