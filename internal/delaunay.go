package internal

import (
	"go.uber.org/zap"
)

// Incremental Delaunay triangulation by Bowyer-Watson insertion. Every site is
// inserted into a triangulation seeded by a single synthetic triangle that
// encloses the whole bounding rectangle. For each site, the triangles whose
// circumcircle contains it are evicted, and the resulting star-shaped cavity
// is refilled by joining its boundary to the new site.
//
// The synthetic vertices stay in the graph. Their triangles are real triangles
// as far as the graph is concerned, which is what makes the dual cells of
// sites near the edge of the bounds closed (if distorted).

type Triangulation struct {
	Graph *Graph
	// Inserted sites, in insertion order. Skipped sites are not included.
	Sites []PointID

	super   [3]PointID
	skipped []Point
	siteIdx *Index[PointID]
	logger  *zap.Logger
	// Used to vet the triangles that would refill a cavity
	circumcircle func(a, b, c Point) (Point, float64, bool)
}

type TriangulateOption func(*Triangulation)

func WithLogger(logger *zap.Logger) TriangulateOption {
	return func(t *Triangulation) {
		t.logger = logger
	}
}

// Triangulate a set of sites which must lie inside the given bounds. Sites are
// inserted in order, so the result is deterministic for a given input slice.
func Triangulate(sites []Point, bounds Bounds, opts ...TriangulateOption) *Triangulation {
	t := &Triangulation{
		Graph:   NewGraph(),
		Sites:   make([]PointID, 0, len(sites)),
		siteIdx: NewIndex[PointID](),
		logger:  zap.NewNop(),

		circumcircle: Circumcircle,
	}
	for _, opt := range opts {
		opt(t)
	}

	for i, corner := range bounds.SuperTriangle() {
		t.super[i] = t.Graph.AddPoint(corner)
	}
	if _, ok := t.Graph.AddTriangle(t.super[0], t.super[1], t.super[2]); !ok {
		Fatalf("degenerate bounds %v", bounds)
	}

	for _, site := range sites {
		if !bounds.ContainsPoint(site.R2()) {
			Fatalf("site %v is outside of triangulation bounds %v", site, bounds)
		}
		t.insert(site)
	}
	return t
}

func (t *Triangulation) IsSuper(id PointID) bool {
	return id == t.super[0] || id == t.super[1] || id == t.super[2]
}

// Sites that were not inserted because they would have produced a degenerate
// triangle (including duplicates of an earlier site).
func (t *Triangulation) Skipped() []Point {
	return t.skipped
}

func (t *Triangulation) insert(site Point) {
	if _, ok := t.siteIdx.Find(site); ok {
		t.skip(site, "duplicate site")
		return
	}

	g := t.Graph
	badTriangles := t.findInvalidatedTriangles(site)
	if len(badTriangles) == 0 {
		// Every point inside the synthetic triangle is inside at least the
		// circumcircle of the triangle containing it, so this only happens at the
		// limit of float precision.
		t.skip(site, "no invalidated triangles")
		return
	}
	hole := t.makePolygonHole(badTriangles)

	// Check the refill before touching the graph, so that a degenerate site can
	// be skipped cleanly.
	for _, edge := range hole {
		a, b := g.Point(edge[0]).Point, g.Point(edge[1]).Point
		if _, _, ok := t.circumcircle(a, b, site); !ok {
			t.skip(site, "degenerate circumcircle")
			return
		}
	}

	id := g.AddPoint(site)
	for _, triangle := range badTriangles {
		g.RemoveTriangle(triangle)
	}
	for _, edge := range hole {
		if _, ok := g.AddTriangle(edge[0], edge[1], id); !ok {
			Fatalf("refilling cavity of %v produced a degenerate triangle", site)
		}
	}
	t.Sites = append(t.Sites, id)
	t.siteIdx.Insert(site, id)
}

func (t *Triangulation) skip(site Point, reason string) {
	t.logger.Debug("skipping site",
		zap.Float64("x", site.X),
		zap.Float64("y", site.Y),
		zap.String("reason", reason),
	)
	t.skipped = append(t.skipped, site)
}

func (t *Triangulation) findInvalidatedTriangles(p Point) []TriangleID {
	var bad []TriangleID
	for _, id := range t.Graph.Triangles() {
		if t.Graph.Triangle(id).CircumcircleContains(p) {
			bad = append(bad, id)
		}
	}
	return bad
}

// The boundary of the cavity left by the bad triangles: every edge owned by
// exactly one of them. Edges shared by two bad triangles are interior to the
// cavity and dropped. Returned as endpoint pairs rather than edge handles, since
// evicting the bad triangles can destroy boundary edges on the outer hull.
func (t *Triangulation) makePolygonHole(badTriangles []TriangleID) [][2]PointID {
	counts := make(map[EdgeID]int, len(badTriangles)*3)
	for _, id := range badTriangles {
		for _, edgeID := range t.Graph.Triangle(id).Edges {
			counts[edgeID]++
		}
	}

	var hole [][2]PointID
	for _, id := range badTriangles {
		for _, edgeID := range t.Graph.Triangle(id).Edges {
			if counts[edgeID] == 1 {
				edge := t.Graph.Edge(edgeID)
				hole = append(hole, [2]PointID{edge.A, edge.B})
			}
		}
	}
	return hole
}

func (tri *Triangle) CircumcircleContains(p Point) bool {
	dx := p.X - tri.Center.X
	dy := p.Y - tri.Center.Y
	return dx*dx+dy*dy < tri.Radius2
}
