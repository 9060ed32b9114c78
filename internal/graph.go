package internal

import "math"

// The triangulation graph is an arena. Points, edges and triangles live in
// slices and refer to each other by index, so removing a triangle (and then
// whichever of its edges were orphaned) is a matter of freeing slots, and never
// leaves a dangling back reference. Edge and triangle slots are reused through
// free lists. Points are never removed.

type PointID int32
type EdgeID int32
type TriangleID int32

const NoTriangle TriangleID = -1

// Circumcircles with a determinant smaller than this are treated as degenerate.
// The determinant is four times the signed area of the triangle.
const DegenerateDeterminant = 1e-12

type TriPoint struct {
	Point
	Edges []EdgeID

	// Dual cell. Only meaningful once cellBuilt is set, since nil is also a
	// valid result (a point on the boundary of the triangulation has no cell).
	Cell      *VorCell
	cellBuilt bool
}

type TriEdge struct {
	A, B      PointID
	Triangles [2]TriangleID

	Dual      *VorEdge
	dualBuilt bool
	alive     bool
}

type Triangle struct {
	Verts [3]PointID // Counterclockwise
	Edges [3]EdgeID

	// Cached circumcircle. Every live triangle has a finite one, since
	// degenerate triangles are refused at creation.
	Center  Point
	Radius2 float64

	Dual  *VorPoint
	alive bool
}

type edgeKey struct {
	lo, hi PointID
}

func newEdgeKey(a, b PointID) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

type Graph struct {
	points    []TriPoint
	edges     []TriEdge
	triangles []Triangle

	freeEdges     []EdgeID
	freeTriangles []TriangleID

	// Interning for unordered edges
	edgeIndex map[edgeKey]EdgeID

	liveTriangles int
}

func NewGraph() *Graph {
	return &Graph{edgeIndex: make(map[edgeKey]EdgeID)}
}

func (g *Graph) AddPoint(p Point) PointID {
	g.points = append(g.points, TriPoint{Point: p})
	return PointID(len(g.points) - 1)
}

func (g *Graph) Point(id PointID) *TriPoint {
	return &g.points[id]
}

func (g *Graph) Edge(id EdgeID) *TriEdge {
	return &g.edges[id]
}

func (g *Graph) Triangle(id TriangleID) *Triangle {
	return &g.triangles[id]
}

func (g *Graph) NumPoints() int {
	return len(g.points)
}

func (g *Graph) NumTriangles() int {
	return g.liveTriangles
}

// Live triangles, in slot order.
func (g *Graph) Triangles() []TriangleID {
	result := make([]TriangleID, 0, g.liveTriangles)
	for i := range g.triangles {
		if g.triangles[i].alive {
			result = append(result, TriangleID(i))
		}
	}
	return result
}

// Live edges, in slot order.
func (g *Graph) Edges() []EdgeID {
	result := make([]EdgeID, 0, len(g.edgeIndex))
	for i := range g.edges {
		if g.edges[i].alive {
			result = append(result, EdgeID(i))
		}
	}
	return result
}

func (g *Graph) FindEdge(a, b PointID) (EdgeID, bool) {
	id, ok := g.edgeIndex[newEdgeKey(a, b)]
	return id, ok
}

// Get the edge between two points, creating and registering it with both
// endpoints if it doesn't exist yet.
func (g *Graph) InternEdge(a, b PointID) EdgeID {
	if a == b {
		Fatalf("cannot create edge from point %d to itself", a)
	}
	key := newEdgeKey(a, b)
	if id, ok := g.edgeIndex[key]; ok {
		return id
	}

	edge := TriEdge{A: a, B: b, Triangles: [2]TriangleID{NoTriangle, NoTriangle}, alive: true}
	var id EdgeID
	if n := len(g.freeEdges); n > 0 {
		id = g.freeEdges[n-1]
		g.freeEdges = g.freeEdges[:n-1]
		g.edges[id] = edge
	} else {
		g.edges = append(g.edges, edge)
		id = EdgeID(len(g.edges) - 1)
	}
	g.edgeIndex[key] = id
	g.points[a].Edges = append(g.points[a].Edges, id)
	g.points[b].Edges = append(g.points[b].Edges, id)
	return id
}

// Create a triangle from three points, interning its edges. The vertices are
// reordered to be counterclockwise if necessary. Returns false without
// modifying the graph if the triangle is degenerate.
func (g *Graph) AddTriangle(a, b, c PointID) (TriangleID, bool) {
	pa, pb, pc := g.points[a].Point, g.points[b].Point, g.points[c].Point
	center, radius2, ok := Circumcircle(pa, pb, pc)
	if !ok {
		return NoTriangle, false
	}
	if Orientation(pa, pb, pc) < 0 {
		b, c = c, b
	}

	triangle := Triangle{
		Verts:   [3]PointID{a, b, c},
		Center:  center,
		Radius2: radius2,
		alive:   true,
	}
	var id TriangleID
	if n := len(g.freeTriangles); n > 0 {
		id = g.freeTriangles[n-1]
		g.freeTriangles = g.freeTriangles[:n-1]
	} else {
		g.triangles = append(g.triangles, Triangle{})
		id = TriangleID(len(g.triangles) - 1)
	}

	triangle.Edges = [3]EdgeID{g.InternEdge(a, b), g.InternEdge(b, c), g.InternEdge(c, a)}
	g.triangles[id] = triangle
	for _, edgeID := range triangle.Edges {
		g.edges[edgeID].addTriangle(id)
	}
	g.liveTriangles++
	return id, true
}

// Remove a triangle, unregistering it from its edges. Any edge left with no
// triangles is destroyed.
func (g *Graph) RemoveTriangle(id TriangleID) {
	triangle := &g.triangles[id]
	if !triangle.alive {
		Fatalf("triangle %d removed twice", id)
	}
	for _, edgeID := range triangle.Edges {
		edge := &g.edges[edgeID]
		edge.removeTriangle(id)
		if edge.TriangleCount() == 0 {
			g.destroyEdge(edgeID)
		}
	}
	*triangle = Triangle{}
	g.freeTriangles = append(g.freeTriangles, id)
	g.liveTriangles--
}

// Does *not* handle removal of triangles, so this should only be called once the
// edge has none left.
func (g *Graph) destroyEdge(id EdgeID) {
	edge := &g.edges[id]
	g.points[edge.A].removeEdge(id)
	g.points[edge.B].removeEdge(id)
	delete(g.edgeIndex, newEdgeKey(edge.A, edge.B))
	*edge = TriEdge{}
	g.freeEdges = append(g.freeEdges, id)
}

func (p *TriPoint) removeEdge(id EdgeID) {
	for i, edgeID := range p.Edges {
		if edgeID == id {
			p.Edges = append(p.Edges[:i], p.Edges[i+1:]...)
			return
		}
	}
}

// Sort the point's incident edges by the angle of their far endpoint, using
// the same ordering as cell vertices.
func (g *Graph) SortEdges(id PointID) {
	p := &g.points[id]
	sortByAngle(p.Point, p.Edges, func(edgeID EdgeID) Point {
		return g.points[g.edges[edgeID].Other(id)].Point
	})
}

func (e *TriEdge) TriangleCount() int {
	count := 0
	for _, t := range e.Triangles {
		if t != NoTriangle {
			count++
		}
	}
	return count
}

func (e *TriEdge) Other(id PointID) PointID {
	if e.A == id {
		return e.B
	}
	return e.A
}

func (e *TriEdge) addTriangle(id TriangleID) {
	if e.Triangles[0] == NoTriangle {
		e.Triangles[0] = id
	} else if e.Triangles[1] == NoTriangle {
		e.Triangles[1] = id
	} else {
		Fatalf("edge %d-%d with three triangles", e.A, e.B)
	}
}

// The remaining triangle is always kept in the first slot.
func (e *TriEdge) removeTriangle(id TriangleID) {
	if e.Triangles[0] == id {
		e.Triangles[0] = e.Triangles[1]
		e.Triangles[1] = NoTriangle
	} else if e.Triangles[1] == id {
		e.Triangles[1] = NoTriangle
	} else {
		Fatalf("tried to remove triangle %d that isn't on edge %d-%d", id, e.A, e.B)
	}
}

// Twice the signed area of the triangle. Positive for counterclockwise.
func Orientation(a, b, c Point) float64 {
	return b.R2().Sub(a.R2()).Cross(c.R2().Sub(a.R2()))
}

// Circumcenter and squared circumradius of a triangle. The computation is done
// relative to the first vertex, which keeps precision when the triangle is far
// from the origin. Returns false if the determinant is too close to zero for
// the result to be meaningful.
func Circumcircle(a, b, c Point) (center Point, radius2 float64, ok bool) {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	if math.Abs(d) < DegenerateDeterminant {
		return Point{}, 0, false
	}
	bd := bx*bx + by*by
	cd := cx*cx + cy*cy
	ux := (cy*bd - by*cd) / d
	uy := (bx*cd - cx*bd) / d
	center = Point{a.X + ux, a.Y + uy}
	radius2 = ux*ux + uy*uy
	if !center.IsFinite() || math.IsInf(radius2, 0) {
		return Point{}, 0, false
	}
	return center, radius2, true
}
