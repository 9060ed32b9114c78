package internal

// Conversion of a triangulation into its dual Voronoi graph. Voronoi vertices
// are triangle circumcenters, Voronoi edges join the circumcenters of the two
// triangles sharing a Delaunay edge, and each site's cell is bounded by the
// duals of its incident edges.
//
// Unlike the triangulation graph, the dual graph is made of plain pointers. It
// outlives the triangulation (which is dropped after extraction), and it is
// rewritten in place when independently built diagrams are stitched together.

type VorPoint struct {
	Point
	Edges []*VorEdge
}

type VorEdge struct {
	A, B  *VorPoint
	Cells [2]*VorCell
}

type Diagram struct {
	Points []*VorPoint
	Edges  []*VorEdge
	Cells  []*VorCell
}

// Extract the dual of a triangulation. Every Delaunay edge with two triangles
// gets a Voronoi edge, and every site whose incident edges all have two
// triangles gets a cell. Cells are returned in site insertion order.
func Extract(t *Triangulation) *Diagram {
	d := &Diagram{}
	g := t.Graph
	for _, edgeID := range g.Edges() {
		d.dualEdge(g, edgeID)
	}
	for _, id := range t.Sites {
		if cell := d.dualCell(g, id); cell != nil {
			d.Cells = append(d.Cells, cell)
		}
	}
	return d
}

// The circumcenter of a triangle as a Voronoi point, created on first use.
func (d *Diagram) dualPoint(g *Graph, id TriangleID) *VorPoint {
	triangle := g.Triangle(id)
	if triangle.Dual == nil {
		triangle.Dual = &VorPoint{Point: triangle.Center}
		d.Points = append(d.Points, triangle.Dual)
	}
	return triangle.Dual
}

// The Voronoi edge for a Delaunay edge, created on first use. Nil if the edge
// doesn't have two triangles.
func (d *Diagram) dualEdge(g *Graph, id EdgeID) *VorEdge {
	edge := g.Edge(id)
	if edge.dualBuilt {
		return edge.Dual
	}
	edge.dualBuilt = true
	if edge.TriangleCount() != 2 {
		return nil
	}
	a := d.dualPoint(g, edge.Triangles[0])
	b := d.dualPoint(g, edge.Triangles[1])
	edge.Dual = NewVorEdge(a, b)
	d.Edges = append(d.Edges, edge.Dual)
	return edge.Dual
}

// The Voronoi cell for a point, created on first use. Nil if any incident edge
// is missing a triangle, since the cell would not be closed.
func (d *Diagram) dualCell(g *Graph, id PointID) *VorCell {
	point := g.Point(id)
	if point.cellBuilt {
		return point.Cell
	}
	point.cellBuilt = true
	for _, edgeID := range point.Edges {
		if g.Edge(edgeID).TriangleCount() != 2 {
			return nil
		}
	}

	cell := &VorCell{Site: point.Point, Complete: true}
	for _, edgeID := range point.Edges {
		cell.addEdge(d.dualEdge(g, edgeID))
	}
	cell.sortVerts()
	point.Cell = cell
	return cell
}

// Create an edge and register it with both endpoints.
func NewVorEdge(a, b *VorPoint) *VorEdge {
	edge := &VorEdge{A: a, B: b}
	a.Edges = append(a.Edges, edge)
	b.Edges = append(b.Edges, edge)
	return edge
}

func (e *VorEdge) AddCell(cell *VorCell) {
	if e.Cells[0] == nil {
		e.Cells[0] = cell
	} else if e.Cells[1] == nil {
		e.Cells[1] = cell
	} else {
		Fatalf("edge %v-%v with three cells", e.A.Point, e.B.Point)
	}
}

// Clear a cell from the edge, keeping any remaining cell in the first slot.
func (e *VorEdge) RemoveCell(cell *VorCell) {
	if e.Cells[0] == cell {
		e.Cells[0] = e.Cells[1]
		e.Cells[1] = nil
	} else if e.Cells[1] == cell {
		e.Cells[1] = nil
	}
}

func (e *VorEdge) HasCell(cell *VorCell) bool {
	return e.Cells[0] == cell || e.Cells[1] == cell
}

// Whether the edge joins the two positions, in either order.
func (e *VorEdge) Joins(a, b Point) bool {
	return (e.A.Equals(a) && e.B.Equals(b)) || (e.A.Equals(b) && e.B.Equals(a))
}

func (e *VorEdge) Midpoint() Point {
	return Point{(e.A.X + e.B.X) / 2, (e.A.Y + e.B.Y) / 2}
}

func (p *VorPoint) HasEdge(edge *VorEdge) bool {
	for _, e := range p.Edges {
		if e == edge {
			return true
		}
	}
	return false
}
