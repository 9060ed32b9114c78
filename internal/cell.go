package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/tilevoronoi/dbg"
)

type VorCell struct {
	// The seed point that generated the cell
	Site Point
	// Vertices in counterclockwise order around the site
	Verts []*VorPoint
	// Edges in ring order, so that edge i joins vertex i and vertex i+1
	Edges []*VorEdge
	// False if a dual edge was missing when the cell was built
	Complete bool

	centroid *Point
}

// Build a cell around a site from a set of edges, in any order.
func NewVorCell(site Point, edges []*VorEdge) *VorCell {
	cell := &VorCell{Site: site, Complete: true}
	for _, edge := range edges {
		cell.addEdge(edge)
	}
	cell.sortVerts()
	return cell
}

func (c *VorCell) addEdge(edge *VorEdge) {
	if edge == nil {
		c.Complete = false
		return
	}
	c.Edges = append(c.Edges, edge)
	if !c.HasVert(edge.A) {
		c.Verts = append(c.Verts, edge.A)
	}
	if !c.HasVert(edge.B) {
		c.Verts = append(c.Verts, edge.B)
	}
	edge.AddCell(c)
}

func (c *VorCell) HasVert(vert *VorPoint) bool {
	for _, v := range c.Verts {
		if v == vert {
			return true
		}
	}
	return false
}

// Sort the vertices by polar angle around the site, then put the edges in the
// same ring order. Edges that don't join consecutive vertices (which only
// happens for an incomplete cell) are kept at the end.
func (c *VorCell) sortVerts() {
	sortByAngle(c.Site, c.Verts, func(v *VorPoint) Point { return v.Point })
	c.centroid = nil

	n := len(c.Verts)
	ordered := make([]*VorEdge, 0, len(c.Edges))
	used := make(map[*VorEdge]struct{}, len(c.Edges))
	for i, vert := range c.Verts {
		next := c.Verts[CircularIndex(i+1, n)]
		for _, edge := range c.Edges {
			if _, ok := used[edge]; ok {
				continue
			}
			if (edge.A == vert && edge.B == next) || (edge.A == next && edge.B == vert) {
				ordered = append(ordered, edge)
				used[edge] = struct{}{}
				break
			}
		}
	}
	for _, edge := range c.Edges {
		if _, ok := used[edge]; !ok {
			ordered = append(ordered, edge)
		}
	}
	c.Edges = ordered
}

// Polygon centroid, by the signed area weighted vertex pair formula. Cached
// after the first call.
func (c *VorCell) Centroid() Point {
	if c.centroid != nil {
		return *c.centroid
	}
	var cx, cy, signedArea float64
	for i, vert := range c.Verts {
		next := c.Verts[CircularIndex(i+1, len(c.Verts))]
		a := vert.X*next.Y - next.X*vert.Y
		signedArea += a
		cx += (vert.X + next.X) * a
		cy += (vert.Y + next.Y) * a
	}
	signedArea *= 0.5

	var centroid Point
	if Equal(signedArea, 0) {
		// Zero area polygons have no centroid. Fall back to the site so that
		// the result is at least finite.
		centroid = c.Site
	} else {
		centroid = Point{cx / (6 * signedArea), cy / (6 * signedArea)}
	}
	c.centroid = &centroid
	return centroid
}

func (c *VorCell) Bounds() Bounds {
	points := make([]Point, len(c.Verts))
	for i, v := range c.Verts {
		points[i] = v.Point
	}
	return BoundsOf(points...)
}

// Whether the edges form a single closed ring, with every vertex belonging to
// exactly two of the cell's edges.
func (c *VorCell) IsClosedRing() bool {
	if len(c.Verts) < 3 || len(c.Edges) != len(c.Verts) {
		return false
	}
	for _, vert := range c.Verts {
		count := 0
		for _, edge := range c.Edges {
			if edge.A == vert || edge.B == vert {
				count++
			}
		}
		if count != 2 {
			return false
		}
	}
	return true
}

func (c *VorCell) String() string {
	name := dbg.Name(c)
	if c.Complete {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Red(name).String()
	}
	return fmt.Sprintf("%s{site: %v, verts: %d, edges: %d}", name, c.Site, len(c.Verts), len(c.Edges))
}
