package genregionmap

import (
	"math"
	"sort"

	"github.com/Flokey82/go_gens/utils"
	"github.com/fogleman/delaunay"
	"github.com/mapforge/genregionmap/geom"
)

// circumTolerance widens the circumcircle containment test slightly so
// that nearly-cocircular points are not excluded by floating error.
const circumTolerance = 1.0001

// Circumcircle is the circumscribed circle of a triangle, stored with
// the squared radius to avoid square roots in containment tests.
type Circumcircle struct {
	Center   [2]float64
	RadiusSq float64
}

// DelaunayTriangle is a triangle of the triangulation, referencing its
// corners by index into the point list.
type DelaunayTriangle struct {
	A, B, C int
	Circum  Circumcircle
	// degenerate marks near-collinear corner triples whose
	// circumcircle is effectively infinite.
	degenerate bool
}

// contains returns true if the point lies within the triangle's
// circumcircle. Degenerate triangles never contain a finite point.
func (t *DelaunayTriangle) contains(p [2]float64) bool {
	if t.degenerate {
		return false
	}
	return geom.DistSq2(p, t.Circum.Center) <= t.Circum.RadiusSq*circumTolerance
}

// circumcircle computes the circumscribed circle of the triangle
// (a, b, c) via the determinant formula. ok is false for near-collinear
// corners, whose circumcircle has no finite radius.
func circumcircle(a, b, c [2]float64) (cc Circumcircle, ok bool) {
	d := 2 * (a[0]*(b[1]-c[1]) + b[0]*(c[1]-a[1]) + c[0]*(a[1]-b[1]))
	if math.Abs(d) < 1e-12 {
		return Circumcircle{}, false
	}
	aSq := a[0]*a[0] + a[1]*a[1]
	bSq := b[0]*b[0] + b[1]*b[1]
	cSq := c[0]*c[0] + c[1]*c[1]
	ux := (aSq*(b[1]-c[1]) + bSq*(c[1]-a[1]) + cSq*(a[1]-b[1])) / d
	uy := (aSq*(c[0]-b[0]) + bSq*(a[0]-c[0]) + cSq*(b[0]-a[0])) / d
	center := [2]float64{ux, uy}
	return Circumcircle{Center: center, RadiusSq: geom.DistSq2(center, a)}, true
}

func newDelaunayTriangle(points [][2]float64, a, b, c int) DelaunayTriangle {
	cc, ok := circumcircle(points[a], points[b], points[c])
	return DelaunayTriangle{A: a, B: b, C: c, Circum: cc, degenerate: !ok}
}

// TriangulatePoints builds a Delaunay triangulation over the given
// points using the Bowyer-Watson incremental algorithm. Fewer than 3
// points yield an empty triangulation.
func TriangulatePoints(points [][2]float64) []DelaunayTriangle {
	n := len(points)
	if n < 3 {
		return nil
	}

	// Build a super-triangle enclosing all input points, extended well
	// beyond the bounding box so no circumcircle test can touch it
	// spuriously.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	dMax := math.Max(maxX-minX, maxY-minY)
	if dMax == 0 {
		dMax = 1 // All points coincide; any enclosing triangle works.
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2
	ext := 2 * dMax

	// The three super vertices are appended to a working copy of the
	// point list and stripped again after insertion completes.
	work := make([][2]float64, n, n+3)
	copy(work, points)
	work = append(work,
		[2]float64{midX - 2*ext, midY - ext},
		[2]float64{midX + 2*ext, midY - ext},
		[2]float64{midX, midY + 2*ext},
	)

	triangles := []DelaunayTriangle{newDelaunayTriangle(work, n, n+1, n+2)}

	var bad []int
	for pi := 0; pi < n; pi++ {
		p := work[pi]

		// Find all triangles whose circumcircle contains the point.
		bad = bad[:0]
		for ti := range triangles {
			if triangles[ti].contains(p) {
				bad = append(bad, ti)
			}
		}

		// An edge of the bad-triangle union is a boundary edge iff it
		// appears in exactly one bad triangle.
		edgeCount := map[[2]int]int{}
		for _, ti := range bad {
			t := triangles[ti]
			for _, e := range triangleEdges(t) {
				edgeCount[e]++
			}
		}

		var boundary [][2]int
		for _, ti := range bad {
			t := triangles[ti]
			for _, e := range triangleEdges(t) {
				if edgeCount[e] == 1 {
					boundary = append(boundary, e)
				}
			}
		}

		// Remove the bad triangles (back to front so indices stay valid).
		sort.Sort(sort.Reverse(sort.IntSlice(bad)))
		for _, ti := range bad {
			triangles[ti] = triangles[len(triangles)-1]
			triangles = triangles[:len(triangles)-1]
		}

		// Connect the new point to every boundary edge.
		for _, e := range boundary {
			triangles = append(triangles, newDelaunayTriangle(work, e[0], e[1], pi))
		}
	}

	// Discard triangles touching a super-triangle vertex.
	out := triangles[:0]
	for _, t := range triangles {
		if t.A >= n || t.B >= n || t.C >= n {
			continue
		}
		out = append(out, t)
	}
	return out
}

// triangleEdges returns the three undirected (min, max) edge keys of
// the triangle.
func triangleEdges(t DelaunayTriangle) [3][2]int {
	return [3][2]int{
		edgeKeyIdx(t.A, t.B),
		edgeKeyIdx(t.B, t.C),
		edgeKeyIdx(t.C, t.A),
	}
}

// edgeKeyIdx returns the undirected edge key for two vertex indices.
func edgeKeyIdx(a, b int) [2]int {
	return [2]int{utils.Min(a, b), utils.Max(a, b)}
}

// NeighborGraph extracts the undirected, deduplicated adjacency lists
// from the triangulation. neighbors[i] is sorted ascending.
func NeighborGraph(numPoints int, triangles []DelaunayTriangle) [][]int {
	seen := make([]map[int]bool, numPoints)
	for i := range seen {
		seen[i] = make(map[int]bool)
	}
	for _, t := range triangles {
		for _, e := range triangleEdges(t) {
			seen[e[0]][e[1]] = true
			seen[e[1]][e[0]] = true
		}
	}
	out := make([][]int, numPoints)
	for i, s := range seen {
		nbs := make([]int, 0, len(s))
		for j := range s {
			nbs = append(nbs, j)
		}
		sort.Ints(nbs)
		out[i] = nbs
	}
	return out
}

// fastNeighborGraph derives the same Delaunay adjacency through the
// fogleman/delaunay triangulator. The diagram is identical for points
// in general position, only the construction differs.
func fastNeighborGraph(points [][2]float64) ([][]int, error) {
	pts := make([]delaunay.Point, 0, len(points))
	for _, p := range points {
		pts = append(pts, delaunay.Point{X: p[0], Y: p[1]})
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, err
	}
	seen := make([]map[int]bool, len(points))
	for i := range seen {
		seen[i] = make(map[int]bool)
	}
	for t := 0; t < len(tri.Triangles); t += 3 {
		a := tri.Triangles[t]
		b := tri.Triangles[t+1]
		c := tri.Triangles[t+2]
		seen[a][b] = true
		seen[b][a] = true
		seen[b][c] = true
		seen[c][b] = true
		seen[c][a] = true
		seen[a][c] = true
	}
	out := make([][]int, len(points))
	for i, s := range seen {
		nbs := make([]int, 0, len(s))
		for j := range s {
			nbs = append(nbs, j)
		}
		sort.Ints(nbs)
		out[i] = nbs
	}
	return out, nil
}
