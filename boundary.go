package genregionmap

import (
	"math"
	"sort"

	"github.com/mapforge/genregionmap/geom"
)

// Boundary extraction merges a cluster's cell polygons into closed
// loops. Cell corners computed from different sides of a shared
// bisector differ by floating error, so edge endpoints are snapped to a
// fixed grid before keying: coordinates multiplied by snapMultiplier
// and rounded.
const (
	snapMultiplier = 1000.0

	// maxLoopSteps caps the boundary walk so degenerate edge soups
	// cannot loop forever.
	maxLoopSteps = 10000
)

type pointKey struct {
	X, Y int64
}

func snapPoint(p [2]float64) pointKey {
	return pointKey{
		X: int64(math.Round(p[0] * snapMultiplier)),
		Y: int64(math.Round(p[1] * snapMultiplier)),
	}
}

func (k pointKey) less(o pointKey) bool {
	if k.X != o.X {
		return k.X < o.X
	}
	return k.Y < o.Y
}

// geoEdgeKey is an undirected edge between two snapped points, stored
// (min, max) so (A,B) and (B,A) compare equal.
type geoEdgeKey struct {
	A, B pointKey
}

func newGeoEdgeKey(a, b pointKey) geoEdgeKey {
	if b.less(a) {
		a, b = b, a
	}
	return geoEdgeKey{A: a, B: b}
}

// extractBoundaryLoops merges the given cell polygons into one or more
// closed boundary loops. An edge shared by two cells is interior; an
// edge used exactly once lies on the cluster boundary. Boundary edges
// are walked greedily into loops by following shared endpoints; a walk
// that cannot close before the step cap is abandoned. Each loop is
// cleaned and kept only with at least 3 vertices.
func extractBoundaryLoops(cells [][][2]float64) [][][2]float64 {
	// Count edge usage over all cells and remember a representative
	// float coordinate per snapped point.
	edgeCount := map[geoEdgeKey]int{}
	coords := map[pointKey][2]float64{}
	for _, cell := range cells {
		for i := range cell {
			a := cell[i]
			b := cell[(i+1)%len(cell)]
			ka, kb := snapPoint(a), snapPoint(b)
			if ka == kb {
				continue // Zero-length edge after snapping.
			}
			if _, ok := coords[ka]; !ok {
				coords[ka] = a
			}
			if _, ok := coords[kb]; !ok {
				coords[kb] = b
			}
			edgeCount[newGeoEdgeKey(ka, kb)]++
		}
	}

	// Index the boundary edges by endpoint for the walk.
	type bEdge struct {
		a, b    pointKey
		visited bool
	}
	var boundary []*bEdge
	for e, count := range edgeCount {
		if count != 1 {
			continue
		}
		boundary = append(boundary, &bEdge{a: e.A, b: e.B})
	}
	// Map iteration order is random; sort so the walk (and therefore
	// the produced loops) is reproducible.
	sort.Slice(boundary, func(i, j int) bool {
		if boundary[i].a != boundary[j].a {
			return boundary[i].a.less(boundary[j].a)
		}
		return boundary[i].b.less(boundary[j].b)
	})
	byPoint := map[pointKey][]*bEdge{}
	for _, be := range boundary {
		byPoint[be.a] = append(byPoint[be.a], be)
		byPoint[be.b] = append(byPoint[be.b], be)
	}

	var loops [][][2]float64
	for _, start := range boundary {
		if start.visited {
			continue
		}
		start.visited = true
		loop := []pointKey{start.a, start.b}
		cur := start.b

		closed := false
		for step := 0; step < maxLoopSteps; step++ {
			var next *bEdge
			for _, cand := range byPoint[cur] {
				if !cand.visited {
					next = cand
					break
				}
			}
			if next == nil {
				break // Dead end; the loop cannot close.
			}
			next.visited = true
			if next.a == cur {
				cur = next.b
			} else {
				cur = next.a
			}
			if cur == start.a {
				closed = true
				break
			}
			loop = append(loop, cur)
		}
		if !closed {
			continue // Abandon unclosed walks.
		}

		pts := make([][2]float64, 0, len(loop))
		for _, k := range loop {
			pts = append(pts, coords[k])
		}
		if cleaned := geom.CleanPolygon(pts); len(cleaned) >= 3 {
			loops = append(loops, cleaned)
		}
	}
	return loops
}

// largestLoop returns the index of the loop with the greatest absolute
// signed area, or -1 for an empty list.
func largestLoop(loops [][][2]float64) int {
	best := -1
	bestArea := 0.0
	for i, loop := range loops {
		if a := geom.Area(loop); best < 0 || a > bestArea {
			best = i
			bestArea = a
		}
	}
	return best
}

// loopAreaSum returns the sum of the absolute areas of all loops. A
// multi-loop cluster (hole or unrepaired fragment) reports the combined
// magnitude; the loops are not disambiguated further.
func loopAreaSum(loops [][][2]float64) float64 {
	var sum float64
	for _, loop := range loops {
		sum += geom.Area(loop)
	}
	return sum
}
