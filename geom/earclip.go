package geom

// Triangulate triangulates a simple polygon using ear clipping and
// returns index triples into the input vertex list. The polygon must
// have counter-clockwise winding (see EnsureCCW); polygons with fewer
// than 3 vertices yield no triangles.
func Triangulate(poly [][2]float64) [][3]int {
	n := len(poly)
	if n < 3 {
		return nil
	}

	// Remaining vertex indices, clipped one ear at a time.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	tris := make([][3]int, 0, n-2)
	// Each pass either clips an ear or gives up; n passes bound the
	// loop even for degenerate input.
	for guard := 0; len(idx) > 3 && guard < n*n; guard++ {
		clipped := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i+len(idx)-1)%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			if !isEar(poly, idx, prev, cur, next) {
				continue
			}
			tris = append(tris, [3]int{prev, cur, next})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// No ear found; the polygon is degenerate or
			// self-intersecting. Abandon the remainder.
			return tris
		}
	}
	if len(idx) == 3 {
		tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	}
	return tris
}

// isEar reports whether the vertex cur forms an ear: the corner is
// convex and no other remaining vertex lies inside the candidate
// triangle.
func isEar(poly [][2]float64, idx []int, prev, cur, next int) bool {
	a, b, c := poly[prev], poly[cur], poly[next]
	if Cross2(Sub2(b, a), Sub2(c, b)) <= 0 {
		return false // Reflex corner.
	}
	for _, j := range idx {
		if j == prev || j == cur || j == next {
			continue
		}
		if PointInTriangle(poly[j], a, b, c) {
			return false
		}
	}
	return true
}
