package geom

import "math"

// Numeric tolerances for polygon operations. These are fixed so that a
// given seed always produces the same map shape.
const (
	// EpsHalfPlane is the tolerance for the inside test during
	// half-plane clipping; points on the clip line count as inside.
	EpsHalfPlane = 1e-6

	// EpsDupDistSq is the squared distance below which two consecutive
	// vertices are merged during cleanup.
	EpsDupDistSq = 1e-5

	// EpsCollinear is the cross product magnitude below which a vertex
	// is considered collinear with its neighbors and dropped.
	EpsCollinear = 1e-6

	// maxCleanupIterations caps the collinearity cleanup loop.
	maxCleanupIterations = 1000
)

// SignedArea returns the signed area of the polygon. Counter-clockwise
// polygons have positive area.
func SignedArea(poly [][2]float64) float64 {
	if len(poly) < 3 {
		return 0
	}
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += p[0]*q[1] - q[0]*p[1]
	}
	return sum / 2
}

// Area returns the absolute area of the polygon.
func Area(poly [][2]float64) float64 {
	return math.Abs(SignedArea(poly))
}

// Centroid returns the area centroid of the polygon. For degenerate
// polygons (near-zero area) it falls back to the vertex mean.
func Centroid(poly [][2]float64) [2]float64 {
	if len(poly) == 0 {
		return Zero2
	}
	var cx, cy, area float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		cross := p[0]*q[1] - q[0]*p[1]
		cx += (p[0] + q[0]) * cross
		cy += (p[1] + q[1]) * cross
		area += cross
	}
	area /= 2
	if math.Abs(area) < 1e-12 {
		// Zero-area polygon, average the vertices instead.
		var mx, my float64
		for _, p := range poly {
			mx += p[0]
			my += p[1]
		}
		n := float64(len(poly))
		return [2]float64{mx / n, my / n}
	}
	return [2]float64{cx / (6 * area), cy / (6 * area)}
}

// IsConvex returns true if the polygon is convex, which means all
// consecutive edge cross products share the same sign.
func IsConvex(poly [][2]float64) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	var sign float64
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		c := poly[(i+2)%n]
		cross := Cross2(Sub2(b, a), Sub2(c, b))
		if math.Abs(cross) < EpsCollinear {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if sign*cross < 0 {
			return false
		}
	}
	return true
}

// PointInTriangle returns true if point p lies inside or on the
// triangle (a, b, c).
func PointInTriangle(p, a, b, c [2]float64) bool {
	d1 := Cross2(Sub2(b, a), Sub2(p, a))
	d2 := Cross2(Sub2(c, b), Sub2(p, b))
	d3 := Cross2(Sub2(a, c), Sub2(p, c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// ClipHalfPlane clips the polygon against the half-plane through the
// given point with the given normal, keeping the side the normal points
// to. Uses the Sutherland-Hodgman walk: inside vertices are emitted,
// and an intersection point is emitted at each sign change. Returns nil
// if the polygon is clipped away entirely.
func ClipHalfPlane(poly [][2]float64, point, normal [2]float64) [][2]float64 {
	if len(poly) == 0 {
		return nil
	}
	out := make([][2]float64, 0, len(poly)+1)
	for i := range poly {
		cur := poly[i]
		next := poly[(i+1)%len(poly)]
		dCur := Dot2(Sub2(cur, point), normal)
		dNext := Dot2(Sub2(next, point), normal)
		curInside := dCur >= -EpsHalfPlane
		nextInside := dNext >= -EpsHalfPlane

		if curInside {
			out = append(out, cur)
		}
		if curInside != nextInside {
			// The edge crosses the clip line; emit the intersection.
			t := dCur / (dCur - dNext)
			out = append(out, [2]float64{
				cur[0] + t*(next[0]-cur[0]),
				cur[1] + t*(next[1]-cur[1]),
			})
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// EnsureCCW returns the polygon with counter-clockwise winding,
// reversing it if the signed area is negative.
func EnsureCCW(poly [][2]float64) [][2]float64 {
	if SignedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}

// CleanPolygon drops near-duplicate consecutive vertices and
// near-collinear vertices, then enforces counter-clockwise winding.
// Returns nil if fewer than 3 vertices remain.
func CleanPolygon(poly [][2]float64) [][2]float64 {
	poly = dropDuplicates(poly)

	// Collinear removal can expose new collinear triples, so iterate
	// until nothing changes (capped).
	for i := 0; i < maxCleanupIterations; i++ {
		cleaned := dropCollinear(poly)
		if len(cleaned) == len(poly) {
			break
		}
		poly = cleaned
	}
	if len(poly) < 3 {
		return nil
	}
	return EnsureCCW(poly)
}

func dropDuplicates(poly [][2]float64) [][2]float64 {
	out := poly[:0:0]
	for _, p := range poly {
		if len(out) > 0 && DistSq2(out[len(out)-1], p) < EpsDupDistSq {
			continue
		}
		out = append(out, p)
	}
	// The last vertex may duplicate the first (wrap-around).
	for len(out) > 1 && DistSq2(out[len(out)-1], out[0]) < EpsDupDistSq {
		out = out[:len(out)-1]
	}
	return out
}

func dropCollinear(poly [][2]float64) [][2]float64 {
	if len(poly) < 3 {
		return poly
	}
	out := poly[:0:0]
	n := len(poly)
	for i := 0; i < n; i++ {
		prev := poly[(i+n-1)%n]
		cur := poly[i]
		next := poly[(i+1)%n]
		cross := Cross2(Sub2(cur, prev), Sub2(next, cur))
		if math.Abs(cross) < EpsCollinear {
			continue
		}
		out = append(out, cur)
	}
	return out
}
