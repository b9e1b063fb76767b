// Package geom provides the 2D geometry primitives used by the map
// generator: vector helpers, polygon clipping and cleanup, and
// ear-clipping triangulation. All polygons are ordered vertex lists
// of [2]float64 points.
package geom

import "math"

var Zero2 = [2]float64{0, 0}

// Dist2 returns the eucledian distance between two points.
func Dist2(a, b [2]float64) float64 {
	xDiff := a[0] - b[0]
	yDiff := a[1] - b[1]
	return math.Sqrt(xDiff*xDiff + yDiff*yDiff)
}

// DistSq2 returns the squared distance between two points.
func DistSq2(a, b [2]float64) float64 {
	xDiff := a[0] - b[0]
	yDiff := a[1] - b[1]
	return xDiff*xDiff + yDiff*yDiff
}

// Dot2 returns the dot product of two vectors.
func Dot2(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross2 returns the z component of the cross product of two vectors.
func Cross2(a, b [2]float64) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Len2 returns the length of the given vector.
func Len2(a [2]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1])
}

// Normalize2 returns the normalized vector of the given vector.
func Normalize2(a [2]float64) [2]float64 {
	l := Len2(a)
	if l == 0 {
		return Zero2
	}
	return [2]float64{a[0] / l, a[1] / l}
}

// Add2 returns the sum of two vectors.
func Add2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] + b[0], a[1] + b[1]}
}

// Sub2 returns the difference of two vectors.
func Sub2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

// Scale2 returns the scaled vector of the given vector.
func Scale2(v [2]float64, s float64) [2]float64 {
	return [2]float64{v[0] * s, v[1] * s}
}

// MidPoint2 returns the midpoint between two points.
func MidPoint2(a, b [2]float64) [2]float64 {
	return [2]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// Perp2 returns the given vector rotated by 90 degrees counter-clockwise.
func Perp2(a [2]float64) [2]float64 {
	return [2]float64{-a[1], a[0]}
}
