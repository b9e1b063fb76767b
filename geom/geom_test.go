package geom

import (
	"math"
	"testing"
)

var unitSquare = [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func TestSignedArea(t *testing.T) {
	if a := SignedArea(unitSquare); math.Abs(a-1) > 1e-12 {
		t.Fatalf("expected area 1, got %f", a)
	}
	reversed := [][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	if a := SignedArea(reversed); math.Abs(a+1) > 1e-12 {
		t.Fatalf("expected area -1 for clockwise winding, got %f", a)
	}
	if a := SignedArea(unitSquare[:2]); a != 0 {
		t.Fatalf("expected zero area for degenerate polygon, got %f", a)
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid(unitSquare)
	if math.Abs(c[0]-0.5) > 1e-12 || math.Abs(c[1]-0.5) > 1e-12 {
		t.Fatalf("expected centroid (0.5, 0.5), got %v", c)
	}
}

func TestCentroidDegenerateFallsBackToMean(t *testing.T) {
	line := [][2]float64{{0, 0}, {2, 0}, {4, 0}}
	c := Centroid(line)
	if math.Abs(c[0]-2) > 1e-12 || math.Abs(c[1]) > 1e-12 {
		t.Fatalf("expected vertex mean (2, 0), got %v", c)
	}
}

func TestClipHalfPlane(t *testing.T) {
	// Keep the left half of the unit square (normal pointing -x
	// through the vertical center line).
	out := ClipHalfPlane(unitSquare, [2]float64{0.5, 0.5}, [2]float64{-1, 0})
	if out == nil {
		t.Fatal("expected a clipped polygon")
	}
	if a := Area(out); math.Abs(a-0.5) > 1e-9 {
		t.Fatalf("expected clipped area 0.5, got %f", a)
	}
	for _, p := range out {
		if p[0] > 0.5+1e-9 {
			t.Fatalf("vertex %v beyond the clip line", p)
		}
	}
}

func TestClipHalfPlaneRemovesAll(t *testing.T) {
	out := ClipHalfPlane(unitSquare, [2]float64{5, 0}, [2]float64{1, 0})
	if out != nil {
		t.Fatalf("expected nil for fully clipped polygon, got %v", out)
	}
}

func TestClipHalfPlaneKeepsAll(t *testing.T) {
	out := ClipHalfPlane(unitSquare, [2]float64{-5, 0}, [2]float64{1, 0})
	if len(out) != 4 {
		t.Fatalf("expected all 4 vertices kept, got %v", out)
	}
}

func TestCleanPolygonDropsDuplicatesAndCollinear(t *testing.T) {
	poly := [][2]float64{
		{0, 0},
		{0.0001, 0.0001}, // near-duplicate of the first
		{0.5, 0},         // collinear on the bottom edge
		{1, 0},
		{1, 1},
		{0, 1},
	}
	out := CleanPolygon(poly)
	if len(out) != 4 {
		t.Fatalf("expected 4 vertices after cleanup, got %d: %v", len(out), out)
	}
	if a := SignedArea(out); a <= 0 {
		t.Fatalf("expected counter-clockwise result, got signed area %f", a)
	}
}

func TestCleanPolygonRewindsClockwise(t *testing.T) {
	cw := [][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	out := CleanPolygon(cw)
	if a := SignedArea(out); a <= 0 {
		t.Fatalf("expected counter-clockwise winding, got signed area %f", a)
	}
}

func TestCleanPolygonDegenerate(t *testing.T) {
	if out := CleanPolygon([][2]float64{{0, 0}, {1, 0}}); out != nil {
		t.Fatalf("expected nil for degenerate input, got %v", out)
	}
	// All points collapse onto one location.
	if out := CleanPolygon([][2]float64{{0, 0}, {0.0001, 0}, {0, 0.0001}}); out != nil {
		t.Fatalf("expected nil for collapsed input, got %v", out)
	}
}

func TestIsConvex(t *testing.T) {
	if !IsConvex(unitSquare) {
		t.Fatal("unit square should be convex")
	}
	concave := [][2]float64{{0, 0}, {2, 0}, {2, 2}, {1, 0.5}, {0, 2}}
	if IsConvex(concave) {
		t.Fatal("polygon with reflex vertex should not be convex")
	}
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := [2]float64{0, 0}, [2]float64{4, 0}, [2]float64{0, 4}
	if !PointInTriangle([2]float64{1, 1}, a, b, c) {
		t.Fatal("interior point should be inside")
	}
	if !PointInTriangle([2]float64{2, 0}, a, b, c) {
		t.Fatal("edge point should count as inside")
	}
	if PointInTriangle([2]float64{3, 3}, a, b, c) {
		t.Fatal("exterior point should be outside")
	}
}

func TestTriangulateSquare(t *testing.T) {
	tris := Triangulate(unitSquare)
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles for a square, got %d", len(tris))
	}
	var sum float64
	for _, tri := range tris {
		sum += Area([][2]float64{unitSquare[tri[0]], unitSquare[tri[1]], unitSquare[tri[2]]})
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("triangle areas should sum to the polygon area, got %f", sum)
	}
}

func TestTriangulateConcave(t *testing.T) {
	// L-shaped polygon, counter-clockwise.
	poly := [][2]float64{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	tris := Triangulate(poly)
	if len(tris) != len(poly)-2 {
		t.Fatalf("expected %d triangles, got %d", len(poly)-2, len(tris))
	}
	var sum float64
	for _, tri := range tris {
		sum += Area([][2]float64{poly[tri[0]], poly[tri[1]], poly[tri[2]]})
	}
	if math.Abs(sum-3) > 1e-9 {
		t.Fatalf("triangle areas should sum to 3, got %f", sum)
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	if tris := Triangulate(unitSquare[:2]); tris != nil {
		t.Fatalf("expected nil for degenerate input, got %v", tris)
	}
}
