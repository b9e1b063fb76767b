package genregionmap

import (
	"math"
	"testing"

	"github.com/mapforge/genregionmap/geom"
)

func TestFindRoute(t *testing.T) {
	m := newLayoutMap(t, 555)

	a := m.Continents[0].Regions[0]
	b := m.Continents[len(m.Continents)-1].Regions[0]
	ids, dist, found := m.FindRoute(a, b)
	if !found {
		t.Fatalf("expected a route from %d to %d", a, b)
	}
	if ids[0] != a || ids[len(ids)-1] != b {
		t.Fatalf("route %v does not run from %d to %d", ids, a, b)
	}
	if dist <= 0 {
		t.Fatalf("expected a positive route distance, got %f", dist)
	}

	// Consecutive route entries are adjacent, and the distance is the
	// sum of the hop costs.
	var sum float64
	for i := 1; i < len(ids); i++ {
		if !containsInt(m.Regions[ids[i-1]].Neighbors, ids[i]) {
			t.Fatalf("route hop %d-%d is not an adjacency", ids[i-1], ids[i])
		}
		sum += geom.Dist2(m.Regions[ids[i-1]].Centroid, m.Regions[ids[i]].Centroid)
	}
	if math.Abs(sum-dist) > 1e-9 {
		t.Fatalf("route distance %f does not match hop sum %f", dist, sum)
	}
}

func TestFindRouteDirectNeighbor(t *testing.T) {
	m := newLayoutMap(t, 555)
	var a, b int
	found := false
	for _, r := range m.Regions {
		if len(r.Neighbors) > 0 {
			a, b = r.ID, r.Neighbors[0]
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no adjacent region pair in the map")
	}
	ids, _, ok := m.FindRoute(a, b)
	if !ok {
		t.Fatalf("expected a route between neighbors %d and %d", a, b)
	}
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Fatalf("expected direct route [%d %d], got %v", a, b, ids)
	}
}

func TestFindRouteInvalidRegion(t *testing.T) {
	m := newLayoutMap(t, 555)
	if _, _, found := m.FindRoute(-1, 0); found {
		t.Fatal("expected no route from an invalid region")
	}
	if _, _, found := m.FindRoute(0, len(m.Regions)); found {
		t.Fatal("expected no route to an invalid region")
	}
}

func TestFindRouteDisconnected(t *testing.T) {
	// A Voronoi map can split into several continents; regions in
	// different components have no route.
	m, err := NewMapFromConfig(12345, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Continents) < 2 {
		t.Skip("map came out as a single component")
	}
	a := m.Continents[0].Regions[0]
	b := m.Continents[1].Regions[0]
	if _, _, found := m.FindRoute(a, b); found {
		t.Fatalf("expected no route between separate components %d and %d", a, b)
	}
}
