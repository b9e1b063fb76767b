package genregionmap

import (
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/mapforge/genregionmap/geom"
)

func TestNewMapDefaults(t *testing.T) {
	m, err := NewMap(12345, 5, 10, NewRect(-5, -5, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Regions) != 5 {
		t.Fatalf("expected 5 regions, got %d", len(m.Regions))
	}
	if len(m.Seeds) != 50 {
		t.Fatalf("expected 50 seed points, got %d", len(m.Seeds))
	}
	if len(m.Continents) == 0 {
		t.Fatal("expected at least one continent")
	}

	var areaSum float64
	for _, r := range m.Regions {
		if len(r.Polygon) < 3 {
			t.Fatalf("region %d has a degenerate polygon", r.ID)
		}
		if !m.Bounds.Contains(r.Centroid) {
			t.Fatalf("region %d centroid %v outside bounds", r.ID, r.Centroid)
		}
		if r.Continent < 0 || r.Continent >= len(m.Continents) {
			t.Fatalf("region %d has invalid continent %d", r.ID, r.Continent)
		}
		for _, nb := range r.Neighbors {
			if nb == r.ID {
				t.Fatalf("region %d is its own neighbor", r.ID)
			}
			if !containsInt(m.Regions[nb].Neighbors, r.ID) {
				t.Fatalf("adjacency not symmetric for regions %d and %d", r.ID, nb)
			}
		}
		areaSum += r.Area
	}
	// The regions tile the bounds; snapping during boundary merging
	// costs a little precision.
	if math.Abs(areaSum-m.Bounds.Area()) > 1.0 {
		t.Fatalf("region areas sum to %f, want close to %f", areaSum, m.Bounds.Area())
	}
}

func TestNewMapSinglePoint(t *testing.T) {
	m, err := NewMap(7, 1, 1, NewRect(0, 0, 4, 4))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(m.Regions))
	}
	r := m.Regions[0]
	// A lone seed has no Delaunay neighbors and claims the full bounds.
	if math.Abs(r.Area-16) > 1e-6 {
		t.Fatalf("expected the region to cover the bounds (area 16), got %f", r.Area)
	}
	if len(r.Neighbors) != 0 {
		t.Fatalf("expected no neighbors, got %v", r.Neighbors)
	}
	if len(m.Continents) != 1 {
		t.Fatalf("expected 1 continent, got %d", len(m.Continents))
	}
}

func TestNewMapDeterministic(t *testing.T) {
	m1, err := NewMapFromConfig(999, nil)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := NewMapFromConfig(999, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m1.Seeds, m2.Seeds) {
		t.Fatal("seed points differ between identical runs")
	}
	if !reflect.DeepEqual(m1.Regions, m2.Regions) {
		t.Fatal("regions differ between identical runs")
	}
	if !reflect.DeepEqual(m1.Continents, m2.Continents) {
		t.Fatal("continents differ between identical runs")
	}

	m3, err := NewMapFromConfig(1000, nil)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(m1.Seeds, m3.Seeds) {
		t.Fatal("different seeds produced identical seed points")
	}
}

func TestNewMapNames(t *testing.T) {
	m, err := NewMapFromConfig(42, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, cont := range m.Continents {
		if cont.Name == "" {
			t.Fatalf("continent %d has no name", cont.ID)
		}
	}
	for _, r := range m.Regions {
		if r.Name == "" {
			t.Fatalf("region %d has no name", r.ID)
		}
		if r.Biome < 0 {
			t.Fatalf("region %d has no biome", r.ID)
		}
		if r.BiomeString() == "" {
			t.Fatalf("region %d biome %d has no display name", r.ID, r.Biome)
		}
	}
}

func TestNewMapNamesDisabled(t *testing.T) {
	cfg := NewConfig()
	cfg.GenerateNames = false
	cfg.GenerateBiomes = false
	m, err := NewMapFromConfig(42, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range m.Regions {
		if r.Name != "" {
			t.Fatalf("region %d unexpectedly named %q", r.ID, r.Name)
		}
		if r.Biome != -1 {
			t.Fatalf("region %d unexpectedly tagged with biome %d", r.ID, r.Biome)
		}
	}
}

func TestNewMapFromConfigValidation(t *testing.T) {
	cfg := NewConfig()
	cfg.NumClusters = 0
	if _, err := NewMapFromConfig(1, cfg); err == nil {
		t.Fatal("expected an error for zero clusters")
	}

	cfg = NewConfig()
	cfg.PointsPerCluster = 0
	if _, err := NewMapFromConfig(1, cfg); err == nil {
		t.Fatal("expected an error for zero points per cluster")
	}

	cfg = NewConfig()
	cfg.Bounds = NewRect(0, 0, -1, 10)
	if _, err := NewMapFromConfig(1, cfg); err == nil {
		t.Fatal("expected an error for negative bounds")
	}

	cfg = NewConfig()
	cfg.UseVoronoi = false
	cfg.NumContinents = 0
	if _, err := NewMapFromConfig(1, cfg); err == nil {
		t.Fatal("expected an error for zero continents")
	}
}

func TestGetRegionsInRect(t *testing.T) {
	m, err := NewMapFromConfig(12345, nil)
	if err != nil {
		t.Fatal(err)
	}

	all := m.GetRegionsInRect(NewRect(-6, -6, 12, 12))
	sort.Ints(all)
	if len(all) != len(m.Regions) {
		t.Fatalf("expected all %d regions, got %v", len(m.Regions), all)
	}
	for i, id := range all {
		if id != i {
			t.Fatalf("expected region ids 0..%d, got %v", len(m.Regions)-1, all)
		}
	}

	// A rectangle around a single centroid finds at least that region.
	c := m.Regions[0].Centroid
	ids := m.GetRegionsInRect(NewRect(c[0]-0.01, c[1]-0.01, 0.02, 0.02))
	if !containsInt(ids, 0) {
		t.Fatalf("expected region 0 in %v", ids)
	}
}

func TestGetRegionAndContinent(t *testing.T) {
	m, err := NewMapFromConfig(12345, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.GetRegion(0) == nil {
		t.Fatal("expected region 0")
	}
	if m.GetRegion(-1) != nil || m.GetRegion(len(m.Regions)) != nil {
		t.Fatal("expected nil for out-of-range region ids")
	}
	if m.GetContinent(0) == nil {
		t.Fatal("expected continent 0")
	}
	if m.GetContinent(-1) != nil || m.GetContinent(len(m.Continents)) != nil {
		t.Fatal("expected nil for out-of-range continent ids")
	}
}

func TestContinentsPartitionRegions(t *testing.T) {
	m, err := NewMapFromConfig(271, nil)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int]int)
	for _, cont := range m.Continents {
		if len(cont.Regions) == 0 {
			t.Fatalf("continent %d has no regions", cont.ID)
		}
		for _, r := range cont.Regions {
			if prev, ok := seen[r]; ok {
				t.Fatalf("region %d in continents %d and %d", r, prev, cont.ID)
			}
			seen[r] = cont.ID
			if m.Regions[r].Continent != cont.ID {
				t.Fatalf("region %d continent field %d does not match owner %d", r, m.Regions[r].Continent, cont.ID)
			}
		}
		for _, conn := range cont.Connections {
			if conn.RegionA == conn.RegionB {
				t.Fatalf("continent %d has a self-connection on region %d", cont.ID, conn.RegionA)
			}
			want := geom.Dist2(m.Regions[conn.RegionA].Centroid, m.Regions[conn.RegionB].Centroid)
			if math.Abs(conn.Distance-want) > 1e-9 {
				t.Fatalf("connection %d-%d distance %f, want %f", conn.RegionA, conn.RegionB, conn.Distance, want)
			}
		}
	}
	if len(seen) != len(m.Regions) {
		t.Fatalf("continents cover %d regions, want %d", len(seen), len(m.Regions))
	}
}

func TestAddConnectionDeduplicates(t *testing.T) {
	c := &Continent{ID: 0}
	if !c.AddConnection(1, 2, 3.5) {
		t.Fatal("first connection should be added")
	}
	if c.AddConnection(1, 2, 3.5) {
		t.Fatal("duplicate connection should be rejected")
	}
	if c.AddConnection(2, 1, 3.5) {
		t.Fatal("reversed duplicate should be rejected")
	}
	if c.AddConnection(1, 1, 0) {
		t.Fatal("self-connection should be rejected")
	}
	if len(c.Connections) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(c.Connections))
	}
}

func TestTriangleMesh(t *testing.T) {
	m, err := NewMapFromConfig(12345, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := m.Regions[0]
	mesh := r.TriangleMesh()
	if len(mesh) != len(r.Polygon)-2 {
		t.Fatalf("expected %d triangles, got %d", len(r.Polygon)-2, len(mesh))
	}
	var sum float64
	for _, tri := range mesh {
		sum += geom.Area([][2]float64{r.Polygon[tri[0]], r.Polygon[tri[1]], r.Polygon[tri[2]]})
	}
	if poly := geom.Area(r.Polygon); math.Abs(sum-poly) > 1e-6 {
		t.Fatalf("mesh area %f does not match polygon area %f", sum, poly)
	}
}
