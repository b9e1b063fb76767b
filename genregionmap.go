// Package genregionmap generates procedural continent and region maps:
// clustered seed points are triangulated, turned into bounded Voronoi
// cells, and merged per cluster into polygonal regions wired up with an
// adjacency graph and grouped into continents. An alternative blob
// packing layout produces the same region/continent graph without the
// Voronoi geometry.
package genregionmap

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/Flokey82/geoquad"
)

// Map is a fully generated region map. All randomness is drawn from a
// single generator seeded per generation pass, so the same seed and
// config always reproduce the same map. A Map is built once and
// immutable by convention afterwards.
type Map struct {
	Seed       int64
	Bounds     Rect
	Seeds      []SeedPoint    // Final seed points (Voronoi path only)
	Cells      [][][2]float64 // Final cell polygon per seed (Voronoi path only)
	Regions    []*Region
	Continents []*Continent

	cfg         *Config
	regQuadTree *geoquad.QuadTree // Region lookup by centroid
}

// NewMap returns a generated map with default settings and the given
// cluster layout.
func NewMap(seed int64, numClusters, pointsPerCluster int, bounds Rect) (*Map, error) {
	cfg := NewConfig()
	cfg.NumClusters = numClusters
	cfg.PointsPerCluster = pointsPerCluster
	cfg.Bounds = bounds
	return NewMapFromConfig(seed, cfg)
}

// NewMapFromConfig generates a map from the given seed and config. A
// nil config selects the defaults.
func NewMapFromConfig(seed int64, cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	m := &Map{
		Seed:   seed,
		Bounds: cfg.Bounds,
		cfg:    cfg,
	}
	if err := m.generate(); err != nil {
		return nil, err
	}
	return m, nil
}

func validateConfig(cfg *Config) error {
	if cfg.UseVoronoi {
		if cfg.NumClusters < 1 {
			return fmt.Errorf("genregionmap: NumClusters must be at least 1, got %d", cfg.NumClusters)
		}
		if cfg.PointsPerCluster < 1 {
			return fmt.Errorf("genregionmap: PointsPerCluster must be at least 1, got %d", cfg.PointsPerCluster)
		}
	} else {
		if cfg.NumContinents < 1 {
			return fmt.Errorf("genregionmap: NumContinents must be at least 1, got %d", cfg.NumContinents)
		}
		if cfg.RegionsPerContinent < 1 {
			return fmt.Errorf("genregionmap: RegionsPerContinent must be at least 1, got %d", cfg.RegionsPerContinent)
		}
	}
	if cfg.Bounds.W <= 0 || cfg.Bounds.H <= 0 {
		return fmt.Errorf("genregionmap: bounds must have positive dimensions, got %+v", cfg.Bounds)
	}
	return nil
}

// generate runs one full generation pass, discarding any previous
// state. The pass is single-threaded and owns all collections until it
// returns.
func (m *Map) generate() error {
	rng := rand.New(rand.NewSource(m.Seed))

	if m.cfg.UseVoronoi {
		if err := m.generateVoronoi(rng); err != nil {
			return err
		}
	} else {
		m.generateLayout(rng)
	}

	if m.cfg.GenerateNames {
		m.nameContinents()
	}
	if m.cfg.GenerateBiomes {
		m.assignBiomes()
	}
	m.regQuadTree = newRegionQuadTree(m.Regions)
	return nil
}

// generateVoronoi is the main pipeline: seed placement, overlap
// resolution, optional Lloyd relaxation, disconnection repair, cell
// construction, and region/continent assembly.
func (m *Map) generateVoronoi(rng *rand.Rand) error {
	cfg := m.cfg.GenConfig

	seeds := placeSeedPoints(rng, cfg)
	if unresolved := resolveOverlaps(rng, seeds, cfg); unresolved > 0 {
		log.Printf("generation: %d seed points remain below min distance", unresolved)
	}

	if cfg.LloydIterations > 0 {
		if err := lloydRelax(seeds, cfg); err != nil {
			return err
		}
		// Centroid moves can reintroduce overlaps.
		if unresolved := resolveOverlaps(rng, seeds, cfg); unresolved > 0 {
			log.Printf("generation: %d seed points remain below min distance after relaxation", unresolved)
		}
	}

	neighbors, err := seedNeighborGraph(seeds, cfg)
	if err != nil {
		return err
	}

	// Relabel stray cluster fragments before any geometry is derived
	// from the cluster ids.
	assign := repairClusterAssignment(seeds, neighbors, cfg.NumClusters)
	for i := range seeds {
		seeds[i].Cluster = assign[i]
	}

	cells := buildVoronoiCells(seeds, neighbors, cfg.Bounds)

	m.Seeds = seeds
	m.Cells = cells
	m.Regions = buildRegions(seeds, cells, neighbors, cfg.NumClusters)
	m.Continents = buildContinents(m.Regions)
	return nil
}

func newRegionQuadTree(regions []*Region) *geoquad.QuadTree {
	points := make([]geoquad.Point, 0, len(regions))
	for i, r := range regions {
		points = append(points, geoquad.Point{
			Lat:  r.Centroid[1],
			Lon:  r.Centroid[0],
			Data: i,
		})
	}
	return geoquad.NewQuadTree(points)
}

// GetRegionsInRect returns the ids of all regions whose centroid lies
// within the given rectangle, in no particular order.
func (m *Map) GetRegionsInRect(r Rect) []int {
	var out []int
	for _, p := range m.regQuadTree.FindPointsInRect(geoquad.Rect{
		MinLat: r.Y,
		MaxLat: r.Y + r.H,
		MinLon: r.X,
		MaxLon: r.X + r.W,
	}) {
		out = append(out, p.Data.(int))
	}
	return out
}

// GetRegion returns the region with the given id, or nil.
func (m *Map) GetRegion(id int) *Region {
	if id < 0 || id >= len(m.Regions) {
		return nil
	}
	return m.Regions[id]
}

// GetContinent returns the continent with the given id, or nil.
func (m *Map) GetContinent(id int) *Continent {
	if id < 0 || id >= len(m.Continents) {
		return nil
	}
	return m.Continents[id]
}
