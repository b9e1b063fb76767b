package genregionmap

import (
	"math"
	"math/rand"
	"sort"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/mapforge/genregionmap/geom"
)

// generateLayout is the non-Voronoi path: continents are placed on a
// jittered grid, their regions packed as cohesive blobs, and the
// adjacency graph built directly (spanning structure plus extra edges
// and inter-continent bridges) instead of being derived from cell
// geometry.
func (m *Map) generateLayout(rng *rand.Rand) {
	cfg := m.cfg.LayoutConfig
	bounds := m.cfg.Bounds

	centers := placeContinentCenters(rng, bounds, cfg)

	m.Continents = make([]*Continent, 0, cfg.NumContinents)
	m.Regions = nil
	for ci, center := range centers {
		cont := &Continent{ID: ci, Center: center}
		regionCenters := packRegionBlob(rng, center, bounds, cfg)
		for _, p := range regionCenters {
			r := &Region{
				ID:        len(m.Regions),
				Cluster:   ci,
				Continent: ci,
				Polygon:   blobPolygon(p, cfg.RegionSpacing/2),
				Centroid:  p,
				Biome:     -1,
			}
			r.Area = geom.Area(r.Polygon)
			cont.Regions = append(cont.Regions, r.ID)
			m.Regions = append(m.Regions, r)
		}
		m.connectContinent(rng, cont)
		m.Continents = append(m.Continents, cont)
	}

	m.bridgeContinents(rng)

	// Neighbor sets mirror the recorded connections.
	for _, cont := range m.Continents {
		for _, conn := range cont.Connections {
			m.addNeighborPair(conn.RegionA, conn.RegionB)
		}
	}
	for _, r := range m.Regions {
		sort.Ints(r.Neighbors)
	}
}

// placeContinentCenters allocates one grid cell per continent and
// jitters the cell center, clamped into the bounds.
func placeContinentCenters(rng *rand.Rand, bounds Rect, cfg *LayoutConfig) [][2]float64 {
	cols := int(math.Ceil(math.Sqrt(float64(cfg.NumContinents))))
	rows := (cfg.NumContinents + cols - 1) / cols
	cellW := bounds.W / float64(cols)
	cellH := bounds.H / float64(rows)

	centers := make([][2]float64, 0, cfg.NumContinents)
	for i := 0; i < cfg.NumContinents; i++ {
		col := i % cols
		row := i / cols
		c := [2]float64{
			bounds.X + (float64(col)+0.5)*cellW + (rng.Float64()-0.5)*cellW*cfg.ContinentJitter,
			bounds.Y + (float64(row)+0.5)*cellH + (rng.Float64()-0.5)*cellH*cfg.ContinentJitter,
		}
		centers = append(centers, bounds.Clamp(c))
	}
	return centers
}

// packRegionBlob samples region centers inside an ellipse around the
// continent center and relaxes them into a non-overlapping cohesive
// blob. Sampling runs two attempt rounds: the first demands the full
// RegionSpacing, the second a relaxed multiplier of it, and after both
// rounds the last candidate is accepted regardless, so tight bounds
// yield closer-than-desired packing instead of a placement failure.
func packRegionBlob(rng *rand.Rand, center [2]float64, bounds Rect, cfg *LayoutConfig) [][2]float64 {
	const relaxedMultiplier = 0.5
	attempts := 4 * cfg.RegionsPerContinent

	pts := make([][2]float64, 0, cfg.RegionsPerContinent)
	for i := 0; i < cfg.RegionsPerContinent; i++ {
		var p [2]float64
		placed := false
		for _, spacing := range []float64{cfg.RegionSpacing, cfg.RegionSpacing * relaxedMultiplier} {
			for attempt := 0; attempt < attempts; attempt++ {
				p = sampleEllipse(rng, center, cfg.BlobRadiusX, cfg.BlobRadiusY)
				p = bounds.Clamp(p)
				if !tooClose(p, pts, spacing) {
					placed = true
					break
				}
			}
			if placed {
				break
			}
		}
		// Not placed after both rounds: accept the last candidate.
		pts = append(pts, p)
	}

	// Pairwise repulsion with a pull toward the continent center so the
	// blob stays cohesive while spreading to the target spacing.
	for pass := 0; pass < cfg.PackRelaxIterations; pass++ {
		disp := make([]vectors.Vec2, len(pts))
		moved := false
		for i := 0; i < len(pts); i++ {
			for j := i + 1; j < len(pts); j++ {
				d := geom.Dist2(pts[i], pts[j])
				if d >= cfg.RegionSpacing {
					continue
				}
				moved = true
				var dir vectors.Vec2
				if d == 0 {
					angle := rng.Float64() * 2 * math.Pi
					dir = vectors.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
				} else {
					dir = vectors.Normalize(vectors.Vec2{
						X: pts[i][0] - pts[j][0],
						Y: pts[i][1] - pts[j][1],
					})
				}
				push := dir.Mul((cfg.RegionSpacing - d) / 2)
				disp[i] = disp[i].Add(push)
				disp[j] = disp[j].Add(push.Mul(-1))
			}
		}
		for i := range pts {
			pull := vectors.Vec2{
				X: (center[0] - pts[i][0]) * cfg.CenterPull,
				Y: (center[1] - pts[i][1]) * cfg.CenterPull,
			}
			total := disp[i].Add(pull)
			pts[i] = bounds.Clamp([2]float64{
				pts[i][0] + total.X,
				pts[i][1] + total.Y,
			})
		}
		if !moved && cfg.CenterPull == 0 {
			break
		}
	}
	return pts
}

func sampleEllipse(rng *rand.Rand, center [2]float64, rx, ry float64) [2]float64 {
	// Uniform over the ellipse area.
	angle := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(rng.Float64())
	return [2]float64{
		center[0] + math.Cos(angle)*r*rx,
		center[1] + math.Sin(angle)*r*ry,
	}
}

func tooClose(p [2]float64, pts [][2]float64, spacing float64) bool {
	for _, q := range pts {
		if geom.Dist2(p, q) < spacing {
			return true
		}
	}
	return false
}

// blobPolygon returns a small circle approximation used as the visual
// footprint of a packed region.
func blobPolygon(center [2]float64, radius float64) [][2]float64 {
	const segments = 12
	pts := make([][2]float64, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		pts[i] = [2]float64{
			center[0] + math.Cos(angle)*radius,
			center[1] + math.Sin(angle)*radius,
		}
	}
	return pts
}

// connectContinent wires the continent's regions with a random spanning
// tree (each region attaches to a random earlier one) plus the
// configured number of extra random edges.
func (m *Map) connectContinent(rng *rand.Rand, cont *Continent) {
	if len(cont.Regions) < 2 {
		return
	}
	for i := 1; i < len(cont.Regions); i++ {
		a := cont.Regions[i]
		b := cont.Regions[rng.Intn(i)]
		cont.AddConnection(a, b, geom.Dist2(m.Regions[a].Centroid, m.Regions[b].Centroid))
	}
	for e := 0; e < m.cfg.ExtraEdges; e++ {
		a := cont.Regions[rng.Intn(len(cont.Regions))]
		b := cont.Regions[rng.Intn(len(cont.Regions))]
		if a == b {
			continue
		}
		cont.AddConnection(a, b, geom.Dist2(m.Regions[a].Centroid, m.Regions[b].Centroid))
	}
}

// bridgeContinents links consecutive continent pairs, plus the
// configured number of random pairs, through their nearest region pair.
// A bridge is recorded on the lower-indexed continent.
func (m *Map) bridgeContinents(rng *rand.Rand) {
	n := len(m.Continents)
	if n < 2 {
		return
	}
	for i := 0; i+1 < n; i++ {
		m.bridgePair(i, i+1)
	}
	for b := 0; b < m.cfg.ExtraBridges; b++ {
		i := rng.Intn(n)
		j := rng.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		m.bridgePair(i, j)
	}
}

// bridgePair connects the closest pair of regions between two
// continents.
func (m *Map) bridgePair(ci, cj int) {
	a, b := m.Continents[ci], m.Continents[cj]
	bestA, bestB := -1, -1
	bestDist := 0.0
	for _, ra := range a.Regions {
		for _, rb := range b.Regions {
			d := geom.Dist2(m.Regions[ra].Centroid, m.Regions[rb].Centroid)
			if bestA < 0 || d < bestDist {
				bestA, bestB, bestDist = ra, rb, d
			}
		}
	}
	if bestA >= 0 {
		a.AddConnection(bestA, bestB, bestDist)
	}
}

func (m *Map) addNeighborPair(a, b int) {
	ra, rb := m.Regions[a], m.Regions[b]
	if !containsInt(ra.Neighbors, b) {
		ra.Neighbors = append(ra.Neighbors, b)
	}
	if !containsInt(rb.Neighbors, a) {
		rb.Neighbors = append(rb.Neighbors, a)
	}
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
