package genregionmap

import (
	"log"
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/mapforge/genregionmap/geom"
)

// SeedPoint is a single Voronoi site. The position is mutated in place
// by relaxation passes and the cluster id by disconnection repair;
// after region building, seed points only persist through the polygons
// derived from them.
type SeedPoint struct {
	Pos     [2]float64
	Cluster int
}

// placeSeedPoints generates NumClusters * PointsPerCluster clustered
// seed points inside the bounds. Cluster centers are picked uniformly
// inside the bounds scaled by ClusterCenterScale around its center, and
// each cluster's points are sampled from a 2D Gaussian around the
// cluster center. Samples outside the bounds or violating MinDistance
// are rejected up to MaxAttemptsPerPoint times; after that the last
// sample is clamped into the bounds and accepted, so point creation
// never blocks.
func placeSeedPoints(rng *rand.Rand, cfg *GenConfig) []SeedPoint {
	bounds := cfg.Bounds
	center := bounds.Center()
	scaledW := bounds.W * cfg.ClusterCenterScale
	scaledH := bounds.H * cfg.ClusterCenterScale

	centers := make([][2]float64, cfg.NumClusters)
	for i := range centers {
		centers[i] = [2]float64{
			center[0] + (rng.Float64()-0.5)*scaledW,
			center[1] + (rng.Float64()-0.5)*scaledH,
		}
	}

	seeds := make([]SeedPoint, 0, cfg.NumClusters*cfg.PointsPerCluster)
	for ci, cc := range centers {
		for pi := 0; pi < cfg.PointsPerCluster; pi++ {
			var p [2]float64
			placed := false
			for attempt := 0; attempt < cfg.MaxAttemptsPerPoint; attempt++ {
				gx, gy := gauss2(rng)
				p = [2]float64{
					cc[0] + gx*cfg.ClusterSpread,
					cc[1] + gy*cfg.ClusterSpread,
				}
				if !bounds.Contains(p) {
					continue
				}
				if violatesSpacing(p, seeds, cfg.MinDistance) {
					continue
				}
				placed = true
				break
			}
			if !placed {
				// Accept the last sample anyway, clamped into bounds.
				p = bounds.Clamp(p)
			}
			seeds = append(seeds, SeedPoint{Pos: p, Cluster: ci})
		}
	}
	return seeds
}

// gauss2 returns a 2D standard normal sample via the Box-Muller
// transform.
func gauss2(rng *rand.Rand) (float64, float64) {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	return r * math.Cos(2*math.Pi*u2), r * math.Sin(2*math.Pi*u2)
}

func violatesSpacing(p [2]float64, seeds []SeedPoint, minDist float64) bool {
	for _, s := range seeds {
		if geom.Dist2(p, s.Pos) < minDist {
			return true
		}
	}
	return false
}

// resolveOverlaps pushes apart seed points closer than MinDistance by
// iterative pairwise repulsion: each pass accumulates a displacement
// per point (the correction split symmetrically between the pair),
// applies it once, and clamps into bounds. Coincident points are pushed
// along a random unit vector. Points still overlapping after all passes
// are relocated to a random conforming position; if none is found the
// overlap is accepted with a diagnostic. Returns the number of points
// left overlapping.
func resolveOverlaps(rng *rand.Rand, seeds []SeedPoint, cfg *GenConfig) int {
	minDist := cfg.MinDistance
	bounds := cfg.Bounds

	for pass := 0; pass < cfg.OverlapRelaxIterations; pass++ {
		disp := make([]vectors.Vec2, len(seeds))
		overlaps := 0
		for i := 0; i < len(seeds); i++ {
			for j := i + 1; j < len(seeds); j++ {
				d := geom.Dist2(seeds[i].Pos, seeds[j].Pos)
				if d >= minDist {
					continue
				}
				overlaps++
				var dir vectors.Vec2
				if d == 0 {
					// Coincident pair; pick a random separation axis.
					angle := rng.Float64() * 2 * math.Pi
					dir = vectors.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
				} else {
					dir = vectors.Normalize(vectors.Vec2{
						X: seeds[i].Pos[0] - seeds[j].Pos[0],
						Y: seeds[i].Pos[1] - seeds[j].Pos[1],
					})
				}
				push := dir.Mul((minDist - d) / 2)
				disp[i] = disp[i].Add(push)
				disp[j] = disp[j].Add(push.Mul(-1))
			}
		}
		if overlaps == 0 {
			return 0
		}
		for i := range seeds {
			seeds[i].Pos = bounds.Clamp([2]float64{
				seeds[i].Pos[0] + disp[i].X,
				seeds[i].Pos[1] + disp[i].Y,
			})
		}
	}

	// Relocate whatever the repulsion passes could not separate.
	unresolved := 0
	for i := range seeds {
		if !hasOverlap(seeds, i, minDist) {
			continue
		}
		orig := seeds[i].Pos
		relocated := false
		for attempt := 0; attempt < 4*cfg.MaxAttemptsPerPoint; attempt++ {
			seeds[i].Pos = [2]float64{
				bounds.X + rng.Float64()*bounds.W,
				bounds.Y + rng.Float64()*bounds.H,
			}
			if !hasOverlap(seeds, i, minDist) {
				relocated = true
				break
			}
		}
		if !relocated {
			seeds[i].Pos = orig
			unresolved++
			log.Printf("seed point %d still violates min distance %.3f after relocation", i, minDist)
		}
	}
	return unresolved
}

// hasOverlap returns true if seed i is closer than minDist to any other
// seed.
func hasOverlap(seeds []SeedPoint, i int, minDist float64) bool {
	for j := range seeds {
		if j == i {
			continue
		}
		if geom.Dist2(seeds[i].Pos, seeds[j].Pos) < minDist {
			return true
		}
	}
	return false
}

// lloydRelax moves every seed to the centroid of its own Voronoi cell
// (clamped into bounds) for the configured number of rounds. Each round
// rebuilds the neighbor graph and cells from the current positions.
func lloydRelax(seeds []SeedPoint, cfg *GenConfig) error {
	for it := 0; it < cfg.LloydIterations; it++ {
		neighbors, err := seedNeighborGraph(seeds, cfg)
		if err != nil {
			return err
		}
		cells := buildVoronoiCells(seeds, neighbors, cfg.Bounds)
		for i, cell := range cells {
			if len(cell) < 3 {
				continue
			}
			seeds[i].Pos = cfg.Bounds.Clamp(geom.Centroid(cell))
		}
	}
	return nil
}

// seedNeighborGraph builds the Delaunay adjacency of the current seed
// positions, via the built-in Bowyer-Watson triangulator or the
// fogleman fast path.
func seedNeighborGraph(seeds []SeedPoint, cfg *GenConfig) ([][]int, error) {
	pts := make([][2]float64, len(seeds))
	for i, s := range seeds {
		pts[i] = s.Pos
	}
	if cfg.UseFastTriangulator {
		return fastNeighborGraph(pts)
	}
	return NeighborGraph(len(pts), TriangulatePoints(pts)), nil
}
