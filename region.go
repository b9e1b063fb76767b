package genregionmap

import (
	"fmt"
	"sort"

	"github.com/Flokey82/genbiome"
	"github.com/mapforge/genregionmap/geom"
)

// Region is one playable territory: the merged boundary polygon of a
// seed cluster (or a packed blob in the non-Voronoi layout), with its
// area, centroid, and adjacency. Regions and continents reference each
// other by integer id into the Map's flat slices.
type Region struct {
	ID        int          // Index into Map.Regions; equals the cluster id in the Voronoi path
	Cluster   int          // Originating cluster id
	Polygon   [][2]float64 // Largest boundary loop, counter-clockwise; nil if degenerate
	Area      float64      // Sum of all boundary loop areas
	Centroid  [2]float64
	Neighbors []int // Adjacent region ids, sorted, never contains ID
	Continent int   // Owning continent id, -1 until assigned
	Name      string
	Biome     int // Whittaker-mod biome id, -1 if untagged
}

// BiomeString returns the display name of the region's biome, or the
// empty string if the region is untagged.
func (r *Region) BiomeString() string {
	if r.Biome < 0 {
		return ""
	}
	return genbiome.WhittakerModBiomeToString(r.Biome)
}

// TriangleMesh returns the region polygon triangulated by ear clipping,
// as corner index triples into Polygon. Degenerate regions yield nil.
func (r *Region) TriangleMesh() [][3]int {
	return geom.Triangulate(r.Polygon)
}

func (r *Region) String() string {
	return fmt.Sprintf("Region %d (%s)", r.ID, r.Name)
}

// RegionConnection is an undirected link between two regions, stored on
// the continent that owns it.
type RegionConnection struct {
	RegionA  int
	RegionB  int
	Distance float64
}

// Continent groups regions and the connections between them.
type Continent struct {
	ID          int
	Name        string
	Center      [2]float64
	Regions     []int // Member region ids, in addition order
	Connections []RegionConnection
}

// AddConnection records an undirected connection between two regions.
// Adding an existing (a, b) or (b, a) pair is a no-op; the return value
// reports whether the connection was added.
func (c *Continent) AddConnection(a, b int, dist float64) bool {
	if a == b {
		return false
	}
	for _, conn := range c.Connections {
		if (conn.RegionA == a && conn.RegionB == b) ||
			(conn.RegionA == b && conn.RegionB == a) {
			return false
		}
	}
	c.Connections = append(c.Connections, RegionConnection{RegionA: a, RegionB: b, Distance: dist})
	return true
}

func (c *Continent) String() string {
	return fmt.Sprintf("Continent %d (%s): %d regions", c.ID, c.Name, len(c.Regions))
}

// buildRegions assembles one Region per cluster id from the final seed
// points, cell polygons, and neighbor graph. The boundary loops of each
// cluster's cells are merged, the largest loop becomes the region
// polygon, and the area is the sum of all loop areas. Cross-cluster
// adjacency comes from Delaunay edges between points of different
// clusters and is computed once here.
func buildRegions(seeds []SeedPoint, cells [][][2]float64, neighbors [][]int, numClusters int) []*Region {
	regions := make([]*Region, numClusters)
	for c := 0; c < numClusters; c++ {
		regions[c] = &Region{ID: c, Cluster: c, Continent: -1, Biome: -1}
	}

	// Merge each cluster's cells into boundary loops.
	clusterCells := make([][][][2]float64, numClusters)
	for i, s := range seeds {
		if cells[i] == nil {
			continue
		}
		clusterCells[s.Cluster] = append(clusterCells[s.Cluster], cells[i])
	}
	for c, cc := range clusterCells {
		loops := extractBoundaryLoops(cc)
		if li := largestLoop(loops); li >= 0 {
			regions[c].Polygon = loops[li]
			regions[c].Centroid = geom.Centroid(loops[li])
		}
		regions[c].Area = loopAreaSum(loops)
	}

	// Two regions are neighbors iff any of their seed points are
	// Delaunay-adjacent across the cluster border.
	adj := make([]map[int]bool, numClusters)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	for i, s := range seeds {
		for _, j := range neighbors[i] {
			o := seeds[j].Cluster
			if o == s.Cluster {
				continue
			}
			adj[s.Cluster][o] = true
			adj[o][s.Cluster] = true
		}
	}
	for c, set := range adj {
		nbs := make([]int, 0, len(set))
		for o := range set {
			nbs = append(nbs, o)
		}
		sort.Ints(nbs)
		regions[c].Neighbors = nbs
	}
	return regions
}

// buildContinents groups regions into continents: one continent per
// connected component of the region adjacency graph, with a connection
// recorded for every adjacent region pair of the component. Continent
// centers are the mean of member centroids.
func buildContinents(regions []*Region) []*Continent {
	var continents []*Continent
	visited := make([]bool, len(regions))
	for i := range regions {
		if visited[i] {
			continue
		}
		cont := &Continent{ID: len(continents)}
		queue := []int{i}
		visited[i] = true
		for len(queue) > 0 {
			r := queue[0]
			queue = queue[1:]
			cont.Regions = append(cont.Regions, r)
			regions[r].Continent = cont.ID
			for _, nb := range regions[r].Neighbors {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}

		var center [2]float64
		for _, r := range cont.Regions {
			center = geom.Add2(center, regions[r].Centroid)
			for _, nb := range regions[r].Neighbors {
				cont.AddConnection(r, nb, geom.Dist2(regions[r].Centroid, regions[nb].Centroid))
			}
		}
		cont.Center = geom.Scale2(center, 1/float64(len(cont.Regions)))
		continents = append(continents, cont)
	}
	return continents
}
