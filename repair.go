package genregionmap

import (
	"log"

	"github.com/mapforge/genregionmap/geom"
)

// maxRepairPasses bounds the cluster repair loop; in practice a fixed
// point is reached in one or two passes.
const maxRepairPasses = 3

// repairClusterAssignment detects clusters whose seed points do not
// form a connected subgraph under Delaunay adjacency and reassigns the
// stray components. Per cluster, connected components are found by
// breadth-first search over same-cluster edges; the largest component
// keeps the cluster id and every other component is moved to the
// spatially nearest other non-empty cluster (by centroid distance).
// This repeats until no cluster needs repair or the pass cap is hit.
//
// The function returns a fresh assignment array (seed index to cluster
// id) and does not touch the seeds, so the relabeling step stays
// auditable on its own.
func repairClusterAssignment(seeds []SeedPoint, neighbors [][]int, numClusters int) []int {
	assign := make([]int, len(seeds))
	for i, s := range seeds {
		assign[i] = s.Cluster
	}

	for pass := 0; pass < maxRepairPasses; pass++ {
		changed := false
		for c := 0; c < numClusters; c++ {
			comps := clusterComponents(assign, neighbors, c)
			if len(comps) <= 1 {
				continue
			}

			// Keep the largest component; ties keep the first found.
			largest := 0
			for i, comp := range comps {
				if len(comp) > len(comps[largest]) {
					largest = i
				}
			}
			for i, comp := range comps {
				if i == largest {
					continue
				}
				target := nearestOtherCluster(seeds, assign, comp, c, numClusters)
				if target < 0 {
					continue
				}
				for _, p := range comp {
					assign[p] = target
				}
				changed = true
				log.Printf("cluster %d: moved disconnected component of %d points to cluster %d", c, len(comp), target)
			}
		}
		if !changed {
			break
		}
	}
	return assign
}

// clusterComponents returns the connected components of the given
// cluster's points under Delaunay adjacency restricted to same-cluster
// points.
func clusterComponents(assign []int, neighbors [][]int, cluster int) [][]int {
	visited := make(map[int]bool)
	var comps [][]int
	for i := range assign {
		if assign[i] != cluster || visited[i] {
			continue
		}
		var comp []int
		queue := []int{i}
		visited[i] = true
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			comp = append(comp, p)
			for _, nb := range neighbors[p] {
				if assign[nb] != cluster || visited[nb] {
					continue
				}
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// nearestOtherCluster returns the non-empty cluster (other than the
// origin) whose centroid is closest to the component's centroid, or -1
// if no such cluster exists.
func nearestOtherCluster(seeds []SeedPoint, assign []int, comp []int, origin, numClusters int) int {
	var compCentroid [2]float64
	for _, p := range comp {
		compCentroid = geom.Add2(compCentroid, seeds[p].Pos)
	}
	compCentroid = geom.Scale2(compCentroid, 1/float64(len(comp)))

	centroids := make([][2]float64, numClusters)
	counts := make([]int, numClusters)
	for i, c := range assign {
		centroids[c] = geom.Add2(centroids[c], seeds[i].Pos)
		counts[c]++
	}

	best := -1
	bestDist := 0.0
	for c := 0; c < numClusters; c++ {
		if c == origin || counts[c] == 0 {
			continue
		}
		centroid := geom.Scale2(centroids[c], 1/float64(counts[c]))
		d := geom.Dist2(compCentroid, centroid)
		if best < 0 || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
