package genregionmap

import (
	goastar "github.com/beefsack/go-astar"
	"github.com/mapforge/genregionmap/geom"
)

// routeNode adapts a region to the astar Pather interface. Nodes are
// cached per search so that the same region always maps to the same
// Pather value.
type routeNode struct {
	m       *Map
	id      int
	getNode func(id int) *routeNode
}

// PathNeighbors returns the direct neighboring nodes of this node which
// can be pathed to.
func (n *routeNode) PathNeighbors() []goastar.Pather {
	nbs := make([]goastar.Pather, 0, len(n.m.Regions[n.id].Neighbors))
	for _, i := range n.m.Regions[n.id].Neighbors {
		nbs = append(nbs, n.getNode(i))
	}
	return nbs
}

// PathNeighborCost calculates the exact movement cost to neighbor nodes.
func (n *routeNode) PathNeighborCost(to goastar.Pather) float64 {
	return geom.Dist2(n.m.Regions[n.id].Centroid, n.m.Regions[to.(*routeNode).id].Centroid)
}

// PathEstimatedCost is a heuristic method for estimating movement costs
// between non-adjacent nodes.
func (n *routeNode) PathEstimatedCost(to goastar.Pather) float64 {
	return geom.Dist2(n.m.Regions[n.id].Centroid, n.m.Regions[to.(*routeNode).id].Centroid)
}

// FindRoute returns the shortest route between two regions over the
// adjacency graph as a list of region ids from a to b, with its total
// centroid distance. found is false if the regions are not connected.
func (m *Map) FindRoute(a, b int) ([]int, float64, bool) {
	if m.GetRegion(a) == nil || m.GetRegion(b) == nil {
		return nil, 0, false
	}
	cache := make(map[int]*routeNode)
	var getNode func(id int) *routeNode
	getNode = func(id int) *routeNode {
		if n, ok := cache[id]; ok {
			return n
		}
		n := &routeNode{m: m, id: id, getNode: getNode}
		cache[id] = n
		return n
	}

	path, dist, found := goastar.Path(getNode(a), getNode(b))
	if !found {
		return nil, 0, false
	}
	ids := make([]int, 0, len(path))
	for _, p := range path {
		ids = append(ids, p.(*routeNode).id)
	}
	// astar yields the path ending at the start node; flip it so the
	// result runs from a to b.
	if len(ids) > 0 && ids[0] != a {
		for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
			ids[i], ids[j] = ids[j], ids[i]
		}
	}
	return ids, dist, true
}
