package genregionmap

import "github.com/mapforge/genregionmap/geom"

// voronoiCell returns the bounded Voronoi cell of the site: the convex
// polygon of points closer to it than to any of its Delaunay neighbors,
// intersected with the bounds rectangle. The result is cleaned and has
// counter-clockwise winding; nil means the cell clipped away entirely.
func voronoiCell(site [2]float64, neighbors [][2]float64, bounds Rect) [][2]float64 {
	cell := bounds.Polygon()
	for _, nb := range neighbors {
		// Clip against the perpendicular bisector, keeping the side
		// containing the site.
		mid := geom.MidPoint2(site, nb)
		normal := geom.Normalize2(geom.Sub2(site, nb))
		cell = geom.ClipHalfPlane(cell, mid, normal)
		if cell == nil {
			return nil
		}
	}
	return geom.CleanPolygon(cell)
}

// buildVoronoiCells returns one cell polygon per seed point, derived
// from the Delaunay neighbor graph. Seeds without neighbors (fewer than
// 3 input points, or isolated ones) claim the whole bounds rectangle.
func buildVoronoiCells(seeds []SeedPoint, neighbors [][]int, bounds Rect) [][][2]float64 {
	cells := make([][][2]float64, len(seeds))
	nbPts := make([][2]float64, 0, 8)
	for i, s := range seeds {
		nbPts = nbPts[:0]
		for _, j := range neighbors[i] {
			nbPts = append(nbPts, seeds[j].Pos)
		}
		cells[i] = voronoiCell(s.Pos, nbPts, bounds)
	}
	return cells
}
