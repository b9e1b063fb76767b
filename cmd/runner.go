package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/mapforge/genregionmap"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")

var (
	seed             int64 = 12345
	numClusters            = 5
	pointsPerCluster       = 10
	lloyd                  = 0
	useVoronoi             = true
	outPNG                 = "map.png"
	outGeoJSON             = ""
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the map seed")
	flag.IntVar(&numClusters, "num_clusters", numClusters, "number of clusters / regions")
	flag.IntVar(&pointsPerCluster, "points_per_cluster", pointsPerCluster, "seed points per cluster")
	flag.IntVar(&lloyd, "lloyd", lloyd, "Lloyd relaxation iterations")
	flag.BoolVar(&useVoronoi, "voronoi", useVoronoi, "use the Voronoi pipeline")
	flag.StringVar(&outPNG, "png", outPNG, "output PNG file (empty to skip)")
	flag.StringVar(&outGeoJSON, "geojson", outGeoJSON, "output GeoJSON file (empty to skip)")
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := genregionmap.NewConfig()
	cfg.NumClusters = numClusters
	cfg.PointsPerCluster = pointsPerCluster
	cfg.LloydIterations = lloyd
	cfg.UseVoronoi = useVoronoi

	m, err := genregionmap.NewMapFromConfig(seed, cfg)
	if err != nil {
		log.Fatal(err)
	}

	for _, cont := range m.Continents {
		log.Println(cont)
		for _, r := range cont.Regions {
			reg := m.Regions[r]
			log.Printf("  %s: area %.2f, %d neighbors, biome %s", reg, reg.Area, len(reg.Neighbors), reg.BiomeString())
		}
	}

	if outPNG != "" {
		if err := m.ExportPNG(outPNG); err != nil {
			log.Fatal(err)
		}
	}
	if outGeoJSON != "" {
		data, err := m.ExportGeoJSON()
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(outGeoJSON, data, 0644); err != nil {
			log.Fatal(err)
		}
	}
}
