package main

import (
	"flag"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mapforge/genregionmap"
)

var regionmap *genregionmap.Map

var (
	seed             int64 = 12345
	numClusters            = 5
	pointsPerCluster       = 10
	lloyd                  = 0
	addr                   = ":3333"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the map seed")
	flag.IntVar(&numClusters, "num_clusters", numClusters, "number of clusters / regions")
	flag.IntVar(&pointsPerCluster, "points_per_cluster", pointsPerCluster, "seed points per cluster")
	flag.IntVar(&lloyd, "lloyd", lloyd, "Lloyd relaxation iterations")
	flag.StringVar(&addr, "addr", addr, "listen address")
}

func main() {
	flag.Parse()

	cfg := genregionmap.NewConfig()
	cfg.NumClusters = numClusters
	cfg.PointsPerCluster = pointsPerCluster
	cfg.LloydIterations = lloyd

	m, err := genregionmap.NewMapFromConfig(seed, cfg)
	if err != nil {
		log.Fatal(err)
	}
	regionmap = m

	router := mux.NewRouter()
	router.HandleFunc("/geojson_regions", geoJSONRegionsHandler)
	router.HandleFunc("/geojson_regions/{x1}/{y1}/{x2}/{y2}", geoJSONRegionsBBoxHandler)
	router.HandleFunc("/geojson_connections", geoJSONConnectionsHandler)
	router.HandleFunc("/png", pngHandler)
	log.Fatal(http.ListenAndServe(addr, router))
}

func geoJSONRegionsHandler(res http.ResponseWriter, req *http.Request) {
	data, err := regionmap.ExportGeoJSON()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/geo+json")
	res.Write(data)
}

// geoJSONRegionsBBoxHandler lists the region ids whose centroid falls
// in the requested rectangle.
func geoJSONRegionsBBoxHandler(res http.ResponseWriter, req *http.Request) {
	rect, err := parseRect(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	ids := regionmap.GetRegionsInRect(rect)
	res.Header().Set("Content-Type", "application/json")
	out := "["
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += strconv.Itoa(id)
	}
	out += "]"
	res.Write([]byte(out))
}

func geoJSONConnectionsHandler(res http.ResponseWriter, req *http.Request) {
	data, err := regionmap.ExportGeoJSONConnections()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/geo+json")
	res.Write(data)
}

func pngHandler(res http.ResponseWriter, req *http.Request) {
	img := regionmap.RenderImage()
	res.Header().Set("Content-Type", "image/png")
	if err := png.Encode(res, img); err != nil {
		log.Println(err)
	}
}

func parseRect(req *http.Request) (genregionmap.Rect, error) {
	vars := mux.Vars(req)
	x1, err := strconv.ParseFloat(vars["x1"], 64)
	if err != nil {
		return genregionmap.Rect{}, err
	}
	y1, err := strconv.ParseFloat(vars["y1"], 64)
	if err != nil {
		return genregionmap.Rect{}, err
	}
	x2, err := strconv.ParseFloat(vars["x2"], 64)
	if err != nil {
		return genregionmap.Rect{}, err
	}
	y2, err := strconv.ParseFloat(vars["y2"], 64)
	if err != nil {
		return genregionmap.Rect{}, err
	}
	return genregionmap.NewRect(x1, y1, x2-x1, y2-y1), nil
}
