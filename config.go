package genregionmap

// Rect is an axis-aligned bounding rectangle with origin (X, Y) and
// dimensions (W, H). All generated geometry stays inside it.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns a new Rect with the given origin and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() [2]float64 {
	return [2]float64{r.X + r.W/2, r.Y + r.H/2}
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p [2]float64) bool {
	return p[0] >= r.X && p[0] <= r.X+r.W && p[1] >= r.Y && p[1] <= r.Y+r.H
}

// Clamp returns the point clamped into the rectangle.
func (r Rect) Clamp(p [2]float64) [2]float64 {
	if p[0] < r.X {
		p[0] = r.X
	} else if p[0] > r.X+r.W {
		p[0] = r.X + r.W
	}
	if p[1] < r.Y {
		p[1] = r.Y
	} else if p[1] > r.Y+r.H {
		p[1] = r.Y + r.H
	}
	return p
}

// Polygon returns the rectangle as a counter-clockwise 4-vertex polygon.
func (r Rect) Polygon() [][2]float64 {
	return [][2]float64{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Config is a struct that holds all configuration options for the map generation.
type Config struct {
	*GenConfig
	*LayoutConfig
	*NameConfig
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		GenConfig:    NewGenConfig(),
		LayoutConfig: NewLayoutConfig(),
		NameConfig:   NewNameConfig(),
	}
}

// GenConfig is a struct that holds all configuration options for the
// Voronoi-based region generation.
type GenConfig struct {
	Bounds                 Rect    // Outer bounds of the map
	NumClusters            int     // Number of generated clusters / regions
	PointsPerCluster       int     // Number of seed points per cluster
	ClusterSpread          float64 // Gaussian spread of points around a cluster center
	ClusterCenterScale     float64 // Fraction of the bounds used for cluster center placement
	MinDistance            float64 // Minimum distance between any two seed points
	MaxAttemptsPerPoint    int     // Sampling attempts before a point is clamp-accepted
	OverlapRelaxIterations int     // Pairwise repulsion passes for overlap resolution
	LloydIterations        int     // Number of Lloyd relaxation rounds
	UseVoronoi             bool    // Use the Voronoi pipeline (false selects the blob layout)
	UseFastTriangulator    bool    // Derive the neighbor graph via fogleman/delaunay
}

// NewGenConfig returns a new config for Voronoi-based region generation.
func NewGenConfig() *GenConfig {
	return &GenConfig{
		Bounds:                 NewRect(-5, -5, 10, 10),
		NumClusters:            5,
		PointsPerCluster:       10,
		ClusterSpread:          1.2,
		ClusterCenterScale:     0.7,
		MinDistance:            0.6,
		MaxAttemptsPerPoint:    32,
		OverlapRelaxIterations: 16,
		LloydIterations:        0,
		UseVoronoi:             true,
		UseFastTriangulator:    false,
	}
}

// LayoutConfig is a struct that holds all configuration options for the
// non-Voronoi blob-packing layout.
type LayoutConfig struct {
	NumContinents       int     // Number of generated continents
	RegionsPerContinent int     // Number of regions per continent
	RegionSpacing       float64 // Minimum distance between region centers
	BlobRadiusX         float64 // Horizontal sampling radius of a continent blob
	BlobRadiusY         float64 // Vertical sampling radius of a continent blob
	PackRelaxIterations int     // Repulsion / center-pull relaxation passes
	CenterPull          float64 // Pull factor toward the continent center per pass
	ContinentJitter     float64 // Jitter applied to grid-cell continent centers
	ExtraEdges          int     // Extra random intra-continent connections
	ExtraBridges        int     // Extra random inter-continent bridges
}

// NewLayoutConfig returns a new config for the blob-packing layout.
func NewLayoutConfig() *LayoutConfig {
	return &LayoutConfig{
		NumContinents:       4,
		RegionsPerContinent: 6,
		RegionSpacing:       0.8,
		BlobRadiusX:         1.6,
		BlobRadiusY:         1.2,
		PackRelaxIterations: 24,
		CenterPull:          0.05,
		ContinentJitter:     0.25,
		ExtraEdges:          2,
		ExtraBridges:        1,
	}
}

// NameConfig is a struct that holds all configuration options for the
// generated flavor metadata (names and biomes).
type NameConfig struct {
	GenerateNames  bool // Generate continent and region names
	GenerateBiomes bool // Tag regions with a Whittaker-mod biome
}

// NewNameConfig returns a new config for flavor metadata generation.
func NewNameConfig() *NameConfig {
	return &NameConfig{
		GenerateNames:  true,
		GenerateBiomes: true,
	}
}
