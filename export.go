package genregionmap

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
	geojson "github.com/paulmach/go.geojson"
)

// exportImageSize is the pixel width of exported PNGs; the height
// follows the bounds aspect ratio.
const exportImageSize = 1024

// ExportPNG renders the map to a PNG file.
func (m *Map) ExportPNG(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, m.RenderImage())
}

// RenderImage renders the map to an image: region polygons filled by
// continent color, with the connection graph drawn on top.
func (m *Map) RenderImage() image.Image {
	scale := exportImageSize / m.Bounds.W
	width := exportImageSize
	height := int(m.Bounds.H * scale)

	// Map coordinates to pixels; the y axis flips so +y is up.
	toPixel := func(p [2]float64) (float64, float64) {
		return (p[0] - m.Bounds.X) * scale, float64(height) - (p[1]-m.Bounds.Y)*scale
	}

	dest := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(dest)

	// White background.
	gc.SetFillColor(color.RGBA{255, 255, 255, 255})
	gc.BeginPath()
	gc.MoveTo(0, 0)
	gc.LineTo(float64(width), 0)
	gc.LineTo(float64(width), float64(height))
	gc.LineTo(0, float64(height))
	gc.Close()
	gc.Fill()

	cols := colorgrad.Rainbow().Colors(uint(len(m.Continents)))
	gc.SetLineWidth(2)
	for _, r := range m.Regions {
		if len(r.Polygon) < 3 {
			continue
		}
		var fill color.Color = color.RGBA{128, 128, 128, 255}
		if r.Continent >= 0 && r.Continent < len(cols) {
			fill = cols[r.Continent]
		}
		gc.SetFillColor(fill)
		gc.SetStrokeColor(color.RGBA{32, 32, 32, 255})
		gc.BeginPath()
		x, y := toPixel(r.Polygon[0])
		gc.MoveTo(x, y)
		for _, p := range r.Polygon[1:] {
			x, y = toPixel(p)
			gc.LineTo(x, y)
		}
		gc.Close()
		gc.FillStroke()
	}

	// Draw the connection graph on top.
	gc.SetStrokeColor(color.RGBA{0, 0, 0, 255})
	gc.SetLineWidth(1)
	for _, cont := range m.Continents {
		for _, conn := range cont.Connections {
			ax, ay := toPixel(m.Regions[conn.RegionA].Centroid)
			bx, by := toPixel(m.Regions[conn.RegionB].Centroid)
			gc.BeginPath()
			gc.MoveTo(ax, ay)
			gc.LineTo(bx, by)
			gc.Stroke()
		}
	}
	return dest
}

// ExportGeoJSON returns all regions as a GeoJSON feature collection of
// polygons, with name, continent, biome, and area properties.
func (m *Map) ExportGeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, r := range m.Regions {
		if len(r.Polygon) < 3 {
			continue
		}
		ring := make([][]float64, 0, len(r.Polygon)+1)
		for _, p := range r.Polygon {
			ring = append(ring, []float64{p[0], p[1]})
		}
		ring = append(ring, ring[0]) // GeoJSON rings close explicitly.

		f := geojson.NewPolygonFeature([][][]float64{ring})
		f.SetProperty("id", r.ID)
		f.SetProperty("name", r.Name)
		f.SetProperty("continent", r.Continent)
		f.SetProperty("biome", r.BiomeString())
		f.SetProperty("area", r.Area)
		f.SetProperty("neighbors", len(r.Neighbors))
		fc.AddFeature(f)
	}
	return fc.MarshalJSON()
}

// ExportGeoJSONConnections returns the connection graph as a GeoJSON
// feature collection of line strings between region centroids.
func (m *Map) ExportGeoJSONConnections() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, cont := range m.Continents {
		for _, conn := range cont.Connections {
			a := m.Regions[conn.RegionA].Centroid
			b := m.Regions[conn.RegionB].Centroid
			f := geojson.NewLineStringFeature([][]float64{
				{a[0], a[1]},
				{b[0], b[1]},
			})
			f.SetProperty("continent", cont.ID)
			f.SetProperty("regionA", conn.RegionA)
			f.SetProperty("regionB", conn.RegionB)
			f.SetProperty("distance", conn.Distance)
			fc.AddFeature(f)
		}
	}
	return fc.MarshalJSON()
}
