package genregionmap

import (
	"github.com/Flokey82/genbiome"
	"github.com/mapforge/genregionmap/noise"
)

// Noise octave settings for the elevation and moisture fields used to
// tag regions with a biome.
const (
	biomeNoiseOctaves     = 5
	biomeNoisePersistence = 0.6
)

// assignBiomes tags every region with a Whittaker-mod biome derived
// from octave noise sampled at the region centroid: one field stands in
// for elevation-driven temperature, one for moisture. This is flavor
// metadata only; it never feeds back into the geometry.
func (m *Map) assignBiomes() {
	elev := noise.NewNoise(biomeNoiseOctaves, biomeNoisePersistence, m.Seed)
	mois := noise.NewNoise(biomeNoiseOctaves, biomeNoisePersistence, m.Seed+1)

	// Normalize centroids into unit space so the noise frequency is
	// independent of the bounds dimensions.
	for _, r := range m.Regions {
		nx := (r.Centroid[0] - m.Bounds.X) / m.Bounds.W
		ny := (r.Centroid[1] - m.Bounds.Y) / m.Bounds.H

		e := elev.Eval2(nx*4, ny*4)
		w := mois.Eval2(nx*4, ny*4)

		temp := float64(genbiome.MinTemperatureC) +
			(float64(genbiome.MaxTemperatureC)-float64(genbiome.MinTemperatureC))*(1-e)
		precip := w * float64(genbiome.MaxPrecipitationDM)
		r.Biome = genbiome.GetWhittakerModBiome(int(temp), int(precip))
	}
}
