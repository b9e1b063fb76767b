// Package noise wraps opensimplex with octave summation for the field
// sampling used by biome tagging.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise is a seeded multi-octave noise field. Values from Eval2 are
// normalized to roughly [0, 1].
type Noise struct {
	Octaves     int
	Persistence float64
	Seed        int64
	OS          opensimplex.Noise

	amplitudes []float64
	ampSum     float64
}

// NewNoise returns a new Noise with the given number of octaves,
// persistence, and seed.
func NewNoise(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Seed:        seed,
		OS:          opensimplex.NewNormalized(seed),
		amplitudes:  make([]float64, octaves),
	}
	for i := range n.amplitudes {
		n.amplitudes[i] = math.Pow(persistence, float64(i))
		n.ampSum += n.amplitudes[i]
	}
	return n
}

// Eval2 returns the noise value at the given point.
func (n *Noise) Eval2(x, y float64) float64 {
	var sum float64
	for octave := 0; octave < n.Octaves; octave++ {
		freq := float64(int(1) << octave)
		sum += n.amplitudes[octave] * n.OS.Eval2(x*freq, y*freq)
	}
	return sum / n.ampSum
}
