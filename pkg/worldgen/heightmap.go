package worldgen

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/worldgen/pkg/logging"
)

// Heightmap is the raw fBm sample grid produced by buildHeightmap, together
// with the observed extremes used by the classifier's per-half
// normalization.
type Heightmap struct {
	H        [][]float64
	Min, Max float64
}

// buildHeightmap samples the seeded fBm field at every cell of a size×size
// grid. No boundary wrapping: cell (y, x) samples fbm(x/size, y/size).
func buildHeightmap(seed uint64, size int, logger *logrus.Logger) Heightmap {
	field := newNoiseField(seed)

	h := make([][]float64, size)
	min, max := initialMin, initialMax

	for y := 0; y < size; y++ {
		h[y] = make([]float64, size)
		for x := 0; x < size; x++ {
			nx := float64(x) / float64(size)
			ny := float64(y) / float64(size)
			v := field.sample(nx, ny)
			h[y][x] = v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	if logger != nil {
		logging.ComponentLogger(logger, "heightmap").WithFields(logrus.Fields{
			"size": size,
			"min":  min,
			"max":  max,
		}).Debug("heightmap generated")
	}

	return Heightmap{H: h, Min: min, Max: max}
}

// Sentinel bounds narrowed on the first sampled cell.
const (
	initialMin = 1.0 << 30
	initialMax = -1.0 << 30
)
