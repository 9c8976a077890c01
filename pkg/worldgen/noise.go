package worldgen

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Fixed fBm parameters. Not configurable — varying them would break the
// determinism contract for a fixed seed across versions.
const (
	fbmOctaves     = 12
	fbmFrequency   = 2.5
	fbmLacunarity  = 2.0
	fbmPersistence = 0.6
)

// noiseField samples fractal Brownian motion over Perlin noise at a fixed
// set of parameters, seeded from a 64-bit seed.
type noiseField struct {
	perlin    *perlin.Perlin
	frequency float64
}

// newNoiseField builds the fBm sampler for a given seed. go-perlin's
// NewPerlin already performs the octave summation (alpha is the
// per-octave amplitude falloff, i.e. persistence; beta is the per-octave
// frequency multiplier, i.e. lacunarity); the base frequency is applied by
// scaling the sampled coordinates, mirroring the convention the pack's
// other go-perlin consumers use (scale inputs by a frequency constant
// before calling Noise2D).
func newNoiseField(seed uint64) *noiseField {
	return &noiseField{
		perlin:    perlin.NewPerlin(fbmPersistence, fbmLacunarity, fbmOctaves, int64(seed)),
		frequency: fbmFrequency,
	}
}

// sample returns the fBm value at (x, y).
func (n *noiseField) sample(x, y float64) float64 {
	return n.perlin.Noise2D(x*n.frequency, y*n.frequency)
}

// newRNG builds the single seeded uniform PRNG shared by hydrology, lava,
// streets and content placement, in that consumption order.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// genRange draws an integer uniformly from the inclusive range [lo, hi].
// If hi < lo it returns lo.
func genRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// genBool flips a coin with probability p of returning true.
func genBool(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// deriveSubSeed mixes a seed drawn from the parent PRNG into the base seed,
// giving an independent-looking but fully deterministic sub-seed for a
// batch's local noise field.
func deriveSubSeed(seed uint64, rng *rand.Rand) uint64 {
	return seed + uint64(rng.Uint32())
}
