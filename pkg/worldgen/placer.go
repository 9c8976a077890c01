package worldgen

import (
	"math"
	"math/rand"
)

// BatchDistance keeps the batched spawner's implied batch count from
// overshooting when radius is small. Exported, matching the other named
// tunable constants' module shape.
const BatchDistance = 12.0

// ContentOptionEntry pairs one content kind with its placement options.
// Content placement iterates an ordered sequence of these, and that order
// is part of the determinism contract: the same sequence and seed always
// place content in the same order.
type ContentOptionEntry struct {
	Kind    ContentKind
	Options ContentOptions
}

// terrainFractions computes P[terrain] = fraction of grid cells with that
// terrain, precomputed once before content placement.
func terrainFractions(g Grid) map[TerrainKind]float64 {
	size := g.Size()
	counts := make(map[TerrainKind]int)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			counts[g[y][x].Terrain.Kind]++
		}
	}
	total := float64(size * size)
	fractions := make(map[TerrainKind]float64, len(counts))
	for k, c := range counts {
		fractions[k] = float64(c) / total
	}
	return fractions
}

// allTerrainKinds lists every terrain kind, used to sum holdable fraction.
var allTerrainKinds = []TerrainKind{
	DeepWater, ShallowWater, Sand, Grass, Hill, Mountain, Snow,
	Lava, Street, Wall, Teleport,
}

// holdableFraction sums P[t] over every terrain kind that can hold c.
func holdableFraction(fractions map[TerrainKind]float64, c ContentKind) float64 {
	sum := 0.0
	for _, t := range allTerrainKinds {
		tc := TerrainClass{Kind: t}
		if tc.CanHold(c) {
			sum += fractions[t]
		}
	}
	return sum
}

// placeContent runs the content placer over the whole sequence, in order.
// Entries with IsPresent=false or non-positive effective fraction are
// skipped.
func placeContent(g Grid, seed uint64, rng *rand.Rand, sequence []ContentOptionEntry) {
	fractions := terrainFractions(g)

	for _, entry := range sequence {
		opts := entry.Options
		holdable := holdableFraction(fractions, entry.Kind)
		effective := holdable * opts.Percentage

		if !opts.IsPresent || effective <= 0 {
			continue
		}

		if opts.InBatches {
			placeBatched(g, seed, rng, entry.Kind, opts, effective)
		} else {
			placeRandom(g, rng, entry.Kind, opts, effective)
		}
	}
}

// randomSpawnCount computes the random spawner's placement count.
func randomSpawnCount(rng *rand.Rand, size int, opts ContentOptions, effective float64) int {
	if opts.WithMaxSpawnNumber {
		return opts.MaxSpawnNumber
	}
	hi := opts.MinSpawnNumber
	if byArea := int(float64(size*size) * effective); byArea > hi {
		hi = byArea
	}
	return genRange(rng, opts.MinSpawnNumber, hi)
}

// placeRandom redraws random cells until a holdable one is found, count
// times, and places kind there with a uniformly drawn scalar.
func placeRandom(g Grid, rng *rand.Rand, kind ContentKind, opts ContentOptions, effective float64) {
	size := g.Size()
	count := randomSpawnCount(rng, size, opts, effective)

	for i := 0; i < count; i++ {
		x, y, ok := findHoldableCell(g, rng, kind)
		if !ok {
			continue
		}
		setContent(g, x, y, kind, rng)
	}
}

func findHoldableCell(g Grid, rng *rand.Rand, kind ContentKind) (x, y int, ok bool) {
	size := g.Size()
	const maxAttempts = 4096
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cx := rng.Intn(size)
		cy := rng.Intn(size)
		if g[cy][cx].Terrain.CanHold(kind) {
			return cx, cy, true
		}
	}
	return 0, 0, false
}

func setContent(g Grid, x, y int, kind ContentKind, rng *rand.Rand) {
	max := kind.MaxValue()
	if max == 0 {
		g[y][x].Content = NewEmptyContent(kind)
		return
	}
	g[y][x].Content = NewContent(kind, genRange(rng, 0, max))
}

// batchCount computes the batched spawner's implied batch count.
func batchCount(size int, radius int, effective float64) int {
	area := float64(size*size) * effective
	denom := math.Pi*float64(radius*radius) + BatchDistance
	return int(area / denom)
}

// placeBatched draws a radius and batch count, then for each batch synthesizes
// a local fBm sub-field and biases placement toward its center and noise
// value.
func placeBatched(g Grid, seed uint64, rng *rand.Rand, kind ContentKind, opts ContentOptions, effective float64) {
	radius := opts.MaxRadius
	if radius < 1 {
		radius = 1
	}

	count := batchCount(g.Size(), radius, effective)
	for b := 0; b < count; b++ {
		cx, cy, ok := findHoldableCell(g, rng, kind)
		if !ok {
			continue
		}
		placeOneBatch(g, seed, rng, kind, cx, cy, radius)
	}
}

func placeOneBatch(g Grid, seed uint64, rng *rand.Rand, kind ContentKind, cx, cy, radius int) {
	subSeed := deriveSubSeed(seed, rng)
	field := newNoiseField(subSeed)

	d := 2 * radius
	center := float64(d) / 2

	b := make([][]float64, d)
	bmin, bmax := initialMin, initialMax
	for i := 0; i < d; i++ {
		b[i] = make([]float64, d)
		for j := 0; j < d; j++ {
			v := field.sample(float64(i)/float64(d), float64(j)/float64(d))
			b[i][j] = v
			if v < bmin {
				bmin = v
			}
			if v > bmax {
				bmax = v
			}
		}
	}

	size := g.Size()
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			di, dj := float64(i)-center, float64(j)-center
			distToCenter := math.Sqrt(di*di + dj*dj)
			if distToCenter > float64(radius) {
				continue
			}

			gx := cx + (i - radius)
			gy := cy + (j - radius)
			if gx < 0 || gx >= size || gy < 0 || gy >= size {
				continue
			}

			pn := 0.0
			if bmax > bmin {
				pn = (b[i][j] - bmin) / (bmax - bmin)
			}
			pd := distToCenter / (float64(d) / 2)

			if !genBool(rng, (pn+pd)/2) {
				continue
			}
			if !g[gy][gx].Terrain.CanHold(kind) {
				continue
			}
			setContent(g, gx, gy, kind, rng)
		}
	}
}
