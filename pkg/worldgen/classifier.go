package worldgen

import "math/rand"

// normalize maps a raw fBm sample onto [-1, 1] independently for its sign:
// positive samples are divided by the observed max, negative samples by the
// observed min, so each half of the range spans its own observed extreme.
func normalize(v float64, hm Heightmap) float64 {
	if v > 0 {
		if hm.Max == 0 {
			return 0
		}
		return v / hm.Max
	}
	if v < 0 {
		if hm.Min == 0 {
			return 0
		}
		return -v / hm.Min
	}
	return 0
}

// classify maps one normalized sample to a terrain kind using the configured
// bands. A sample inside exactly one band resolves directly. A sample
// falling in more than one band (overlapping configuration) ties to
// DeepWater over ShallowWater, else to the first-listed band. A sample
// inside no band falls back to the terrain whose band midpoint is nearest
// (absolute difference). A tie with Grass's midpoint resolves to Grass; a
// tie between other bands resolves to the first-listed of them.
func classify(v float64, opts TileTypeOptions) TerrainKind {
	bands := opts.bands()

	var matched []TerrainKind
	for _, b := range bands {
		if b.band.Contains(v) {
			matched = append(matched, b.kind)
		}
	}
	if len(matched) > 0 {
		for _, k := range matched {
			if k == DeepWater {
				return DeepWater
			}
		}
		return matched[0]
	}

	best := Grass
	bestDist := abs(v - opts.Grass.Mid())
	for _, b := range bands {
		if b.kind == Grass {
			continue
		}
		dist := abs(v - b.band.Mid())
		if dist < bestDist {
			bestDist = dist
			best = b.kind
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// elevationOf converts a normalized sample to the non-negative elevation
// stored on a water tile.
func elevationOf(v float64, multiplier float64) int {
	e := int((v + 1) * multiplier)
	if e < 0 {
		e = 0
	}
	return e
}

// classifyGrid builds the initial grid from a heightmap: every cell's raw
// sample is normalized and classified into a terrain kind, water cells get
// an immediate Water content draw and an elevation from their normalized
// sample, and every other cell keeps elevation 0. Later passes (hydrology, lava, streets) may
// overwrite non-water cells; water cells are never revisited.
func classifyGrid(hm Heightmap, opts TileTypeOptions, multiplier float64, rng *rand.Rand) Grid {
	size := len(hm.H)
	g := NewGrid(size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			raw := hm.H[y][x]
			v := normalize(raw, hm)
			kind := classify(v, opts)
			terrain := NewTerrain(kind)

			content := Content{Kind: ContentNone}
			elevation := 0
			if terrain.IsWater() {
				content = NewContent(ContentWater, genRange(rng, 0, ContentWater.MaxValue()-1))
				elevation = elevationOf(v, multiplier)
			}

			g[y][x] = NewTile(terrain, content, elevation)
		}
	}
	return g
}
