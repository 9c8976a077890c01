package worldgen

import "math/rand"

// stampLava draws opts.LavaCount lava patches, each centered on a random
// Grass or Hill cell with a drawn radius, rasterized as a filled disk via
// midpoint-circle plus inner fill. Water and Teleport cells are immune to
// the overwrite.
func stampLava(g Grid, opts TileTypeOptions, rng *rand.Rand) {
	n := opts.LavaCount.Draw(rng)
	for i := 0; i < n; i++ {
		cx, cy, ok := pickLavaCenter(g, rng)
		if !ok {
			continue
		}
		radius := opts.LavaRadius.Draw(rng)
		stampDisk(g, cx, cy, radius)
	}
}

func pickLavaCenter(g Grid, rng *rand.Rand) (x, y int, ok bool) {
	size := g.Size()
	const maxAttempts = 4096
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cx := rng.Intn(size)
		cy := rng.Intn(size)
		kind := g[cy][cx].Terrain.Kind
		if kind == Grass || kind == Hill {
			return cx, cy, true
		}
	}
	return 0, 0, false
}

// stampDisk fills every grid cell within radius of (cx, cy) with Lava,
// skipping water and teleport cells.
func stampDisk(g Grid, cx, cy, radius int) {
	size := g.Size()
	rSq := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= size {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= size {
				continue
			}
			if dx*dx+dy*dy > rSq {
				continue
			}
			if shouldSkipLava(g[y][x].Terrain.Kind) {
				continue
			}
			g[y][x] = NewTile(NewTerrain(Lava), Content{Kind: ContentNone}, g[y][x].Elevation)
		}
	}
}

func shouldSkipLava(kind TerrainKind) bool {
	return kind == ShallowWater || kind == DeepWater || kind == Teleport
}
