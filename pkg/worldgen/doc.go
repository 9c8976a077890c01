// Package worldgen generates deterministic 2D tile-based worlds for a
// simulated-robotics host.
//
// Given a seed and a compact configuration, Generator produces a square
// grid of tiles — each carrying a terrain class, an optional content item
// and an elevation — together with a spawn position and environmental
// conditions. Two modes are supported: terrain mode (fractal-noise
// heightmap biomed into terrain, then carved with rivers, lava and
// streets, then seeded with content) and maze mode (a perfect maze whose
// corridors are biomed by the same noise function).
//
// # Determinism
//
// A generation is fully determined by (seed, size, options, maze,
// heightMultiplier). The order in which the shared PRNG is consumed
// across passes is part of the contract: heightmap construction draws no
// uniform PRNG values, classification draws one uniform per water cell,
// and hydrology, lava, streets and content placement share a single
// PRNG seeded from the configured seed, consumed in that order.
//
// # Usage
//
//	gen, err := worldgen.NewBuilder().
//	    SetSeed(451).
//	    SetSize(256).
//	    SetTileTypeOptionsFromPreset(worldgen.TileTypePresetDefault).
//	    SetContentOptionsFromPreset(worldgen.ContentPresetDefault).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	world, err := gen.Generate(nil)
package worldgen
