package worldgen

import "testing"

func TestNormalizePositiveAndNegative(t *testing.T) {
	hm := Heightmap{Min: -2, Max: 4}
	if v := normalize(2, hm); v != 0.5 {
		t.Errorf("normalize(2) = %v, want 0.5", v)
	}
	if v := normalize(-1, hm); v != -0.5 {
		t.Errorf("normalize(-1) = %v, want -0.5", v)
	}
	if v := normalize(0, hm); v != 0 {
		t.Errorf("normalize(0) = %v, want 0", v)
	}
}

func TestClassifyDirectBandMatch(t *testing.T) {
	opts := TileTypePresetDefault.Resolve()
	if got := classify(-0.8, opts); got != DeepWater {
		t.Errorf("classify(-0.8) = %v, want DeepWater", got)
	}
	if got := classify(0.95, opts); got != Snow {
		t.Errorf("classify(0.95) = %v, want Snow", got)
	}
}

func TestClassifyDeepShallowTieBreak(t *testing.T) {
	opts := TileTypeOptions{
		DeepWater:    FloatRange{-1.0, -0.3},
		ShallowWater: FloatRange{-0.4, -0.2},
		Sand:         FloatRange{-0.2, 0},
		Grass:        FloatRange{0, 0.3},
		Hill:         FloatRange{0.3, 0.6},
		Mountain:     FloatRange{0.6, 0.85},
		Snow:         FloatRange{0.85, 1.0},
	}
	// -0.32 falls in both DeepWater [-1,-0.3] and ShallowWater [-0.4,-0.2].
	if got := classify(-0.32, opts); got != DeepWater {
		t.Errorf("classify(-0.32) in overlap = %v, want DeepWater (tie-break)", got)
	}
}

func TestClassifyFallbackNearestMidpoint(t *testing.T) {
	opts := TileTypeOptions{
		DeepWater:    FloatRange{-1.0, -0.9},
		ShallowWater: FloatRange{-0.89, -0.8},
		Sand:         FloatRange{-0.79, -0.7},
		Grass:        FloatRange{-0.69, -0.6},
		Hill:         FloatRange{-0.59, -0.5},
		Mountain:     FloatRange{-0.49, -0.4},
		Snow:         FloatRange{0.9, 1.0},
	}
	// 0.5 lies in no band; nearest midpoint should be Snow (mid 0.95) vs others far away.
	if got := classify(0.5, opts); got != Snow {
		t.Errorf("classify(0.5) fallback = %v, want Snow", got)
	}
}

func TestClassifyFallbackTieBreaksToGrass(t *testing.T) {
	opts := TileTypeOptions{
		DeepWater:    FloatRange{-1.0, -0.9},
		ShallowWater: FloatRange{-0.89, -0.8},
		Sand:         FloatRange{-0.79, -0.7},
		Grass:        FloatRange{-0.1, 0.1},
		Hill:         FloatRange{0.25, 0.375},
		Mountain:     FloatRange{0.625, 0.75},
		Snow:         FloatRange{0.9, 1.0},
	}
	// 0.5 lies in no band; Hill mid=0.3125 and Mountain mid=0.6875 tie at
	// distance 0.1875 (all exact in float64), both closer than Grass (mid=0,
	// distance 0.5): first-listed non-Grass band wins the tie (Hill, before
	// Mountain in band order).
	if got := classify(0.5, opts); got != Hill {
		t.Errorf("classify(0.5) non-Grass tie = %v, want Hill (first-listed)", got)
	}

	// Construct a direct tie against Grass: Grass mid=0, Hill mid=0.4 ->
	// v=0.2 is equidistant (0.2 from each). Grass must win the tie.
	tieOpts := opts
	tieOpts.Hill = FloatRange{0.39, 0.41}
	if got := classify(0.2, tieOpts); got != Grass {
		t.Errorf("classify(0.2) tie between Grass and Hill = %v, want Grass", got)
	}
}

func TestElevationOfNonNegative(t *testing.T) {
	if e := elevationOf(-1, 10); e != 0 {
		t.Errorf("elevationOf(-1, 10) = %d, want 0", e)
	}
	if e := elevationOf(1, 10); e != 20 {
		t.Errorf("elevationOf(1, 10) = %d, want 20", e)
	}
}

func TestClassifyGridCoversEveryCellAndElevationOnlyOnWater(t *testing.T) {
	hm := buildHeightmap(7, 24, nil)
	opts := TileTypePresetDefault.Resolve()
	rng := newRNG(7)
	g := classifyGrid(hm, opts, 10, rng)

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			tile := g[y][x]
			if tile.Terrain.Kind < DeepWater || tile.Terrain.Kind > Snow {
				t.Fatalf("cell (%d,%d) has unexpected terrain %v", x, y, tile.Terrain.Kind)
			}
			if !tile.Terrain.IsWater() && tile.Elevation != 0 {
				t.Fatalf("non-water cell (%d,%d) has nonzero elevation %d", x, y, tile.Elevation)
			}
			if tile.Terrain.IsWater() && tile.Content.Kind != ContentWater {
				t.Fatalf("water cell (%d,%d) missing Water content", x, y)
			}
		}
	}
}
