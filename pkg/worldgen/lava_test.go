package worldgen

import "testing"

func TestStampDiskSkipsWaterAndTeleport(t *testing.T) {
	g := NewGrid(9)
	g[4][4] = NewTile(NewTerrain(DeepWater), Content{Kind: ContentNone}, 0)
	g[4][5] = NewTile(NewTeleport(true), Content{Kind: ContentNone}, 0)

	stampDisk(g, 4, 4, 3)

	if g[4][4].Terrain.Kind != DeepWater {
		t.Error("DeepWater cell was overwritten by lava stamp")
	}
	if g[4][5].Terrain.Kind != Teleport {
		t.Error("Teleport cell was overwritten by lava stamp")
	}
	if g[4][6].Terrain.Kind != Lava {
		t.Error("ordinary Grass cell within radius was not stamped to Lava")
	}
}

func TestStampDiskBoundsSafe(t *testing.T) {
	g := NewGrid(5)
	// Should not panic when disk extends past grid edges.
	stampDisk(g, 0, 0, 10)
	stampDisk(g, 4, 4, 10)
}

func TestStampLavaDeterministic(t *testing.T) {
	opts := TileTypePresetDefault.Resolve()
	g1 := NewGrid(16)
	g2 := NewGrid(16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			kind := Grass
			if (x+y)%3 == 0 {
				kind = Hill
			}
			g1[y][x] = NewTile(NewTerrain(kind), Content{Kind: ContentNone}, 0)
			g2[y][x] = NewTile(NewTerrain(kind), Content{Kind: ContentNone}, 0)
		}
	}
	stampLava(g1, opts, newRNG(5))
	stampLava(g2, opts, newRNG(5))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if g1[y][x].Terrain.Kind != g2[y][x].Terrain.Kind {
				t.Fatalf("lava stamp mismatch at (%d,%d)", x, y)
			}
		}
	}
}
