package worldgen

import "testing"

func TestBuildHeightmapShape(t *testing.T) {
	hm := buildHeightmap(1, 16, nil)
	if len(hm.H) != 16 {
		t.Fatalf("len(H) = %d, want 16", len(hm.H))
	}
	for _, row := range hm.H {
		if len(row) != 16 {
			t.Fatalf("row length = %d, want 16", len(row))
		}
	}
	if hm.Min > hm.Max {
		t.Errorf("Min (%v) > Max (%v)", hm.Min, hm.Max)
	}
}

func TestBuildHeightmapDeterministic(t *testing.T) {
	a := buildHeightmap(55, 32, nil)
	b := buildHeightmap(55, 32, nil)
	for y := range a.H {
		for x := range a.H[y] {
			if a.H[y][x] != b.H[y][x] {
				t.Fatalf("heightmap mismatch at (%d,%d)", x, y)
			}
		}
	}
	if a.Min != b.Min || a.Max != b.Max {
		t.Fatal("Min/Max not deterministic")
	}
}
