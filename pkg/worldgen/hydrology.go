package worldgen

import "math/rand"

// carveRivers draws opts.RiverCount rivers, each starting at an unclaimed
// Hill/Mountain cell and descending toward the lowest neighboring raw
// heightmap value until it reaches existing water.
func carveRivers(g Grid, hm Heightmap, opts TileTypeOptions, cl claimed, rng *rand.Rand) {
	n := opts.RiverCount.Draw(rng)
	for i := 0; i < n; i++ {
		x, y, ok := pickUnclaimedSource(g, cl, rng)
		if !ok {
			continue
		}
		carveRiver(g, hm, cl, x, y)
	}
}

// pickUnclaimedSource draws a random unclaimed Hill or Mountain cell. It
// gives up after a bounded number of attempts rather than looping forever
// on a grid with no eligible source left.
func pickUnclaimedSource(g Grid, cl claimed, rng *rand.Rand) (x, y int, ok bool) {
	size := g.Size()
	const maxAttempts = 4096
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cx := rng.Intn(size)
		cy := rng.Intn(size)
		if cl.at(cx, cy) {
			continue
		}
		kind := g[cy][cx].Terrain.Kind
		if kind == Hill || kind == Mountain {
			return cx, cy, true
		}
	}
	return 0, 0, false
}

// riverCandidate is one descent option: an in-bounds, unclaimed, non-Lava
// neighbor paired with its raw heightmap value.
type riverCandidate struct {
	x, y int
	h    float64
}

// riverFrame is one explicit-stack entry of the descent: the current cell's
// remaining descent candidates, sorted ascending by raw height, plus a
// cursor into them. Using an explicit stack rather than recursion bounds
// stack use to O(size²) even on a path that visits every cell.
type riverFrame struct {
	candidates []riverCandidate
	next       int
}

// carveRiver carves a single descending path from (x, y). It always carves
// the starting cell to ShallowWater, then repeatedly descends into the
// unclaimed, non-Lava, in-bounds neighbor with the lowest raw heightmap
// value, backtracking to the next-lowest candidate when a branch dead-ends.
// The descent stops successfully the moment it reaches an existing water
// cell; on total failure the already-carved trace is left in place rather
// than reverted.
func carveRiver(g Grid, hm Heightmap, cl claimed, x, y int) bool {
	if g[y][x].Terrain.IsWater() {
		return true
	}

	carveRiverCell(g, cl, x, y)

	var stack []riverFrame
	stack = append(stack, riverFrame{candidates: riverDescentCandidates(g, hm, cl, x, y)})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.candidates) {
			stack = stack[:len(stack)-1]
			continue
		}
		cand := top.candidates[top.next]
		top.next++

		if cl.at(cand.x, cand.y) {
			continue
		}
		if g[cand.y][cand.x].Terrain.IsWater() {
			return true
		}

		carveRiverCell(g, cl, cand.x, cand.y)
		stack = append(stack, riverFrame{candidates: riverDescentCandidates(g, hm, cl, cand.x, cand.y)})
	}
	return false
}

func carveRiverCell(g Grid, cl claimed, x, y int) {
	g[y][x] = NewTile(NewTerrain(ShallowWater), Content{Kind: ContentNone}, g[y][x].Elevation)
	cl.mark(x, y)
}

// riverDescentCandidates lists (x, y)'s in-bounds, unclaimed, non-Lava
// 4-neighbors sorted ascending by raw heightmap value — the order the
// descent tries them in.
func riverDescentCandidates(g Grid, hm Heightmap, cl claimed, x, y int) []riverCandidate {
	var candidates []riverCandidate
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if cl.at(nx, ny) {
			continue
		}
		if g[ny][nx].Terrain.Kind == Lava {
			continue
		}
		candidates = append(candidates, riverCandidate{nx, ny, hm.H[ny][nx]})
	}
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].h < candidates[j-1].h; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
	return candidates
}
