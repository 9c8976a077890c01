package worldgen

import (
	"math"
	"math/rand"
)

// adjustMazeSize bumps an even requested size up to the next odd value so
// the odd-cell DFS carver is well-defined.
func adjustMazeSize(size int) int {
	if size%2 == 0 {
		return size + 1
	}
	return size
}

// mazeStackFrame is one entry of the explicit DFS stack: a visited cell
// plus the cardinal directions still left to try from it, in shuffled order.
type mazeStackFrame struct {
	x, y  int
	order []direction
	next  int
}

// buildMaze carves a perfect maze over a Wall-filled size×size grid using
// an explicit stack-based DFS over odd cells, biomes every carved cell
// against the raw fBm field, and returns the carved grid.
func buildMaze(seed uint64, size int, opts TileTypeOptions, rng *rand.Rand) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]Tile, size)
		for x := range g[y] {
			g[y][x] = NewTile(NewTerrain(Wall), Content{Kind: ContentNone}, 0)
		}
	}

	field := newNoiseField(seed)

	sx := oddCoord(rng, size)
	sy := oddCoord(rng, size)
	biomeCell(g, field, opts, rng, sx, sy)

	stack := []mazeStackFrame{{x: sx, y: sy, order: shuffledDirections(rng)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}
		dir := top.order[top.next]
		top.next++

		v := directionVectors[dir]
		linkX, linkY := top.x+v[0], top.y+v[1]
		nodeX, nodeY := top.x+2*v[0], top.y+2*v[1]

		if nodeX < 0 || nodeX >= size || nodeY < 0 || nodeY >= size {
			continue
		}
		if g[nodeY][nodeX].Terrain.Kind != Wall {
			continue
		}

		biomeCell(g, field, opts, rng, linkX, linkY)
		biomeCell(g, field, opts, rng, nodeX, nodeY)

		stack = append(stack, mazeStackFrame{x: nodeX, y: nodeY, order: shuffledDirections(rng)})
	}

	return g
}

// oddCoord draws a random odd interior coordinate in [1, size-2].
func oddCoord(rng *rand.Rand, size int) int {
	if size < 3 {
		return 1
	}
	n := (size - 1) / 2
	return 1 + 2*rng.Intn(n)
}

// shuffledDirections returns the four cardinal directions in a randomly
// shuffled order (Fisher-Yates).
func shuffledDirections(rng *rand.Rand) []direction {
	dirs := []direction{dirNorth, dirEast, dirSouth, dirWest}
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

// biomeCell reclassifies a carved cell against the raw (unnormalized) fBm
// value at (x, y) using the same band rules as the heightmap classifier,
// bypassing normalization since a maze grid has no global elevation range
// to normalize against. Deep/shallow water cells get a Water content.
func biomeCell(g Grid, field *noiseField, opts TileTypeOptions, rng *rand.Rand, x, y int) {
	size := g.Size()
	raw := field.sample(float64(x)/float64(size), float64(y)/float64(size))
	kind := classify(raw, opts)
	terrain := NewTerrain(kind)

	content := Content{Kind: ContentNone}
	if terrain.IsWater() {
		content = NewContent(ContentWater, genRange(rng, 0, ContentWater.MaxValue()-1))
	}
	g[y][x] = NewTile(terrain, content, g[y][x].Elevation)
}

// scatterJollyBlocks places m = uniform(0, size*0.1) decoy JollyBlock items
// on random cells whose terrain can hold a JollyBlock, then places one
// further JollyBlock as the maze
// goal. Decoys are placed before the goal so the goal is never itself
// overwritten by a decoy.
func scatterJollyBlocks(g Grid, rng *rand.Rand) {
	size := g.Size()
	m := genRange(rng, 0, int(float64(size)*0.1))

	for i := 0; i < m; i++ {
		x, y, ok := findHoldableCell(g, rng, ContentJollyBlock)
		if !ok {
			continue
		}
		g[y][x].Content = NewContent(ContentJollyBlock, 1)
	}

	if x, y, ok := findHoldableCell(g, rng, ContentJollyBlock); ok {
		g[y][x].Content = NewContent(ContentJollyBlock, 1)
	}
}

// stampTeleportCircles scatters floor(size*0.1) Grass-filled circles over
// corridor cells, each turning its center into an inactive Teleport, giving
// the maze's inactive teleports somewhere to link from.
func stampTeleportCircles(g Grid, rng *rand.Rand) {
	size := g.Size()
	n := int(float64(size) * 0.1)
	maxRadius := isqrt(size)
	if maxRadius < 1 {
		maxRadius = 1
	}

	for i := 0; i < n; i++ {
		cx, cy, ok := pickCorridorCell(g, rng)
		if !ok {
			continue
		}
		radius := genRange(rng, 1, maxRadius)
		stampGrassDisk(g, cx, cy, radius)
		g[cy][cx] = NewTile(NewTeleport(false), Content{Kind: ContentNone}, 0)
	}
}

func pickCorridorCell(g Grid, rng *rand.Rand) (x, y int, ok bool) {
	size := g.Size()
	const maxAttempts = 4096
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cx := rng.Intn(size)
		cy := rng.Intn(size)
		if g[cy][cx].Terrain.Kind != Wall {
			return cx, cy, true
		}
	}
	return 0, 0, false
}

// stampGrassDisk fills every non-Wall cell within radius of (cx, cy) with
// Grass, preserving the maze's Wall skeleton.
func stampGrassDisk(g Grid, cx, cy, radius int) {
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
			if g[y][x].Terrain.Kind == Wall {
				continue
			}
			g[y][x] = NewTile(NewTerrain(Grass), Content{Kind: ContentNone}, 0)
		}
	}
}

// isqrt returns the integer square root of n.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(n)))
}
