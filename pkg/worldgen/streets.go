package worldgen

import "math/rand"

// direction is one of the four cardinal step vectors used by the street
// walk and the maze carver's cardinal shuffle.
type direction int

const (
	dirNorth direction = iota
	dirEast
	dirSouth
	dirWest
)

var directionVectors = map[direction][2]int{
	dirNorth: {0, -1},
	dirEast:  {1, 0},
	dirSouth: {0, 1},
	dirWest:  {-1, 0},
}

// perpendiculars returns the two directions perpendicular to d.
func perpendiculars(d direction) (a, b direction) {
	switch d {
	case dirNorth, dirSouth:
		return dirEast, dirWest
	default:
		return dirNorth, dirSouth
	}
}

// SameDirectionProbability is the chance a street walk continues straight
// rather than turning. Exported, matching the other named tunable
// constants' module shape.
const SameDirectionProbability = 0.5

// carveStreets draws opts.StreetCount streets, each starting at an
// unclaimed Hill/Grass cell and walking a biased random path up to
// StreetLen steps.
func carveStreets(g Grid, opts TileTypeOptions, cl claimed, rng *rand.Rand) {
	n := opts.StreetCount.Draw(rng)
	for i := 0; i < n; i++ {
		x, y, ok := pickStreetSource(g, cl, rng)
		if !ok {
			continue
		}
		length := opts.StreetLen.Draw(rng)
		dir := direction(rng.Intn(4))
		walkStreet(g, cl, x, y, dir, length, rng)
	}
}

func pickStreetSource(g Grid, cl claimed, rng *rand.Rand) (x, y int, ok bool) {
	size := g.Size()
	const maxAttempts = 4096
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cx := rng.Intn(size)
		cy := rng.Intn(size)
		if cl.at(cx, cy) {
			continue
		}
		kind := g[cy][cx].Terrain.Kind
		if kind == Hill || kind == Grass {
			return cx, cy, true
		}
	}
	return 0, 0, false
}

func walkStreet(g Grid, cl claimed, x, y int, dir direction, length int, rng *rand.Rand) {
	for step := 0; step < length; step++ {
		if !g.InBounds(x, y) || cl.at(x, y) {
			return
		}
		if shouldSkipStreet(g[y][x].Terrain.Kind) {
			return
		}
		g[y][x] = NewTile(NewTerrain(Street), Content{Kind: ContentNone}, g[y][x].Elevation)
		cl.mark(x, y)

		dir = nextStreetDirection(dir, rng)
		v := directionVectors[dir]
		x, y = x+v[0], y+v[1]
	}
}

func shouldSkipStreet(kind TerrainKind) bool {
	return kind == ShallowWater || kind == DeepWater || kind == Teleport
}

// nextStreetDirection applies the street walk's turning bias: continue
// straight with probability SameDirectionProbability, else turn to one of
// the two perpendicular directions with equal probability.
func nextStreetDirection(dir direction, rng *rand.Rand) direction {
	if genBool(rng, SameDirectionProbability) {
		return dir
	}
	a, b := perpendiculars(dir)
	if genBool(rng, 0.5) {
		return a
	}
	return b
}
