package worldgen

import "math/rand"

// Spawn is the robot's chosen starting cell.
type Spawn struct {
	X, Y int
}

// chooseSpawn redraws a uniformly random cell until its terrain is
// walkable, then returns it.
func chooseSpawn(g Grid, rng *rand.Rand) Spawn {
	size := g.Size()
	for {
		x := rng.Intn(size)
		y := rng.Intn(size)
		if g[y][x].Terrain.Walkable() {
			return Spawn{X: x, Y: y}
		}
	}
}
