// Package worldgen: this file defines the closed terrain/content data
// model and the static capability predicates over it.
package worldgen

// TerrainKind enumerates the closed set of terrain classes a tile may have.
type TerrainKind int

const (
	DeepWater TerrainKind = iota
	ShallowWater
	Sand
	Grass
	Hill
	Mountain
	Snow
	Lava
	Street
	Wall
	Teleport
)

// String returns a human-readable name for the terrain kind.
func (k TerrainKind) String() string {
	switch k {
	case DeepWater:
		return "DeepWater"
	case ShallowWater:
		return "ShallowWater"
	case Sand:
		return "Sand"
	case Grass:
		return "Grass"
	case Hill:
		return "Hill"
	case Mountain:
		return "Mountain"
	case Snow:
		return "Snow"
	case Lava:
		return "Lava"
	case Street:
		return "Street"
	case Wall:
		return "Wall"
	case Teleport:
		return "Teleport"
	default:
		return "Unknown"
	}
}

// TerrainClass identifies a tile's terrain. Teleport is the one variant
// that carries a payload, an active/inactive flag; TeleportActive is
// meaningless for every other Kind.
type TerrainClass struct {
	Kind           TerrainKind
	TeleportActive bool
}

// NewTerrain builds a TerrainClass for any non-payload kind. Passing
// Teleport here always yields an inactive teleport; use NewTeleport for an
// explicit payload.
func NewTerrain(kind TerrainKind) TerrainClass {
	return TerrainClass{Kind: kind}
}

// NewTeleport builds a Teleport(active) terrain class.
func NewTeleport(active bool) TerrainClass {
	return TerrainClass{Kind: Teleport, TeleportActive: active}
}

// IsWater reports whether this terrain is DeepWater or ShallowWater —
// the "sticky" classes that later passes may never overwrite (invariant 3).
func (t TerrainClass) IsWater() bool {
	return t.Kind == DeepWater || t.Kind == ShallowWater
}

// Walkable reports whether a robot may stand on this terrain.
func (t TerrainClass) Walkable() bool {
	switch t.Kind {
	case DeepWater, Mountain, Lava, Wall:
		return false
	default:
		return true
	}
}

// CanHold reports whether this terrain admits the given content kind
// (invariant 4). Wall never holds content; every other terrain has a
// fixed, closed set of content kinds it may carry.
func (t TerrainClass) CanHold(kind ContentKind) bool {
	if kind == ContentNone {
		return true
	}
	if t.Kind == Wall {
		return false
	}
	kinds, ok := terrainCapabilities[t.Kind]
	if !ok {
		return false
	}
	return kinds[kind]
}

// terrainCapabilities is the static table backing CanHold. Keys absent
// from this map (Wall) admit nothing.
var terrainCapabilities = map[TerrainKind]map[ContentKind]bool{
	Grass: set(ContentRock, ContentTree, ContentGarbage, ContentFire, ContentCoin,
		ContentBin, ContentCrate, ContentBank, ContentMarket, ContentBush,
		ContentJollyBlock, ContentScarecrow, ContentBuilding),
	Hill: set(ContentRock, ContentTree, ContentGarbage, ContentCoin, ContentBin,
		ContentCrate, ContentMarket, ContentBush, ContentJollyBlock, ContentBuilding),
	Sand: set(ContentRock, ContentGarbage, ContentCoin, ContentCrate,
		ContentJollyBlock, ContentBuilding),
	Mountain: set(ContentRock, ContentCrate, ContentJollyBlock),
	Snow:     set(ContentRock, ContentTree, ContentCrate, ContentJollyBlock),
	Street: set(ContentGarbage, ContentBin, ContentMarket, ContentCrate,
		ContentCoin, ContentJollyBlock, ContentScarecrow, ContentFire),
	ShallowWater: set(ContentWater, ContentFish, ContentJollyBlock),
	DeepWater:    set(ContentWater, ContentFish),
	Lava:         set(ContentFire),
	Teleport:     set(ContentJollyBlock),
}

func set(kinds ...ContentKind) map[ContentKind]bool {
	m := make(map[ContentKind]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// Tile is a single cell of the generated world.
type Tile struct {
	Terrain   TerrainClass
	Content   Content
	Elevation int
}

// NewTile builds a Tile, clamping a negative elevation to zero — elevation
// is defined as a non-negative integer.
func NewTile(terrain TerrainClass, content Content, elevation int) Tile {
	if elevation < 0 {
		elevation = 0
	}
	return Tile{Terrain: terrain, Content: content, Elevation: elevation}
}

// Grid is a square matrix of tiles, row-major ([y][x]).
type Grid [][]Tile

// NewGrid allocates a size×size grid filled with Grass/None/0 tiles.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]Tile, size)
		for x := range g[y] {
			g[y][x] = NewTile(NewTerrain(Grass), Content{Kind: ContentNone}, 0)
		}
	}
	return g
}

// Size returns the grid's side length.
func (g Grid) Size() int {
	return len(g)
}

// InBounds reports whether (x, y) addresses a cell of this grid.
func (g Grid) InBounds(x, y int) bool {
	size := g.Size()
	return x >= 0 && x < size && y >= 0 && y < size
}
