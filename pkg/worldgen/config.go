package worldgen

// GeneratorConfig is the fully-resolved configuration a Builder produces.
// Every field has either been set explicitly or filled in deterministically
// from the seed at Build time.
type GeneratorConfig struct {
	Seed             uint64
	Size             int
	TileTypeOptions  TileTypeOptions
	ContentSequence  []ContentOptionEntry
	Weather          EnvironmentalConditions
	HeightMultiplier float64
	Score            float32
	ScoreMap         map[ContentKind]float32
	WithInfo         bool
	Maze             bool
	LoadPath         string
}
