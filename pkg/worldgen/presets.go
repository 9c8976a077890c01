package worldgen

// TileTypePreset is a closed enum of built-in terrain band layouts.
type TileTypePreset int

const (
	TileTypePresetDefault TileTypePreset = iota
	TileTypePresetWaterWorld
	TileTypePresetArchipelago
)

// Resolve returns the concrete TileTypeOptions for this preset. Every
// preset satisfies invariant 1 (bands cover [-1, 1], endpoints included) by
// construction.
func (p TileTypePreset) Resolve() TileTypeOptions {
	switch p {
	case TileTypePresetWaterWorld:
		return TileTypeOptions{
			DeepWater:    FloatRange{-1.0, -0.3},
			ShallowWater: FloatRange{-0.3, 0.1},
			Sand:         FloatRange{0.1, 0.2},
			Grass:        FloatRange{0.2, 0.4},
			Hill:         FloatRange{0.4, 0.6},
			Mountain:     FloatRange{0.6, 0.85},
			Snow:         FloatRange{0.85, 1.0},
			RiverCount:   IntRange{1, 2},
			StreetCount:  IntRange{0, 2},
			StreetLen:    IntRange{3, 10},
			LavaCount:    IntRange{0, 1},
			LavaRadius:   IntRange{1, 3},
		}
	case TileTypePresetArchipelago:
		return TileTypeOptions{
			DeepWater:    FloatRange{-1.0, -0.1},
			ShallowWater: FloatRange{-0.1, 0.05},
			Sand:         FloatRange{0.05, 0.15},
			Grass:        FloatRange{0.15, 0.45},
			Hill:         FloatRange{0.45, 0.65},
			Mountain:     FloatRange{0.65, 0.9},
			Snow:         FloatRange{0.9, 1.0},
			RiverCount:   IntRange{0, 1},
			StreetCount:  IntRange{0, 3},
			StreetLen:    IntRange{3, 12},
			LavaCount:    IntRange{0, 2},
			LavaRadius:   IntRange{1, 4},
		}
	default:
		return TileTypeOptions{
			DeepWater:    FloatRange{-1.0, -0.6},
			ShallowWater: FloatRange{-0.6, -0.3},
			Sand:         FloatRange{-0.3, -0.1},
			Grass:        FloatRange{-0.1, 0.3},
			Hill:         FloatRange{0.3, 0.6},
			Mountain:     FloatRange{0.6, 0.85},
			Snow:         FloatRange{0.85, 1.0},
			RiverCount:   IntRange{1, 3},
			StreetCount:  IntRange{1, 4},
			StreetLen:    IntRange{4, 14},
			LavaCount:    IntRange{0, 2},
			LavaRadius:   IntRange{1, 4},
		}
	}
}

// ContentPreset is a closed enum of built-in content placement sequences.
type ContentPreset int

const (
	ContentPresetDefault ContentPreset = iota
	ContentPresetOnlyRocksAndTrees
)

// Resolve returns the ordered ContentOptionEntry sequence for this preset.
// Iteration order is part of the determinism contract: the same preset and
// seed always place content in the same order.
func (p ContentPreset) Resolve() []ContentOptionEntry {
	switch p {
	case ContentPresetOnlyRocksAndTrees:
		return []ContentOptionEntry{
			{ContentRock, ContentOptions{IsPresent: true, MinSpawnNumber: 5, Percentage: 0.2}},
			{ContentTree, ContentOptions{IsPresent: true, InBatches: true, MaxRadius: 4, MinSpawnNumber: 1, Percentage: 0.3}},
		}
	default:
		return []ContentOptionEntry{
			{ContentRock, ContentOptions{IsPresent: true, MinSpawnNumber: 3, Percentage: 0.15}},
			{ContentTree, ContentOptions{IsPresent: true, InBatches: true, MaxRadius: 4, MinSpawnNumber: 1, Percentage: 0.25}},
			{ContentGarbage, ContentOptions{IsPresent: true, MinSpawnNumber: 0, Percentage: 0.05}},
			{ContentFire, ContentOptions{IsPresent: true, MinSpawnNumber: 0, Percentage: 0.02}},
			{ContentCoin, ContentOptions{IsPresent: true, MinSpawnNumber: 2, Percentage: 0.1}},
			{ContentBin, ContentOptions{IsPresent: true, MinSpawnNumber: 0, Percentage: 0.03}},
			{ContentCrate, ContentOptions{IsPresent: true, MinSpawnNumber: 0, Percentage: 0.03}},
			{ContentBank, ContentOptions{IsPresent: true, MinSpawnNumber: 0, Percentage: 0.01}},
			{ContentWater, ContentOptions{IsPresent: true, MinSpawnNumber: 0, Percentage: 0.5}},
			{ContentMarket, ContentOptions{IsPresent: true, MinSpawnNumber: 0, Percentage: 0.02}},
			{ContentFish, ContentOptions{IsPresent: true, MinSpawnNumber: 0, Percentage: 0.3}},
			{ContentBush, ContentOptions{IsPresent: true, InBatches: true, MaxRadius: 3, MinSpawnNumber: 0, Percentage: 0.1}},
			{ContentScarecrow, ContentOptions{IsPresent: true, MinSpawnNumber: 0, Percentage: 0.01}},
		}
	}
}

// WeatherPreset is a closed enum of built-in weather sequences.
type WeatherPreset int

const (
	WeatherPresetDefault WeatherPreset = iota
	WeatherPresetSunny
	WeatherPresetRainy
	WeatherPresetFoggy
	WeatherPresetTropicalMonsoon
	WeatherPresetTrentinoWinter
)

// Resolve returns the concrete EnvironmentalConditions for this preset.
func (p WeatherPreset) Resolve() EnvironmentalConditions {
	switch p {
	case WeatherPresetSunny:
		return EnvironmentalConditions{WeatherSequence: []WeatherTag{Sunny}, TickPerDay: 24, StartHour: 8}
	case WeatherPresetRainy:
		return EnvironmentalConditions{WeatherSequence: []WeatherTag{Rainy}, TickPerDay: 24, StartHour: 8}
	case WeatherPresetFoggy:
		return EnvironmentalConditions{WeatherSequence: []WeatherTag{Foggy}, TickPerDay: 24, StartHour: 8}
	case WeatherPresetTropicalMonsoon:
		return EnvironmentalConditions{WeatherSequence: []WeatherTag{TropicalMonsoon, Rainy}, TickPerDay: 24, StartHour: 6}
	case WeatherPresetTrentinoWinter:
		return EnvironmentalConditions{WeatherSequence: []WeatherTag{TrentinoWinter, Foggy}, TickPerDay: 24, StartHour: 7}
	default:
		return EnvironmentalConditions{WeatherSequence: []WeatherTag{Sunny, Rainy, Foggy}, TickPerDay: 24, StartHour: 8}
	}
}
