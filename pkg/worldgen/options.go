package worldgen

import "math/rand"

// FloatRange is an inclusive sub-interval of [-1, 1] used to band the
// normalized heightmap into terrain classes.
type FloatRange struct {
	Lo, Hi float64
}

// Contains reports whether v falls within this inclusive range.
func (r FloatRange) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// Mid returns the range's midpoint, used for nearest-midpoint fallback
// classification.
func (r FloatRange) Mid() float64 {
	return (r.Lo + r.Hi) / 2
}

// IntRange is an inclusive range of non-negative counts/lengths.
type IntRange struct {
	Lo, Hi int
}

// Draw returns a uniform sample from this inclusive range using rng.
func (r IntRange) Draw(rng *rand.Rand) int {
	return genRange(rng, r.Lo, r.Hi)
}

// TileTypeOptions is the seven-band terrain classification table plus the
// five count/length ranges consumed by the post-processing passes.
type TileTypeOptions struct {
	DeepWater    FloatRange
	ShallowWater FloatRange
	Sand         FloatRange
	Grass        FloatRange
	Hill         FloatRange
	Mountain     FloatRange
	Snow         FloatRange

	RiverCount  IntRange
	StreetCount IntRange
	StreetLen   IntRange
	LavaCount   IntRange
	LavaRadius  IntRange
}

// terrainBand pairs a terrain kind with the float band that classifies to it.
type terrainBand struct {
	kind TerrainKind
	band FloatRange
}

// bands returns the seven terrain bands paired with the terrain kind they
// classify to, in the fixed priority order the classifier checks them.
// DeepWater is listed before ShallowWater so an overlapping boundary ties
// to DeepWater.
func (o TileTypeOptions) bands() []terrainBand {
	return []terrainBand{
		{DeepWater, o.DeepWater},
		{ShallowWater, o.ShallowWater},
		{Sand, o.Sand},
		{Grass, o.Grass},
		{Hill, o.Hill},
		{Mountain, o.Mountain},
		{Snow, o.Snow},
	}
}

// validate checks invariant 1's bounds: at least one band has lower bound
// -1.0, at least one has upper bound 1.0, and every band lies within
// [-1, 1] with Lo <= Hi. It does not check that the bands leave no gaps
// inside [-1, 1]; a value in a gap is classified by classify's
// nearest-midpoint fallback.
func (o TileTypeOptions) validate() error {
	bands := o.bands()

	hasLower, hasUpper := false, false
	for _, b := range bands {
		if b.band.Lo < -1.0 {
			return ErrWrongLowerBound
		}
		if b.band.Hi > 1.0 {
			return ErrWrongUpperBound
		}
		if b.band.Lo > b.band.Hi {
			return ErrRangesAreOutOfBounds
		}
		if b.band.Lo == -1.0 {
			hasLower = true
		}
		if b.band.Hi == 1.0 {
			hasUpper = true
		}
	}
	if !hasLower {
		return ErrWrongLowerBound
	}
	if !hasUpper {
		return ErrWrongUpperBound
	}
	return nil
}

// ContentOptions configures how one content kind is placed during content
// placement.
type ContentOptions struct {
	InBatches          bool
	IsPresent          bool
	MinSpawnNumber     int
	MaxRadius          int
	WithMaxSpawnNumber bool
	MaxSpawnNumber     int
	Percentage         float64
}

// validate checks invariant 2 (Percentage lies in the open interval (0, 1))
// plus the spawn-level and spawn-option consistency of the options for the
// given content kind.
func (o ContentOptions) validate(kind ContentKind) error {
	if o.Percentage <= 0 || o.Percentage >= 1 {
		return ErrInvalidContentOptionProvided
	}
	if o.MinSpawnNumber < 0 {
		return &InvalidSpawnLevelError{Kind: kind}
	}
	if o.WithMaxSpawnNumber && o.MaxSpawnNumber < o.MinSpawnNumber {
		return &InvalidSpawnLevelError{Kind: kind}
	}
	if o.MaxRadius < 0 {
		return &InvalidContentSpawnOptionError{Kind: kind}
	}
	if o.InBatches && o.WithMaxSpawnNumber && o.MaxSpawnNumber == 0 {
		return &InvalidContentSpawnOptionError{Kind: kind}
	}
	return nil
}

// WeatherTag is one of the closed set of weather conditions.
type WeatherTag int

const (
	Sunny WeatherTag = iota
	Rainy
	Foggy
	TropicalMonsoon
	TrentinoWinter
)

// String returns a human-readable name for the weather tag.
func (w WeatherTag) String() string {
	switch w {
	case Sunny:
		return "Sunny"
	case Rainy:
		return "Rainy"
	case Foggy:
		return "Foggy"
	case TropicalMonsoon:
		return "TropicalMonsoon"
	case TrentinoWinter:
		return "TrentinoWinter"
	default:
		return "Unknown"
	}
}

// EnvironmentalConditions is the global weather/time configuration
// returned alongside every generated world.
type EnvironmentalConditions struct {
	WeatherSequence []WeatherTag
	TickPerDay      uint8
	StartHour       uint8
}

// validate checks that StartHour lies within [0, 24].
func (c EnvironmentalConditions) validate() error {
	if c.StartHour > 24 {
		return ErrRangesAreOutOfBounds
	}
	return nil
}
