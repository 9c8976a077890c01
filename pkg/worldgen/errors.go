package worldgen

import (
	"errors"
	"fmt"
)

// Shape errors: a precondition field was never set on the builder.
var (
	ErrSizeNotSet           = errors.New("worldgen: size not set")
	ErrSeedNotSet           = errors.New("worldgen: seed not set")
	ErrWorldOptionsNotSet   = errors.New("worldgen: tile type options not set")
	ErrContentOptionsNotSet = errors.New("worldgen: content options not set")
	ErrWeatherOptionsNotSet = errors.New("worldgen: environmental conditions not set")
)

// Value errors: a structured option failed validation.
var (
	ErrWrongLowerBound              = errors.New("worldgen: tile type bands do not cover a lower bound of -1.0")
	ErrWrongUpperBound              = errors.New("worldgen: tile type bands do not cover an upper bound of 1.0")
	ErrRangesAreOutOfBounds         = errors.New("worldgen: a configured range is out of bounds")
	ErrInvalidContentOptionProvided = errors.New("worldgen: content option percentage must lie in (0, 1)")
)

// Policy errors.
var (
	ErrCannotSetContentOptionForNone = errors.New("worldgen: cannot set content options for ContentNone")
	ErrMazeSizeTooSmall              = errors.New("worldgen: maze size must be at least 5")
)

// InvalidContentOptionError reports that the content options for a
// specific kind failed validation.
type InvalidContentOptionError struct {
	Kind ContentKind
}

func (e *InvalidContentOptionError) Error() string {
	return fmt.Sprintf("worldgen: invalid content option for %s", e.Kind)
}

// InvalidSpawnLevelError reports that a content kind's spawn levels
// (min/max spawn number) are inconsistent.
type InvalidSpawnLevelError struct {
	Kind ContentKind
}

func (e *InvalidSpawnLevelError) Error() string {
	return fmt.Sprintf("worldgen: invalid spawn level for %s", e.Kind)
}

// InvalidContentSpawnOptionError reports that a content kind's spawn
// option (batch radius, spawn count bounds) is invalid.
type InvalidContentSpawnOptionError struct {
	Kind ContentKind
}

func (e *InvalidContentSpawnOptionError) Error() string {
	return fmt.Sprintf("worldgen: invalid content spawn option for %s", e.Kind)
}
