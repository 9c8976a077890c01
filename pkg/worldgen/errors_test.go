package worldgen

import (
	"errors"
	"testing"
)

func TestWrappingErrorsMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&InvalidContentOptionError{Kind: ContentRock}, "worldgen: invalid content option for Rock"},
		{&InvalidSpawnLevelError{Kind: ContentTree}, "worldgen: invalid spawn level for Tree"},
		{&InvalidContentSpawnOptionError{Kind: ContentBin}, "worldgen: invalid content spawn option for Bin"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}

func TestContentOptionsValidateRejectsNegativeMinSpawnNumber(t *testing.T) {
	opts := ContentOptions{IsPresent: true, Percentage: 0.2, MinSpawnNumber: -1}
	err := opts.validate(ContentRock)
	var target *InvalidSpawnLevelError
	if !errors.As(err, &target) || target.Kind != ContentRock {
		t.Fatalf("validate() = %v, want *InvalidSpawnLevelError{Kind: ContentRock}", err)
	}
}

func TestContentOptionsValidateRejectsMaxBelowMinSpawnNumber(t *testing.T) {
	opts := ContentOptions{
		IsPresent: true, Percentage: 0.2,
		MinSpawnNumber: 10, WithMaxSpawnNumber: true, MaxSpawnNumber: 5,
	}
	err := opts.validate(ContentTree)
	var target *InvalidSpawnLevelError
	if !errors.As(err, &target) || target.Kind != ContentTree {
		t.Fatalf("validate() = %v, want *InvalidSpawnLevelError{Kind: ContentTree}", err)
	}
}

func TestContentOptionsValidateRejectsNegativeMaxRadius(t *testing.T) {
	opts := ContentOptions{IsPresent: true, Percentage: 0.2, MaxRadius: -1}
	err := opts.validate(ContentBin)
	var target *InvalidContentSpawnOptionError
	if !errors.As(err, &target) || target.Kind != ContentBin {
		t.Fatalf("validate() = %v, want *InvalidContentSpawnOptionError{Kind: ContentBin}", err)
	}
}

func TestContentOptionsValidateRejectsZeroCapInBatches(t *testing.T) {
	opts := ContentOptions{
		IsPresent: true, Percentage: 0.2, InBatches: true,
		WithMaxSpawnNumber: true, MaxSpawnNumber: 0,
	}
	err := opts.validate(ContentCrate)
	var target *InvalidContentSpawnOptionError
	if !errors.As(err, &target) || target.Kind != ContentCrate {
		t.Fatalf("validate() = %v, want *InvalidContentSpawnOptionError{Kind: ContentCrate}", err)
	}
}

func TestBuilderSetContentOptionsRejectsOutOfRangeKind(t *testing.T) {
	_, err := NewBuilder().SetSeed(1).
		SetContentOptions([]ContentOptionEntry{{Kind: ContentKind(999), Options: ContentOptions{IsPresent: true, Percentage: 0.1}}}).
		Build()
	var target *InvalidContentOptionError
	if !errors.As(err, &target) || target.Kind != ContentKind(999) {
		t.Fatalf("Build() = %v, want *InvalidContentOptionError{Kind: 999}", err)
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrSizeNotSet, ErrSeedNotSet, ErrWorldOptionsNotSet, ErrContentOptionsNotSet,
		ErrWeatherOptionsNotSet, ErrWrongLowerBound, ErrWrongUpperBound,
		ErrRangesAreOutOfBounds, ErrInvalidContentOptionProvided,
		ErrCannotSetContentOptionForNone, ErrMazeSizeTooSmall,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d unexpectedly matches sentinel %d", i, j)
			}
		}
	}
}
