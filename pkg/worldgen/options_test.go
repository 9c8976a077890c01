package worldgen

import (
	"errors"
	"testing"
)

func defaultTestBands() TileTypeOptions {
	return TileTypePresetDefault.Resolve()
}

func TestFloatRangeContainsAndMid(t *testing.T) {
	r := FloatRange{Lo: -0.5, Hi: 0.5}
	if !r.Contains(0) || !r.Contains(-0.5) || !r.Contains(0.5) {
		t.Error("Contains failed on boundary/interior values")
	}
	if r.Contains(0.51) {
		t.Error("Contains accepted value outside range")
	}
	if r.Mid() != 0 {
		t.Errorf("Mid() = %v, want 0", r.Mid())
	}
}

func TestIntRangeDraw(t *testing.T) {
	rng := newRNG(1)
	r := IntRange{Lo: 2, Hi: 4}
	for i := 0; i < 50; i++ {
		v := r.Draw(rng)
		if v < 2 || v > 4 {
			t.Fatalf("Draw() = %d, out of [2,4]", v)
		}
	}
}

func TestTileTypeOptionsValidateAccepts(t *testing.T) {
	if err := defaultTestBands().validate(); err != nil {
		t.Fatalf("default preset failed validation: %v", err)
	}
}

func TestTileTypeOptionsValidateMissingUpperBound(t *testing.T) {
	opts := TileTypeOptions{
		DeepWater:    FloatRange{-1.0, -0.75},
		ShallowWater: FloatRange{-0.75, -0.5},
		Sand:         FloatRange{-0.5, -0.25},
		Grass:        FloatRange{-0.25, 0},
		Hill:         FloatRange{0, 0.25},
		Mountain:     FloatRange{0.25, 0.5},
		Snow:         FloatRange{0.5, 0.75},
	}
	err := opts.validate()
	if !errors.Is(err, ErrWrongUpperBound) {
		t.Fatalf("validate() = %v, want ErrWrongUpperBound", err)
	}
}

func TestTileTypeOptionsValidateMissingLowerBound(t *testing.T) {
	opts := defaultTestBands()
	opts.DeepWater.Lo = -0.9
	err := opts.validate()
	if !errors.Is(err, ErrWrongLowerBound) {
		t.Fatalf("validate() = %v, want ErrWrongLowerBound", err)
	}
}

func TestContentOptionsValidatePercentage(t *testing.T) {
	cases := []struct {
		pct     float64
		wantErr bool
	}{
		{0.5, false},
		{0, true},
		{1, true},
		{1.5, true},
		{-0.1, true},
	}
	for _, c := range cases {
		err := ContentOptions{Percentage: c.pct}.validate(ContentRock)
		if (err != nil) != c.wantErr {
			t.Errorf("Percentage=%v: err=%v, wantErr=%v", c.pct, err, c.wantErr)
		}
	}
}

func TestEnvironmentalConditionsValidate(t *testing.T) {
	if err := (EnvironmentalConditions{StartHour: 24}).validate(); err != nil {
		t.Errorf("StartHour=24 should validate: %v", err)
	}
	if err := (EnvironmentalConditions{StartHour: 25}).validate(); !errors.Is(err, ErrRangesAreOutOfBounds) {
		t.Errorf("StartHour=25 should fail with ErrRangesAreOutOfBounds, got %v", err)
	}
}

func TestWeatherTagString(t *testing.T) {
	if Sunny.String() != "Sunny" {
		t.Errorf("Sunny.String() = %q", Sunny.String())
	}
	if WeatherTag(999).String() != "Unknown" {
		t.Errorf("unknown weather tag should stringify to Unknown")
	}
}
