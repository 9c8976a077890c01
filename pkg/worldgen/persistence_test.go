package worldgen

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "world.json")

	gen, err := NewBuilder().
		SetSeed(751776).
		SetSize(64).
		SetTileTypeOptionsFromPreset(TileTypePresetWaterWorld).
		SetContentOptionsFromPreset(ContentPresetDefault).
		SetEnvironmentalConditionsFromPreset(WeatherPresetSunny).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	saved, err := gen.Generate(nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if err := gen.Save(path, nil); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loader, err := NewBuilder().Load(path).Build()
	if err != nil {
		t.Fatalf("Build() (loader) error: %v", err)
	}
	loaded, err := loader.Generate(nil)
	if err != nil {
		t.Fatalf("Generate() (loaded) error: %v", err)
	}

	if loaded.Spawn != saved.Spawn {
		t.Errorf("spawn mismatch after round-trip: %+v vs %+v", loaded.Spawn, saved.Spawn)
	}
	if loaded.Weather.WeatherSequence[0] != Sunny {
		t.Errorf("loaded weather = %v, want restored from cache (Sunny)", loaded.Weather.WeatherSequence)
	}
	for y := range saved.Grid {
		for x := range saved.Grid[y] {
			if saved.Grid[y][x] != loaded.Grid[y][x] {
				t.Fatalf("grid mismatch at (%d,%d) after round-trip", x, y)
			}
		}
	}
}

func TestLoadWeatherOverriddenByBuilder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.json")

	gen, err := NewBuilder().
		SetSeed(1).
		SetSize(16).
		SetTileTypeOptionsFromPreset(TileTypePresetDefault).
		SetContentOptionsFromPreset(ContentPresetDefault).
		SetEnvironmentalConditionsFromPreset(WeatherPresetRainy).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if err := gen.Save(path, nil); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loader, err := NewBuilder().
		Load(path).
		SetEnvironmentalConditionsFromPreset(WeatherPresetFoggy).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	loaded, err := loader.Generate(nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if loaded.Weather.WeatherSequence[0] != Foggy {
		t.Errorf("loader's configured weather should override cached weather, got %v", loaded.Weather.WeatherSequence)
	}
}
