package worldgen

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON renders a terrain kind as its variant name.
func (k TerrainKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

var terrainKindByName = func() map[string]TerrainKind {
	m := make(map[string]TerrainKind)
	for k := DeepWater; k <= Teleport; k++ {
		m[k.String()] = k
	}
	return m
}()

// UnmarshalJSON parses a terrain kind from its variant name.
func (k *TerrainKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, ok := terrainKindByName[name]
	if !ok {
		return fmt.Errorf("worldgen: unknown terrain kind %q", name)
	}
	*k = kind
	return nil
}

// MarshalJSON renders a content kind as its variant name.
func (k ContentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

var contentKindByName = func() map[string]ContentKind {
	m := make(map[string]ContentKind)
	for k := ContentNone; k <= ContentScarecrow; k++ {
		m[k.String()] = k
	}
	return m
}()

// UnmarshalJSON parses a content kind from its variant name.
func (k *ContentKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, ok := contentKindByName[name]
	if !ok {
		return fmt.Errorf("worldgen: unknown content kind %q", name)
	}
	*k = kind
	return nil
}

// MarshalJSON renders a weather tag as its variant name.
func (w WeatherTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

var weatherTagByName = func() map[string]WeatherTag {
	m := make(map[string]WeatherTag)
	for w := Sunny; w <= TrentinoWinter; w++ {
		m[w.String()] = w
	}
	return m
}()

// UnmarshalJSON parses a weather tag from its variant name.
func (w *WeatherTag) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	tag, ok := weatherTagByName[name]
	if !ok {
		return fmt.Errorf("worldgen: unknown weather tag %q", name)
	}
	*w = tag
	return nil
}
