package worldgen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/worldgen/pkg/logging"
)

// savedWorld is the on-disk JSON shape. Weather is included so Load can
// restore it verbatim when the loading builder hasn't configured its own.
type savedWorld struct {
	Grid     Grid                    `json:"grid"`
	Spawn    Spawn                   `json:"spawn"`
	Weather  EnvironmentalConditions `json:"weather"`
	Score    float32                 `json:"score"`
	ScoreMap map[ContentKind]float32 `json:"score_map,omitempty"`
}

// Save runs generation once and writes the resulting (grid, spawn,
// weather, score, score_map) tuple as UTF-8 JSON to path, creating any
// missing parent directories.
func (g *Generator) Save(path string, logger *logrus.Logger) error {
	world, err := g.Generate(logger)
	if err != nil {
		return fmt.Errorf("worldgen: generate before save: %w", err)
	}

	if logger != nil {
		logging.SaveLoadLogger(logger, "save", path).Info("saving world")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("worldgen: create save directory: %w", err)
		}
	}

	payload := savedWorld{
		Grid:     world.Grid,
		Spawn:    world.Spawn,
		Weather:  world.Weather,
		Score:    world.Score,
		ScoreMap: world.ScoreMap,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("worldgen: marshal world: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("worldgen: write save file: %w", err)
	}
	return nil
}

// loadSavedWorld reads and unmarshals a saved world from path.
func loadSavedWorld(path string, logger *logrus.Logger) (*savedWorld, error) {
	if logger != nil {
		logging.SaveLoadLogger(logger, "load", path).Info("loading world")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("worldgen: read save file: %w", err)
	}
	var saved savedWorld
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("worldgen: unmarshal world: %w", err)
	}
	return &saved, nil
}
