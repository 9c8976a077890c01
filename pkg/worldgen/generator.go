package worldgen

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/worldgen/pkg/logging"
)

// World is the generator's output tuple.
type World struct {
	Grid     Grid
	Spawn    Spawn
	Weather  EnvironmentalConditions
	Score    float32
	ScoreMap map[ContentKind]float32
}

// Generator runs the generation pipeline for a resolved GeneratorConfig, or
// (when built via Builder.Load) replays a cached world verbatim.
type Generator struct {
	cfg    GeneratorConfig
	loaded bool
}

// Generate runs the pipeline to completion and returns the resulting world.
// It is single-threaded, synchronous and blocking: in maze mode the maze
// builder runs in place of the heightmap/classifier/hydrology/lava/streets
// chain, then content placement and spawn selection run over either grid.
// A generator built from Builder.Load bypasses the pipeline and returns
// the cached tuple, restoring weather from the builder's configured value.
func (g *Generator) Generate(logger *logrus.Logger) (World, error) {
	if g.loaded {
		return g.generateFromLoad(logger)
	}

	log := logging.GeneratorLogger(nonNilLogger(logger), g.cfg.Seed, g.cfg.Size, g.cfg.Maze)
	rng := newRNG(g.cfg.Seed)

	var grid Grid
	var hm Heightmap

	if g.cfg.Maze {
		if g.cfg.WithInfo {
			log.Info("carving maze")
		}
		size := adjustMazeSize(g.cfg.Size)
		grid = buildMaze(g.cfg.Seed, size, g.cfg.TileTypeOptions, rng)
		stampTeleportCircles(grid, rng)
		scatterJollyBlocks(grid, rng)
	} else {
		if g.cfg.WithInfo {
			log.Info("sampling heightmap")
		}
		hm = buildHeightmap(g.cfg.Seed, g.cfg.Size, logger)
		grid = classifyGrid(hm, g.cfg.TileTypeOptions, g.cfg.HeightMultiplier, rng)

		cl := newClaimed(grid.Size())

		if g.cfg.WithInfo {
			log.Info("carving rivers")
		}
		carveRivers(grid, hm, g.cfg.TileTypeOptions, cl, rng)

		if g.cfg.WithInfo {
			log.Info("stamping lava")
		}
		stampLava(grid, g.cfg.TileTypeOptions, rng)

		if g.cfg.WithInfo {
			log.Info("carving streets")
		}
		carveStreets(grid, g.cfg.TileTypeOptions, cl, rng)
	}

	if g.cfg.WithInfo {
		log.Info("placing content")
	}
	placeContent(grid, g.cfg.Seed, rng, g.cfg.ContentSequence)

	spawn := chooseSpawn(grid, rng)
	if g.cfg.WithInfo {
		log.WithFields(logrus.Fields{"spawn_x": spawn.X, "spawn_y": spawn.Y}).Info("spawn chosen")
	}

	return World{
		Grid:     grid,
		Spawn:    spawn,
		Weather:  g.cfg.Weather,
		Score:    g.cfg.Score,
		ScoreMap: g.cfg.ScoreMap,
	}, nil
}

// generateFromLoad reads the cached world from g.cfg.LoadPath and restores
// weather from the builder's configured value, defaulting to the cached
// value if the builder never set one.
func (g *Generator) generateFromLoad(logger *logrus.Logger) (World, error) {
	saved, err := loadSavedWorld(g.cfg.LoadPath, logger)
	if err != nil {
		return World{}, fmt.Errorf("worldgen: load: %w", err)
	}

	weather := saved.Weather
	if len(g.cfg.Weather.WeatherSequence) > 0 {
		weather = g.cfg.Weather
	}

	return World{
		Grid:     saved.Grid,
		Spawn:    saved.Spawn,
		Weather:  weather,
		Score:    saved.Score,
		ScoreMap: saved.ScoreMap,
	}, nil
}

func nonNilLogger(logger *logrus.Logger) *logrus.Logger {
	if logger != nil {
		return logger
	}
	return logging.NewLogger(logging.DefaultConfig())
}
