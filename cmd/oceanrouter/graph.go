package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/paulmach/orb"

	"ocean-router/internal/config"
	"ocean-router/internal/grid"
)

// loadGraph returns the cached graph when cfg.CacheFile holds one built from
// the same lattice settings, otherwise builds a fresh lattice and writes it
// back to the cache.
func loadGraph(cfg config.GridConfig, logger *slog.Logger) (*grid.Graph, error) {
	var zones []orb.Polygon
	if cfg.ZonesFile != "" {
		var err error
		if zones, err = readZones(cfg.ZonesFile, cfg.ZonesSimplifyDeg); err != nil {
			return nil, err
		}
		logger.Info("loaded exclusion zones", slog.Int("zones", len(zones)))
	}
	want := grid.Lattice{Bounds: cfg.Bounds, StepDeg: cfg.StepDeg, Zones: len(zones)}

	if cfg.CacheFile != "" {
		g, err := readGraph(cfg.CacheFile)
		switch {
		case err == nil:
			got, ok := g.Lattice()
			if ok && got == want {
				logger.Info("loaded cached graph",
					slog.String("file", cfg.CacheFile),
					slog.Int("nodes", g.Len()))
				return g, nil
			}
			logger.Warn("graph cache does not match grid settings, rebuilding",
				slog.String("file", cfg.CacheFile),
				slog.Any("cached", got),
				slog.Any("configured", want))
		case errors.Is(err, fs.ErrNotExist):
			logger.Info("no cached graph, building", slog.String("file", cfg.CacheFile))
		default:
			logger.Warn("ignoring unreadable graph cache",
				slog.String("file", cfg.CacheFile),
				slog.Any("error", err))
		}
	}

	g, err := grid.Build(cfg.Bounds, cfg.StepDeg, grid.WithLogger(logger), grid.WithExclusionZones(zones...))
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}

	if cfg.CacheFile != "" {
		if err := writeGraph(cfg.CacheFile, g); err != nil {
			logger.Warn("failed to save graph cache", slog.Any("error", err))
		}
	}
	return g, nil
}

func readGraph(path string) (*grid.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.Decode(f)
}

func writeGraph(path string, g *grid.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := grid.Encode(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readZones(path string, simplifyDeg float64) ([]orb.Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open zones: %w", err)
	}
	defer f.Close()
	zones, err := grid.LoadZones(f, grid.ZoneOptions{SimplifyDeg: simplifyDeg})
	if err != nil {
		return nil, fmt.Errorf("load zones %s: %w", path, err)
	}
	return zones, nil
}
