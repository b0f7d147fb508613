package weather

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"ocean-router/internal/grid"
)

// Provider fetches the current wind speed at a coordinate. Implementations
// may be slow or fail; Collect treats a failure as missing data.
type Provider interface {
	WindSpeed(ctx context.Context, c grid.Coordinate) (float64, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, c grid.Coordinate) (float64, error)

// WindSpeed calls f.
func (f ProviderFunc) WindSpeed(ctx context.Context, c grid.Coordinate) (float64, error) {
	return f(ctx, c)
}

// CollectOptions tunes Collect.
type CollectOptions struct {
	// Concurrency bounds the number of in-flight provider calls; values
	// below 1 mean 8.
	Concurrency int
	Logger      *slog.Logger
}

// Collect queries p for every coordinate and returns the successful samples.
// Individual failures are logged and skipped so the planner falls back to the
// default penalty for them. Only cancellation of ctx fails the whole call.
func Collect(ctx context.Context, p Provider, coords []grid.Coordinate, opts CollectOptions) (Snapshot, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	limit := opts.Concurrency
	if limit < 1 {
		limit = 8
	}

	var (
		mu      sync.Mutex
		samples = make(map[grid.Coordinate]float64, len(coords))
		failed  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, c := range coords {
		c := c
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			w, err := p.WindSpeed(gctx, c)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn("wind fetch failed, using default", slog.String("at", c.String()), slog.Any("error", err))
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			mu.Lock()
			samples[c] = w
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	logger.Info("weather snapshot collected",
		slog.Int("requested", len(coords)),
		slog.Int("samples", len(samples)),
		slog.Int("failed", failed))

	return Snapshot{wind: samples}, nil
}

// Simulated is a deterministic Provider returning wind in [Min, Max) derived
// from Seed and the coordinate, for demos and tests without a live feed.
type Simulated struct {
	Seed     int64
	Min, Max float64
}

// WindSpeed implements Provider.
func (s Simulated) WindSpeed(ctx context.Context, c grid.Coordinate) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	h := fnv.New64a()
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(s.Seed))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(c.Lat))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(c.Lon))
	h.Write(buf[:])

	r := rand.New(rand.NewSource(int64(h.Sum64())))
	lo, hi := s.Min, s.Max
	if hi <= lo {
		lo, hi = 10, 30
	}
	return lo + r.Float64()*(hi-lo), nil
}
