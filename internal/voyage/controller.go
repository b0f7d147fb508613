package voyage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"ocean-router/internal/grid"
	"ocean-router/internal/planner"
)

// DefaultHazardThresholdKm is the proximity that triggers an emergency reroute.
const DefaultHazardThresholdKm = 5.0

// Voyage is the mutable state of one trip. Only a Controller changes it.
type Voyage struct {
	State State `json:"state"`
	// Position is the node the vessel is currently at.
	Position grid.Coordinate `json:"position"`
	// History lists every node visited so far, start included.
	History []grid.Coordinate `json:"history"`
	// Remaining is the rest of the active route, excluding Position.
	Remaining []grid.Coordinate `json:"remaining"`
	// Plan is the route computed before departure.
	Plan planner.PathResult `json:"plan"`
	// Destination is the snapped goal of the active route.
	Destination grid.Coordinate `json:"destination"`
	// Emergency is the hazard that caused the reroute, if any.
	Emergency *grid.Coordinate `json:"emergency,omitempty"`
	// Reroute is the emergency segment, if any.
	Reroute *planner.PathResult `json:"reroute,omitempty"`
}

// Step is the outcome of a single Advance.
type Step struct {
	Position grid.Coordinate     `json:"position"`
	Rerouted bool                `json:"rerouted"`
	Segment  *planner.PathResult `json:"segment,omitempty"`
	State    State               `json:"state"`
}

type config struct {
	hazards     []grid.Coordinate
	thresholdKm float64
	logger      *slog.Logger
}

// Option configures a Controller.
type Option func(*config)

// WithHazards sets the hazard and emergency port positions.
func WithHazards(points ...grid.Coordinate) Option {
	return func(c *config) { c.hazards = append(c.hazards, points...) }
}

// WithThresholdKm overrides DefaultHazardThresholdKm.
func WithThresholdKm(km float64) Option {
	return func(c *config) { c.thresholdKm = km }
}

// WithLogger sets the logger for voyage events.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller plans voyages and advances them one node at a time.
type Controller struct {
	planner *planner.Planner
	hazards *hazardIndex
	logger  *slog.Logger
}

// NewController returns a Controller routing with p.
func NewController(p *planner.Planner, opts ...Option) (*Controller, error) {
	if p == nil {
		return nil, errors.New("voyage: planner is nil")
	}
	cfg := config{
		thresholdKm: DefaultHazardThresholdKm,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.thresholdKm > 0) {
		return nil, fmt.Errorf("voyage: hazard threshold %v km must be positive", cfg.thresholdKm)
	}

	hazards, err := newHazardIndex(cfg.hazards, cfg.thresholdKm)
	if err != nil {
		return nil, fmt.Errorf("voyage: %w", err)
	}
	return &Controller{planner: p, hazards: hazards, logger: cfg.logger}, nil
}

// PlanVoyage computes the initial route and returns a voyage ready to
// travel, or already Completed when start and end snap to the same node.
func (c *Controller) PlanVoyage(start, end grid.Coordinate) (*Voyage, error) {
	plan, err := c.planner.FindPath(start, end)
	if err != nil {
		return nil, fmt.Errorf("plan voyage: %w", err)
	}

	v := &Voyage{
		State:       Traveling,
		Position:    plan.Start(),
		History:     []grid.Coordinate{plan.Start()},
		Remaining:   slices.Clone(plan.Path[1:]),
		Plan:        plan,
		Destination: plan.Goal(),
	}
	if len(v.Remaining) == 0 {
		v.State = Completed
	}

	c.logger.Info("voyage planned",
		slog.String("from", plan.Start().String()),
		slog.String("to", plan.Goal().String()),
		slog.Int("waypoints", len(plan.Path)),
		slog.Float64("cost", plan.Cost),
		slog.Float64("distanceKm", plan.DistanceKm))
	return v, nil
}

// Advance moves v to the next node of its route. Until the first reroute,
// each new position is checked against the hazards; the first listed hazard in
// range becomes the new destination. A failed reroute aborts the voyage and
// returns an *Error.
func (c *Controller) Advance(v *Voyage) (Step, error) {
	if v.State.Finished() {
		return Step{Position: v.Position, State: v.State}, ErrVoyageFinished
	}
	if v.State != Traveling {
		return Step{Position: v.Position, State: v.State}, fmt.Errorf("voyage: cannot advance while %s", v.State)
	}

	if len(v.Remaining) == 0 {
		v.State = Completed
		return Step{Position: v.Position, State: v.State}, nil
	}

	v.Position = v.Remaining[0]
	v.Remaining = v.Remaining[1:]
	v.History = append(v.History, v.Position)
	step := Step{Position: v.Position}

	if v.Reroute == nil {
		if hazard, dist, ok := c.hazards.firstInRange(v.Position); ok {
			seg, err := c.reroute(v, hazard, dist)
			if err != nil {
				step.State = v.State
				return step, err
			}
			step.Rerouted = true
			step.Segment = seg
		}
	}

	if len(v.Remaining) == 0 {
		v.State = Completed
		c.logger.Info("voyage completed",
			slog.String("at", v.Position.String()),
			slog.Int("waypoints", len(v.History)),
			slog.Bool("rerouted", v.Reroute != nil))
	} else {
		v.State = Traveling
	}
	step.State = v.State
	return step, nil
}

func (c *Controller) reroute(v *Voyage, hazard grid.Coordinate, dist float64) (*planner.PathResult, error) {
	v.State = Rerouting
	c.logger.Warn("hazard in range, rerouting",
		slog.String("position", v.Position.String()),
		slog.String("hazard", hazard.String()),
		slog.Float64("distanceKm", dist))

	seg, err := c.planner.FindPath(v.Position, hazard)
	if err != nil {
		verr := &Error{
			State:    Rerouting,
			Position: v.Position,
			History:  slices.Clone(v.History),
			Err:      err,
		}
		v.State = Aborted
		c.logger.Error("reroute failed, voyage aborted", slog.Any("error", verr))
		return nil, verr
	}

	v.Emergency = &hazard
	v.Reroute = &seg
	v.Destination = seg.Goal()
	v.Remaining = slices.Clone(seg.Path[1:])
	return &seg, nil
}

// Run advances v until it completes or aborts, checking ctx between steps.
// Pacing (one step per time unit) is left to the caller's ctx or to
// calling Advance directly.
func (c *Controller) Run(ctx context.Context, v *Voyage) ([]Step, error) {
	var steps []Step
	for !v.State.Finished() {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		step, err := c.Advance(v)
		steps = append(steps, step)
		if err != nil {
			return steps, err
		}
	}
	return steps, nil
}
