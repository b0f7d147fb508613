package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/paulmach/orb/geojson"

	"ocean-router/internal/grid"
	"ocean-router/internal/planner"
	"ocean-router/internal/voyage"
)

// maxRequestBytes caps JSON request bodies, hazard lists included.
const maxRequestBytes = 1 << 20

type routeRequest struct {
	Start grid.Coordinate `json:"start"`
	End   grid.Coordinate `json:"end"`
}

type routeResponse struct {
	planner.PathResult
	Feature *geojson.Feature `json:"feature"`
}

type voyageRequest struct {
	Start   grid.Coordinate   `json:"start"`
	End     grid.Coordinate   `json:"end"`
	Hazards []grid.Coordinate `json:"hazards,omitempty"`
}

type voyageResponse struct {
	*voyage.Voyage
	Steps []voyage.Step `json:"steps"`
}

type errorResponse struct {
	Error   string         `json:"error"`
	Partial *voyage.Voyage `json:"partial,omitempty"`
}

// server holds the immutable routing state shared by every request.
type server struct {
	planner     *planner.Planner
	thresholdKm float64
	logger      *slog.Logger
}

func newServer(p *planner.Planner, thresholdKm float64, logger *slog.Logger) *server {
	return &server{planner: p, thresholdKm: thresholdKm, logger: logger}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/route", corsMiddleware(s.routeHandler))
	mux.HandleFunc("/voyage", corsMiddleware(s.voyageHandler))
	mux.HandleFunc("/graph/lines", corsMiddleware(s.graphLinesHandler))
	mux.HandleFunc("/health", corsMiddleware(s.healthHandler))
	return mux
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// POST /route - cheapest weather-aware route between two coordinates
func (s *server) routeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req routeRequest
	if status, err := decodeBody(w, r, &req); err != nil {
		s.logger.Warn("invalid route request", slog.Any("error", err))
		http.Error(w, http.StatusText(status), status)
		return
	}

	res, err := s.planner.FindPath(req.Start, req.End)
	if err != nil {
		s.logger.Info("route failed",
			slog.String("start", req.Start.String()),
			slog.String("end", req.End.String()),
			slog.Any("error", err))
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	s.logger.Info("route found",
		slog.String("start", res.Start().String()),
		slog.String("end", res.Goal().String()),
		slog.Int("waypoints", len(res.Path)),
		slog.Float64("distanceKm", res.DistanceKm))
	writeJSON(w, http.StatusOK, routeResponse{PathResult: res, Feature: res.Feature()})
}

// POST /voyage - plan and run a voyage to completion against request hazards
func (s *server) voyageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req voyageRequest
	if status, err := decodeBody(w, r, &req); err != nil {
		s.logger.Warn("invalid voyage request", slog.Any("error", err))
		http.Error(w, http.StatusText(status), status)
		return
	}

	ctrl, err := voyage.NewController(s.planner,
		voyage.WithHazards(req.Hazards...),
		voyage.WithThresholdKm(s.thresholdKm),
		voyage.WithLogger(s.logger))
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	v, err := ctrl.PlanVoyage(req.Start, req.End)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	steps, err := ctrl.Run(r.Context(), v)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error(), Partial: v})
		return
	}
	writeJSON(w, http.StatusOK, voyageResponse{Voyage: v, Steps: steps})
}

// GET /graph/lines - graph edges as GeoJSON for visualization
func (s *server) graphLinesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, grid.EdgesFeatureCollection(s.planner.Graph()))
}

// GET /health - Health check endpoint
func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	g := s.planner.Graph()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ready",
		"numNodes": g.Len(),
		"numEdges": g.EdgeCount(),
	})
}

// decodeBody reads a size-limited JSON body into dst. On failure it returns
// the status to answer with.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, err
		}
		return http.StatusBadRequest, err
	}
	return http.StatusOK, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, grid.ErrInvalidCoordinate):
		return http.StatusBadRequest
	case errors.Is(err, planner.ErrNoPathFound):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrNoNodesAvailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
