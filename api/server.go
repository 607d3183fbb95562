// Package api serves the solver over HTTP.
//
//	POST /solve    {"board": "...", "unfold": false, "path": false}
//	GET  /healthz
//	GET  /metrics  Prometheus exposition (when a gatherer is given)
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/internal/logging"
	"github.com/katalvlaran/burrow/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Solver is the part of service.Service the API needs.
type Solver interface {
	Solve(ctx context.Context, req service.Request) (*service.Report, error)
}

// SolveRequest is the POST /solve body.
type SolveRequest struct {
	Board  string `json:"board"`
	Unfold bool   `json:"unfold,omitempty"`
	Path   bool   `json:"path,omitempty"`
}

// SolveResponse is the POST /solve answer.
type SolveResponse struct {
	ID       string   `json:"id"`
	Energy   int64    `json:"energy"`
	Expanded int      `json:"expanded"`
	Cached   bool     `json:"cached"`
	Path     []string `json:"path,omitempty"`
	Steps    []int64  `json:"steps,omitempty"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server holds the handler dependencies.
type Server struct {
	Solver Solver
	Log    *slog.Logger
}

// NewHandler builds the router. gatherer may be nil to omit /metrics.
func NewHandler(solver Solver, gatherer prometheus.Gatherer, log *slog.Logger) http.Handler {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Server{Solver: solver, Log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.Health)
	r.Post("/solve", s.Solve)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Solve handles POST /solve.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rep, err := s.Solver.Solve(r.Context(), service.Request{Board: body.Board, Unfold: body.Unfold, Path: body.Path})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.Log.Error("solve failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		}
		writeJSON(w, status, ErrorResponse{Error: err.Error()})
		return
	}

	resp := SolveResponse{
		ID:       rep.ID,
		Energy:   rep.Energy,
		Expanded: rep.Expanded,
		Cached:   rep.Cached,
		Steps:    rep.Steps,
	}
	for _, c := range rep.Path {
		resp.Path = append(resp.Path, c.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, board.ErrMalformedBoard),
		errors.Is(err, board.ErrInvalidConfiguration),
		errors.Is(err, board.ErrInvalidLayout):
		return http.StatusBadRequest
	case errors.Is(err, dijkstra.ErrNoSolution):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
