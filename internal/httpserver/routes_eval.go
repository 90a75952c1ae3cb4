// internal/httpserver/routes_eval.go
//
// HTTP routes for strategy evaluation.
// Exposes two endpoints under /eval:
//   - POST /eval/run  → evaluate a strategy corpus-wide, persist the stats
//   - GET  /eval/runs → list persisted runs, newest first
//
// Evaluation runs synchronously in the request (bounded by the router's
// timeout), so these endpoints are sized for modest corpora.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mark-tilton/wordle-cheat/internal/batch"
	"github.com/mark-tilton/wordle-cheat/internal/strategy"
)

// mountEval registers all /eval routes.
func (s *Server) mountEval(r chi.Router) {
	r.Route("/eval", func(r chi.Router) {
		r.Post("/run", s.handleEvalRun)
		r.Get("/runs", s.handleEvalRuns)
	})
}

// handleEvalRun evaluates the requested strategy over the whole corpus
// and persists the aggregate stats.
func (s *Server) handleEvalRun(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Strategy string `json:"strategy"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Strategy == "" {
		req.Strategy = "v2"
	}
	strat, err := strategy.New(req.Strategy, s.corpus)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := batch.New(s.corpus).Run(strat)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	id, err := s.results.Insert(r.Context(), stats)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Info().Int64("run", id).Str("strategy", stats.Strategy).
		Float64("meanTurns", stats.MeanTurns).Msg("evaluation persisted")
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id, "stats": stats})
}

// handleEvalRuns lists persisted evaluation runs.
func (s *Server) handleEvalRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	runs, err := s.results.List(r.Context(), limit)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"runs": runs})
}
