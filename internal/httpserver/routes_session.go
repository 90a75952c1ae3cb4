// internal/httpserver/routes_session.go
//
// HTTP routes for assisted "cheat" sessions.
// Exposes three endpoints under /session:
//   - POST /session/new         → start a session, returns the first suggestion
//   - GET  /session/{id}        → current state snapshot + suggestion
//   - POST /session/{id}/guess  → report marks for a guess, get the next suggestion
//
// The client plays the suggested word in the real game, reports the marks
// it received ("g" hit, "y" present, "." miss), and the server folds that
// feedback into the session's constraint state before suggesting again.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mark-tilton/wordle-cheat/internal/solver"
	"github.com/mark-tilton/wordle-cheat/internal/store"
	"github.com/mark-tilton/wordle-cheat/internal/strategy"
)

// mountSession registers all /session routes.
func (s *Server) mountSession(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Post("/new", s.handleSessionNew)
		r.Get("/{id}", s.handleSessionGet)
		r.Post("/{id}/guess", s.handleSessionGuess)
	})
}

// sessionRes is the common response shape for session endpoints.
type sessionRes struct {
	ID         string          `json:"id"`
	Strategy   string          `json:"strategy"`
	Hard       bool            `json:"hard"`
	Suggestion string          `json:"suggestion,omitempty"`
	Solved     bool            `json:"solved"`
	Snapshot   solver.Snapshot `json:"snapshot"`
}

func sessionResFrom(sess *store.Session) sessionRes {
	return sessionRes{
		ID:         sess.ID,
		Strategy:   sess.Strategy,
		Hard:       sess.Hard,
		Suggestion: sess.Suggestion,
		Solved:     sess.Solved,
		Snapshot:   sess.State.Snapshot(),
	}
}

// suggest asks the session's policy for the next guess and records it.
func (s *Server) suggest(sess *store.Session) error {
	strat, err := strategy.New(sess.Strategy, s.corpus)
	if err != nil {
		return err
	}
	next, err := strat.Next(sess.State)
	if err != nil {
		return err
	}
	sess.Suggestion = next
	return nil
}

// handleSessionNew starts a session for the requested strategy and
// returns the opening suggestion.
func (s *Server) handleSessionNew(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Strategy string `json:"strategy"`
		Hard     bool   `json:"hard"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Strategy == "" {
		req.Strategy = "v2"
	}
	if _, err := strategy.New(req.Strategy, s.corpus); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := &store.Session{
		ID:       store.NewID(),
		Strategy: req.Strategy,
		Hard:     req.Hard,
		State:    solver.NewState(s.corpus),
	}
	if err := s.suggest(sess); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Info().Str("session", sess.ID).Str("strategy", sess.Strategy).Msg("session started")
	_ = json.NewEncoder(w).Encode(sessionResFrom(sess))
}

// handleSessionGet returns the session's current state.
func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "session not found")
		return
	}
	_ = json.NewEncoder(w).Encode(sessionResFrom(sess))
}

// guessReq reports the marks the real game returned for a guess.
// Guess defaults to the session's last suggestion.
type guessReq struct {
	Guess string `json:"guess,omitempty"`
	Marks string `json:"marks"` // e.g. "g.y.."
}

// handleSessionGuess folds reported marks into the session and returns
// the next suggestion (or solved=true when every mark was a hit).
func (s *Server) handleSessionGuess(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "session not found")
		return
	}
	if sess.Solved {
		writeErr(w, http.StatusConflict, "session already solved")
		return
	}

	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	if guess == "" {
		guess = sess.Suggestion
	}
	if !s.corpus.Contains(guess) {
		writeErr(w, http.StatusBadRequest, "guess not in word list")
		return
	}
	if sess.State.Guessed(guess) {
		writeErr(w, http.StatusBadRequest, "guess already submitted")
		return
	}
	if sess.Hard && !sess.State.CheckHard(guess) {
		writeErr(w, http.StatusBadRequest, "guess violates hard mode")
		return
	}
	marks, err := solver.ParseMarks(req.Marks, s.corpus.Length())
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	if solver.AllHit(marks) {
		sess.Solved = true
		sess.Suggestion = ""
		sess.State.ApplyFeedback(guess, marks)
	} else {
		sess.State.ApplyFeedback(guess, marks)
		if err := s.suggest(sess); err != nil {
			// Malformed feedback can empty the candidate set; surface it
			// rather than suggesting an arbitrary word.
			writeErr(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(sessionResFrom(sess))
}
