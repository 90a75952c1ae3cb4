// internal/strategy/strategy.go
//
// Guess-selection policies for the solver.
// All policies consume the current constraint state and return one guess:
//   v1 — fixed descending global-score order, first consistent word.
//   v2 — recompute letter frequencies over the remaining candidates,
//        argmax within the candidates.
//   v3 — recompute frequencies over candidates, argmax over the whole
//        corpus (information-gain guesses may be impossible answers);
//        short-circuits to the sole candidate when one remains.
//   v4 — v3 for the first three turns, then v2.
//   v5 — one-step lookahead minimizing expected remaining candidates
//        (see lookahead.go).
//
// Every policy except v3's corpus-wide search returns only words accepted
// by the consistency predicate. Ties break toward corpus iteration order,
// which keeps game traces reproducible.

package strategy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mark-tilton/wordle-cheat/internal/solver"
	"github.com/mark-tilton/wordle-cheat/internal/words"
)

// ErrExhausted is returned when a policy finds no consistent word to
// guess. It cannot occur against a truthful target; it signals malformed
// interactive feedback.
var ErrExhausted = errors.New("strategy: no consistent word available")

// Strategy picks the next guess for a game in progress.
// Implementations are read-only with respect to the state and safe for
// concurrent use across games.
type Strategy interface {
	Name() string
	Next(s *solver.State) (string, error)
}

// Names lists the selectable strategies in order.
func Names() []string { return []string{"v1", "v2", "v3", "v4", "v5"} }

// New constructs a named strategy over a corpus.
func New(name string, corpus *words.Corpus) (Strategy, error) {
	switch name {
	case "v1":
		return newGlobalOrder(corpus), nil
	case "v2":
		return remainingArgmax{}, nil
	case "v3":
		return corpusArgmax{corpus: corpus}, nil
	case "v4":
		return phased{explore: corpusArgmax{corpus: corpus}, exploit: remainingArgmax{}}, nil
	case "v5":
		return NewLookahead(corpus), nil
	default:
		return nil, fmt.Errorf("strategy: unknown strategy %q", name)
	}
}

// ----------------------------------------------------------------------------
// v1

// globalOrder walks a precomputed descending-score order of the full
// corpus and returns the first word the state still accepts. Score ties
// keep corpus iteration order (stable sort).
type globalOrder struct {
	order []string
}

func newGlobalOrder(corpus *words.Corpus) *globalOrder {
	freq := solver.LetterFrequency(corpus.Words())
	order := append([]string(nil), corpus.Words()...)
	sort.SliceStable(order, func(i, j int) bool {
		return solver.WordScore(order[i], freq) > solver.WordScore(order[j], freq)
	})
	return &globalOrder{order: order}
}

func (g *globalOrder) Name() string { return "v1" }

func (g *globalOrder) Next(s *solver.State) (string, error) {
	for _, w := range g.order {
		if s.Check(w) {
			return w, nil
		}
	}
	// The fixed order ran out: every corpus word is inconsistent.
	return "", ErrExhausted
}

// ----------------------------------------------------------------------------
// v2

// remainingArgmax rescores letters over the current candidates and picks
// the best-scoring candidate.
type remainingArgmax struct{}

func (remainingArgmax) Name() string { return "v2" }

func (remainingArgmax) Next(s *solver.State) (string, error) {
	cands := s.CandidateWords()
	if len(cands) == 0 {
		return "", ErrExhausted
	}
	freq := solver.LetterFrequency(cands)
	best, bestScore := "", -1
	for _, w := range cands {
		if score := solver.WordScore(w, freq); score > bestScore {
			best, bestScore = w, score
		}
	}
	return best, nil
}

// ----------------------------------------------------------------------------
// v3

// corpusArgmax rescores letters over the candidates but searches the
// whole corpus for the best-scoring guess, trading an impossible answer
// for information gain. With a single candidate left it guesses it.
type corpusArgmax struct {
	corpus *words.Corpus
}

func (corpusArgmax) Name() string { return "v3" }

func (c corpusArgmax) Next(s *solver.State) (string, error) {
	cands := s.CandidateWords()
	if len(cands) == 0 {
		return "", ErrExhausted
	}
	if len(cands) == 1 {
		return cands[0], nil
	}
	freq := solver.LetterFrequency(cands)
	best, bestScore := "", -1
	for _, w := range c.corpus.Words() {
		if s.Guessed(w) {
			continue
		}
		if score := solver.WordScore(w, freq); score > bestScore {
			best, bestScore = w, score
		}
	}
	if best == "" {
		return "", ErrExhausted
	}
	return best, nil
}

// ----------------------------------------------------------------------------
// v4

const exploreTurns = 3

// phased explores with v3 for the first turns, then exploits with v2.
type phased struct {
	explore corpusArgmax
	exploit remainingArgmax
}

func (phased) Name() string { return "v4" }

func (p phased) Next(s *solver.State) (string, error) {
	if s.Turn() < exploreTurns {
		return p.explore.Next(s)
	}
	return p.exploit.Next(s)
}
