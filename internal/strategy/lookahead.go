// internal/strategy/lookahead.go
//
// v5: one-step lookahead. For every corpus word as a hypothetical guess,
// apply it against every remaining candidate as a hypothetical target and
// average the resulting candidate-set sizes; guess the minimizer. The
// per-guess evaluations are independent, so they fan out across a bounded
// errgroup. Cost scales with corpus size × candidate count per decision.

package strategy

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mark-tilton/wordle-cheat/internal/solver"
	"github.com/mark-tilton/wordle-cheat/internal/words"
)

// Lookahead is the v5 policy. Workers bounds the internal fan-out; set it
// to 1 when running inside an already-parallel context (e.g. the batch
// evaluator) to avoid oversubscribing the pool.
type Lookahead struct {
	corpus  *words.Corpus
	Workers int
}

// NewLookahead constructs the v5 policy with one worker per CPU.
func NewLookahead(corpus *words.Corpus) *Lookahead {
	return &Lookahead{corpus: corpus, Workers: runtime.NumCPU()}
}

func (l *Lookahead) Name() string { return "v5" }

func (l *Lookahead) Next(s *solver.State) (string, error) {
	cands := s.CandidateWords()
	if len(cands) == 0 {
		return "", ErrExhausted
	}
	if len(cands) == 1 {
		return cands[0], nil
	}

	// expected[i] holds the mean remaining-candidate count after guessing
	// corpus word i; -1 marks words skipped because already guessed.
	expected := make([]float64, l.corpus.Len())

	var g errgroup.Group
	g.SetLimit(max(l.Workers, 1))
	for i, guess := range l.corpus.Words() {
		if s.Guessed(guess) {
			expected[i] = -1
			continue
		}
		i, guess := i, guess
		g.Go(func() error {
			total := uint(0)
			for _, target := range cands {
				trial := s.Clone()
				trial.ApplyGuess(guess, target)
				total += trial.CandidateCount()
			}
			expected[i] = float64(total) / float64(len(cands))
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	best, bestExp := "", -1.0
	for i, exp := range expected {
		if exp < 0 {
			continue
		}
		if bestExp < 0 || exp < bestExp {
			best, bestExp = l.corpus.At(i), exp
		}
	}
	if best == "" {
		return "", ErrExhausted
	}
	return best, nil
}
