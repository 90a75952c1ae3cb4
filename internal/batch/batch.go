// internal/batch/batch.go
//
// Corpus-wide strategy evaluation.
// Runs one independent simulation per corpus word as target over a
// bounded worker pool and reduces the outcomes into a turn-count
// histogram, the mean turn count, and the fraction solved within a
// threshold. Each simulation owns its own state and reads only the
// immutable corpus, so no locking is needed beyond the result sink; the
// reduction is commutative, so completion order is irrelevant.

package batch

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/mark-tilton/wordle-cheat/internal/game"
	"github.com/mark-tilton/wordle-cheat/internal/strategy"
	"github.com/mark-tilton/wordle-cheat/internal/words"
)

// DefaultThreshold is the turn count within which a run counts as solved.
const DefaultThreshold = 6

// Stats aggregates one corpus-wide evaluation.
type Stats struct {
	Strategy   string      `json:"strategy"`
	Words      int         `json:"words"`
	Histogram  map[int]int `json:"histogram"` // turns → run count
	MeanTurns  float64     `json:"meanTurns"`
	Solved     int         `json:"solved"` // runs finishing within Threshold
	SolvedRate float64     `json:"solvedRate"`
	Threshold  int         `json:"threshold"`
}

// Evaluator fans one simulation per corpus word across a worker pool.
type Evaluator struct {
	Corpus    *words.Corpus
	Workers   int  // pool size; defaults to NumCPU
	Threshold int  // solved-within threshold; defaults to DefaultThreshold
	Progress  bool // render a terminal progress bar
}

// New constructs an evaluator with default pool sizing and threshold.
func New(corpus *words.Corpus) *Evaluator {
	return &Evaluator{
		Corpus:    corpus,
		Workers:   runtime.NumCPU(),
		Threshold: DefaultThreshold,
	}
}

// Run evaluates strat against every corpus word.
// A policy error on any target aborts the evaluation: strategies are
// expected to always produce a legal guess against a truthful target.
func (e *Evaluator) Run(strat strategy.Strategy) (Stats, error) {
	// The lookahead policy fans out internally; with the outer pool
	// already saturating the CPUs its inner evaluation runs serial.
	if la, ok := strat.(*strategy.Lookahead); ok {
		la.Workers = 1
	}

	log.Info().
		Str("strategy", strat.Name()).
		Int("words", e.Corpus.Len()).
		Int("workers", e.Workers).
		Msg("evaluating strategy")

	var bar *progressbar.ProgressBar
	if e.Progress {
		bar = progressbar.Default(int64(e.Corpus.Len()))
	}

	var (
		mu         sync.Mutex
		hist       = make(map[int]int)
		totalTurns int
		solved     int
	)

	var g errgroup.Group
	g.SetLimit(max(e.Workers, 1))
	for _, target := range e.Corpus.Words() {
		target := target
		g.Go(func() error {
			res, err := game.Play(e.Corpus, target, strat.Next, nil)
			if err != nil {
				return fmt.Errorf("batch: target %q: %w", target, err)
			}
			mu.Lock()
			hist[res.Turns]++
			totalTurns += res.Turns
			if res.Status == game.StatusSolved && res.Turns <= e.Threshold {
				solved++
			}
			mu.Unlock()
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	n := e.Corpus.Len()
	return Stats{
		Strategy:   strat.Name(),
		Words:      n,
		Histogram:  hist,
		MeanTurns:  float64(totalTurns) / float64(n),
		Solved:     solved,
		SolvedRate: float64(solved) / float64(n),
		Threshold:  e.Threshold,
	}, nil
}

// FindProblematic returns the first corpus word whose game runs longer
// than `over` turns under strat, or ok=false when none does.
func (e *Evaluator) FindProblematic(strat strategy.Strategy, over int) (word string, ok bool, err error) {
	for _, target := range e.Corpus.Words() {
		res, err := game.Play(e.Corpus, target, strat.Next, nil)
		if err != nil {
			return "", false, fmt.Errorf("batch: target %q: %w", target, err)
		}
		if res.Turns > over {
			return target, true, nil
		}
	}
	return "", false, nil
}
