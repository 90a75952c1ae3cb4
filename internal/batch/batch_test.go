package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark-tilton/wordle-cheat/internal/game"
	"github.com/mark-tilton/wordle-cheat/internal/strategy"
	"github.com/mark-tilton/wordle-cheat/internal/words"
)

func evalCorpus(t *testing.T) *words.Corpus {
	t.Helper()
	c, err := words.New([]string{"crane", "slate", "trace", "place", "grace"})
	require.NoError(t, err)
	return c
}

func TestRunAggregatesHistogram(t *testing.T) {
	corpus := evalCorpus(t)
	strat, err := strategy.New("v1", corpus)
	require.NoError(t, err)

	stats, err := New(corpus).Run(strat)
	require.NoError(t, err)

	// v1 solves trace on turn 1 and everything else on turn 2.
	assert.Equal(t, map[int]int{1: 1, 2: 4}, stats.Histogram)

	sum := 0
	for _, n := range stats.Histogram {
		sum += n
	}
	assert.Equal(t, 5, sum)
	assert.InDelta(t, 1.8, stats.MeanTurns, 1e-9)
	assert.Equal(t, 5, stats.Solved)
	assert.InDelta(t, 1.0, stats.SolvedRate, 1e-9)
	assert.Equal(t, DefaultThreshold, stats.Threshold)
	assert.Equal(t, "v1", stats.Strategy)
}

func TestRunMeanMatchesIndividualOutcomes(t *testing.T) {
	corpus := evalCorpus(t)
	strat, err := strategy.New("v2", corpus)
	require.NoError(t, err)

	total := 0
	for _, target := range corpus.Words() {
		res, err := game.Play(corpus, target, strat.Next, nil)
		require.NoError(t, err)
		total += res.Turns
	}

	stats, err := New(corpus).Run(strat)
	require.NoError(t, err)
	assert.InDelta(t, float64(total)/float64(corpus.Len()), stats.MeanTurns, 1e-9)
}

func TestRunIsOrderIndependent(t *testing.T) {
	corpus := evalCorpus(t)
	strat, err := strategy.New("v1", corpus)
	require.NoError(t, err)

	serial := New(corpus)
	serial.Workers = 1
	wide := New(corpus)
	wide.Workers = 8

	a, err := serial.Run(strat)
	require.NoError(t, err)
	b, err := wide.Run(strat)
	require.NoError(t, err)

	assert.Equal(t, a.Histogram, b.Histogram)
	assert.Equal(t, a.MeanTurns, b.MeanTurns)
	assert.Equal(t, a.Solved, b.Solved)
}

func TestRunSerializesLookaheadFanOut(t *testing.T) {
	corpus := evalCorpus(t)
	la := strategy.NewLookahead(corpus)
	require.NotEqual(t, 0, la.Workers)

	stats, err := New(corpus).Run(la)
	require.NoError(t, err)

	assert.Equal(t, 1, la.Workers)
	assert.Equal(t, 5, stats.Words)
	assert.Equal(t, 5, stats.Solved)
}

func TestFindProblematic(t *testing.T) {
	corpus := evalCorpus(t)
	strat, err := strategy.New("v2", corpus)
	require.NoError(t, err)

	ev := New(corpus)

	// Everything solves within two turns here.
	_, ok, err := ev.FindProblematic(strat, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	// With the bar below every outcome, the first corpus word trips it.
	w, ok, err := ev.FindProblematic(strat, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "crane", w)
}
