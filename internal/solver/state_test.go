package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark-tilton/wordle-cheat/internal/words"
)

func mustCorpus(t *testing.T, list []string) *words.Corpus {
	t.Helper()
	c, err := words.New(list)
	require.NoError(t, err)
	return c
}

func TestApplyGuessDuplicateLetters(t *testing.T) {
	// Target "allay" has two l's and two a's; guessing "llama" must
	// account for every copy without inflating any count.
	corpus := mustCorpus(t, []string{"allay", "llama"})
	st := NewState(corpus)

	st.ApplyGuess("llama", "allay")

	snap := st.Snapshot()
	assert.Equal(t, "-l---", snap.Found)
	assert.Equal(t, "aal", snap.Loose)
	assert.Equal(t, "m", snap.Invalid)
}

func TestApplyGuessBindsFoundOnce(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "trace", "grace"})
	st := NewState(corpus)

	st.ApplyGuess("trace", "grace")
	snap := st.Snapshot()
	assert.Equal(t, "-race", snap.Found)
	assert.Equal(t, "t", snap.Invalid)
	assert.Empty(t, snap.Loose)

	// Re-hitting bound positions must not disturb what is known.
	st.ApplyGuess("crane", "grace")
	snap = st.Snapshot()
	assert.Equal(t, "-race", snap.Found)
	assert.Contains(t, snap.Invalid, "t")
	assert.Contains(t, snap.Invalid, "n")
}

func TestIncrementalFilterMatchesBruteForce(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "slate", "trace", "place", "grace"})
	st := NewState(corpus)

	for _, guess := range []string{"crane", "slate", "place"} {
		st.ApplyGuess(guess, "trace")

		var brute []string
		for _, w := range corpus.Words() {
			if st.Check(w) {
				brute = append(brute, w)
			}
		}
		assert.Equal(t, brute, st.CandidateWords(), "after guessing %q", guess)
	}
}

func TestTargetAlwaysRemainsCandidate(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "slate", "trace", "place", "grace", "whirl", "lolly"})
	for _, target := range corpus.Words() {
		st := NewState(corpus)
		for _, guess := range corpus.Words() {
			if guess == target {
				continue
			}
			st.ApplyGuess(guess, target)
			assert.True(t, st.Check(target),
				"target %q excluded after guessing %q", target, guess)
		}
	}
}

func TestCandidatesOnlyShrink(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "slate", "trace", "place", "grace"})
	st := NewState(corpus)

	prev := st.CandidateCount()
	for _, guess := range []string{"slate", "crane", "place"} {
		st.ApplyGuess(guess, "trace")
		cur := st.CandidateCount()
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestApplyFeedbackMatchesApplyGuess(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "slate", "trace", "place", "grace"})
	target := "slate"

	byTarget := NewState(corpus)
	byMarks := NewState(corpus)
	for _, guess := range []string{"trace", "crane"} {
		byTarget.ApplyGuess(guess, target)
		byMarks.ApplyFeedback(guess, ScoreGuess(target, guess))

		assert.Equal(t, byTarget.Snapshot(), byMarks.Snapshot(), "after %q", guess)
		assert.Equal(t, byTarget.CandidateWords(), byMarks.CandidateWords(), "after %q", guess)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "slate", "trace", "place", "grace"})
	st := NewState(corpus)
	st.ApplyGuess("slate", "trace")

	clone := st.Clone()
	clone.ApplyGuess("crane", "trace")

	assert.Equal(t, 1, st.Turn())
	assert.Equal(t, 2, clone.Turn())
	assert.Greater(t, st.CandidateCount(), uint(0))
	assert.NotEqual(t, st.Snapshot(), clone.Snapshot())
}

func TestSnapshotRendering(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "slate", "trace", "place", "grace"})
	st := NewState(corpus)

	snap := st.Snapshot()
	assert.Equal(t, "-----", snap.Found)
	assert.Empty(t, snap.Loose)
	assert.Empty(t, snap.Invalid)
	assert.Equal(t, uint(5), snap.Candidates)
	assert.Equal(t, 0, snap.Turn)
}
