package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRejectsGuessedWords(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "slate", "trace", "place", "grace"})
	st := NewState(corpus)

	st.ApplyGuess("slate", "trace")
	assert.False(t, st.Check("slate"))
	assert.NotContains(t, st.CandidateWords(), "slate")
}

func TestCheckRejectsInvalidLetters(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "slate", "trace", "place", "grace"})
	st := NewState(corpus)

	st.ApplyGuess("trace", "place") // t and r are dead
	assert.False(t, st.Check("crane"))
	assert.False(t, st.Check("grace"))
	assert.True(t, st.Check("place"))
}

func TestCheckRejectsFoundMismatch(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "trace", "grace"})
	st := NewState(corpus)

	st.ApplyGuess("trace", "grace") // binds -race
	assert.False(t, st.Check("crane")) // n mismatches bound c
	assert.True(t, st.Check("grace"))
}

func TestCheckLooseMultiplicity(t *testing.T) {
	corpus := mustCorpus(t, []string{"allay", "llama"})
	st := NewState(corpus)

	st.ApplyGuess("llama", "allay") // binds l, leaves loose a,a,l

	// Duplicate loose letters need duplicate unconsumed slots:
	// "alloy" has only one a left after the bound l, "alaya" has the a's
	// but no second l.
	assert.False(t, st.Check("alloy"))
	assert.False(t, st.Check("alaya"))
	assert.True(t, st.Check("allay"))
}

func TestCheckHardRejectsKnownMissPositions(t *testing.T) {
	corpus := mustCorpus(t, []string{"slate", "caste", "skate"})
	st := NewState(corpus)

	// "slate" against "caste": s at position 0 was shown not to be an
	// exact match there.
	st.ApplyGuess("slate", "caste")

	// "skate" re-tests s at position 0; base consistency still holds.
	assert.True(t, st.Check("skate"))
	assert.False(t, st.CheckHard("skate"))
	assert.True(t, st.CheckHard("caste"))
}

func TestCheckIsReadOnly(t *testing.T) {
	corpus := mustCorpus(t, []string{"crane", "slate", "trace", "place", "grace"})
	st := NewState(corpus)
	st.ApplyGuess("slate", "trace")

	before := st.Snapshot()
	for _, w := range corpus.Words() {
		st.Check(w)
		st.CheckHard(w)
	}
	assert.Equal(t, before, st.Snapshot())
	assert.Equal(t, before.Candidates, st.CandidateCount())
}
