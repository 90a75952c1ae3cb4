// internal/solver/state.go
//
// Per-game constraint state for the solver.
// Tracks everything learned from prior guesses:
//   - found:      letters confirmed at exact positions (bind-once).
//   - loose:      multiset of letters known present but not yet placed.
//   - invalid:    letters confirmed absent from the target.
//   - guesses:    chronological guess history.
//   - candidates: bitset over corpus indices of words still consistent
//                 with all of the above. Only ever shrinks.
//
// State is updated once per turn, either from a known target (ApplyGuess,
// simulation mode) or from externally supplied per-position marks
// (ApplyFeedback, interactive mode). Both paths end by re-filtering the
// previous candidate set through Check — valid because constraints only
// tighten, so incremental filtering matches filtering the full corpus.

package solver

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/mark-tilton/wordle-cheat/internal/words"
)

// State holds the constraint model for a single game.
type State struct {
	corpus     *words.Corpus
	found      []byte // per position; 0 = unknown
	loose      [26]int
	invalid    [26]bool
	guesses    []string
	candidates *bitset.BitSet // over corpus indices
}

// NewState creates an empty state: nothing known, every corpus word a candidate.
func NewState(corpus *words.Corpus) *State {
	return &State{
		corpus:     corpus,
		found:      make([]byte, corpus.Length()),
		candidates: bitset.New(uint(corpus.Len())).Complement(),
	}
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(b byte) int { return int(b - 'a') }

// Corpus returns the corpus this state filters.
func (s *State) Corpus() *words.Corpus { return s.corpus }

// Turn returns the number of guesses applied so far.
func (s *State) Turn() int { return len(s.guesses) }

// Guesses returns the guess history. Callers must not mutate it.
func (s *State) Guesses() []string { return s.guesses }

// Guessed reports whether w has already been submitted.
func (s *State) Guessed(w string) bool {
	for _, g := range s.guesses {
		if g == w {
			return true
		}
	}
	return false
}

// Candidates returns the live candidate bitset. Read-only by contract.
func (s *State) Candidates() *bitset.BitSet { return s.candidates }

// CandidateCount returns the number of words still consistent with the state.
func (s *State) CandidateCount() uint { return s.candidates.Count() }

// CandidateWords materializes the candidate set in corpus iteration order.
func (s *State) CandidateWords() []string {
	out := make([]string, 0, s.candidates.Count())
	for i, ok := s.candidates.NextSet(0); ok; i, ok = s.candidates.NextSet(i + 1) {
		out = append(out, s.corpus.At(int(i)))
	}
	return out
}

// FirstCandidate returns the lowest-index candidate, if any remain.
func (s *State) FirstCandidate() (string, bool) {
	if i, ok := s.candidates.NextSet(0); ok {
		return s.corpus.At(int(i)), true
	}
	return "", false
}

// Clone deep-copies the state so hypothetical updates can be applied
// without disturbing the original.
func (s *State) Clone() *State {
	c := &State{
		corpus:     s.corpus,
		found:      append([]byte(nil), s.found...),
		loose:      s.loose,
		invalid:    s.invalid,
		guesses:    append([]string(nil), s.guesses...),
		candidates: s.candidates.Clone(),
	}
	return c
}

// ApplyGuess folds one guess/target pair into the state (simulation mode).
// The target is assumed honest: it is the word the marks would be scored
// against, so the true target always survives the candidate re-filter.
func (s *State) ApplyGuess(guess, target string) {
	s.guesses = append(s.guesses, guess)

	// Exact-match pass: bind found slots, upgrading matching loose letters.
	for i := 0; i < len(guess); i++ {
		if guess[i] == target[i] && s.found[i] == 0 {
			s.found[i] = guess[i]
			if s.loose[idx(guess[i])] > 0 {
				s.loose[idx(guess[i])]--
			}
		}
	}

	// Working pools with every found-bound letter removed: from the target
	// side by position, from the guess side only where the guess actually
	// matches the bound slot.
	var targetRem, guessRem [26]int
	for i := 0; i < len(target); i++ {
		targetRem[idx(target[i])]++
	}
	for i := 0; i < len(guess); i++ {
		guessRem[idx(guess[i])]++
	}
	for i, f := range s.found {
		if f == 0 {
			continue
		}
		targetRem[idx(f)]--
		if guess[i] == f {
			guessRem[idx(f)]--
		}
	}

	// Drop guess letters already sitting in loose, then move whatever is
	// left in the target pool into loose. Net effect per letter: loose
	// becomes max(old loose, matched count), so duplicates are neither
	// under- nor over-counted.
	for l := 0; l < 26; l++ {
		m := guessRem[l]
		if m == 0 {
			continue
		}
		s.loose[l] -= min(m, s.loose[l])
		s.loose[l] += min(m, max(targetRem[l], 0))
	}

	// Letters with zero occurrences anywhere in the target are dead.
	for i := 0; i < len(guess); i++ {
		if strings.IndexByte(target, guess[i]) < 0 {
			s.invalid[idx(guess[i])] = true
		}
	}

	s.refilter()
}

// ApplyFeedback folds externally supplied marks into the state
// (interactive mode). len(marks) must equal the word length.
func (s *State) ApplyFeedback(guess string, marks []Mark) {
	s.guesses = append(s.guesses, guess)

	for i, m := range marks {
		if m == MarkHit && s.found[i] == 0 {
			s.found[i] = guess[i]
			if s.loose[idx(guess[i])] > 0 {
				s.loose[idx(guess[i])]--
			}
		}
	}

	// Non-hit guess letters form the working pool; present marks say how
	// many of them the target still holds unplaced.
	var guessRem, presents [26]int
	var seen [26]bool
	for i, m := range marks {
		l := idx(guess[i])
		if m != MarkMiss {
			seen[l] = true
		}
		if m == MarkHit {
			continue
		}
		guessRem[l]++
		if m == MarkPresent {
			presents[l]++
		}
	}
	for l := 0; l < 26; l++ {
		if guessRem[l] == 0 {
			continue
		}
		s.loose[l] -= min(guessRem[l], s.loose[l])
		s.loose[l] += presents[l]
	}

	// All-miss letters with no other evidence of presence are dead.
	for i := 0; i < len(guess); i++ {
		l := idx(guess[i])
		if seen[l] || s.loose[l] > 0 || s.foundHas(guess[i]) {
			continue
		}
		s.invalid[l] = true
	}

	s.refilter()
}

// foundHas reports whether b is bound at any found slot.
func (s *State) foundHas(b byte) bool {
	for _, f := range s.found {
		if f == b {
			return true
		}
	}
	return false
}

// refilter removes candidates no longer accepted by Check.
// Filtering the previous set rather than the full corpus is safe because
// constraints only tighten.
func (s *State) refilter() {
	for i, ok := s.candidates.NextSet(0); ok; i, ok = s.candidates.NextSet(i + 1) {
		if !s.Check(s.corpus.At(int(i))) {
			s.candidates.Clear(i)
		}
	}
}

// Snapshot is a human-readable view of the state, emitted once per turn
// for diagnostic display. It has no influence on control flow.
type Snapshot struct {
	Found      string `json:"found"`   // e.g. "-l---"
	Loose      string `json:"loose"`   // multiset as letters, e.g. "aal"
	Invalid    string `json:"invalid"` // sorted letters
	Candidates uint   `json:"candidates"`
	Turn       int    `json:"turn"`
}

// Snapshot renders the current state.
func (s *State) Snapshot() Snapshot {
	var found, loose, invalid strings.Builder
	for _, f := range s.found {
		if f == 0 {
			found.WriteByte('-')
		} else {
			found.WriteByte(f)
		}
	}
	for l := 0; l < 26; l++ {
		for n := 0; n < s.loose[l]; n++ {
			loose.WriteByte(byte('a' + l))
		}
		if s.invalid[l] {
			invalid.WriteByte(byte('a' + l))
		}
	}
	return Snapshot{
		Found:      found.String(),
		Loose:      loose.String(),
		Invalid:    invalid.String(),
		Candidates: s.candidates.Count(),
		Turn:       len(s.guesses),
	}
}
