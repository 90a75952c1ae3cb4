// internal/solver/marks.go
//
// Per-letter guess feedback.
// Defines:
//   - Mark: evaluation result for a single letter (hit/present/miss).
//   - ScoreGuess: the classic two-pass scoring algorithm.
//   - ParseMarks: compact textual form used by the interactive CLI.

package solver

import "fmt"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the target but in a different position.
//   - "miss":    letter does not exist in the target at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// ScoreGuess scores guess against target with the standard two-pass
// algorithm.
//
// Pass 1 marks exact matches as Hit and counts the remaining target
// letters. Pass 2 resolves each non-hit guess letter to Present while
// remaining count is available, otherwise Miss. This handles repeated
// letters in both target and guess correctly.
func ScoreGuess(target, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	var counts [26]int
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = MarkHit
		} else {
			counts[idx(target[i])]++
		}
	}
	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		if l := idx(guess[i]); counts[l] > 0 {
			res[i] = MarkPresent
			counts[l]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// AllHit reports whether every mark is a hit, i.e. the guess solved it.
func AllHit(marks []Mark) bool {
	for _, m := range marks {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// ParseMarks parses a compact mark string: 'g' for hit, 'y' for present,
// '.' or 'x' for miss. Example: "g.y.." for a 5-letter word.
func ParseMarks(s string, length int) ([]Mark, error) {
	if len(s) != length {
		return nil, fmt.Errorf("marks: need %d characters, got %d", length, len(s))
	}
	out := make([]Mark, length)
	for i := 0; i < length; i++ {
		switch s[i] {
		case 'g', 'G':
			out[i] = MarkHit
		case 'y', 'Y':
			out[i] = MarkPresent
		case '.', 'x', 'X', 'b', 'B':
			out[i] = MarkMiss
		default:
			return nil, fmt.Errorf("marks: unknown character %q", s[i])
		}
	}
	return out, nil
}
