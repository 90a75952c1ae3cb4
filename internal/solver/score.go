// internal/solver/score.go
//
// Letter-frequency scoring over word sets. A word scores high when its
// distinct letters appear in many of the words under consideration, so a
// high-scoring guess exercises the most common remaining letters.

package solver

// Frequency maps each letter to the number of words containing it at
// least once (distinct-letter presence, not raw occurrence count).
type Frequency [26]int

// LetterFrequency builds a frequency table over a word set.
func LetterFrequency(set []string) Frequency {
	var f Frequency
	for _, w := range set {
		var seen [26]bool
		for i := 0; i < len(w); i++ {
			seen[idx(w[i])] = true
		}
		for l := 0; l < 26; l++ {
			if seen[l] {
				f[l]++
			}
		}
	}
	return f
}

// WordScore sums the frequency of each distinct letter in w.
func WordScore(w string, f Frequency) int {
	var seen [26]bool
	score := 0
	for i := 0; i < len(w); i++ {
		if l := idx(w[i]); !seen[l] {
			seen[l] = true
			score += f[l]
		}
	}
	return score
}
