// internal/solver/check.go
//
// Consistency predicate: could a word still be the target given the
// current state? Check reads but never writes the state, so it is safe
// to call repeatedly and concurrently with other readers.

package solver

// Check reports whether w is consistent with everything learned so far.
//
// Rejection order:
//  1. Already guessed.
//  2. Contains a letter confirmed absent.
//  3. Mismatches a bound found slot.
//  4. Cannot cover the loose multiset with letters left over after the
//     found slots are satisfied (duplicate loose letters need duplicate
//     leftover slots).
func (s *State) Check(w string) bool {
	if s.Guessed(w) {
		return false
	}
	for i := 0; i < len(w); i++ {
		if s.invalid[idx(w[i])] {
			return false
		}
	}
	for i, f := range s.found {
		if f != 0 && w[i] != f {
			return false
		}
	}

	var rem [26]int
	for i := 0; i < len(w); i++ {
		rem[idx(w[i])]++
	}
	for i, f := range s.found {
		if f != 0 && w[i] == f {
			rem[idx(f)]--
		}
	}
	for l := 0; l < 26; l++ {
		if s.loose[l] > rem[l] {
			return false
		}
	}
	return true
}

// CheckHard applies Check plus the hard-mode restriction: a guess may not
// re-test a letter at a position where a past guess already showed that
// letter was not an exact match.
func (s *State) CheckHard(w string) bool {
	if !s.Check(w) {
		return false
	}
	for _, g := range s.guesses {
		for i := 0; i < len(g); i++ {
			if w[i] == g[i] && s.found[i] != g[i] {
				return false
			}
		}
	}
	return true
}
