// internal/game/game.go
//
// Single-game simulation loop.
// Responsibilities:
//   - Drive one game to completion against a known target using an
//     injected guess provider.
//   - Validate provided guesses (corpus membership, no repeats): a policy
//     that emits an invalid guess is a programming error, not a game loss.
//   - Enforce the turn cap. Reaching it is the Failed outcome, carried in
//     the result rather than an error, so "could not converge" stays
//     distinguishable from "malfunctioned".
//   - Emit a diagnostic snapshot to the display sink at the start of each
//     turn. Purely observational.

package game

import (
	"fmt"

	"github.com/mark-tilton/wordle-cheat/internal/solver"
	"github.com/mark-tilton/wordle-cheat/internal/words"
)

// MaxTurns caps every game. Hitting it ends the game as Failed.
const MaxTurns = 16

// Status is the terminal state of a finished game.
type Status string

const (
	StatusSolved Status = "solved"
	StatusFailed Status = "failed"
)

// GuessFunc provides the next guess for the current constraint state.
// Strategy policies satisfy it via their Next method; interactive callers
// wrap a prompt loop.
type GuessFunc func(*solver.State) (string, error)

// DisplayFunc receives a state snapshot once per turn. May be nil.
type DisplayFunc func(solver.Snapshot)

// Result reports how one game ended.
type Result struct {
	Target  string
	Status  Status
	Turns   int
	Guesses []string
}

// Play runs one full game against target to completion.
// Returns an error only when the guess provider malfunctions (invalid or
// repeated guess, or no consistent word left to offer).
func Play(corpus *words.Corpus, target string, next GuessFunc, display DisplayFunc) (Result, error) {
	st := solver.NewState(corpus)
	var guesses []string

	for turn := 1; turn <= MaxTurns; turn++ {
		if display != nil {
			display(st.Snapshot())
		}

		guess, err := next(st)
		if err != nil {
			return Result{Target: target, Status: StatusFailed, Turns: turn, Guesses: guesses}, err
		}
		if !corpus.Contains(guess) {
			return Result{Target: target, Status: StatusFailed, Turns: turn, Guesses: guesses},
				fmt.Errorf("game: guess %q is not in the corpus", guess)
		}
		if st.Guessed(guess) {
			return Result{Target: target, Status: StatusFailed, Turns: turn, Guesses: guesses},
				fmt.Errorf("game: guess %q was already submitted", guess)
		}
		guesses = append(guesses, guess)

		if guess == target {
			return Result{Target: target, Status: StatusSolved, Turns: turn, Guesses: guesses}, nil
		}
		st.ApplyGuess(guess, target)
	}

	return Result{Target: target, Status: StatusFailed, Turns: MaxTurns, Guesses: guesses}, nil
}
