// main.go
//
// CLI entry point for the wordle-cheat solver.
// Subcommands:
//   evaluate  — run a strategy against every corpus word and report stats
//   play      — interactive game against a random (or given) target
//   cheat     — solver suggests guesses; you report the marks you got
//   serve     — HTTP solver service
//
// Configuration comes from the environment (.env supported):
//   WORDS_FILE  path to a word list (defaults to the embedded list)
//   WORDLE_DB   SQLite path for persisted evaluation runs (./data/wordle.db)
//   PORT        serve port (5175)
//   LOG_LEVEL   zerolog level (info)

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vyevs/ansi"

	"github.com/mark-tilton/wordle-cheat/internal/batch"
	"github.com/mark-tilton/wordle-cheat/internal/game"
	"github.com/mark-tilton/wordle-cheat/internal/httpserver"
	"github.com/mark-tilton/wordle-cheat/internal/results"
	"github.com/mark-tilton/wordle-cheat/internal/solver"
	"github.com/mark-tilton/wordle-cheat/internal/store"
	"github.com/mark-tilton/wordle-cheat/internal/strategy"
	"github.com/mark-tilton/wordle-cheat/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	corpus, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	switch os.Args[1] {
	case "evaluate":
		err = cmdEvaluate(corpus, os.Args[2:])
	case "play":
		err = cmdPlay(corpus, os.Args[2:])
	case "cheat":
		err = cmdCheat(corpus, os.Args[2:])
	case "serve":
		err = cmdServe(corpus, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wordle-cheat <evaluate|play|cheat|serve> [flags]")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// ----------------------------------------------------------------------------
// evaluate

func cmdEvaluate(corpus *words.Corpus, args []string) error {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	name := fs.String("strategy", "v2", "strategy to evaluate ("+strings.Join(strategy.Names(), "|")+")")
	word := fs.String("word", "", "trace a single word's game instead of the whole corpus")
	save := fs.Bool("save", false, "persist the run to the SQLite database")
	prof := fs.Bool("profile", false, "write a CPU profile to the current directory")
	problem := fs.Bool("problem", false, "report the first word needing more than 10 turns")
	_ = fs.Parse(args)

	strat, err := strategy.New(*name, corpus)
	if err != nil {
		return err
	}
	if *prof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if *word != "" {
		target := strings.ToLower(*word)
		if !corpus.Contains(target) {
			return fmt.Errorf("%q is not in the word list", target)
		}
		res, err := game.Play(corpus, target, strat.Next, printSnapshot)
		if err != nil {
			return err
		}
		fmt.Printf("Guesses: %s\n", strings.Join(res.Guesses, " "))
		if res.Status == game.StatusSolved {
			fmt.Printf("The word was %s! Solved in %d turns.\n", res.Target, res.Turns)
		} else {
			fmt.Printf("Out of turns after %d guesses.\n", res.Turns)
		}
		return nil
	}

	ev := batch.New(corpus)
	ev.Progress = true

	if *problem {
		w, ok, err := ev.FindProblematic(strat, 10)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("No problematic word found.")
			return nil
		}
		fmt.Printf("Problematic word: %s\n", w)
		return nil
	}

	stats, err := ev.Run(strat)
	if err != nil {
		return err
	}
	printStats(stats)

	if *save {
		db, err := openDB(getEnv("WORDLE_DB", "./data/wordle.db"))
		if err != nil {
			return err
		}
		defer db.Close()
		if err := migrate(db); err != nil {
			return err
		}
		id, err := results.NewStore(db).Insert(context.Background(), stats)
		if err != nil {
			return err
		}
		log.Info().Int64("run", id).Msg("evaluation persisted")
	}
	return nil
}

// printStats renders the histogram in turn order plus the aggregates.
func printStats(st batch.Stats) {
	turns := make([]int, 0, len(st.Histogram))
	for t := range st.Histogram {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	for _, t := range turns {
		fmt.Printf("%2d turns: %d\n", t, st.Histogram[t])
	}
	fmt.Printf("average turns: %.2f\n", st.MeanTurns)
	fmt.Printf("solved within %d: %d (%.1f%%)\n", st.Threshold, st.Solved, st.SolvedRate*100)
}

// printSnapshot is the per-turn display sink for terminal games.
func printSnapshot(s solver.Snapshot) {
	fmt.Println(s.Found)
	fmt.Printf("Loose letters: %s\n", s.Loose)
	fmt.Printf("Invalid letters: %s\n", s.Invalid)
}

// ----------------------------------------------------------------------------
// play

func cmdPlay(corpus *words.Corpus, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	hard := fs.Bool("hard", false, "hard mode: no re-testing a letter at a known miss position")
	word := fs.String("word", "", "play against a specific word")
	_ = fs.Parse(args)

	target := strings.ToLower(*word)
	if target == "" {
		target = corpus.Random()
	} else if !corpus.Contains(target) {
		return fmt.Errorf("%q is not in the word list", target)
	}

	reader := bufio.NewReader(os.Stdin)
	next := func(st *solver.State) (string, error) {
		for {
			fmt.Print("Guess a word: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				if errors.Is(err, io.EOF) {
					return "", errors.New("input closed")
				}
				return "", err
			}
			guess := strings.ToLower(strings.TrimSpace(line))
			if !corpus.Contains(guess) || st.Guessed(guess) {
				fmt.Println("Guess must be a valid unused word, try again.")
				continue
			}
			if *hard && !st.CheckHard(guess) {
				fmt.Println("In hard mode every guess must be a valid answer, try again.")
				continue
			}
			fmt.Println(colorMarks(guess, solver.ScoreGuess(target, guess)))
			return guess, nil
		}
	}

	res, err := game.Play(corpus, target, next, printSnapshot)
	if err != nil {
		return err
	}
	if res.Status == game.StatusSolved {
		fmt.Printf("The word was %s! Solved in %d turns.\n", target, res.Turns)
	} else {
		fmt.Printf("Out of turns, the word was %s.\n", target)
	}
	return nil
}

// colorMarks renders a guess with green hits, yellow presents, and
// uncolored misses.
func colorMarks(guess string, marks []solver.Mark) string {
	var b strings.Builder
	for i, m := range marks {
		switch m {
		case solver.MarkHit:
			b.WriteString(ansi.FGColorName("green"))
		case solver.MarkPresent:
			b.WriteString(ansi.FGColorName("yellow"))
		default:
			b.WriteString(ansi.Clear)
		}
		b.WriteByte(guess[i])
	}
	b.WriteString(ansi.Clear)
	return b.String()
}

// ----------------------------------------------------------------------------
// cheat

func cmdCheat(corpus *words.Corpus, args []string) error {
	fs := flag.NewFlagSet("cheat", flag.ExitOnError)
	name := fs.String("strategy", "v2", "strategy to use ("+strings.Join(strategy.Names(), "|")+")")
	_ = fs.Parse(args)

	strat, err := strategy.New(*name, corpus)
	if err != nil {
		return err
	}

	st := solver.NewState(corpus)
	reader := bufio.NewReader(os.Stdin)

	for turn := 1; turn <= game.MaxTurns; turn++ {
		guess, err := strat.Next(st)
		if err != nil {
			// Contradictory marks can empty the candidate set.
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		fmt.Printf("Try word: %s\n", guess)

		var marks []solver.Mark
		for {
			fmt.Print("Marks (g=hit y=present .=miss): ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return errors.New("input closed")
			}
			if marks, err = solver.ParseMarks(strings.TrimSpace(line), corpus.Length()); err != nil {
				fmt.Println(err)
				continue
			}
			break
		}
		if solver.AllHit(marks) {
			fmt.Println("We did it!")
			return nil
		}
		st.ApplyFeedback(guess, marks)
		printSnapshot(st.Snapshot())
	}
	fmt.Println("Out of turns.")
	return nil
}

// ----------------------------------------------------------------------------
// serve

func cmdServe(corpus *words.Corpus, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	_ = fs.Parse(args)

	db, err := openDB(getEnv("WORDLE_DB", "./data/wordle.db"))
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		return err
	}

	srv := httpserver.New(corpus, store.NewMemoryStore(), results.NewStore(db))
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("words", corpus.Len()).Msg("starting wordle-cheat server")
	return srv.Start(":" + port)
}
