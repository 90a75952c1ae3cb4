// internal/words/words.go
//
// Word corpus management for the solver.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back to the
//     embedded default list.
//   - Validate that every word is lowercase a–z and that all words share one length.
//   - Maintain an index for O(1) membership and position lookups.
//
// The corpus doubles as the answer space and the legal-guess dictionary: every
// loaded word may be guessed and every loaded word may be a target.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt   (one word per line)
//
// Constraints:
//   • Words are normalized to lowercase and deduplicated.
//   • The corpus is read-only after Load/New returns.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

var ErrEmptyCorpus = errors.New("words: corpus is empty")

// Corpus is an immutable collection of unique fixed-length lowercase words.
type Corpus struct {
	words  []string       // corpus iteration order (load order)
	index  map[string]int // word → position in words
	length int            // letters per word
}

// Load builds a corpus from the WORDS_FILE env var if set,
// otherwise from the embedded default list.
func Load() (*Corpus, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		list, err := readWordFile(path)
		if err != nil {
			return nil, err
		}
		return New(list)
	}
	return New(splitLines(embeddedWords))
}

// New constructs a corpus from a word list.
// Words are lowercased and deduplicated; all must share the length of the
// first word and contain only a–z.
func New(list []string) (*Corpus, error) {
	c := &Corpus{index: make(map[string]int, len(list))}
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !isAlpha(w) {
			return nil, fmt.Errorf("words: %q is not lowercase a-z", w)
		}
		if c.length == 0 {
			c.length = len(w)
		}
		if len(w) != c.length {
			return nil, fmt.Errorf("words: %q is not %d letters", w, c.length)
		}
		if _, dup := c.index[w]; dup {
			continue
		}
		c.index[w] = len(c.words)
		c.words = append(c.words, w)
	}
	if len(c.words) == 0 {
		return nil, ErrEmptyCorpus
	}
	return c, nil
}

// readWordFile loads one word per line from a file, skipping blanks.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// splitLines processes an embedded multiline string into a word list.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Words returns the corpus in iteration order. Callers must not mutate it.
func (c *Corpus) Words() []string { return c.words }

// Len returns the number of words in the corpus.
func (c *Corpus) Len() int { return len(c.words) }

// Length returns the number of letters per word.
func (c *Corpus) Length() int { return c.length }

// At returns the word at index i in iteration order.
func (c *Corpus) At(i int) string { return c.words[i] }

// Index returns a word's position in iteration order.
func (c *Corpus) Index(w string) (int, bool) {
	i, ok := c.index[strings.ToLower(w)]
	return i, ok
}

// Contains reports whether w is a legal guess.
func (c *Corpus) Contains(w string) bool {
	_, ok := c.index[strings.ToLower(w)]
	return ok
}

// Random returns a cryptographically random word from the corpus.
func (c *Corpus) Random() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(c.words))))
	return c.words[nBig.Int64()]
}
