// internal/words/words.go
//
// Provides the playable dictionary for the game engine.
//
// Responsibilities:
//   - Normalize raw lines (trim, uppercase, keep A–Z only).
//   - Build an immutable Dictionary of exactly-5-letter words.
//   - Supply utility methods like Random, Contains, At, and Len.
//
// Sources (Load):
//   1. If Config.File is set, read the list from that file.
//   2. Otherwise fall back to the list embedded in the assets package.
//
// Constraints:
//   • Words are uppercase A–Z, exactly Length letters.
//   • An empty result is a startup failure (ErrEmptyDictionary).
//   • A Dictionary is never mutated after construction.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/cli/assets"
)

// Length is the number of letters in every playable word.
const Length = 5

// ErrEmptyDictionary is returned when no line of the source survives
// normalization and length filtering.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// Config selects the word list source.
type Config struct {
	File string // optional path; empty means the embedded list
}

// Dictionary is an ordered, read-only list of playable words with an
// exact-match lookup set.
type Dictionary struct {
	list []string
	set  map[string]struct{}
}

// Load builds a Dictionary from the configured source.
func Load(cfg Config) (*Dictionary, error) {
	if cfg.File == "" {
		return Parse(assets.Words)
	}
	b, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", cfg.File, err)
	}
	d, err := Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.File, err)
	}
	return d, nil
}

// Parse normalizes each line of text and keeps the Length-letter entries,
// in file order.
func Parse(text string) (*Dictionary, error) {
	var list []string
	for _, line := range strings.Split(text, "\n") {
		if w := Normalize(line); len(w) == Length {
			list = append(list, w)
		}
	}
	if len(list) == 0 {
		return nil, ErrEmptyDictionary
	}
	return &Dictionary{list: list, set: toSet(list)}, nil
}

// Normalize trims s, uppercases it and strips every character that is not
// an ASCII letter. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports whether w is in the dictionary. The comparison is exact;
// callers normalize first.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}

// Random returns a uniformly random word using crypto/rand.
func (d *Dictionary) Random() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.list))))
	if err != nil {
		return "", fmt.Errorf("words: pick random word: %w", err)
	}
	return d.list[n.Int64()], nil
}

// At returns the word at index i.
func (d *Dictionary) At(i int) string { return d.list[i] }

// Len returns the number of words, duplicates included.
func (d *Dictionary) Len() int { return len(d.list) }

// Words returns a copy of the ordered word list.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.list...)
}
