// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Validate guesses (normalized length, dictionary membership).
//   - Score guesses by letter containment.
//   - Track the guess history and the letters known to be absent.
//   - Track state transitions: awaiting guess → won/lost.
//
// Notes:
//   - The dictionary is provided by the words package and never mutated.
//   - Scoring is not frequency-aware: a letter that appears once in the
//     target is marked present at every non-exact position it is guessed.
package game

import (
	"errors"
	"sort"

	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

const (
	WordLength = words.Length
	MaxTries   = 6
)

// Game holds the state of one session. It is not safe for concurrent use.
type Game struct {
	dict    *words.Dictionary
	target  string
	guesses []string
	absent  map[rune]struct{}
}

// New constructs a game against target, which must be a dictionary word.
func New(dict *words.Dictionary, target string) (*Game, error) {
	if !dict.Contains(target) {
		return nil, &GuessError{Word: target, Err: ErrNotInDictionary}
	}
	return &Game{
		dict:   dict,
		target: target,
		absent: make(map[rune]struct{}),
	}, nil
}

// Validate normalizes raw input and checks it is a playable guess.
// Returns the normalized word or a *GuessError wrapping ErrWrongLength or
// ErrNotInDictionary.
func (g *Game) Validate(raw string) (string, error) {
	guess := words.Normalize(raw)
	if len(guess) != WordLength {
		return guess, &GuessError{Word: guess, Err: ErrWrongLength}
	}
	if !g.dict.Contains(guess) {
		return guess, &GuessError{Word: guess, Err: ErrNotInDictionary}
	}
	return guess, nil
}

// Apply validates and scores a guess, mutating the game state.
// Returns the per-letter marks or an error; on error nothing is recorded.
func (g *Game) Apply(raw string) ([]Mark, error) {
	if g.IsOver() {
		return nil, ErrGameOver
	}
	guess, err := g.Validate(raw)
	if err != nil {
		return nil, err
	}
	g.guesses = append(g.guesses, guess)

	marks := ScoreGuess(g.target, guess)
	for i, m := range marks {
		if m == MarkAbsent {
			g.absent[rune(guess[i])] = struct{}{}
		}
	}
	return marks, nil
}

// ScoreGuess compares guess against target position by position.
//
//   - Exact:   guess[i] == target[i]
//   - Present: guess[i] occurs anywhere in target
//   - Absent:  otherwise
//
// Both words are expected to be normalized and of equal length.
func ScoreGuess(target, guess string) []Mark {
	res := make([]Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case i < len(target) && guess[i] == target[i]:
			res[i] = MarkExact
		case containsByte(target, guess[i]):
			res[i] = MarkPresent
		default:
			res[i] = MarkAbsent
		}
	}
	return res
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

// IsOver reports whether the last guess hit the target or the tries are
// used up. It is false before the first guess.
func (g *Game) IsOver() bool {
	return g.State() != StateAwaitingGuess
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	n := len(g.guesses)
	switch {
	case n == 0:
		return StateAwaitingGuess
	case g.guesses[n-1] == g.target:
		return StateWon
	case n >= MaxTries:
		return StateLost
	}
	return StateAwaitingGuess
}

// Target returns the hidden word.
func (g *Game) Target() string { return g.target }

// Attempts returns the number of accepted guesses.
func (g *Game) Attempts() int { return len(g.guesses) }

// Guesses returns a copy of the accepted guesses, oldest first.
func (g *Game) Guesses() []string {
	return append([]string(nil), g.guesses...)
}

// Marks rescores the i-th accepted guess.
func (g *Game) Marks(i int) []Mark {
	return ScoreGuess(g.target, g.guesses[i])
}

// InvalidLetters returns the letters confirmed absent from the target,
// sorted alphabetically.
func (g *Game) InvalidLetters() []rune {
	out := make([]rune, 0, len(g.absent))
	for r := range g.absent {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsRejection reports whether err is a recoverable guess rejection.
func IsRejection(err error) bool {
	return errors.Is(err, ErrWrongLength) || errors.Is(err, ErrNotInDictionary)
}
