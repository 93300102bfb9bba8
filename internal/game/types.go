// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (exact/present/absent).
//   - State: where a game is in its lifecycle.
//   - GuessError: a rejected guess plus the reason.

package game

import "errors"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the target but in a different position.
//   - "absent":  letter does not exist in the target at all.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// State is the coarse lifecycle of a game. Won and Lost are terminal.
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateWon           State = "won"
	StateLost          State = "lost"
)

var (
	ErrWrongLength     = errors.New("wrong length")
	ErrNotInDictionary = errors.New("not in dictionary")
	ErrGameOver        = errors.New("game finished")
)

// GuessError reports why a guess was rejected. Word is the normalized input.
type GuessError struct {
	Word string
	Err  error
}

func (e *GuessError) Error() string { return e.Word + ": " + e.Err.Error() }

func (e *GuessError) Unwrap() error { return e.Err }
