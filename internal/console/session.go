// internal/console/session.go
//
// Line-oriented terminal front end for a single game.
// Responsibilities:
//   - Prompt for guesses and re-prompt on rejection, without a retry cap.
//   - Render the guess history with per-letter colored feedback.
//   - Show the letters known to be absent before each prompt.
//   - Print the end-of-game summary.
//
// Notes:
//   - All game rules live in the game package; this file only does I/O.
//   - Closed input is the only way out of the retry loop besides winning
//     or losing, and surfaces as ErrInputClosed.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// ErrInputClosed is returned when input ends before the game is over.
var ErrInputClosed = errors.New("console: input closed")

// Session drives one game over a reader/writer pair.
type Session struct {
	game  *game.Game
	in    *bufio.Reader
	out   io.Writer
	theme Theme
	log   zerolog.Logger
}

// New constructs a Session. Output is styled with DefaultTheme(out).
func New(g *game.Game, in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		game:  g,
		in:    bufio.NewReader(in),
		out:   out,
		theme: DefaultTheme(out),
		log:   logger,
	}
}

// Run loops until the game is won or lost, then prints the summary.
func (s *Session) Run() error {
	for !s.game.IsOver() {
		if _, err := s.RequestGuess(); err != nil {
			return err
		}
		s.DisplayGuesses()
	}
	s.printSummary()
	return nil
}

// RequestGuess prompts once, then reads lines until one is accepted by the
// game. Each rejection prints its reason and reads again.
func (s *Session) RequestGuess() (string, error) {
	fmt.Fprintln(s.out, s.theme.Prompt.Render(fmt.Sprintf("Enter your guess (%d letters):", game.WordLength)))
	s.displayInvalidLetters()

	for {
		raw, err := s.readLine()
		if err != nil {
			return "", err
		}
		if _, err := s.game.Apply(raw); err != nil {
			if !game.IsRejection(err) {
				return "", err
			}
			var ge *game.GuessError
			errors.As(err, &ge)
			s.log.Debug().Str("input", raw).Str("reason", ge.Err.Error()).Msg("guess rejected")
			s.printRejection(ge)
			continue
		}
		guesses := s.game.Guesses()
		guess := guesses[len(guesses)-1]
		s.log.Debug().Str("guess", guess).Int("attempt", len(guesses)).Msg("guess accepted")
		return guess, nil
	}
}

// readLine returns the next input line without its terminator. Lines have
// no length limit. A final line without a newline is still returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", ErrInputClosed
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("console: read guess: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) printRejection(ge *game.GuessError) {
	var msg string
	if errors.Is(ge, game.ErrWrongLength) {
		msg = fmt.Sprintf("Your guess must be %d letters.", game.WordLength)
	} else {
		msg = fmt.Sprintf("%s is not in the dictionary.", ge.Word)
	}
	fmt.Fprintln(s.out, s.theme.Error.Render(msg))
}

// DisplayGuesses prints every accepted guess, numbered from 1.
func (s *Session) DisplayGuesses() {
	for i, guess := range s.game.Guesses() {
		var b strings.Builder
		fmt.Fprintf(&b, "%d ", i+1)
		for pos, m := range s.game.Marks(i) {
			b.WriteString(s.theme.Mark(m).Render(string(guess[pos])))
		}
		fmt.Fprintln(s.out, b.String())
	}
}

func (s *Session) displayInvalidLetters() {
	letters := s.game.InvalidLetters()
	if len(letters) == 0 {
		return
	}
	fmt.Fprintf(s.out, "Invalid letters: %s\n", s.theme.Absent.Render(string(letters)))
}

func (s *Session) printSummary() {
	switch s.game.State() {
	case game.StateWon:
		fmt.Fprintf(s.out, "Congratulations! You guessed the word in %d tries.\n", s.game.Attempts())
	case game.StateLost:
		fmt.Fprintln(s.out, s.theme.Error.Render("Game over! The word was: "+s.game.Target()))
	}
	s.log.Info().
		Str("state", string(s.game.State())).
		Int("attempts", s.game.Attempts()).
		Msg("game finished")
}
