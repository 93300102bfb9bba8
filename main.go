package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/cli"
	"github.com/robalobadob/wordle/apps/cli/internal/console"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := cli.Execute(context.Background()); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			log.Warn().Msg("input closed before the game finished")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("wordle exited")
	}
}
