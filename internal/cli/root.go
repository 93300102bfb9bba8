package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/cli/internal/console"
	"github.com/robalobadob/wordle/apps/cli/internal/daily"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

// Execute runs the root command against the process stdio.
func Execute(ctx context.Context) error {
	return newRootCmd(time.Now).ExecuteContext(ctx)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	cfg := FromEnv()

	cmd := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the hidden five-letter word in six tries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cleanup, err := setupLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				if cerr := cleanup(); cerr != nil && err == nil {
					err = fmt.Errorf("close log file: %w", cerr)
				}
			}()

			dict, err := words.Load(words.Config{File: cfg.WordsFile})
			if err != nil {
				return err
			}
			log.Info().Int("words", dict.Len()).Str("source", sourceName(cfg)).Msg("dictionary loaded")

			target, err := pickTarget(cfg, dict, now())
			if err != nil {
				return err
			}
			g, err := game.New(dict, target)
			if err != nil {
				return err
			}
			log.Debug().Str("target", g.Target()).Bool("daily", cfg.Daily).Msg("target chosen")

			return console.New(g, cmd.InOrStdin(), cmd.OutOrStdout(), log.Logger).Run()
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "newline-delimited word list to use instead of the embedded one")
	f.BoolVar(&cfg.Daily, "daily", cfg.Daily, "play the word of the day instead of a random word")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	f.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write JSON logs to this file instead of stderr")
	return cmd
}

func pickTarget(cfg Config, dict *words.Dictionary, at time.Time) (string, error) {
	if cfg.Daily {
		return daily.Word(dict, at, cfg.DailySalt), nil
	}
	return dict.Random()
}

func sourceName(cfg Config) string {
	if cfg.WordsFile != "" {
		return cfg.WordsFile
	}
	return "embedded"
}
