package cli

import (
	"os"
	"strconv"

	"github.com/robalobadob/wordle/apps/cli/internal/daily"
)

// Config is the runtime configuration. Values come from the environment
// (after .env loading) and are overridden by explicit flags.
//
// Environment variables:
//
//	WORDS_FILE=/path/to/words.txt   replace the embedded word list
//	WORDLE_DAILY=true               play the word of the day
//	DAILY_SALT=...                  salt for the word of the day
//	LOG_LEVEL=debug|info|warn|...   zerolog level (default warn)
//	LOG_FILE=/path/to/wordle.log    write JSON logs there instead of stderr
type Config struct {
	WordsFile string
	Daily     bool
	DailySalt string
	LogLevel  string
	LogFile   string
}

// FromEnv reads Config from the process environment.
func FromEnv() Config {
	dailyOn, _ := strconv.ParseBool(getEnv("WORDLE_DAILY", "false"))
	return Config{
		WordsFile: os.Getenv("WORDS_FILE"),
		Daily:     dailyOn,
		DailySalt: getEnv("DAILY_SALT", daily.DefaultSalt),
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFile:   os.Getenv("LOG_FILE"),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
