package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLogger_FileAndCleanup(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	path := filepath.Join(t.TempDir(), "wordle.log")
	cleanup, err := setupLogger(Config{LogLevel: "info", LogFile: path}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	log.Info().Msg("hello")
	log.Debug().Msg("filtered")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"message":"hello"`) || strings.Contains(string(b), "filtered") {
		t.Errorf("unexpected log contents:\n%s", b)
	}
	if log.Logger.GetLevel() != prev.GetLevel() {
		t.Error("cleanup did not restore the previous logger")
	}

	// A second close surfaces the file error instead of dropping it.
	if err := cleanup(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("second cleanup err = %v, want os.ErrClosed", err)
	}
}

func TestSetupLogger_ConsoleLevel(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	cleanup, err := setupLogger(Config{LogLevel: "warn"}, &buf)
	if err != nil {
		t.Fatalf("setupLogger: %v", err)
	}
	defer func() { _ = cleanup() }()

	if log.Logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %s, want warn", log.Logger.GetLevel())
	}
	log.Info().Msg("quiet")
	log.Warn().Msg("loud")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("unexpected console output: %q", buf.String())
	}
}

func TestSetupLogger_BadLevel(t *testing.T) {
	if _, err := setupLogger(Config{LogLevel: "loud"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid level")
	}
}
