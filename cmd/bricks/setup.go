package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/game"
	"github.com/vovakirdan/bricks/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger creates the command logger. With toFile set it appends to the
// log file so a full-screen UI is not disturbed; otherwise it writes to
// stderr. The returned closer is never nil.
func newLogger(toFile bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if toFile && flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bricks",
		Level:           level,
	})
	return logger, closer, nil
}

// loadGame loads the configuration with the difficulty preset applied and
// derives the session options and difficulty manager from it.
func loadGame() (config.BreakoutConfig, game.Options, *config.DifficultyManager, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, game.Options{}, nil, err
	}
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, game.Options{}, nil, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	opts, err := cfg.SessionOptions()
	if err != nil {
		return cfg, opts, nil, err
	}
	return cfg, opts, config.NewDifficultyManager(cfg.Difficulty), nil
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the times database. A failure is logged and play
// continues without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open times database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName returns the name stored with level times.
func playerName(flag string) string {
	if flag != "" {
		return flag
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "anonymous"
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
