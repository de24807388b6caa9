package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~/.bricks/times.db", filepath.Join(home, ".bricks", "times.db")},
		{"/tmp/x.db", "/tmp/x.db"},
		{"rel/x.db", "rel/x.db"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestPlayerName(t *testing.T) {
	t.Setenv("USER", "ann")
	if got := playerName("bob"); got != "bob" {
		t.Errorf("playerName(bob) = %q, expected bob", got)
	}
	if got := playerName(""); got != "ann" {
		t.Errorf("playerName(\"\") = %q, expected ann", got)
	}

	t.Setenv("USER", "")
	if got := playerName(""); got != "anonymous" {
		t.Errorf("playerName without USER = %q, expected anonymous", got)
	}
}

func TestLoadGameDifficulty(t *testing.T) {
	defer func(c, d string) { flagConfig, flagDifficulty = c, d }(flagConfig, flagDifficulty)

	flagConfig = ""
	flagDifficulty = "bogus"
	if _, _, _, err := loadGame(); err == nil {
		t.Error("loadGame() with unknown difficulty succeeded, expected error")
	}

	flagDifficulty = "hard"
	cfg, opts, dm, err := loadGame()
	if err != nil {
		t.Fatalf("loadGame() failed: %v", err)
	}
	if cfg.Gameplay.Balls != 2 || opts.Balls != 2 {
		t.Errorf("balls = %d/%d, expected 2", cfg.Gameplay.Balls, opts.Balls)
	}
	if !dm.IsEnabled() {
		t.Error("difficulty manager disabled for hard preset")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	defer func(l, f string) { flagLogLevel, flagLogFile = l, f }(flagLogLevel, flagLogFile)

	flagLogLevel = "loud"
	if _, _, err := newLogger(false); err == nil {
		t.Error("newLogger() with bad level succeeded, expected error")
	}

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "logs", "bricks.log")
	logger, closer, err := newLogger(true)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello")
	closer.Close()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
