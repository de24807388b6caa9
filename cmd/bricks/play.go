package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/audio"
	"github.com/vovakirdan/bricks/internal/game"
	"github.com/vovakirdan/bricks/internal/platform/tui"
)

var (
	flagLevel  int
	flagPlayer string
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Pick a level and play. Without --level a menu offers all levels in
order, a single level, or the best-times table.

Controls:
  A/D, Left/Right - Move paddle
  Space           - Launch ball / continue
  P               - Pause
  T               - Toggle bot assist
  N               - Skip level
  R               - Restart from level 1
  B/Esc           - Back to menu
  Q/Ctrl+C        - Quit
  Ctrl+S          - Save screenshot

Difficulty options:
  easy   - Slow ball, wide paddle, five balls
  normal - Stock paddle and balls
  hard   - Narrow paddle, two balls
  fixed  - Speed cap never changes, even with a speed_bonus configured

Examples:
  bricks play
  bricks play --level 4 --difficulty hard
  bricks play --config ./my-levels.yaml --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-based) and skip the menu")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

// addGameFlags registers the flags shared by commands that start a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagPlayer, "name", "", "Player name stored with level times (default: $USER)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	_, opts, difficulty, err := loadGame()
	if err != nil {
		fail("%v", err)
	}
	if flagLevel < 0 || flagLevel > len(opts.Levels) {
		fail("level %d out of range (1-%d)", flagLevel, len(opts.Levels))
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if flagSound {
		if err := audio.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
			flagSound = false
		} else {
			defer audio.Close()
		}
	}

	runOpts := tui.Options{
		Store:  store,
		Logger: logger,
		Player: playerName(flagPlayer),
		Sound:  flagSound,
	}
	logger.Info("starting", "levels", len(opts.Levels), "difficulty", flagDifficulty, "player", runOpts.Player)

	// Direct start skips the menu; leaving the game ends the command.
	if flagLevel > 0 {
		g := game.NewGame(opts, difficulty)
		g.SetStartLevel(flagLevel - 1)
		if _, err := tui.Run(g, runtimeConfig(), runOpts); err != nil {
			fail("%v", err)
		}
		return
	}

	for {
		levels := tui.LevelEntries(opts.Levels, store)
		cfg := runtimeConfig()

		selection, err := tui.RunMenu(levels, cfg)
		if err != nil {
			fail("%v", err)
		}
		if selection == nil {
			return
		}

		if selection.Scoreboard {
			if store == nil {
				logger.Warn("best times unavailable without a database")
				continue
			}
			back, err := tui.RunScoreboard(store, levels, 0, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fail("%v", err)
			}
			if !back {
				return
			}
			continue
		}

		g := game.NewGame(opts, difficulty)
		g.SetStartLevel(selection.Level)
		back, err := tui.Run(g, cfg, runOpts)
		if err != nil {
			fail("%v", err)
		}
		if !back {
			return
		}
	}
}
