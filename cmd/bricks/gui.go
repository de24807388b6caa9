package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/audio"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/game"
	"github.com/vovakirdan/bricks/internal/platform/gui"
)

var flagScale int

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Play in a desktop window. Needs a binary built with the ebiten tag:

  go build -tags ebiten ./cmd/bricks

Keys are the same as in the terminal; Q or Esc closes the window.`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	addGameFlags(guiCmd)
	guiCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-based)")
	guiCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	guiCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per world unit")
}

func runGUI(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(false)
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

	g := game.NewGame(opts, difficulty)
	if flagLevel > 0 {
		g.SetStartLevel(flagLevel - 1)
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	err = gui.Run(g, runtime, gui.Options{
		Store:  store,
		Logger: logger,
		Player: playerName(flagPlayer),
		Sound:  flagSound,
		Scale:  flagScale,
	})
	if err != nil {
		fail("%v", err)
	}
}
