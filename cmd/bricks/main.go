// bricks is a terminal breakout game with fracturing bricks and generated
// level walls.
//
// Usage:
//
//	bricks play              - Pick a level and play
//	bricks levels            - List configured levels
//	bricks scores [level]    - Show best times
//	bricks config            - Print the default configuration
//	bricks gui               - Play in a window (ebiten builds)
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible walls and play
//	--db <path>          - Set database path (default: ~/.bricks/times.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file used while the game runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - breakout with cracking walls in your terminal",
	Long: `Bricks is a breakout game for the terminal. Walls are generated from
templates and mix four kinds of brick: clay breaks at once, steel shrugs
off most hits, cement cracks before it falls and reinforced steel does both.

Available commands:
  play     - Pick a level and play
  levels   - List configured levels, or preview one
  scores   - Best times per level
  config   - Print the default configuration
  gui      - Play in a window

Examples:
  bricks play
  bricks play --level 3 --difficulty hard
  bricks levels --preview 6 --seed 42
  bricks scores 2 --export level2.txt`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bricks/times.db", "Path to times database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.bricks/bricks.log", "Log file used while the game runs")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(guiCmd)
}
