package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/platform/tui"
	"github.com/vovakirdan/bricks/internal/storage"
)

var (
	flagExport      string
	flagImport      string
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best times",
	Long: `Display the ten fastest clears of a level, or a summary of every
level when no level is given. Score files hold one "name,MM:SS" line per
record.

Examples:
  bricks scores
  bricks scores 2
  bricks scores 2 --export level2.txt
  bricks scores 3 --import friends.txt
  bricks scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Write the level's times to a score file")
	scoresCmd.Flags().StringVar(&flagImport, "import", "", "Add the records of a score file to the level")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all times of the level")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse times in a table")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, opts, _, err := loadGame()
	if err != nil {
		fail("%v", err)
	}

	level := 0
	if len(args) == 1 {
		level, err = strconv.Atoi(args[0])
		if err != nil || level < 1 || level > len(cfg.Levels) {
			fail("invalid level %q (1-%d)", args[0], len(cfg.Levels))
		}
	}
	if level == 0 && (flagExport != "" || flagImport != "" || flagClear) {
		fail("--export, --import and --clear need a level")
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening times database: %v", err)
	}
	defer store.Close()

	switch {
	case flagInteractive:
		rt := runtimeConfig()
		start := max(level-1, 0)
		if _, err := tui.RunScoreboard(store, tui.LevelEntries(opts.Levels, store), start, rt.ScreenW, rt.ScreenH); err != nil {
			fail("%v", err)
		}
	case flagExport != "":
		n, err := store.ExportLevel(level, flagExport)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("Exported %d times of level %d to %s\n", n, level, flagExport)
	case flagImport != "":
		n, err := store.ImportLevel(level, flagImport)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("Imported %d times into level %d\n", n, level)
	case flagClear:
		if err := store.ClearTimes(level); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared times of level %d\n", level)
	case level > 0:
		printLevelTimes(store, level, cfg.Levels[level-1].Name)
	default:
		printSummary(store, cfg.Levels)
	}
}

func printLevelTimes(store *storage.Store, level int, name string) {
	times, err := store.TopTimes(level, 10)
	if err != nil {
		fail("retrieving times: %v", err)
	}

	fmt.Printf("Best Times - %d. %s\n", level, name)
	fmt.Println()

	if len(times) == 0 {
		fmt.Println("No times recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bricks play --level %d' to set the first time!\n", level)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-5s  %s\n", "Rank", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-5s  %s\n", "----", "------", "----", "----")

	for i, e := range times {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-5s  %s\n", i+1, e.Player, storage.FormatTime(e.Time), dateStr)
	}
}

func printSummary(store *storage.Store, levels []config.LevelConfig) {
	stats, err := store.GetAllLevelStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	byLevel := make(map[int]storage.LevelStats, len(stats))
	for _, st := range stats {
		byLevel[st.Level] = st
	}

	maxName := len("Level")
	for _, l := range levels {
		maxName = max(maxName, len(l.Name))
	}

	fmt.Println("Best Times")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %-6s  %-5s  %-7s  %s\n", "#", maxName, "Level", "Clears", "Best", "Average", "Last played")
	fmt.Printf("  %-3s  %-*s  %-6s  %-5s  %-7s  %s\n", "-", maxName, "-----", "------", "----", "-------", "-----------")

	for i, l := range levels {
		st, ok := byLevel[i+1]
		if !ok {
			fmt.Printf("  %-3d  %-*s  %-6d  %-5s  %-7s  %s\n", i+1, maxName, l.Name, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-3d  %-*s  %-6d  %-5s  %-7s  %s\n", i+1, maxName, l.Name, st.Clears,
			storage.FormatTime(st.Best), storage.FormatTime(st.Average), st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
