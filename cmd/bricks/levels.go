package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/game"
	"github.com/vovakirdan/bricks/internal/registry"
)

var flagPreview int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List configured levels",
	Long: `Shows the level sequence of the active configuration and the
registered wall templates. With --preview the generated wall of one level
is drawn; random walls depend on --seed.

Examples:
  bricks levels
  bricks levels --preview 6 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.Flags().IntVar(&flagPreview, "preview", 0, "Draw the wall of this level (1-based)")
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, opts, _, err := loadGame()
	if err != nil {
		fail("%v", err)
	}

	if flagPreview != 0 {
		preview(opts, flagPreview)
		return
	}

	maxName := len("Name")
	for _, l := range cfg.Levels {
		maxName = max(maxName, len(l.Name))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %-10s  %s\n", "#", maxName, "Name", "Template", "Bricks")
	fmt.Printf("  %-3s  %-*s  %-10s  %s\n", "-", maxName, "----", "--------", "------")
	for i, l := range cfg.Levels {
		kinds := l.KindA
		if l.KindB != "" && l.KindB != l.KindA {
			kinds += "/" + l.KindB
		}
		fmt.Printf("  %-3d  %-*s  %-10s  %d %s\n", i+1, maxName, l.Name, l.Template, l.Bricks, kinds)
	}

	fmt.Println()
	fmt.Println("Templates:")
	for _, t := range registry.List() {
		line := fmt.Sprintf("  %-10s  %s", t.ID, t.Title)
		if len(t.Aliases) > 0 {
			line += fmt.Sprintf(" (aliases: %v)", t.Aliases)
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Run 'bricks play --level <#>' to play a level.")
}

// preview prints the generated wall of level n.
func preview(opts game.Options, n int) {
	if n < 1 || n > len(opts.Levels) {
		fail("level %d out of range (1-%d)", n, len(opts.Levels))
	}

	seed := uint64(flagSeed) //#nosec G115 -- seed bits are reused as-is
	s, err := game.NewSession(opts, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err != nil {
		fail("%v", err)
	}
	if err := s.StartAt(n - 1); err != nil {
		fail("%v", err)
	}

	rt := runtimeConfig()
	w, h := min(rt.ScreenW, 80), min(rt.ScreenH, 24)
	screen := core.NewScreen(w, h)
	screen.DrawBox(0, 0, w, h)
	game.DrawScene(screen, game.NewViewport(s.Area(), 1, 1, w-2, h-2), s)

	fmt.Printf("%d. %s (%d bricks)\n", n, s.LevelName(), s.LiveBrickCount())
	fmt.Println(screen.String())
}
