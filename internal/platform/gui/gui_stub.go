//go:build !ebiten

package gui

import (
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/game"
)

// Run reports that the windowed frontend was not compiled in.
func Run(*game.Game, core.RuntimeConfig, Options) error {
	return ErrNotBuilt
}
