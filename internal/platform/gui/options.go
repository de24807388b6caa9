// Package gui is the windowed frontend. It is compiled only with the
// ebiten build tag; other builds get a stub whose Run returns ErrNotBuilt.
package gui

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/storage"
)

// ErrNotBuilt is returned by Run in builds without the ebiten tag.
var ErrNotBuilt = errors.New("gui: built without the 'ebiten' tag; rebuild with -tags ebiten")

// Options carries the collaborators of a windowed run. All fields are
// optional.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Player string
	Sound  bool
	Scale  int // Window pixels per world unit
}
