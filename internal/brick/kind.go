// Package brick implements the breakable bricks of a wall: the four brick
// variants, their damage gate, and the fracture paths drawn on damaged bricks.
package brick

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/bricks/internal/core"
)

// ErrUnknownKind is returned when a brick kind id or name is not one of the
// known variants.
var ErrUnknownKind = errors.New("brick: unknown kind")

// Kind identifies a brick variant.
type Kind int

const (
	KindClay            Kind = iota + 1 // Breaks in one hit
	KindSteel                           // One hit, but most hits bounce off
	KindCement                          // Two hits, cracks after the first
	KindReinforcedSteel                 // Two registered hits, most hits bounce off
)

// variant holds the static properties of a Kind.
type variant struct {
	name        string
	strength    int
	probability float64 // Chance that a hit does damage
	cracks      bool    // Whether surviving hits leave a fracture path
	mergesFace  bool    // Whether fracture paths are cut into the face
	fill        core.Color
	border      core.Color
}

var variants = map[Kind]variant{
	KindClay: {
		name:        "clay",
		strength:    1,
		probability: 1.0,
		fill:        core.ColorRed,
		border:      core.ColorGray,
	},
	KindSteel: {
		name:        "steel",
		strength:    1,
		probability: 0.4,
		fill:        core.ColorSilver,
		border:      core.ColorDarkGray,
	},
	KindCement: {
		name:        "cement",
		strength:    2,
		probability: 1.0,
		cracks:      true,
		mergesFace:  true,
		fill:        core.ColorGray,
		border:      core.ColorSand,
	},
	KindReinforcedSteel: {
		name:        "reinforced-steel",
		strength:    2,
		probability: 0.3,
		cracks:      true,
		fill:        core.ColorCyan,
		border:      core.ColorBlue,
	},
}

// Kinds returns every known variant in id order.
func Kinds() []Kind {
	return []Kind{KindClay, KindSteel, KindCement, KindReinforcedSteel}
}

// ParseKind maps a configuration name to a Kind.
// Names are case-insensitive; "reinforced" and "reinforced_steel" are accepted.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	if n == "reinforced" {
		n = "reinforced-steel"
	}
	for _, k := range Kinds() {
		if variants[k].name == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Valid reports whether k is one of the known variants.
func (k Kind) Valid() bool {
	_, ok := variants[k]
	return ok
}

// String returns the configuration name of the kind.
func (k Kind) String() string {
	if v, ok := variants[k]; ok {
		return v.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Strength returns the number of registered hits needed to break the kind.
func (k Kind) Strength() int {
	return variants[k].strength
}

// Probability returns the chance that a hit on this kind does damage.
func (k Kind) Probability() float64 {
	return variants[k].probability
}

// Cracks reports whether bricks of this kind show fracture paths.
func (k Kind) Cracks() bool {
	return variants[k].cracks
}

// MergesFace reports whether fracture paths are cut into the visible face
// rather than drawn over it.
func (k Kind) MergesFace() bool {
	return variants[k].mergesFace
}

// Colors returns the fill and border colors of the kind.
func (k Kind) Colors() (fill, border core.Color) {
	v := variants[k]
	return v.fill, v.border
}
