// Package registry provides a global registry of wall templates.
// Templates register themselves in init() functions, allowing levels to name
// a layout in configuration without the loader knowing every template.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
)

// ErrUnknownTemplate is returned by Create for unregistered template names.
var ErrUnknownTemplate = errors.New("registry: unknown template")

// WallSpec describes the wall a template should lay out.
type WallSpec struct {
	Area       core.Rect  // Draw area the bricks fill from the top
	BrickCount int        // Requested bricks; rounded down to a multiple of Rows
	Rows       int        // Rows of the main grid
	Ratio      float64    // Brick width divided by height
	KindA      brick.Kind // Primary kind
	KindB      brick.Kind // Secondary kind; ignored by single-kind templates
}

// Template is a procedural brick layout.
// Templates contain pure logic: the same spec and random stream always
// produce the same wall.
type Template interface {
	// ID returns the configuration name (e.g., "chain", "random").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Build lays out the bricks of one level in row order.
	// It fails on an unknown brick kind instead of substituting one.
	Build(spec WallSpec, rng brick.Rand) ([]*brick.Brick, error)
}

// TemplateInfo contains metadata about a registered template.
type TemplateInfo struct {
	ID      string
	Title   string
	Aliases []string
}

var (
	templates = make(map[string]Template)
	aliases   = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a template to the registry.
// Panics if a template or alias with the same name is already registered.
func Register(t Template) {
	mu.Lock()
	defer mu.Unlock()

	id := t.ID()
	if _, exists := templates[id]; exists {
		panic(fmt.Sprintf("registry: template %q already registered", id))
	}
	if _, exists := aliases[id]; exists {
		panic(fmt.Sprintf("registry: template %q already registered as alias", id))
	}
	templates[id] = t
}

// Alias makes name resolve to the template registered as id.
func Alias(name, id string) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := templates[id]; !ok {
		panic(fmt.Sprintf("registry: alias %q for unknown template %q", name, id))
	}
	if _, exists := templates[name]; exists {
		panic(fmt.Sprintf("registry: alias %q shadows a template", name))
	}
	if _, exists := aliases[name]; exists {
		panic(fmt.Sprintf("registry: alias %q already registered", name))
	}
	aliases[name] = id
}

// List returns information about all registered templates, sorted by ID.
func List() []TemplateInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TemplateInfo, 0, len(templates))
	for id, t := range templates {
		info := TemplateInfo{ID: id, Title: t.Title()}
		for name, target := range aliases {
			if target == id {
				info.Aliases = append(info.Aliases, name)
			}
		}
		sort.Strings(info.Aliases)
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the template registered under name or one of its aliases.
func Create(name string) (Template, error) {
	mu.RLock()
	defer mu.RUnlock()

	if id, ok := aliases[name]; ok {
		name = id
	}
	t, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTemplate, name)
	}
	return t, nil
}

// Exists checks if a template or alias with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	if _, ok := aliases[name]; ok {
		return true
	}
	_, ok := templates[name]
	return ok
}
