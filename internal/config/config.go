// Package config provides YAML-based game configuration loading and
// difficulty management for bricks.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bricks/internal/brick"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/game"
	"github.com/vovakirdan/bricks/internal/registry"
	"github.com/vovakirdan/bricks/internal/wall"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// BreakoutConfig contains all configuration for a game session.
type BreakoutConfig struct {
	Area       AreaConfig       `yaml:"area"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Crack      CrackConfig      `yaml:"crack"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Levels     []LevelConfig    `yaml:"levels"`
}

// AreaConfig defines the play area in world units.
type AreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball and where it starts.
type BallConfig struct {
	Diameter float64 `yaml:"diameter"`
	StartX   float64 `yaml:"start_x"`
	StartY   float64 `yaml:"start_y"`
}

// PaddleConfig defines the paddle size and per-tick step.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"`
}

// GameplayConfig defines ball allotment and the speed cap.
type GameplayConfig struct {
	Balls    int `yaml:"balls"`     // Balls per level
	MaxSpeed int `yaml:"max_speed"` // Cap of the random speed walk
}

// CrackConfig defines the fracture paths drawn on damaged bricks.
type CrackConfig struct {
	Steps           int     `yaml:"steps"`
	Depth           int     `yaml:"depth"`
	JumpProbability float64 `yaml:"jump_probability"`
}

// LevelConfig describes one level of the sequence.
type LevelConfig struct {
	Name     string  `yaml:"name"`
	Template string  `yaml:"template"` // uniform, chain, two-lines, random
	KindA    string  `yaml:"kind_a"`
	KindB    string  `yaml:"kind_b"`
	Bricks   int     `yaml:"bricks"`
	Rows     int     `yaml:"rows"`
	Ratio    float64 `yaml:"ratio"`
}

// Validate reports every problem found in the configuration.
func (c BreakoutConfig) Validate() error {
	var errs []error
	bad := func(msg string) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, msg))
	}

	if c.Area.Width <= 0 || c.Area.Height <= 0 {
		bad(fmt.Sprintf("area must have positive size, got %vx%v", c.Area.Width, c.Area.Height))
	}
	if c.Ball.Diameter <= 0 {
		bad("ball diameter must be positive")
	}
	if c.Ball.StartX < 0 || c.Ball.StartX > c.Area.Width || c.Ball.StartY < 0 || c.Ball.StartY > c.Area.Height {
		bad(fmt.Sprintf("ball start (%v, %v) is outside the area", c.Ball.StartX, c.Ball.StartY))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Paddle.Step <= 0 {
		bad("paddle width, height and step must be positive")
	}
	if c.Paddle.Width > c.Area.Width {
		bad("paddle is wider than the area")
	}
	if c.Gameplay.Balls <= 0 {
		bad("balls must be positive")
	}
	if c.Gameplay.MaxSpeed <= 0 {
		bad("max_speed must be positive")
	}
	if c.Crack.Steps <= 0 || c.Crack.Depth < 0 {
		bad("crack steps must be positive and depth not negative")
	}
	if c.Crack.JumpProbability < 0 || c.Crack.JumpProbability > 1 {
		bad("crack jump_probability must be within [0, 1]")
	}
	if len(c.Levels) == 0 {
		bad("no levels")
	}
	for i, l := range c.Levels {
		if err := l.validate(); err != nil {
			errs = append(errs, fmt.Errorf("level %d (%s): %w", i+1, l.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (l LevelConfig) validate() error {
	if !registry.Exists(l.Template) {
		return fmt.Errorf("%w: unknown template %q", ErrInvalid, l.Template)
	}
	if l.Rows <= 0 || l.Bricks < l.Rows {
		return fmt.Errorf("%w: %d bricks cannot fill %d rows", ErrInvalid, l.Bricks, l.Rows)
	}
	if l.Ratio <= 0 {
		return fmt.Errorf("%w: ratio must be positive", ErrInvalid)
	}
	if _, _, err := l.kinds(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// kinds parses the level's brick kinds. An empty kind_b repeats kind_a.
func (l LevelConfig) kinds() (a, b brick.Kind, err error) {
	a, err = brick.ParseKind(l.KindA)
	if err != nil {
		return 0, 0, err
	}
	if l.KindB == "" {
		return a, a, nil
	}
	b, err = brick.ParseKind(l.KindB)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// Def converts the level to a wall definition.
func (l LevelConfig) Def() (wall.Def, error) {
	a, b, err := l.kinds()
	if err != nil {
		return wall.Def{}, fmt.Errorf("config: level %q: %w", l.Name, err)
	}
	return wall.Def{
		Name:       l.Name,
		Template:   l.Template,
		KindA:      a,
		KindB:      b,
		BrickCount: l.Bricks,
		Rows:       l.Rows,
		Ratio:      l.Ratio,
	}, nil
}

// SessionOptions validates the configuration and converts it to the options
// a game session is created from.
func (c BreakoutConfig) SessionOptions() (game.Options, error) {
	if err := c.Validate(); err != nil {
		return game.Options{}, err
	}

	defs := make([]wall.Def, 0, len(c.Levels))
	for _, l := range c.Levels {
		d, err := l.Def()
		if err != nil {
			return game.Options{}, err
		}
		defs = append(defs, d)
	}

	return game.Options{
		Area:         core.NewRect(0, 0, c.Area.Width, c.Area.Height),
		Start:        core.Pt(c.Ball.StartX, c.Ball.StartY),
		BallDiameter: c.Ball.Diameter,
		PaddleWidth:  c.Paddle.Width,
		PaddleHeight: c.Paddle.Height,
		PaddleStep:   c.Paddle.Step,
		Balls:        c.Gameplay.Balls,
		MaxSpeed:     c.Gameplay.MaxSpeed,
		Crack: brick.Crack{
			Steps:           c.Crack.Steps,
			Depth:           c.Crack.Depth,
			JumpProbability: c.Crack.JumpProbability,
		},
		Levels: defs,
	}, nil
}

// DifficultyConfig defines how the speed cap rises as the player progresses.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level index or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedBonus int `yaml:"speed_bonus"` // Added to max_speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard, fixed)", ErrInvalid, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
