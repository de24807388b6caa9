package config

import (
	_ "embed"

	"github.com/vovakirdan/bricks/internal/wall"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration: the classic
// 600×450 board with the stock level sequence.
func DefaultBreakoutConfig() BreakoutConfig {
	cfg := BreakoutConfig{
		Area: AreaConfig{Width: 600, Height: 450},
		Ball: BallConfig{
			Diameter: 10,
			StartX:   300,
			StartY:   430,
		},
		Paddle: PaddleConfig{
			Width:  150,
			Height: 10,
			Step:   5,
		},
		Gameplay: GameplayConfig{
			Balls:    3,
			MaxSpeed: 4,
		},
		Crack: CrackConfig{
			Steps:           35,
			Depth:           1,
			JumpProbability: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{SpeedBonus: 0},
		},
	}

	for _, d := range wall.BuiltinDefs() {
		cfg.Levels = append(cfg.Levels, LevelConfig{
			Name:     d.Name,
			Template: d.Template,
			KindA:    d.KindA.String(),
			KindB:    d.KindB.String(),
			Bricks:   d.BrickCount,
			Rows:     d.Rows,
			Ratio:    d.Ratio,
		})
	}
	return cfg
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
