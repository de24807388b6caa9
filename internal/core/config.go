package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level    int  // Zero-based index of the current level
	Bricks   int  // Bricks left in the current level
	Balls    int  // Balls left
	GameOver bool // Whether the game has ended (lost or won)
	Won      bool // Whether every level was cleared
	Paused   bool // Whether the game is paused
}

// LevelClear reports a finished level and how long it took.
type LevelClear struct {
	Level int
	Ticks int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any level cleared on this tick.
type StepResult struct {
	State   GameState
	Cleared *LevelClear
}
