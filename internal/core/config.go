package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// TickSeconds returns the fixed simulation step in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       float64 // Elapsed survival time in seconds
	GameOver    bool    // Whether the game-over screen is active
	Paused      bool    // Whether the game is paused
	Scene       string  // Name of the active scene
	ScrollSpeed float64 // Current scroll speed in world units per tick
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}

// RunSummary describes one finished play session.
// Inputs holds one InputFrame mask per simulated tick, which together with
// Seed and TickRate is enough to re-simulate the run.
type RunSummary struct {
	Seed       int64
	TickRate   int
	Ticks      int
	Score      float64
	Thresholds int
	Inputs     []byte
}
