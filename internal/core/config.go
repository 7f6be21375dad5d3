package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
	Debug    bool  // Draw debugging overlays
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Turns  int  // Completed turns
	Busy   bool // Events are still being played back
	Paused bool
	Status string // Short HUD message for the last outcome
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
