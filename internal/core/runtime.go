package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns an 80x24 screen at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	GameOver bool   // match finished; restart or back are offered
	Waiting  bool   // the computer is about to act
	Status   string // one-line status, e.g. whose turn it is
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State   GameState
	Changed bool // the game state moved this tick
}
