package state

// GameState represents the current state of the game
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
	StatePlayerDead
	StateLevelClear
	StateTransitioning
	StateWon
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StatePlaying:
		return "Playing"
	case StatePlayerDead:
		return "PlayerDead"
	case StateLevelClear:
		return "LevelClear"
	case StateTransitioning:
		return "Transitioning"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Simulates reports whether the world advances in this state.
// The world keeps running while the player's death plays out.
func (s GameState) Simulates() bool {
	return s == StatePlaying || s == StatePlayerDead
}
