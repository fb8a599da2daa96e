package save

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSave is returned when no usable save exists
var ErrNoSave = errors.New("no saved game")

// State is the progress persisted at every level transition.
// Damage, Health and Stamina are shop tiers.
type State struct {
	Level   int `json:"level"`
	Money   int `json:"money"`
	Score   int `json:"score"`
	Damage  int `json:"damage"`
	Health  int `json:"health"`
	Stamina int `json:"stamina"`
}

// Store persists a single State
type Store interface {
	Load() (State, error)
	Save(s State) error
}

// Encode serializes a state to JSON
func Encode(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode save: %w", err)
	}
	return data, nil
}

// Decode parses a JSON save. A corrupt or incomplete payload wraps ErrNoSave.
func Decode(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("failed to parse save: %w: %w", ErrNoSave, err)
	}
	if s.Level < 1 {
		return State{}, fmt.Errorf("save has level %d: %w", s.Level, ErrNoSave)
	}
	return s, nil
}
