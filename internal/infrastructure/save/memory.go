package save

import "sync"

// MemoryStore keeps the save in memory. Replays and tests use it so a run
// never touches the player's real save.
type MemoryStore struct {
	mu    sync.Mutex
	state *State
}

// NewMemoryStore creates a store holding initial, or no save when nil
func NewMemoryStore(initial *State) *MemoryStore {
	m := &MemoryStore{}
	if initial != nil {
		st := *initial
		m.state = &st
	}
	return m
}

// Load implements Store
func (m *MemoryStore) Load() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return State{}, ErrNoSave
	}
	return *m.state, nil
}

// Save implements Store
func (m *MemoryStore) Save(s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = &s
	return nil
}
