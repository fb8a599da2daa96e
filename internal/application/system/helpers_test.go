package system

import (
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ironknight/internal/infrastructure/config"
	"github.com/younwookim/ironknight/internal/infrastructure/save"
)

// memLevels serves level rows from memory
type memLevels map[int][]string

func (m memLevels) Level(n int) ([]string, error) {
	rows, ok := m[n]
	if !ok {
		return nil, fmt.Errorf("level %d: %w", n, config.ErrLevelNotFound)
	}
	return rows, nil
}

// memStore keeps the save in memory and counts writes
type memStore struct {
	state *save.State
	saves int
}

func (m *memStore) Load() (save.State, error) {
	if m.state == nil {
		return save.State{}, save.ErrNoSave
	}
	return *m.state, nil
}

func (m *memStore) Save(s save.State) error {
	m.saves++
	m.state = &s
	return nil
}

func newTestLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func loadTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadGame()
	require.NoError(t, err)
	return cfg
}

// sameLevels uses one map for every level
func sameLevels(rows ...string) memLevels {
	return memLevels{1: rows, 2: rows, 3: rows}
}

func newTestSession(t *testing.T, levels memLevels, store *memStore) *Session {
	t.Helper()
	return NewSession(loadTestConfig(t), levels, store, newTestRand(), newTestLogger())
}

// tickN advances the session n times with the same input
func tickN(t *testing.T, s *Session, n int, in InputState) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, s.Tick(in))
	}
}
