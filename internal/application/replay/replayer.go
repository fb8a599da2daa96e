package replay

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/ironknight/internal/application/system"
	"github.com/younwookim/ironknight/internal/infrastructure/config"
	"github.com/younwookim/ironknight/internal/infrastructure/save"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// NewSession builds the session a replay starts from: the recorded seed, a
// memory store holding the recorded save, and the recorded start choice.
func NewSession(data ReplayData, cfg *config.GameConfig, levels system.LevelSource, log logrus.FieldLogger) (*system.Session, error) {
	s := system.NewSession(cfg, levels, save.NewMemoryStore(data.Save), rand.New(rand.NewSource(data.Seed)), log)

	start := s.NewGame
	if data.Continue {
		start = s.Continue
	}
	if err := start(); err != nil {
		return nil, fmt.Errorf("failed to start replay: %w", err)
	}
	return s, nil
}

// Run replays every recorded frame headlessly and returns the final session
func Run(data ReplayData, cfg *config.GameConfig, levels system.LevelSource, log logrus.FieldLogger) (*system.Session, error) {
	s, err := NewSession(data, cfg, levels, log)
	if err != nil {
		return nil, err
	}

	r := NewReplayer(data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		if err := s.Tick(in); err != nil {
			return nil, fmt.Errorf("replay failed at frame %d: %w", r.CurrentFrame()-1, err)
		}
	}
	return s, nil
}
