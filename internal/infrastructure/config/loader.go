package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrLevelNotFound is returned when a level map does not exist
var ErrLevelNotFound = errors.New("level not found")

// Loader loads game configuration from YAML and text files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads and validates game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.yaml: %w", err)
	}

	return &cfg, nil
}

// LevelPath returns the path of a level map inside the config filesystem
func LevelPath(n int) string {
	return path.Join("levels", strconv.Itoa(n)+".txt")
}

// LoadLevel loads the text map of level n
func (l *Loader) LoadLevel(n int) ([]string, error) {
	data, err := fs.ReadFile(l.fsys, LevelPath(n))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("level %d: %w", n, ErrLevelNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read level %d: %w", n, err)
	}
	return ParseLevel(data), nil
}

// Content is the full loaded configuration: game settings plus every level
type Content struct {
	Game   *GameConfig
	Levels map[int][]string
}

// Level returns the rows of level n
func (c *Content) Level(n int) ([]string, error) {
	rows, ok := c.Levels[n]
	if !ok {
		return nil, fmt.Errorf("level %d: %w", n, ErrLevelNotFound)
	}
	return rows, nil
}

// LoadAll loads game.yaml and every level it declares
func (l *Loader) LoadAll() (*Content, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	levels := make(map[int][]string, game.Levels.Count)
	for n := 1; n <= game.Levels.Count; n++ {
		rows, err := l.LoadLevel(n)
		if err != nil {
			return nil, err
		}
		levels[n] = rows
	}

	return &Content{Game: game, Levels: levels}, nil
}
