package config

import (
	"bufio"
	"bytes"
	"strings"
)

// Built-in legend kinds that are not enemy, hazard or prop names
const (
	KindPlayer = "player"
	KindGrass  = "grass"
	KindEarth  = "earth"
)

// LevelsConfig describes the authored levels and their map legend
type LevelsConfig struct {
	Count int `yaml:"count"`
	// Legend maps a map character to a kind name
	Legend map[string]string `yaml:"legend"`
}

// KindOf returns the kind for a map character, or "" for empty cells
func (c LevelsConfig) KindOf(ch rune) string {
	return c.Legend[string(ch)]
}

// EmptyCell pads short level rows
const EmptyCell = '.'

// ParseLevel splits a level text into rows, right-padded with EmptyCell to
// the widest row. Trailing blank lines are dropped.
func ParseLevel(data []byte) []string {
	var rows []string
	width := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		row := strings.TrimRight(sc.Text(), " \t\r")
		rows = append(rows, row)
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		if pad := width - len([]rune(row)); pad > 0 {
			rows[i] = row + strings.Repeat(string(EmptyCell), pad)
		}
	}
	return rows
}
