// Package config provides YAML-based engine configuration loading and
// difficulty presets for blockdrop.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for the piece-drop game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines where new pieces appear.
// X = -1 means floor(width/2) - 1.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Spawn orientations of the piece catalogue fit in this box (the I piece is
// 4 wide, every other piece 2 tall).
const (
	MaxPieceWidth  = 4
	MaxPieceHeight = 2
)

// Column resolves X for a board of the given width.
func (s SpawnConfig) Column(width int) int {
	if s.X < 0 {
		return width/2 - 1
	}
	return s.X
}

// GravityConfig defines the level-dependent fall interval:
// max(min_interval_ms, base_interval_ms - level*level_step_ms).
type GravityConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"`
	MinIntervalMs  int `yaml:"min_interval_ms"`
	LevelStepMs    int `yaml:"level_step_ms"`
}

// ScoringConfig defines line-clear rewards and level progression.
type ScoringConfig struct {
	LineClear     []int `yaml:"line_clear"` // Indexed by rows cleared at once
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty maps a CLI string to a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports every value that would make the engine unplayable.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board.width must be at least 4, got %d", c.Board.Width))
	}
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height must be at least 4, got %d", c.Board.Height))
	}
	if col := c.Spawn.Column(c.Board.Width); c.Spawn.X < -1 || col < 0 || col > c.Board.Width-MaxPieceWidth {
		errs = append(errs, fmt.Errorf("spawn.x out of range: %d (pieces up to %d wide must fit a %d-wide board)",
			c.Spawn.X, MaxPieceWidth, c.Board.Width))
	}
	if c.Spawn.Y < 0 || c.Spawn.Y > c.Board.Height-MaxPieceHeight {
		errs = append(errs, fmt.Errorf("spawn.y out of range: %d (pieces up to %d tall must fit a %d-tall board)",
			c.Spawn.Y, MaxPieceHeight, c.Board.Height))
	}
	if c.Gravity.MinIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.min_interval_ms must be positive, got %d", c.Gravity.MinIntervalMs))
	}
	if c.Gravity.BaseIntervalMs < c.Gravity.MinIntervalMs {
		errs = append(errs, fmt.Errorf("gravity.base_interval_ms (%d) below min_interval_ms (%d)",
			c.Gravity.BaseIntervalMs, c.Gravity.MinIntervalMs))
	}
	if c.Gravity.LevelStepMs < 0 {
		errs = append(errs, fmt.Errorf("gravity.level_step_ms must not be negative, got %d", c.Gravity.LevelStepMs))
	}
	if len(c.Scoring.LineClear) == 0 {
		errs = append(errs, errors.New("scoring.line_clear must not be empty"))
	}
	for i, pts := range c.Scoring.LineClear {
		if pts < 0 {
			errs = append(errs, fmt.Errorf("scoring.line_clear[%d] must not be negative, got %d", i, pts))
		}
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("scoring.lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tetris config: %w", errors.Join(errs...))
	}
	return nil
}
