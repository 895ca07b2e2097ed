package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 10×20 board,
// 600ms base gravity shrinking 50ms per level down to 100ms, and the
// classic 100/300/500/800 line-clear table.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Spawn: SpawnConfig{
			X: -1,
			Y: 0,
		},
		Gravity: GravityConfig{
			BaseIntervalMs: 600,
			MinIntervalMs:  100,
			LevelStepMs:    50,
		},
		Scoring: ScoringConfig{
			LineClear:     []int{0, 100, 300, 500, 800},
			LinesPerLevel: 10,
		},
	}
}
