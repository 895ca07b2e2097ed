package tetris

import (
	"time"

	"github.com/vovakirdan/blockdrop/internal/config"
)

// Rules are the tunable constants of one game.
type Rules struct {
	Width, Height   int
	Spawn           Point
	LineClearScores []int // Points awarded for clearing n rows at once, indexed by n
	LinesPerLevel   int
	BaseInterval    time.Duration
	MinInterval     time.Duration
	LevelStep       time.Duration
}

// DefaultRules returns the classic 10×20 rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTetrisConfig())
}

// RulesFromConfig converts a validated YAML config into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		Width:           cfg.Board.Width,
		Height:          cfg.Board.Height,
		Spawn:           Point{X: cfg.Spawn.Column(cfg.Board.Width), Y: cfg.Spawn.Y},
		LineClearScores: append([]int(nil), cfg.Scoring.LineClear...),
		LinesPerLevel:   cfg.Scoring.LinesPerLevel,
		BaseInterval:    time.Duration(cfg.Gravity.BaseIntervalMs) * time.Millisecond,
		MinInterval:     time.Duration(cfg.Gravity.MinIntervalMs) * time.Millisecond,
		LevelStep:       time.Duration(cfg.Gravity.LevelStepMs) * time.Millisecond,
	}
}

// LevelFor returns the level reached after clearing lines rows: one level
// per LinesPerLevel rows, starting at 1.
func (r Rules) LevelFor(lines int) int {
	per := r.LinesPerLevel
	if per <= 0 {
		per = 10
	}
	return lines/per + 1
}

// ScoreFor returns the points for clearing n rows in a single lock.
// Counts past the end of the table earn the last entry.
func (r Rules) ScoreFor(n int) int {
	if n <= 0 || len(r.LineClearScores) == 0 {
		return 0
	}
	if n >= len(r.LineClearScores) {
		return r.LineClearScores[len(r.LineClearScores)-1]
	}
	return r.LineClearScores[n]
}

// Interval returns the gravity period at a level:
// max(MinInterval, BaseInterval - level*LevelStep).
func (r Rules) Interval(level int) time.Duration {
	d := r.BaseInterval - time.Duration(level)*r.LevelStep
	if d < r.MinInterval {
		return r.MinInterval
	}
	return d
}
