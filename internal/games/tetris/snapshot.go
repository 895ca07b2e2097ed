package tetris

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateNotStarted  GameStateType = "not_started"
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick      uint64
	RunID     string
	Score     int
	Lines     int
	Level     int
	HighScore int
	Interval  time.Duration
	Filled    int // Settled cells on the board
	Active    Kind
	ActivePos Point
	HasActive bool
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case e.GameOver():
		state = StateGameOver
	case !e.Started():
		state = StateNotStarted
	case e.Paused():
		state = StatePaused
	}

	s := Snapshot{
		Tick:      g.tick,
		RunID:     g.runID,
		Score:     e.Score(),
		Lines:     e.Lines(),
		Level:     e.Level(),
		HighScore: g.highScore,
		Interval:  g.rules.Interval(e.Level()),
		Filled:    e.board.Filled(),
		State:     state,
	}
	if e.active != nil {
		s.Active = e.active.Kind
		s.ActivePos = e.pos
		s.HasActive = true
	}
	return s
}
