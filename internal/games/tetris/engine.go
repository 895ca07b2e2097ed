package tetris

// SpawnResult tells whether a new piece could enter the board.
type SpawnResult int

const (
	SpawnOK SpawnResult = iota
	SpawnGameOver
)

func (r SpawnResult) String() string {
	if r == SpawnGameOver {
		return "game_over"
	}
	return "ok"
}

// TickResult describes what one gravity step did.
type TickResult struct {
	Moved    bool // Active piece fell one row
	Locked   bool // Active piece was merged into the board
	Cleared  int  // Rows removed by the lock
	Points   int  // Score awarded for those rows
	GameOver bool // The following spawn collided
}

// Engine is the board simulator: it owns the grid, the falling piece and the
// score, and is the only place that decides whether a move is legal.
// It is not safe for concurrent use.
type Engine struct {
	rules Rules
	gen   Generator
	board *Board

	active *Piece
	pos    Point
	next   *Piece

	score int
	lines int
	level int

	started  bool
	gameOver bool
	paused   bool
}

// NewEngine returns an engine in the not-started state with an empty board.
func NewEngine(rules Rules, gen Generator) *Engine {
	e := &Engine{rules: rules, gen: gen}
	e.clear()
	return e
}

func (e *Engine) clear() {
	e.board = NewBoard(e.rules.Width, e.rules.Height)
	e.active = nil
	e.pos = Point{}
	e.next = nil
	e.score = 0
	e.lines = 0
	e.level = e.rules.LevelFor(0)
	e.gameOver = false
	e.paused = false
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules { return e.rules }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Started reports whether a game has been started since the last Reset.
func (e *Engine) Started() bool { return e.started }

// GameOver reports whether the current game has ended. It stays true until
// Start or Reset.
func (e *Engine) GameOver() bool { return e.gameOver }

// Paused reports whether play is suspended.
func (e *Engine) Paused() bool { return e.paused }

// Running reports whether gravity and player input currently apply.
func (e *Engine) Running() bool {
	return e.started && !e.gameOver && !e.paused
}

// Start begins a fresh game: the board, score, lines and level are cleared
// and the first piece spawns immediately.
func (e *Engine) Start() SpawnResult {
	e.clear()
	e.started = true
	return e.TrySpawn()
}

// Reset returns to the not-started state with an empty board.
func (e *Engine) Reset() {
	e.clear()
	e.started = false
}

// Pause suspends a running game.
func (e *Engine) Pause() {
	if e.started && !e.gameOver {
		e.paused = true
	}
}

// Resume continues a paused game.
func (e *Engine) Resume() {
	e.paused = false
}

// TogglePause flips between paused and running.
func (e *Engine) TogglePause() {
	if e.paused {
		e.Resume()
	} else {
		e.Pause()
	}
}

// takeNext pops the preview piece and draws its replacement.
func (e *Engine) takeNext() Piece {
	if e.next == nil {
		p := e.gen.Next()
		e.next = &p
	}
	p := *e.next
	n := e.gen.Next()
	e.next = &n
	return p
}

// TrySpawn places the next piece at the spawn point. If it does not fit the
// game is over, no piece is active and the board is left untouched.
func (e *Engine) TrySpawn() SpawnResult {
	if e.gameOver {
		return SpawnGameOver
	}
	p := e.takeNext()
	if !e.board.Fits(p.Shape, e.rules.Spawn) {
		e.active = nil
		e.gameOver = true
		e.paused = false
		return SpawnGameOver
	}
	e.active = &p
	e.pos = e.rules.Spawn
	return SpawnOK
}

// TryMove shifts the active piece by (dx, dy) if the result is legal.
// On failure nothing changes.
func (e *Engine) TryMove(dx, dy int) bool {
	if e.active == nil {
		return false
	}
	np := Point{X: e.pos.X + dx, Y: e.pos.Y + dy}
	if !e.board.Fits(e.active.Shape, np) {
		return false
	}
	e.pos = np
	return true
}

// TryRotate turns the active piece clockwise in place if the rotated shape
// fits at the current anchor. There are no wall kicks.
func (e *Engine) TryRotate() bool {
	if e.active == nil {
		return false
	}
	rotated := e.active.Shape.RotateClockwise()
	if !e.board.Fits(rotated, e.pos) {
		return false
	}
	e.active.Shape = rotated
	return true
}

// Tick performs one gravity step: the active piece falls a row, or if it
// cannot, it locks, full rows clear, score and level update, and the next
// piece spawns. With no active piece the step just spawns one.
// Ticks outside a running game do nothing.
func (e *Engine) Tick() TickResult {
	if !e.Running() {
		return TickResult{}
	}
	if e.active == nil {
		return TickResult{GameOver: e.TrySpawn() == SpawnGameOver}
	}
	if e.TryMove(0, 1) {
		return TickResult{Moved: true}
	}
	return e.lock()
}

func (e *Engine) lock() TickResult {
	e.board.Merge(*e.active, e.pos)
	e.active = nil

	n := e.board.ClearLines()
	pts := e.rules.ScoreFor(n)
	e.score += pts
	e.lines += n
	e.level = e.rules.LevelFor(e.lines)

	res := TickResult{Locked: true, Cleared: n, Points: pts}
	if e.TrySpawn() == SpawnGameOver {
		res.GameOver = true
	}
	return res
}

// MoveLeft shifts the active piece one column left during play.
func (e *Engine) MoveLeft() bool {
	return e.Running() && e.TryMove(-1, 0)
}

// MoveRight shifts the active piece one column right during play.
func (e *Engine) MoveRight() bool {
	return e.Running() && e.TryMove(1, 0)
}

// SoftDrop is a player-issued gravity step; it locks the piece when it
// cannot fall.
func (e *Engine) SoftDrop() TickResult {
	return e.Tick()
}

// Rotate turns the active piece clockwise during play.
func (e *Engine) Rotate() bool {
	return e.Running() && e.TryRotate()
}
