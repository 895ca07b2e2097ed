// Package tetris implements the piece-drop game: a piece generator, a board
// simulator that owns all placement rules, and a tick scheduler that drives
// gravity at a level-dependent rate.
package tetris

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockdrop/internal/config"
	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "tetris"

// Layout constants, in screen cells.
const (
	cellWidth    = 2  // Each board cell is drawn two characters wide
	sidebarWidth = 16 // HUD column right of the board
	sidebarGap   = 2
)

var (
	// configPath stores the custom config path set via CLI
	configPath string
	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset

	logger = log.New(io.Discard)
)

// SetConfigPath sets the YAML config file used by subsequent Resets.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on subsequent Resets.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		logger.Warn("ignoring difficulty preset", "error", err)
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by every game instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts the engine to the platform: it maps input actions onto engine
// operations, keeps the gravity scheduler in step with the engine state,
// and reports the result once per finished game.
type Game struct {
	rules    Rules
	engine   *Engine
	clock    *FrameClock
	sched    *Scheduler
	reporter *Reporter

	frame     time.Duration
	tick      uint64
	runID     string
	reported  bool
	highScore int
	newBest   bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates an unstarted game. Call Reset before use.
func New() *Game {
	return &Game{reporter: NewReporter(nil, logger)}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// SetScoreStore attaches the persistence used for stats and the best score.
func (g *Game) SetScoreStore(store registry.ScoreStore) {
	g.reporter = NewReporter(store, logger)
	g.highScore = g.reporter.Best(GameID)
}

// Reset loads the configuration and returns to the not-started state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	conf, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("using default tetris config", "error", err)
		conf = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&conf, difficultyPreset)
	}
	g.ResetWithRules(cfg, RulesFromConfig(conf), NewRandomGenerator(cfg.Seed))
}

// ResetWithRules is Reset with explicit rules and piece source.
func (g *Game) ResetWithRules(cfg core.RuntimeConfig, rules Rules, gen Generator) {
	if g.sched != nil {
		g.sched.Stop()
	}
	g.rules = rules
	g.engine = NewEngine(rules, gen)
	g.clock = NewFrameClock()
	g.sched = NewScheduler(g.clock.AfterFunc, g.onGravity)
	g.frame = cfg.FrameDuration()
	g.tick = 0
	g.runID = ""
	g.reported = false
	g.newBest = false
	if g.reporter == nil {
		g.reporter = NewReporter(nil, logger)
	}
	if best := g.reporter.Best(GameID); best > g.highScore {
		g.highScore = best
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// MinSize returns the smallest terminal that fits the board and HUD.
func (g *Game) MinSize() (w, h int) {
	return g.rules.Width*cellWidth + 2 + sidebarGap + sidebarWidth, g.rules.Height + 3
}

// Resize adapts to a new terminal size, keeping the game in progress.
// Play is suspended while the terminal is too small.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	minW, minH := g.MinSize()
	g.tooSmall = width < minW || height < minH
	if g.engine != nil {
		g.syncScheduler()
	}
}

// Step handles one frame of input and advances the gravity clock by one
// frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	e := g.engine

	switch {
	case in.Has(core.ActionRestart) && e.Started():
		g.beginRun()
	case in.Has(core.ActionConfirm) && (!e.Started() || e.GameOver()):
		g.beginRun()
	case in.Has(core.ActionPause):
		e.TogglePause()
	}

	if !g.tooSmall {
		if in.Has(core.ActionLeft) {
			e.MoveLeft()
		}
		if in.Has(core.ActionRight) {
			e.MoveRight()
		}
		if in.Has(core.ActionRotate) {
			e.Rotate()
		}
		if in.Has(core.ActionDown) {
			e.SoftDrop()
		}
	}

	g.syncScheduler()
	if !g.tooSmall {
		g.clock.Advance(g.frame)
	}
	g.reportIfOver()

	return core.StepResult{State: g.State()}
}

// beginRun starts a fresh game under a new run ID.
func (g *Game) beginRun() {
	g.runID = uuid.NewString()
	g.reported = false
	g.newBest = false
	g.engine.Start()
}

// onGravity is the scheduler callback.
func (g *Game) onGravity() {
	g.engine.Tick()
	g.syncScheduler()
}

// syncScheduler runs gravity exactly while the game is live and the
// terminal is large enough, at the current level's interval.
func (g *Game) syncScheduler() {
	want := g.engine.Running() && !g.tooSmall
	interval := g.rules.Interval(g.engine.Level())

	switch {
	case !want:
		if g.sched.Running() {
			g.sched.Stop()
		}
	case !g.sched.Running():
		g.sched.Start(interval)
	case g.sched.Interval() != interval:
		g.sched.Reschedule(interval)
	}
}

func (g *Game) reportIfOver() {
	if !g.engine.GameOver() || g.reported {
		return
	}
	g.reported = true

	rec := core.GameRecord{
		RunID:  g.runID,
		GameID: GameID,
		Score:  g.engine.Score(),
		Lines:  g.engine.Lines(),
		Level:  g.engine.Level(),
	}
	best, isNew := g.reporter.Report(rec)
	g.newBest = isNew && rec.Score > g.highScore
	if best > g.highScore {
		g.highScore = best
	}
	logger.Debug("game over", "run", rec.RunID, "score", rec.Score, "lines", rec.Lines, "level", rec.Level)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Started:  g.engine.Started(),
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused(),
	}
}

// Engine exposes the underlying simulator.
func (g *Game) Engine() *Engine {
	return g.engine
}

// HighScore returns the best score known to this session.
func (g *Game) HighScore() int {
	return g.highScore
}
