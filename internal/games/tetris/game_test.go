package tetris

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/registry"
)

type fakeStore struct {
	records   []core.GameRecord
	best      map[string]int
	setCalls  int
	recordErr error
	bestErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{best: make(map[string]int)}
}

func (s *fakeStore) RecordGame(rec core.GameRecord) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.records = append(s.records, rec)
	return nil
}

// HighScore mirrors the SQLite store: recorded games count towards the best.
func (s *fakeStore) HighScore(gameID string) (int, error) {
	if s.bestErr != nil {
		return 0, s.bestErr
	}
	best := s.best[gameID]
	for _, rec := range s.records {
		if rec.GameID == gameID {
			best = max(best, rec.Score)
		}
	}
	return best, nil
}

func (s *fakeStore) SetHighScore(gameID string, score int) error {
	s.setCalls++
	s.best[gameID] = score
	return nil
}

var _ registry.ScoreStore = (*fakeStore)(nil)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func newTestGame(kinds ...Kind) *Game {
	g := New()
	g.ResetWithRules(testConfig(), DefaultRules(), NewSequenceGenerator(kinds...))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func stepN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(frame())
	}
}

// endGame blocks the row under a freshly spawned piece and soft drops, so
// the piece locks at the spawn point and the following spawn collides.
func endGame(g *Game) {
	e := g.engine
	fillRow(e.board, e.pos.Y+e.active.Shape.Rows(), 0)
	g.Step(frame(core.ActionDown))
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists(GameID))
	g, err := registry.Create(GameID)
	require.NoError(t, err)
	assert.Equal(t, "Tetris", g.Title())
	assert.Implements(t, (*registry.Reporter)(nil), g)
	assert.Implements(t, (*registry.Resizer)(nil), g)
}

func TestGameStartsOnConfirm(t *testing.T) {
	g := newTestGame(KindT)
	assert.Equal(t, StateNotStarted, g.Snapshot().State)

	stepN(g, 100)
	assert.False(t, g.Snapshot().HasActive, "nothing happens before start")
	assert.False(t, g.sched.Running())

	g.Step(frame(core.ActionConfirm))

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.True(t, snap.HasActive)
	assert.Equal(t, Point{4, 0}, snap.ActivePos)
	assert.NotEmpty(t, snap.RunID)
	assert.True(t, g.sched.Running())
	assert.Equal(t, 550*time.Millisecond, g.sched.Interval())
}

func TestGameGravityFollowsFrames(t *testing.T) {
	g := newTestGame(KindT)
	g.Step(frame(core.ActionConfirm))

	// 550ms at 60 FPS is just over 33 frames.
	stepN(g, 32)
	assert.Equal(t, 0, g.Snapshot().ActivePos.Y, "33 frames: no gravity yet")

	stepN(g, 1)
	assert.Equal(t, 1, g.Snapshot().ActivePos.Y, "34 frames: one gravity step")

	stepN(g, 33)
	assert.Equal(t, 2, g.Snapshot().ActivePos.Y)
}

func TestGameInputs(t *testing.T) {
	g := newTestGame(KindT)
	g.Step(frame(core.ActionConfirm))

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, 3, g.Snapshot().ActivePos.X)

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	assert.Equal(t, 5, g.Snapshot().ActivePos.X)

	g.Step(frame(core.ActionRotate))
	assert.Equal(t, 3, g.engine.active.Shape.Rows(), "T rotated to a 3×2 matrix")

	g.Step(frame(core.ActionDown))
	assert.Equal(t, 1, g.Snapshot().ActivePos.Y)
}

func TestGamePauseStopsGravity(t *testing.T) {
	g := newTestGame(KindT)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionPause))

	assert.Equal(t, StatePaused, g.Snapshot().State)
	assert.False(t, g.sched.Running())
	assert.Equal(t, 0, g.clock.Pending())

	stepN(g, 200)
	g.Step(frame(core.ActionLeft, core.ActionDown))
	assert.Equal(t, Point{4, 0}, g.Snapshot().ActivePos)

	g.Step(frame(core.ActionPause))
	assert.Equal(t, StatePlaying, g.Snapshot().State)
	stepN(g, 39)
	assert.Equal(t, 1, g.Snapshot().ActivePos.Y, "gravity resumes with a full interval")
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(KindO)
	g.Step(frame(core.ActionConfirm))
	first := g.Snapshot().RunID
	g.engine.score = 400
	g.Step(frame(core.ActionLeft))

	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	assert.NotEqual(t, first, snap.RunID)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, Point{4, 0}, snap.ActivePos)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestGameRestartIgnoredBeforeStart(t *testing.T) {
	g := newTestGame(KindO)
	g.Step(frame(core.ActionRestart))
	assert.Equal(t, StateNotStarted, g.Snapshot().State)
}

func TestGameOverReportsOnce(t *testing.T) {
	store := newFakeStore()
	store.best[GameID] = 300
	g := newTestGame(KindT)
	g.SetScoreStore(store)
	assert.Equal(t, 300, g.HighScore())

	g.Step(frame(core.ActionConfirm))
	runID := g.Snapshot().RunID
	g.engine.score = 500
	g.engine.lines = 4
	endGame(g)

	require.Equal(t, StateGameOver, g.Snapshot().State)
	assert.False(t, g.sched.Running())
	require.Len(t, store.records, 1)
	assert.Equal(t, core.GameRecord{RunID: runID, GameID: GameID, Score: 500, Lines: 4, Level: 1}, store.records[0])
	assert.Equal(t, 500, store.best[GameID])
	assert.Equal(t, 500, g.HighScore())
	assert.True(t, g.newBest)

	stepN(g, 120)
	assert.Len(t, store.records, 1, "a finished game is reported exactly once")
	assert.Equal(t, 1, store.setCalls)

	// A new game reports again.
	g.Step(frame(core.ActionConfirm))
	endGame(g)
	assert.Len(t, store.records, 2)
	assert.Equal(t, 1, store.setCalls, "a lower score keeps the stored best")
	assert.Equal(t, 500, g.HighScore())
}

func TestGameOverStoreErrorsAreNotFatal(t *testing.T) {
	store := newFakeStore()
	store.recordErr = errors.New("disk full")
	store.bestErr = errors.New("locked")
	g := newTestGame(KindT)
	g.SetScoreStore(store)

	g.Step(frame(core.ActionConfirm))
	g.engine.score = 100
	endGame(g)

	assert.Equal(t, StateGameOver, g.Snapshot().State)
	assert.Equal(t, 100, g.HighScore())

	g.Step(frame(core.ActionConfirm))
	assert.Equal(t, StatePlaying, g.Snapshot().State)
}

func TestGameWithoutStoreTracksBestInMemory(t *testing.T) {
	g := newTestGame(KindT)
	g.Step(frame(core.ActionConfirm))
	g.engine.score = 800
	endGame(g)
	assert.Equal(t, 800, g.HighScore())

	g.Step(frame(core.ActionConfirm))
	g.engine.score = 100
	endGame(g)
	assert.Equal(t, 800, g.HighScore())
}

func TestGameLevelUpReschedules(t *testing.T) {
	g := newTestGame(KindO)
	g.Step(frame(core.ActionConfirm))
	g.engine.lines = 9
	fillRow(g.engine.board, 19, 0)
	placeVerticalI(g.engine, 0)

	g.Step(frame(core.ActionDown))

	assert.Equal(t, 2, g.Snapshot().Level)
	assert.Equal(t, 500*time.Millisecond, g.sched.Interval())
	assert.Equal(t, 500*time.Millisecond, g.Snapshot().Interval)
	assert.Equal(t, 1, g.clock.Pending())
}

func TestGameTooSmall(t *testing.T) {
	g := New()
	cfg := testConfig()
	cfg.ScreenW = 30
	g.ResetWithRules(cfg, DefaultRules(), NewSequenceGenerator(KindT))
	g.Step(frame(core.ActionConfirm))

	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	assert.False(t, g.sched.Running())
	stepN(g, 100)
	g.Step(frame(core.ActionLeft))
	assert.Equal(t, Point{4, 0}, g.Snapshot().ActivePos)

	screen := core.NewScreen(30, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
	assert.True(t, g.sched.Running())
	stepN(g, 40)
	assert.Equal(t, 1, g.Snapshot().ActivePos.Y)
}

func TestGameDeterminism(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig())
		g.Step(frame(core.ActionConfirm))
		for i := 0; i < 600; i++ {
			var in core.InputFrame
			switch i % 7 {
			case 0:
				in = frame(core.ActionLeft)
			case 3:
				in = frame(core.ActionRotate)
			case 5:
				in = frame(core.ActionDown)
			default:
				in = frame()
			}
			g.Step(in)
		}
		s := g.Snapshot()
		s.RunID = ""
		return s
	}

	a, b := run(), run()
	assert.Equal(t, a, b)
	assert.Greater(t, a.Filled, 0, "pieces should have settled in 600 frames")
}

func TestGameRender(t *testing.T) {
	g := newTestGame(KindI, KindT)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.String(), "Press Enter to start")

	g.Step(frame(core.ActionConfirm))
	g.Render(screen)
	out := screen.String()
	assert.NotContains(t, out, "Press Enter")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "NEXT")

	blocks := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == blockRune && c.Color == core.ColorCyan {
				blocks++
			}
		}
	}
	assert.Equal(t, 8, blocks, "the falling I is four cells, two characters each")

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "Paused")

	g.Step(frame(core.ActionPause))
	endGame(g)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Game Over"))
}
