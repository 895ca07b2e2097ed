package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/registry"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

// SessionModel is the top-level model for one player: the game screen with
// a scoreboard that Tab toggles. Opening the scoreboard pauses a live game.
type SessionModel struct {
	game       GameModel
	board      ScoreboardModel
	source     ScoreSource
	keys       GameKeyMap
	width      int
	height     int
	showScores bool
	quitting   bool
}

// NewSessionModel creates a session around game. A nil store disables
// persistence and shows an empty scoreboard.
func NewSessionModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	var source ScoreSource
	if store != nil {
		source = store
	}
	return SessionModel{
		game:   NewGameModel(game, store, cfg),
		source: source,
		keys:   DefaultGameKeyMap(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game's frame loop.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the visible screen. Frames always reach the
// game so its loop keeps running behind the scoreboard.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.showScores {
			m.board = m.updateBoard(msg)
		}
		return m.updateGame(msg)

	case TickMsg:
		return m.updateGame(msg)

	case tea.KeyMsg:
		if m.showScores {
			m.board = m.updateBoard(msg)
			switch {
			case m.board.IsQuitting():
				m.quitting = true
				return m, tea.Quit
			case m.board.IsGoingBack():
				m.showScores = false
			}
			return m, nil
		}

		if key.Matches(msg, m.keys.Scores) {
			m.game.pauseIfPlaying()
			m.board = NewScoreboardModel(m.source, m.game.game.ID(), m.game.game.Title(), m.width, m.height)
			m.showScores = true
			return m, nil
		}
		return m.updateGame(msg)
	}

	return m, nil
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}
	if m.game.IsQuitting() {
		m.quitting = true
	}
	return m, cmd
}

func (m SessionModel) updateBoard(msg tea.Msg) ScoreboardModel {
	next, _ := m.board.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		return sb
	}
	return m.board
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.board.View()
	}
	return m.game.View()
}

// ShowingScores reports whether the scoreboard is on screen.
func (m SessionModel) ShowingScores() bool {
	return m.showScores
}

// Run plays game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
