package tetris

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/registry"
)

// Reporter hands finished games to the stats store and keeps the persisted
// best score current. Store failures are logged and otherwise ignored.
type Reporter struct {
	store  registry.ScoreStore
	logger *log.Logger
}

// NewReporter returns a reporter writing to store. A nil store disables
// persistence.
func NewReporter(store registry.ScoreStore, logger *log.Logger) *Reporter {
	return &Reporter{store: store, logger: logger}
}

// Best returns the persisted best score for gameID, or 0 if unknown.
func (r *Reporter) Best(gameID string) int {
	if r.store == nil {
		return 0
	}
	best, err := r.store.HighScore(gameID)
	if err != nil {
		r.logger.Warn("could not read high score", "game", gameID, "error", err)
		return 0
	}
	return best
}

// Report records rec with the stats aggregator and raises the stored best
// if rec beats it. It returns the best score after the update and whether
// rec set it.
func (r *Reporter) Report(rec core.GameRecord) (best int, isNew bool) {
	if r.store == nil {
		return rec.Score, rec.Score > 0
	}

	// The store's best counts recorded games, so read it before recording.
	prev := r.Best(rec.GameID)
	if err := r.store.RecordGame(rec); err != nil {
		r.logger.Error("could not record game", "game", rec.GameID, "run", rec.RunID, "error", err)
	}

	if rec.Score <= prev {
		return prev, false
	}
	if err := r.store.SetHighScore(rec.GameID, rec.Score); err != nil {
		r.logger.Error("could not update high score", "game", rec.GameID, "score", rec.Score, "error", err)
	}
	r.logger.Info("new high score", "game", rec.GameID, "score", rec.Score, "previous", prev)
	return rec.Score, true
}
