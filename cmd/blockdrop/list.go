package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/registry"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every game registered with blockdrop, with the number of games
played and the best score from the scores database.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		if stats, err = store.GetAllGamesStats(); err != nil {
			logger.Warn("could not read game stats", "error", err)
		}
		store.Close()
	}

	printGameList(os.Stdout, registry.List(), stats)
}

// printGameList writes the game table. stats may be nil when no database is
// available; games without stats show as unplayed.
func printGameList(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title)+len(" (default)"))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %6s  %8s\n", maxIDLen, "ID", maxTitleLen, "Title", "Played", "Best")
	fmt.Fprintf(w, "  %-*s  %-*s  %6s  %8s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "----")
	for _, g := range games {
		title := g.Title
		if g.ID == defaultGame {
			title += " (default)"
		}
		played, best := 0, "-"
		if s, ok := stats[g.ID]; ok && s.GamesCount > 0 {
			played = s.GamesCount
			best = fmt.Sprint(s.HighScore)
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %6d  %8s\n", maxIDLen, g.ID, maxTitleLen, title, played, best)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'blockdrop play <id>' to play a game.")
}
