package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/registry"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

func newFlagSet() (*pflag.FlagSet, *string, *string) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	db := fs.String("db", "~/.blockdrop/scores.db", "")
	difficulty := fs.String("difficulty", "", "")
	return fs, db, difficulty
}

func TestApplyEnvDefaults(t *testing.T) {
	t.Setenv("BLOCKDROP_DB", "/tmp/env.db")
	t.Setenv("BLOCKDROP_DIFFICULTY", "hard")

	fs, db, difficulty := newFlagSet()
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, applyEnvDefaults(fs))

	assert.Equal(t, "/tmp/env.db", *db)
	assert.Equal(t, "hard", *difficulty)
}

func TestApplyEnvDefaultsKeepsExplicitFlags(t *testing.T) {
	t.Setenv("BLOCKDROP_DB", "/tmp/env.db")

	fs, db, _ := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--db", "/tmp/flag.db"}))
	require.NoError(t, applyEnvDefaults(fs))

	assert.Equal(t, "/tmp/flag.db", *db)
}

func TestApplyEnvDefaultsIgnoresMissingFlags(t *testing.T) {
	t.Setenv("BLOCKDROP_CONFIG", "./custom.yaml")

	fs, _, _ := newFlagSet()
	require.NoError(t, fs.Parse(nil))
	assert.NoError(t, applyEnvDefaults(fs), "commands without --config are left alone")
}

func TestPrintGameListWithStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.RecordGame(core.GameRecord{RunID: "a", GameID: defaultGame, Score: 300}))
	require.NoError(t, store.RecordGame(core.GameRecord{RunID: "b", GameID: defaultGame, Score: 1200}))

	stats, err := store.GetAllGamesStats()
	require.NoError(t, err)

	var buf bytes.Buffer
	printGameList(&buf, registry.List(), stats)

	var row string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), defaultGame+" ") {
			row = line
		}
	}
	require.NotEmpty(t, row, buf.String())
	assert.Contains(t, row, "(default)")
	assert.Equal(t, []string{"2", "1200"}, strings.Fields(row)[len(strings.Fields(row))-2:])
}

func TestPrintGameListWithoutStats(t *testing.T) {
	var buf bytes.Buffer
	printGameList(&buf, []registry.GameInfo{{ID: defaultGame, Title: "Tetris"}}, nil)

	assert.Contains(t, buf.String(), "Played")
	assert.Regexp(t, `tetris\s+Tetris \(default\)\s+0\s+-`, buf.String())
}

func TestPrintGameListEmpty(t *testing.T) {
	var buf bytes.Buffer
	printGameList(&buf, nil, nil)
	assert.Equal(t, "No games available.\n", buf.String())
}
