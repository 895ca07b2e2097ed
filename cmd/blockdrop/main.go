// blockdrop plays a falling-block puzzle in the terminal, locally or over SSH.
//
// Usage:
//
//	blockdrop list              - List available games
//	blockdrop play [game]       - Play a game (default: tetris)
//	blockdrop scores [game]     - Show high scores and stats
//	blockdrop serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible piece sequence
//	--db <path>           - Set database path (default: ~/.blockdrop/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
//
// A .env file in the working directory is loaded first. BLOCKDROP_DB,
// BLOCKDROP_CONFIG and BLOCKDROP_DIFFICULTY set defaults for --db, --config
// and --difficulty.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/blockdrop/internal/games/tetris"
)

const defaultGame = tetris.GameID

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.New(os.Stderr)
)

// envDefaults maps flag names to the environment variables that override
// their defaults.
var envDefaults = map[string]string{
	"db":         "BLOCKDROP_DB",
	"config":     "BLOCKDROP_CONFIG",
	"difficulty": "BLOCKDROP_DIFFICULTY",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockdrop",
	Short: "blockdrop - falling blocks in your terminal",
	Long: `blockdrop is a falling-block puzzle for the terminal. Steer and rotate
the pieces, complete rows to clear them, and watch gravity speed up as
you level up.

Available commands:
  list     - Show all available games
  play     - Play a game
  scores   - View high scores and stats
  serve    - Start SSH server for remote play

Examples:
  blockdrop play
  blockdrop play --difficulty hard
  blockdrop scores --limit 20
  blockdrop serve --ssh :2222`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockdrop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env, applies environment defaults to unset flags and builds
// the logger shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockdrop",
		Level:           level,
	})
	tetris.SetLogger(logger)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env", "error", err)
	}
	return applyEnvDefaults(cmd.Flags())
}

func applyEnvDefaults(flags *pflag.FlagSet) error {
	for name, env := range envDefaults {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
		logger.Debug("flag default from environment", "flag", name, "env", env)
	}
	return nil
}
