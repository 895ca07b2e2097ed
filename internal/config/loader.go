package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and the SSH host key.
const AppDir = ".blockdrop"

// LoadTetris loads the piece-drop configuration.
// Search order: customPath -> ~/.blockdrop/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files are overlaid on DefaultTetrisConfig, so they only need the keys they change.
func LoadTetris(customPath string) (TetrisConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parseTetris(customPath, data)
	}

	// User and local files that fail to parse are skipped, like a missing file.
	for _, path := range []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var probe TetrisConfig
		if yaml.Unmarshal(data, &probe) != nil {
			continue
		}
		return parseTetris(path, data)
	}

	cfg, err := parseTetris("embedded default", defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil
	}
	return cfg, nil
}

func parseTetris(source string, data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}
