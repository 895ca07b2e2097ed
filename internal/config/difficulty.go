package config

// ApplyTetrisPreset reshapes the gravity curve for a difficulty preset.
// The level formula and scoring table are never touched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseIntervalMs = 800
		cfg.Gravity.MinIntervalMs = 150
		cfg.Gravity.LevelStepMs = 50
	case DifficultyHard:
		cfg.Gravity.BaseIntervalMs = 400
		cfg.Gravity.MinIntervalMs = 80
		cfg.Gravity.LevelStepMs = 40
	case DifficultyFixed:
		// Constant speed: every level falls at the base interval.
		cfg.Gravity.LevelStepMs = 0
	}
}
