package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield the
// empty preset, which keeps the config as loaded.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTrashPandaPreset modifies the config based on a difficulty preset.
func ApplyTrashPandaPreset(cfg *TrashPandaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.HazardProbability.Initial = 0.05
		cfg.Difficulty.SpawnIntervalMS.Initial = 1200
		cfg.Entities.CollectibleSpeed = 3
		cfg.Entities.HazardSpeed = 4.5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.HazardProbability.Initial = 0.25
		cfg.Difficulty.SpawnIntervalMS.Initial = 800
		cfg.Entities.CollectibleSpeed = 6
		cfg.Entities.HazardSpeed = 8
	}

	// Keep limits consistent with raised starting values
	dp := &cfg.Difficulty
	if dp.HazardProbability.Limit < dp.HazardProbability.Initial {
		dp.HazardProbability.Limit = dp.HazardProbability.Initial
	}
	if dp.SpawnIntervalMS.Initial < dp.SpawnIntervalMS.Limit {
		dp.SpawnIntervalMS.Initial = dp.SpawnIntervalMS.Limit
	}
	if dp.FallSpeed.Limit < cfg.Entities.HazardSpeed {
		dp.FallSpeed.Limit = cfg.Entities.HazardSpeed
	}
	if dp.FallSpeed.Limit < cfg.Entities.CollectibleSpeed {
		dp.FallSpeed.Limit = cfg.Entities.CollectibleSpeed
	}
}
