package config

import (
	_ "embed"
)

//go:embed defaults/trashpanda.yaml
var defaultTrashPandaYAML []byte

// DefaultTrashPandaConfig returns the default Trash Panda configuration.
// It mirrors defaults/trashpanda.yaml and is used when the embedded file
// cannot be parsed.
func DefaultTrashPandaConfig() TrashPandaConfig {
	return TrashPandaConfig{
		Player: TrashPandaPlayer{
			Width:        50,
			Height:       50,
			Step:         50,
			BottomMargin: 20,
		},
		Entities: TrashPandaEntities{
			Size:             40,
			CollectibleSpeed: 4,
			HazardSpeed:      6,
		},
		Difficulty: RampConfig{
			Enabled: true,
			HazardProbability: RampSetting{
				Initial: 0.1,
				Step:    0.001,
				Limit:   0.5,
			},
			FallSpeed: SpeedRamp{
				Step:  0.005,
				Limit: 15,
			},
			SpawnIntervalMS: IntervalRamp{
				Initial: 1000,
				Step:    20,
				Limit:   500,
			},
		},
		Display: TrashPandaDisplay{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "trashpanda":
		return defaultTrashPandaYAML
	default:
		return nil
	}
}
