package trashpanda

import (
	"time"

	"github.com/vovakirdan/trashpanda/internal/config"
)

// GameOverMessage is shown to the player when a hazard reaches them.
const GameOverMessage = "YOU WERE CAUGHT! GAME OVER!"

// Tuning holds the named initial constants a session is built from and
// restored to on every reset.
type Tuning struct {
	PlayerWidth  float64
	PlayerHeight float64
	PlayerStep   float64
	BottomMargin float64

	EntitySize       float64
	CollectibleSpeed float64
	HazardSpeed      float64

	RampEnabled           bool
	HazardProbability     float64
	HazardProbabilityStep float64
	HazardProbabilityCap  float64
	SpeedStep             float64
	SpeedCap              float64
	SpawnInterval         time.Duration
	SpawnIntervalStep     time.Duration
	SpawnIntervalFloor    time.Duration
}

// TuningFromConfig converts a loaded YAML config into session tuning.
func TuningFromConfig(cfg config.TrashPandaConfig) Tuning {
	d := cfg.Difficulty
	return Tuning{
		PlayerWidth:  cfg.Player.Width,
		PlayerHeight: cfg.Player.Height,
		PlayerStep:   cfg.Player.Step,
		BottomMargin: cfg.Player.BottomMargin,

		EntitySize:       cfg.Entities.Size,
		CollectibleSpeed: cfg.Entities.CollectibleSpeed,
		HazardSpeed:      cfg.Entities.HazardSpeed,

		RampEnabled:           d.Enabled,
		HazardProbability:     d.HazardProbability.Initial,
		HazardProbabilityStep: d.HazardProbability.Step,
		HazardProbabilityCap:  d.HazardProbability.Limit,
		SpeedStep:             d.FallSpeed.Step,
		SpeedCap:              d.FallSpeed.Limit,
		SpawnInterval:         d.InitialSpawnInterval(),
		SpawnIntervalStep:     d.SpawnIntervalStep(),
		SpawnIntervalFloor:    d.SpawnIntervalFloor(),
	}
}

// DefaultTuning returns the tuning of the built-in configuration.
func DefaultTuning() Tuning {
	return TuningFromConfig(config.DefaultTrashPandaConfig())
}
