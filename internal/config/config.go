// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TrashPandaConfig contains all configuration for the Trash Panda game.
// Geometry and speeds are in world units (pixels on the desktop host).
type TrashPandaConfig struct {
	Player     TrashPandaPlayer   `yaml:"player"`
	Entities   TrashPandaEntities `yaml:"entities"`
	Difficulty RampConfig         `yaml:"difficulty"`
	Display    TrashPandaDisplay  `yaml:"display"`
	Audio      AudioConfig        `yaml:"audio"`
}

// TrashPandaPlayer defines the raccoon's size and movement.
type TrashPandaPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Step         float64 `yaml:"step"`          // Distance moved per command
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between player bottom and viewport bottom
}

// TrashPandaEntities defines falling object parameters.
type TrashPandaEntities struct {
	Size             float64 `yaml:"size"`
	CollectibleSpeed float64 `yaml:"collectible_speed"` // Initial fall speed per frame
	HazardSpeed      float64 `yaml:"hazard_speed"`      // Initial fall speed per frame
}

// RampConfig defines how difficulty ratchets up on every spawn.
type RampConfig struct {
	Enabled           bool         `yaml:"enabled"`
	HazardProbability RampSetting  `yaml:"hazard_probability"`
	FallSpeed         SpeedRamp    `yaml:"fall_speed"`
	SpawnIntervalMS   IntervalRamp `yaml:"spawn_interval_ms"`
}

// RampSetting is a value that starts at Initial and grows by Step per spawn up to Limit.
type RampSetting struct {
	Initial float64 `yaml:"initial"`
	Step    float64 `yaml:"step"`
	Limit   float64 `yaml:"limit"`
}

// SpeedRamp grows both fall speeds by Step per spawn up to Limit.
// Initial speeds live in TrashPandaEntities.
type SpeedRamp struct {
	Step  float64 `yaml:"step"`
	Limit float64 `yaml:"limit"`
}

// IntervalRamp shrinks the spawn interval by Step per spawn down to Limit (the floor).
type IntervalRamp struct {
	Initial int `yaml:"initial"`
	Step    int `yaml:"step"`
	Limit   int `yaml:"limit"`
}

// TrashPandaDisplay defines how terminal hosts map world units to cells.
type TrashPandaDisplay struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// AudioConfig holds audio defaults.
type AudioConfig struct {
	Muted bool `yaml:"muted"`
}

// InitialSpawnInterval returns the starting spawn interval as a duration.
func (r RampConfig) InitialSpawnInterval() time.Duration {
	return time.Duration(r.SpawnIntervalMS.Initial) * time.Millisecond
}

// SpawnIntervalStep returns the per-spawn interval reduction as a duration.
func (r RampConfig) SpawnIntervalStep() time.Duration {
	return time.Duration(r.SpawnIntervalMS.Step) * time.Millisecond
}

// SpawnIntervalFloor returns the minimum spawn interval as a duration.
func (r RampConfig) SpawnIntervalFloor() time.Duration {
	return time.Duration(r.SpawnIntervalMS.Limit) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid trashpanda config")

// Validate checks that the configuration describes a playable game.
func (c TrashPandaConfig) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Step <= 0:
		return fmt.Errorf("%w: player step must be positive", ErrInvalidConfig)
	case c.Player.BottomMargin < 0:
		return fmt.Errorf("%w: player bottom_margin must not be negative", ErrInvalidConfig)
	case c.Entities.Size <= 0:
		return fmt.Errorf("%w: entity size must be positive", ErrInvalidConfig)
	case c.Entities.CollectibleSpeed <= 0 || c.Entities.HazardSpeed <= 0:
		return fmt.Errorf("%w: fall speeds must be positive", ErrInvalidConfig)
	case c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0:
		return fmt.Errorf("%w: display cell size must be positive", ErrInvalidConfig)
	}

	hp := c.Difficulty.HazardProbability
	if hp.Initial < 0 || hp.Limit > 1 || hp.Limit < hp.Initial || hp.Step < 0 {
		return fmt.Errorf("%w: hazard_probability needs 0 <= initial <= limit <= 1 and step >= 0", ErrInvalidConfig)
	}

	fs := c.Difficulty.FallSpeed
	if fs.Step < 0 || fs.Limit < c.Entities.CollectibleSpeed || fs.Limit < c.Entities.HazardSpeed {
		return fmt.Errorf("%w: fall_speed limit must be at least both initial speeds", ErrInvalidConfig)
	}

	si := c.Difficulty.SpawnIntervalMS
	if si.Limit <= 0 || si.Initial < si.Limit || si.Step < 0 {
		return fmt.Errorf("%w: spawn_interval_ms needs 0 < limit <= initial and step >= 0", ErrInvalidConfig)
	}

	return nil
}
