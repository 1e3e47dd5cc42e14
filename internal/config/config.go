// Package config provides YAML-based game configuration loading and
// difficulty presets for the garden.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GardenConfig contains all tunables of a Bee Garden run.
type GardenConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Player  PlayerConfig  `yaml:"player"`
	Pickups PickupConfig  `yaml:"pickups"`
	Hazards HazardConfig  `yaml:"hazards"`
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
	Share   ShareConfig   `yaml:"share"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines the playfield size in world units.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the bee.
type PlayerConfig struct {
	Size  float64 `yaml:"size"`  // Side of the bounding square
	Speed float64 `yaml:"speed"` // Units per reference tick
}

// PickupConfig defines flower spawning and scoring.
type PickupConfig struct {
	Size        float64 `yaml:"size"`
	Margin      float64 `yaml:"margin"`       // Keep-out band along the board edges
	MinInterval float64 `yaml:"min_interval"` // Seconds, inclusive
	MaxInterval float64 `yaml:"max_interval"` // Seconds, exclusive
	Reward      int     `yaml:"reward"`
}

// HazardConfig defines spider spawning, motion and pruning.
type HazardConfig struct {
	Size          float64 `yaml:"size"`
	PruneMargin   float64 `yaml:"prune_margin"` // Distance past an edge before removal
	MinInterval   float64 `yaml:"min_interval"`
	MaxInterval   float64 `yaml:"max_interval"`
	MinSpeed      float64 `yaml:"min_speed"`      // Slowest inward speed
	SpeedRange    float64 `yaml:"speed_range"`    // Inward speed is MinSpeed + U*SpeedRange
	LateralJitter float64 `yaml:"lateral_jitter"` // Sideways speed is (U-0.5)*LateralJitter
}

// TimingConfig defines how elapsed time maps onto movement.
type TimingConfig struct {
	ReferenceFPS float64 `yaml:"reference_fps"` // Speeds are expressed per 1/ReferenceFPS seconds
	MaxDelta     float64 `yaml:"max_delta"`     // Seconds; 0 disables clamping
}

// InputConfig defines how terminal key presses are turned into held keys.
type InputConfig struct {
	InitialHold time.Duration `yaml:"initial_hold"`
	RepeatHold  time.Duration `yaml:"repeat_hold"`
}

// ShareConfig defines the share message.
type ShareConfig struct {
	URL     string `yaml:"url"`     // Page linked from the share message
	Message string `yaml:"message"` // fmt format with a single %d for the score
}

// StorageConfig defines persistence keys.
type StorageConfig struct {
	BestKey string `yaml:"best_key"`
}

// Validate reports the first nonsensical value in the config.
func (c GardenConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board must be positive, got %gx%g", c.Board.Width, c.Board.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player.size must be positive, got %g", c.Player.Size))
	}
	if c.Player.Size > c.Board.Width || c.Player.Size > c.Board.Height {
		errs = append(errs, fmt.Errorf("player.size %g does not fit the board", c.Player.Size))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %g", c.Player.Speed))
	}
	if c.Pickups.Size <= 0 || c.Hazards.Size <= 0 {
		errs = append(errs, errors.New("pickup and hazard sizes must be positive"))
	}
	if c.Pickups.Margin < 0 || 2*c.Pickups.Margin > min(c.Board.Width, c.Board.Height) {
		errs = append(errs, fmt.Errorf("pickups.margin %g does not fit the board", c.Pickups.Margin))
	}
	if err := checkInterval("pickups", c.Pickups.MinInterval, c.Pickups.MaxInterval); err != nil {
		errs = append(errs, err)
	}
	if err := checkInterval("hazards", c.Hazards.MinInterval, c.Hazards.MaxInterval); err != nil {
		errs = append(errs, err)
	}
	if c.Pickups.Reward < 0 {
		errs = append(errs, fmt.Errorf("pickups.reward must not be negative, got %d", c.Pickups.Reward))
	}
	if c.Hazards.PruneMargin < 0 || c.Hazards.MinSpeed <= 0 || c.Hazards.SpeedRange < 0 || c.Hazards.LateralJitter < 0 {
		errs = append(errs, errors.New("hazard motion values must be positive"))
	}
	if c.Timing.ReferenceFPS <= 0 {
		errs = append(errs, fmt.Errorf("timing.reference_fps must be positive, got %g", c.Timing.ReferenceFPS))
	}
	if c.Timing.MaxDelta < 0 {
		errs = append(errs, fmt.Errorf("timing.max_delta must not be negative, got %g", c.Timing.MaxDelta))
	}
	if c.Input.InitialHold < 0 || c.Input.RepeatHold < 0 {
		errs = append(errs, errors.New("input hold durations must not be negative"))
	}
	if c.Storage.BestKey == "" {
		errs = append(errs, errors.New("storage.best_key must be set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func checkInterval(section string, lo, hi float64) error {
	if lo < 0 || hi <= 0 || hi < lo {
		return fmt.Errorf("%s interval [%g, %g) is invalid", section, lo, hi)
	}
	return nil
}
