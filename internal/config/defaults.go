package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultGardenConfig returns the built-in Bee Garden configuration.
func DefaultGardenConfig() GardenConfig {
	return GardenConfig{
		Board: BoardConfig{
			Width:  480,
			Height: 480,
		},
		Player: PlayerConfig{
			Size:  14,
			Speed: 2.5,
		},
		Pickups: PickupConfig{
			Size:        8,
			Margin:      20,
			MinInterval: 1.5,
			MaxInterval: 3.0,
			Reward:      10,
		},
		Hazards: HazardConfig{
			Size:          12,
			PruneMargin:   30,
			MinInterval:   3.0,
			MaxInterval:   5.0,
			MinSpeed:      1.0,
			SpeedRange:    1.0,
			LateralJitter: 1.5,
		},
		Timing: TimingConfig{
			ReferenceFPS: 60,
			MaxDelta:     0,
		},
		Input: InputConfig{
			InitialHold: 500 * time.Millisecond,
			RepeatHold:  120 * time.Millisecond,
		},
		Share: ShareConfig{
			URL:     "https://github.com/vovakirdan/bee-garden",
			Message: "J'ai pollinisé %d fleurs dans Pixel Bee Garden 🐝🌼 !",
		},
		Storage: StorageConfig{
			BestKey: "bee_best",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGardenYAML
}
