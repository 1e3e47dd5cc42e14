package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Hazard interval multipliers per preset.
const (
	easyHazardStretch = 1.5
	hardHazardShrink  = 0.7
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyGardenPreset modifies the config based on a difficulty preset.
// Normal leaves the configured values untouched.
func ApplyGardenPreset(cfg *GardenConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hazards.MinInterval *= easyHazardStretch
		cfg.Hazards.MaxInterval *= easyHazardStretch
	case DifficultyHard:
		cfg.Hazards.MinInterval *= hardHazardShrink
		cfg.Hazards.MaxInterval *= hardHazardShrink
	}
}
