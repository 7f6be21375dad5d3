package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset controls how many token kinds are in play.
// Fewer kinds means more matches.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	// DifficultyAll uses every configured token.
	DifficultyAll DifficultyPreset = "all"
)

// Kinds returns the number of token kinds for the preset, or 0 for all.
func (d DifficultyPreset) Kinds() int {
	switch d {
	case DifficultyEasy:
		return 4
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// ParseDifficulty validates a difficulty name. Empty means all kinds.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	d := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case "":
		return DifficultyAll, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyAll:
		return d, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or all)", s)
}

// ApplyDifficulty sets the difficulty on cfg.
func ApplyDifficulty(cfg *ArmorCrushConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
}

// BoardPreset names a board size.
type BoardPreset string

const (
	BoardSmall   BoardPreset = "small"
	BoardClassic BoardPreset = "classic"
	BoardLarge   BoardPreset = "large"
)

// BoardPresets lists the presets in menu order.
func BoardPresets() []BoardPreset {
	return []BoardPreset{BoardSmall, BoardClassic, BoardLarge}
}

// Size returns the board dimensions for the preset.
func (p BoardPreset) Size() (w, h int, ok bool) {
	switch p {
	case BoardSmall:
		return 6, 6, true
	case BoardClassic:
		return 8, 8, true
	case BoardLarge:
		return 10, 10, true
	}
	return 0, 0, false
}

// ApplyPreset resizes the board in cfg.
func ApplyPreset(cfg *ArmorCrushConfig, preset BoardPreset) error {
	w, h, ok := preset.Size()
	if !ok {
		return fmt.Errorf("config: unknown board preset %q", preset)
	}
	cfg.Board.Width = w
	cfg.Board.Height = h
	return nil
}
