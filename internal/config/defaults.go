package config

import (
	_ "embed"
)

//go:embed defaults/armorcrush.yaml
var defaultArmorCrushYAML []byte

// DefaultArmorCrushConfig returns the built-in configuration used when no
// file can be read: a classic 8x8 board with all six armor pieces.
func DefaultArmorCrushConfig() ArmorCrushConfig {
	return ArmorCrushConfig{
		Board: BoardSettings{
			Width:    8,
			Height:   8,
			CellSize: 1,
		},
		Tokens: []TokenSettings{
			{Name: "helmet", Glyph: "▲", Color: "red"},
			{Name: "shield", Glyph: "■", Color: "blue"},
			{Name: "gauntlet", Glyph: "●", Color: "green"},
			{Name: "greave", Glyph: "◆", Color: "yellow"},
			{Name: "cuirass", Glyph: "♦", Color: "magenta"},
			{Name: "boots", Glyph: "▼", Color: "cyan"},
		},
		Pacing: PacingSettings{
			SwapMS:    500,
			DestroyMS: 100,
			FallMS:    100,
			CreateMS:  100,
		},
		Difficulty: DifficultyNormal,
	}
}
