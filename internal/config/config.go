// Package config loads the YAML board configuration and applies the
// size and difficulty presets selected on the command line.
package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/L0weN/ArmorCrush/internal/core"
	"github.com/L0weN/ArmorCrush/internal/match3"
)

// ArmorCrushConfig is the complete game configuration.
type ArmorCrushConfig struct {
	Board      BoardSettings    `yaml:"board"`
	Tokens     []TokenSettings  `yaml:"tokens"`
	Pacing     PacingSettings   `yaml:"pacing"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardSettings defines grid geometry.
type BoardSettings struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	CellSize float64       `yaml:"cell_size"`
	Origin   PointSettings `yaml:"origin"`
}

// PointSettings is a world-space point.
type PointSettings struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TokenSettings describes one token type.
type TokenSettings struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"` // first rune is used; defaults to the name's initial
	Color string `yaml:"color"` // core color name, e.g. "bright-blue"
}

// PacingSettings holds presentation delays in milliseconds.
type PacingSettings struct {
	SelectMS  int `yaml:"select_ms"`
	SwapMS    int `yaml:"swap_ms"`
	DestroyMS int `yaml:"destroy_ms"`
	FallMS    int `yaml:"fall_ms"`
	CreateMS  int `yaml:"create_ms"`
}

// TokenSet converts the token list, truncated to the difficulty's kind count.
func (c ArmorCrushConfig) TokenSet() (match3.TokenSet, error) {
	tokens := c.Tokens
	if n := c.Difficulty.Kinds(); n > 0 && n < len(tokens) {
		tokens = tokens[:n]
	}

	set := make(match3.TokenSet, 0, len(tokens))
	for i, t := range tokens {
		color, err := core.ParseColor(t.Color)
		if err != nil {
			return nil, fmt.Errorf("config: token %d (%s): %w", i, t.Name, err)
		}
		glyph := t.Glyph
		if glyph == "" {
			glyph = strings.ToUpper(t.Name)
		}
		r, _ := utf8.DecodeRuneInString(glyph)
		if r == utf8.RuneError {
			return nil, fmt.Errorf("config: token %d (%s) has no glyph", i, t.Name)
		}
		set = append(set, match3.TokenType{Name: t.Name, Glyph: r, Color: color})
	}
	return set, nil
}

// BoardConfig converts to the core board configuration and validates it.
func (c ArmorCrushConfig) BoardConfig() (match3.BoardConfig, error) {
	tokens, err := c.TokenSet()
	if err != nil {
		return match3.BoardConfig{}, err
	}
	bc := match3.BoardConfig{
		Width:    c.Board.Width,
		Height:   c.Board.Height,
		CellSize: c.Board.CellSize,
		Origin:   match3.V(c.Board.Origin.X, c.Board.Origin.Y),
		Tokens:   tokens,
	}
	if err := match3.ValidateConfig(bc); err != nil {
		return match3.BoardConfig{}, fmt.Errorf("config: %w", err)
	}
	return bc, nil
}

// Validate reports whether the configuration can build a board.
func (c ArmorCrushConfig) Validate() error {
	if _, err := c.BoardConfig(); err != nil {
		return err
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return err
	}
	return nil
}

// MatchPacing converts the millisecond settings.
func (c ArmorCrushConfig) MatchPacing() match3.Pacing {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return match3.Pacing{
		Select:  ms(c.Pacing.SelectMS),
		Swap:    ms(c.Pacing.SwapMS),
		Destroy: ms(c.Pacing.DestroyMS),
		Fall:    ms(c.Pacing.FallMS),
		Create:  ms(c.Pacing.CreateMS),
	}
}
