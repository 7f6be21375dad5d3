package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L0weN/ArmorCrush/internal/core"
	"github.com/L0weN/ArmorCrush/internal/match3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// fallback search only finds what the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8, cfg.Board.Width)
	assert.Equal(t, 8, cfg.Board.Height)
	assert.Len(t, cfg.Tokens, 6)
	assert.Equal(t, DifficultyNormal, cfg.Difficulty)
	assert.Equal(t, 500*time.Millisecond, cfg.MatchPacing().Swap)
	assert.Equal(t, 100*time.Millisecond, cfg.MatchPacing().Fall)
}

func TestEmbeddedMatchesHardcodedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultArmorCrushConfig(), cfg)
}

func TestLoadCustomPathIsPartialOverlay(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  width: 5\n  height: 3\n  cell_size: 2\ndifficulty: easy\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Board.Width)
	assert.Equal(t, 3, cfg.Board.Height)
	assert.Equal(t, 2.0, cfg.Board.CellSize)
	assert.Equal(t, DifficultyEasy, cfg.Difficulty)
	assert.Len(t, cfg.Tokens, 6, "tokens should come from the default")
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "board: [not, a, map")
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", configFile), "board:\n  width: 7\n")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Board.Width)

	writeFile(t, filepath.Join(home, ".armorcrush", "configs", configFile), "board:\n  width: 9\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Board.Width, "user config wins over ./configs")
}

func TestLoadSkipsBrokenFallback(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", configFile), "board: [unclosed")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultArmorCrushConfig(), cfg)
}

func TestBoardConfigConversion(t *testing.T) {
	cfg := DefaultArmorCrushConfig()
	cfg.Board.Origin = PointSettings{X: -4, Y: 2}
	ApplyDifficulty(&cfg, DifficultyEasy)

	bc, err := cfg.BoardConfig()
	require.NoError(t, err)

	assert.Equal(t, 8, bc.Width)
	assert.Equal(t, match3.V(-4, 2), bc.Origin)
	require.Len(t, bc.Tokens, 4)
	assert.Equal(t, match3.TokenType{Name: "helmet", Glyph: '▲', Color: core.ColorRed}, bc.Tokens[0])
}

func TestTokenGlyphDefaultsToInitial(t *testing.T) {
	cfg := DefaultArmorCrushConfig()
	cfg.Tokens = []TokenSettings{{Name: "sword", Color: "white"}}

	set, err := cfg.TokenSet()
	require.NoError(t, err)
	assert.Equal(t, 'S', set[0].Glyph)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArmorCrushConfig)
		target error
	}{
		{"no tokens", func(c *ArmorCrushConfig) { c.Tokens = nil }, match3.ErrMisconfiguredTokenSet},
		{"zero width", func(c *ArmorCrushConfig) { c.Board.Width = 0 }, match3.ErrInvalidDimensions},
		{"zero cell size", func(c *ArmorCrushConfig) { c.Board.CellSize = 0 }, match3.ErrInvalidDimensions},
		{"unknown color", func(c *ArmorCrushConfig) { c.Tokens[0].Color = "plaid" }, nil},
		{"unnamed token", func(c *ArmorCrushConfig) { c.Tokens[0] = TokenSettings{} }, nil},
		{"unknown difficulty", func(c *ArmorCrushConfig) { c.Difficulty = "nightmare" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultArmorCrushConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	cfg := DefaultArmorCrushConfig()

	require.NoError(t, ApplyPreset(&cfg, BoardSmall))
	assert.Equal(t, 6, cfg.Board.Width)
	assert.Equal(t, 6, cfg.Board.Height)

	require.NoError(t, ApplyPreset(&cfg, BoardLarge))
	assert.Equal(t, 10, cfg.Board.Width)

	assert.Error(t, ApplyPreset(&cfg, "huge"))
	assert.Equal(t, 10, cfg.Board.Width, "failed preset leaves cfg unchanged")
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyAll, false},
		{"Easy", DifficultyEasy, false},
		{" hard ", DifficultyHard, false},
		{"all", DifficultyAll, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	assert.Equal(t, 4, DifficultyEasy.Kinds())
	assert.Equal(t, 6, DifficultyHard.Kinds())
	assert.Zero(t, DifficultyAll.Kinds())
}
