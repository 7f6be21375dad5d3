package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/L0weN/ArmorCrush/internal/platform/tui"
	"github.com/L0weN/ArmorCrush/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given variant, or the configured board by default.

Controls:
  Arrows/WASD/hjkl - Move the cursor
  Space/Enter      - Pick the piece under the cursor
  Left click       - Pick the piece under the mouse
  X                - Cancel the selection
  R                - New board
  P                - Pause
  F2               - Coordinate overlay
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 4 kinds of armor
  normal - 5 kinds of armor
  hard   - 6 kinds of armor
  all    - every configured kind

Examples:
  armorcrush play
  armorcrush play armorcrush_large
  armorcrush play --difficulty easy --seed 42
  armorcrush play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "armorcrush"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'armorcrush list' to see variants)", err)
	}

	logger.Info("starting", "game", gameID)
	if _, err := tui.Run(game, runtimeConfig(), logger, false); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
