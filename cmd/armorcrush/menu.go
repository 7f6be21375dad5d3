package main

import (
	"github.com/spf13/cobra"

	"github.com/L0weN/ArmorCrush/internal/platform/tui"
	"github.com/L0weN/ArmorCrush/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a board.
Esc during a game returns to the menu.

Examples:
  armorcrush menu
  armorcrush menu --fps 60`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		back, err := tui.Run(game, cfg, logger, true)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
