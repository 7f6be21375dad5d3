// armorcrush is a terminal match-3 game played with the keyboard or mouse.
//
// Usage:
//
//	armorcrush list              - List board variants
//	armorcrush play [variant]    - Play a board
//	armorcrush menu              - Pick a variant interactively
//	armorcrush replay            - Run scripted picks headless and print events
//	armorcrush serve             - Start SSH server for remote play
//	armorcrush config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or all
//	--log-level <level>   - debug, info, warn or error
//	--debug               - Start with the coordinate overlay on
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/L0weN/ArmorCrush/internal/config"
	"github.com/L0weN/ArmorCrush/internal/core"
	"github.com/L0weN/ArmorCrush/internal/games/armorcrush"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagDebug      bool

	logger *log.Logger
	appCfg config.ArmorCrushConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "armorcrush",
	Short: "ArmorCrush - match armor pieces in your terminal",
	Long: `ArmorCrush is a match-3 game for the terminal. Swap two pieces and
every line of three or more identical pieces is destroyed; the pieces
above fall and new ones drop in from the top.

Examples:
  armorcrush play
  armorcrush play armorcrush_small --difficulty easy
  armorcrush menu
  armorcrush replay --seed 7 --pick 0,0 --pick 1,0
  armorcrush serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, all")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show the coordinate overlay")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and loads the configuration shared by every game.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "armorcrush",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyDifficulty(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appCfg = cfg
	armorcrush.Configure(armorcrush.Settings{Config: cfg, Logger: logger})
	logger.Debug("configuration loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"difficulty", cfg.Difficulty,
	)
	return nil
}

// runtimeConfig sizes the game to the local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Debug = flagDebug
	return cfg
}
