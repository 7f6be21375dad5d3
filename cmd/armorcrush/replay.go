package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/L0weN/ArmorCrush/internal/config"
	"github.com/L0weN/ArmorCrush/internal/match3"
)

var (
	flagPicks  []string
	flagBoard  string
	flagLayout string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run scripted picks headless and print the event log",
	Long: `Builds a board, applies each --pick as if the player had clicked that
cell, and prints every event with its presentation delay followed by the
final board. Rows are printed top first; '.' is an empty cell.

A layout file holds one line per row, top row first, using A for the
first armor kind, B for the second and so on, and '.' for empty cells.

Examples:
  armorcrush replay --seed 7 --pick 0,0 --pick 1,0
  armorcrush replay --layout ./board.txt --pick 2,0 --pick 2,1
  armorcrush replay --board small --seed 3 --pick 5,5 --pick 5,4`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringArrayVar(&flagPicks, "pick", nil, "Cell to pick as x,y (repeatable)")
	replayCmd.Flags().StringVar(&flagBoard, "board", "", "Board preset: small, classic, large")
	replayCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a fixed starting layout")
}

// replayOptions describes one headless run.
type replayOptions struct {
	Seed   int64
	Board  config.BoardPreset
	Layout [][]match3.Kind // top row first; nil populates randomly
	Picks  []match3.Coord
}

func runReplay(cmd *cobra.Command, _ []string) error {
	opts := replayOptions{
		Seed:  flagSeed,
		Board: config.BoardPreset(flagBoard),
	}

	for _, p := range flagPicks {
		c, err := parseCoord(p)
		if err != nil {
			return err
		}
		opts.Picks = append(opts.Picks, c)
	}

	if flagLayout != "" {
		data, err := os.ReadFile(flagLayout)
		if err != nil {
			return fmt.Errorf("reading layout: %w", err)
		}
		opts.Layout, err = parseLayout(string(data))
		if err != nil {
			return err
		}
	}

	return replay(cmd.Context(), cmd.OutOrStdout(), appCfg, opts, logger)
}

// replay runs opts against a fresh board and writes the event log to w.
func replay(ctx context.Context, w io.Writer, cfg config.ArmorCrushConfig, opts replayOptions, logger *log.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Board != "" {
		if err := config.ApplyPreset(&cfg, opts.Board); err != nil {
			return err
		}
	}
	if opts.Layout != nil {
		cfg.Board.Height = len(opts.Layout)
		cfg.Board.Width = len(opts.Layout[0])
	}

	bc, err := cfg.BoardConfig()
	if err != nil {
		return err
	}
	board, err := match3.NewBoard(bc,
		match3.WithRandom(match3.NewSource(opts.Seed)),
		match3.WithLogger(logger),
		match3.WithPacing(cfg.MatchPacing()),
	)
	if err != nil {
		return err
	}

	if opts.Layout != nil {
		if err := board.LoadTopDown(opts.Layout); err != nil {
			return err
		}
	} else {
		board.Populate()
	}

	fmt.Fprintf(w, "board %dx%d, %d kinds, seed %d\n", board.Width(), board.Height(), len(board.Tokens()), opts.Seed)
	fmt.Fprintln(w, board.Snapshot())

	ctrl := match3.NewController(board, logger)
	queue := match3.NewQueue()
	cancel := board.Subscribe(queue)
	defer cancel()

	for _, p := range opts.Picks {
		out := ctrl.PickCell(ctx, p)
		fmt.Fprintf(w, "pick %s: %s\n", p, out.Kind)
		for _, em := range queue.Drain() {
			fmt.Fprintf(w, "  #%-3d %-32s +%s\n", em.Seq, em.Event, em.Delay)
		}
	}

	fmt.Fprintf(w, "\nafter %d turns:\n", board.Turns())
	fmt.Fprintln(w, board.Snapshot())
	return nil
}

// parseCoord parses "x,y".
func parseCoord(s string) (match3.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return match3.Coord{}, fmt.Errorf("invalid pick %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return match3.Coord{}, fmt.Errorf("invalid pick %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return match3.Coord{}, fmt.Errorf("invalid pick %q: %w", s, err)
	}
	return match3.C(x, y), nil
}

// parseLayout reads rows of kind letters, top row first.
func parseLayout(text string) ([][]match3.Kind, error) {
	var rows [][]match3.Kind
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]match3.Kind, 0, len(line))
		for _, r := range line {
			switch {
			case r == '.':
				row = append(row, match3.NoKind)
			case r >= 'A' && r <= 'Z':
				row = append(row, match3.Kind(r-'A'))
			default:
				return nil, fmt.Errorf("invalid layout cell %q", r)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("layout row %d has %d cells, expected %d", len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty layout")
	}
	return rows, nil
}
