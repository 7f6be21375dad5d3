// Package armorcrush adapts the match3 board to the terminal platform:
// it maps cursor keys and mouse clicks onto controller picks and plays
// the board's events back at their configured pace.
package armorcrush

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/L0weN/ArmorCrush/internal/config"
	"github.com/L0weN/ArmorCrush/internal/core"
	"github.com/L0weN/ArmorCrush/internal/match3"
	"github.com/L0weN/ArmorCrush/internal/registry"
)

// Variant is a registered board flavor.
type Variant struct {
	ID          string
	Title       string
	Description string
	Preset      config.BoardPreset // empty keeps the configured size
}

// Variants lists the registered variants.
var Variants = []Variant{
	{ID: "armorcrush", Title: "ArmorCrush", Description: "configured board (8x8 by default)"},
	{ID: "armorcrush_small", Title: "ArmorCrush Small", Description: "6x6 board", Preset: config.BoardSmall},
	{ID: "armorcrush_large", Title: "ArmorCrush Large", Description: "10x10 board", Preset: config.BoardLarge},
}

func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, v.Description, func() registry.Game {
			return New(v)
		})
	}
}

// Settings are shared by every game created through the registry.
type Settings struct {
	Config config.ArmorCrushConfig
	Logger *log.Logger
}

var (
	settingsMu sync.RWMutex
	settings   = Settings{
		Config: config.DefaultArmorCrushConfig(),
		Logger: log.New(io.Discard),
	}
)

// Configure replaces the shared settings. Games pick them up on Reset.
func Configure(s Settings) {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	settingsMu.Lock()
	settings = s
	settingsMu.Unlock()
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Game is one player's board session.
type Game struct {
	variant  Variant
	settings *Settings // overrides the shared settings when set
	logger   *log.Logger
	ctx      context.Context

	board  *match3.Board
	ctrl   *match3.Controller
	queue  *match3.Queue
	cancel func()
	tokens match3.TokenSet

	display match3.Snapshot
	player  playback
	mark    match3.Coord
	marked  bool
	cursor  match3.Coord
	status  string
	turns   int

	tick     uint64
	tickRate int
	seed     int64
	paused   bool
	debug    bool

	screenW  int
	screenH  int
	cells    core.Rect
	tooSmall bool
}

// New creates a game for v using the shared settings.
func New(v Variant) *Game {
	return &Game{variant: v, ctx: context.Background()}
}

// NewWithSettings creates a game that ignores the shared settings.
func NewWithSettings(v Variant, s Settings) *Game {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	g := New(v)
	g.settings = &s
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.variant.Title }

// Reset builds and populates a new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s := currentSettings()
	if g.settings != nil {
		s = *g.settings
	}
	g.logger = s.Logger.With("game", g.variant.ID)

	boardCfg, pacing, err := g.resolveConfig(s.Config)
	if err != nil {
		g.logger.Error("invalid configuration, using defaults", "err", err)
		boardCfg, pacing, _ = g.resolveConfig(config.DefaultArmorCrushConfig())
	}

	if g.cancel != nil {
		g.cancel()
	}

	g.seed = cfg.Seed
	g.board, err = match3.NewBoard(boardCfg,
		match3.WithRandom(match3.NewSource(cfg.Seed)),
		match3.WithLogger(g.logger),
		match3.WithPacing(pacing),
	)
	if err != nil {
		// resolveConfig validated boardCfg.
		panic(err)
	}
	g.board.Populate()

	g.tokens = boardCfg.Tokens
	g.ctrl = match3.NewController(g.board, g.logger)
	g.queue = match3.NewQueue()
	g.cancel = g.board.Subscribe(g.queue)

	g.display = g.board.Snapshot()
	g.player = playback{}
	g.mark, g.marked = match3.Coord{}, false
	g.cursor = match3.C(g.board.Width()/2, g.board.Height()/2)
	g.status = "Pick a piece"
	g.turns = 0
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.paused = false
	g.debug = cfg.Debug
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	g.layout()

	g.logger.Debug("board ready", "width", g.board.Width(), "height", g.board.Height(), "kinds", len(g.tokens), "seed", cfg.Seed)
}

func (g *Game) resolveConfig(c config.ArmorCrushConfig) (match3.BoardConfig, match3.Pacing, error) {
	if g.variant.Preset != "" {
		if err := config.ApplyPreset(&c, g.variant.Preset); err != nil {
			return match3.BoardConfig{}, match3.Pacing{}, err
		}
	}
	bc, err := c.BoardConfig()
	if err != nil {
		return match3.BoardConfig{}, match3.Pacing{}, err
	}
	return bc, c.MatchPacing(), nil
}

// Close unsubscribes from the board.
func (g *Game) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	// One turn at a time: input is only interpreted once the previous
	// turn has finished playing.
	if !g.player.busy() {
		g.handlePicks(in)
	}
	g.player.step(g.tickRate, g.apply)

	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	g.Reset(core.RuntimeConfig{
		ScreenW:  g.screenW,
		ScreenH:  g.screenH,
		TickRate: g.tickRate,
		Seed:     g.seed + int64(g.tick),
		Debug:    g.debug,
	})
	g.status = "New board"
}

func (g *Game) moveCursor(in core.InputFrame) {
	c := g.cursor
	if in.Has(core.ActionLeft) {
		c.X--
	}
	if in.Has(core.ActionRight) {
		c.X++
	}
	if in.Has(core.ActionUp) {
		c.Y++
	}
	if in.Has(core.ActionDown) {
		c.Y--
	}
	c.X = core.Clamp(c.X, 0, g.board.Width()-1)
	c.Y = core.Clamp(c.Y, 0, g.board.Height()-1)
	g.cursor = c
}

// handlePicks interprets at most one pick per tick. Extra clicks in the
// same frame are dropped.
func (g *Game) handlePicks(in core.InputFrame) {
	var out match3.Outcome
	switch {
	case in.Has(core.ActionCancel):
		out = g.ctrl.Cancel(g.ctx)
	case in.Has(core.ActionSelect):
		out = g.ctrl.PickCell(g.ctx, g.cursor)
	case len(in.Clicks) > 0:
		click := in.Clicks[0]
		out = g.ctrl.Pick(g.ctx, g.screenToWorld(click.X, click.Y))
		if out.Kind != match3.OutcomeIgnored {
			g.cursor = out.Pos
		}
	default:
		return
	}

	g.record(out)
	g.player.push(g.queue.Drain())
}

func (g *Game) record(out match3.Outcome) {
	if out.Kind == match3.OutcomeResolved {
		g.logger.Debug("turn", "a", out.Turn.A, "b", out.Turn.B, "matched", out.Turn.Matched())
	}
}

// apply shows one emission on the display board and HUD.
func (g *Game) apply(em match3.Emission) {
	g.display.Apply(em.Event)

	switch e := em.Event.(type) {
	case match3.Selected:
		g.mark, g.marked = e.Pos, true
		g.status = fmt.Sprintf("Selected %s", g.kindName(e.Pos))
	case match3.Deselected:
		g.marked = false
		g.status = "Deselected"
	case match3.SwapStarted:
		g.status = "Swap"
	case match3.MatchResult:
		if e.Matched() {
			g.status = fmt.Sprintf("Match x%d", len(e.Matches))
		} else {
			g.status = "No match"
		}
	case match3.Settled:
		g.marked = false
		g.turns = e.Turn
	}
}

func (g *Game) kindName(c match3.Coord) string {
	if t, ok := g.tokens.Type(g.display.Kind(c)); ok {
		return t.Name
	}
	return c.String()
}

// State returns the current status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Turns:  g.turns,
		Busy:   g.player.busy(),
		Paused: g.paused,
		Status: g.status,
	}
}
