package match3

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"
)

const (
	stateIdle      = "idle"
	stateSelected  = "selected"
	stateResolving = "resolving"

	eventSelect   = "select"
	eventDeselect = "deselect"
	eventSwap     = "swap"
	eventSettle   = "settle"
)

// OutcomeKind classifies what a pick did.
type OutcomeKind int

const (
	// OutcomeIgnored means the pick hit an empty or off-board cell, or
	// arrived while a turn was resolving.
	OutcomeIgnored OutcomeKind = iota
	// OutcomeSelected means the cell became the selection.
	OutcomeSelected
	// OutcomeDeselected means the selected cell was picked again.
	OutcomeDeselected
	// OutcomeResolved means a turn ran to completion.
	OutcomeResolved
)

// String returns the outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeResolved:
		return "resolved"
	default:
		return "ignored"
	}
}

// Outcome reports the effect of one pick. Turn is set only for
// OutcomeResolved.
type Outcome struct {
	Kind OutcomeKind
	Pos  Coord
	Turn TurnResult
}

// Controller tracks at most one selected cell and turns a second valid
// pick into a resolved turn on its board.
type Controller struct {
	board    *Board
	logger   *log.Logger
	machine  *fsm.FSM
	selected Coord
}

// NewController creates a controller with no selection.
// A nil logger reuses the board's logger.
func NewController(board *Board, logger *log.Logger) *Controller {
	if logger == nil {
		logger = board.logger
	}
	c := &Controller{board: board, logger: logger}

	c.machine = fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: eventSelect, Src: []string{stateIdle}, Dst: stateSelected},
			{Name: eventDeselect, Src: []string{stateSelected}, Dst: stateIdle},
			{Name: eventSwap, Src: []string{stateSelected}, Dst: stateResolving},
			{Name: eventSettle, Src: []string{stateResolving}, Dst: stateIdle},
		},
		fsm.Callbacks{
			"after_" + eventSelect: func(_ context.Context, e *fsm.Event) {
				c.board.emit(Selected{Pos: c.selected})
			},
			"after_" + eventDeselect: func(_ context.Context, e *fsm.Event) {
				c.board.emit(Deselected{Pos: e.Args[0].(Coord)})
			},
			"after_" + eventSettle: func(_ context.Context, e *fsm.Event) {
				turn := e.Args[0].(TurnResult)
				c.board.emit(Settled{Turn: c.board.Turns(), Matched: turn.Matched()})
			},
		},
	)
	return c
}

// Board returns the controlled board.
func (c *Controller) Board() *Board { return c.board }

// State returns the current state name: idle, selected or resolving.
func (c *Controller) State() string {
	return c.machine.Current()
}

// Selection returns the selected cell, if any.
func (c *Controller) Selection() (Coord, bool) {
	if c.machine.Current() != stateSelected {
		return Coord{}, false
	}
	return c.selected, true
}

// Pick maps a world point onto the board and dispatches it as PickCell.
func (c *Controller) Pick(ctx context.Context, p Vec2) Outcome {
	return c.PickCell(ctx, c.board.WorldToGrid(p))
}

// PickCell interprets a pick against the selection state:
//   - off-board or empty cells are ignored,
//   - with no selection the cell becomes selected,
//   - picking the selected cell again clears the selection,
//   - any other cell swaps with the selection and resolves a turn.
//
// After a turn the selection is always cleared.
func (c *Controller) PickCell(ctx context.Context, p Coord) Outcome {
	ignored := Outcome{Kind: OutcomeIgnored, Pos: p}

	if c.machine.Is(stateResolving) || c.board.Resolving() {
		return ignored
	}
	if !c.board.ValidatePosition(p) || c.board.IsEmpty(p) {
		return ignored
	}

	switch c.machine.Current() {
	case stateIdle:
		c.selected = p
		if err := c.machine.Event(ctx, eventSelect); err != nil {
			c.logger.Error("select failed", "pos", p, "err", err)
			return ignored
		}
		return Outcome{Kind: OutcomeSelected, Pos: p}

	case stateSelected:
		if p == c.selected {
			if err := c.machine.Event(ctx, eventDeselect, p); err != nil {
				c.logger.Error("deselect failed", "pos", p, "err", err)
				return ignored
			}
			return Outcome{Kind: OutcomeDeselected, Pos: p}
		}
		return c.resolve(ctx, c.selected, p)
	}
	return ignored
}

// Cancel clears the selection, if any, as if the selected cell had been
// picked again.
func (c *Controller) Cancel(ctx context.Context) Outcome {
	sel, ok := c.Selection()
	if !ok {
		return Outcome{Kind: OutcomeIgnored}
	}
	return c.PickCell(ctx, sel)
}

func (c *Controller) resolve(ctx context.Context, a, b Coord) Outcome {
	if err := c.machine.Event(ctx, eventSwap); err != nil {
		c.logger.Error("swap failed", "a", a, "b", b, "err", err)
		return Outcome{Kind: OutcomeIgnored, Pos: b}
	}

	turn, err := c.board.ResolveTurn(a, b)
	c.selected = Coord{}
	if err != nil {
		// The board refused the turn before mutating anything; drop the
		// selection without a Settled event.
		c.logger.Error("turn rejected", "a", a, "b", b, "err", err)
		c.machine.SetState(stateIdle)
		return Outcome{Kind: OutcomeIgnored, Pos: b}
	}

	if err := c.machine.Event(ctx, eventSettle, turn); err != nil {
		c.logger.Error("settle failed", "err", err)
		c.machine.SetState(stateIdle)
	}
	return Outcome{Kind: OutcomeResolved, Pos: b, Turn: turn}
}
