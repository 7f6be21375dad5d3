package match3

import (
	"fmt"
	"strings"
	"time"
)

// Event is an outcome emitted by the board or controller for the
// presentation layer. The set of implementations is closed.
type Event interface {
	fmt.Stringer
	event()
}

// Emission wraps an event with its stream position and pacing delay.
// Delay is how long a paced presentation should wait after showing the
// event before showing the next one; the simulation never waits.
type Emission struct {
	Seq   uint64
	Event Event
	Delay time.Duration
}

// Selected is emitted when a cell becomes the current selection.
type Selected struct {
	Pos Coord
}

func (Selected) event() {}

func (e Selected) String() string { return "selected " + e.Pos.String() }

// Deselected is emitted when the current selection is cleared by re-picking it.
type Deselected struct {
	Pos Coord
}

func (Deselected) event() {}

func (e Deselected) String() string { return "deselected " + e.Pos.String() }

// SwapStarted is emitted when the occupants of A and B are exchanged.
type SwapStarted struct {
	A Coord
	B Coord
}

func (SwapStarted) event() {}

func (e SwapStarted) String() string { return fmt.Sprintf("swap %s <-> %s", e.A, e.B) }

// MatchResult carries the full match set of one detection pass.
// An empty Matches slice means no match.
type MatchResult struct {
	Matches []Coord
}

func (MatchResult) event() {}

// Matched returns true if the detection pass found at least one run.
func (e MatchResult) Matched() bool { return len(e.Matches) > 0 }

func (e MatchResult) String() string {
	if !e.Matched() {
		return "no match"
	}
	parts := make([]string, len(e.Matches))
	for i, c := range e.Matches {
		parts[i] = c.String()
	}
	return fmt.Sprintf("match x%d %s", len(e.Matches), strings.Join(parts, " "))
}

// TokenDestroyed is emitted when a matched token is cleared from Pos.
type TokenDestroyed struct {
	Pos   Coord
	Token Token
}

func (TokenDestroyed) event() {}

func (e TokenDestroyed) String() string { return fmt.Sprintf("destroy %s at %s", e.Token.Kind, e.Pos) }

// TokenFell is emitted when collapse moves a token down its column.
type TokenFell struct {
	From  Coord
	To    Coord
	Token Token
}

func (TokenFell) event() {}

func (e TokenFell) String() string {
	return fmt.Sprintf("fall %s %s -> %s", e.Token.Kind, e.From, e.To)
}

// TokenCreated is emitted when a new token is placed in an empty cell.
type TokenCreated struct {
	Pos   Coord
	Token Token
}

func (TokenCreated) event() {}

func (e TokenCreated) String() string { return fmt.Sprintf("create %s at %s", e.Token.Kind, e.Pos) }

// Settled is emitted by the controller once a turn has fully resolved and
// the selection has been cleared.
type Settled struct {
	Turn    int
	Matched int
}

func (Settled) event() {}

func (e Settled) String() string { return fmt.Sprintf("settled turn %d (%d cleared)", e.Turn, e.Matched) }

// Pacing assigns presentation delays to events.
type Pacing struct {
	Select  time.Duration
	Swap    time.Duration
	Destroy time.Duration
	Fall    time.Duration
	Create  time.Duration
}

// DefaultPacing returns the reference step timings: a half-second swap and a
// tenth of a second per destroyed, fallen or created token.
func DefaultPacing() Pacing {
	return Pacing{
		Swap:    500 * time.Millisecond,
		Destroy: 100 * time.Millisecond,
		Fall:    100 * time.Millisecond,
		Create:  100 * time.Millisecond,
	}
}

// DelayFor returns the delay attached to e.
func (p Pacing) DelayFor(e Event) time.Duration {
	switch e.(type) {
	case Selected, Deselected:
		return p.Select
	case SwapStarted:
		return p.Swap
	case TokenDestroyed:
		return p.Destroy
	case TokenFell:
		return p.Fall
	case TokenCreated:
		return p.Create
	default:
		return 0
	}
}
