package armorcrush

import "github.com/L0weN/ArmorCrush/internal/match3"

// Phase names what the game is doing for snapshots and the HUD.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseSelected Phase = "selected"
	PhaseAnimate  Phase = "animating"
	PhasePaused   Phase = "paused"
	PhaseTooSmall Phase = "paused_small_window"
)

// Snapshot captures the presentation state for determinism tests.
// Board is what is on screen, which lags the simulation during playback.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Turns     int
	Cursor    match3.Coord
	Selection match3.Coord
	Selected  bool
	Board     match3.Snapshot
	Pending   int
	Status    string
	Phase     Phase
}

// Snapshot returns the current presentation snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Variant:   g.variant.ID,
		Turns:     g.turns,
		Cursor:    g.cursor,
		Selection: g.mark,
		Selected:  g.marked,
		Board:     g.display.Clone(),
		Pending:   len(g.player.pending),
		Status:    g.status,
		Phase:     g.phase(),
	}
}

func (g *Game) phase() Phase {
	switch {
	case g.tooSmall:
		return PhaseTooSmall
	case g.paused:
		return PhasePaused
	case g.player.busy():
		return PhaseAnimate
	case g.marked:
		return PhaseSelected
	default:
		return PhaseIdle
	}
}
