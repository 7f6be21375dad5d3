package armorcrush

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/L0weN/ArmorCrush/internal/config"
	"github.com/L0weN/ArmorCrush/internal/core"
	"github.com/L0weN/ArmorCrush/internal/match3"
	"github.com/L0weN/ArmorCrush/internal/registry"
)

func newTestGame(t *testing.T, v Variant, seed int64) *Game {
	t.Helper()
	g := NewWithSettings(v, Settings{Config: config.DefaultArmorCrushConfig()})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	t.Cleanup(g.Close)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func click(x, y int) core.InputFrame {
	f := core.NewInputFrame()
	f.AddClick(x, y)
	return f
}

// settle steps until playback finishes.
func settle(t *testing.T, g *Game) int {
	t.Helper()
	for i := 0; i < 5000; i++ {
		if !g.State().Busy {
			return i
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("playback never finished")
	return 0
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", v.ID, err)
		}
		if g.ID() != v.ID || g.Title() != v.Title {
			t.Errorf("Create(%q) = %s/%s", v.ID, g.ID(), g.Title())
		}
	}
}

func TestResetBuildsFullBoard(t *testing.T) {
	tests := []struct {
		variant Variant
		size    int
	}{
		{Variants[0], 8},
		{Variants[1], 6},
		{Variants[2], 10},
	}

	for _, tc := range tests {
		t.Run(tc.variant.ID, func(t *testing.T) {
			g := newTestGame(t, tc.variant, 1)
			snap := g.Snapshot()

			if snap.Board.Width != tc.size || snap.Board.Height != tc.size {
				t.Errorf("board = %dx%d, expected %dx%d", snap.Board.Width, snap.Board.Height, tc.size, tc.size)
			}
			if !snap.Board.Full() {
				t.Error("new board should be full")
			}
			if snap.Phase != PhaseIdle {
				t.Errorf("Phase = %s, expected idle", snap.Phase)
			}
			if len(g.tokens) != config.DifficultyNormal.Kinds() {
				t.Errorf("token kinds = %d, expected %d", len(g.tokens), config.DifficultyNormal.Kinds())
			}
		})
	}
}

func TestSelectAndDeselectWithKeys(t *testing.T) {
	g := newTestGame(t, Variants[0], 7)
	cursor := g.Snapshot().Cursor

	g.Step(frame(core.ActionSelect))
	snap := g.Snapshot()
	if !snap.Selected || snap.Selection != cursor {
		t.Fatalf("after select: Selected=%v Selection=%v, expected %v", snap.Selected, snap.Selection, cursor)
	}
	if snap.Phase != PhaseSelected {
		t.Errorf("Phase = %s, expected selected", snap.Phase)
	}
	if !strings.HasPrefix(snap.Status, "Selected") {
		t.Errorf("Status = %q", snap.Status)
	}

	g.Step(frame(core.ActionSelect))
	if g.Snapshot().Selected {
		t.Error("picking the selection again should deselect")
	}
	if g.Snapshot().Status != "Deselected" {
		t.Errorf("Status = %q, expected Deselected", g.Snapshot().Status)
	}
}

func TestCancelClearsSelection(t *testing.T) {
	g := newTestGame(t, Variants[0], 7)

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionCancel))
	if g.Snapshot().Selected {
		t.Error("cancel should clear the selection")
	}
}

func TestTurnPlaysBackOverTicks(t *testing.T) {
	g := newTestGame(t, Variants[0], 3)

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionSelect))

	if g.board.Turns() != 1 {
		t.Fatalf("board turns = %d, expected 1", g.board.Turns())
	}
	if !g.State().Busy {
		t.Fatal("turn should be playing back")
	}
	if g.Snapshot().Phase != PhaseAnimate {
		t.Errorf("Phase = %s, expected animating", g.Snapshot().Phase)
	}

	// Picks during playback are ignored.
	g.Step(frame(core.ActionSelect))
	if g.board.Turns() != 1 || g.ctrl.State() != "idle" {
		t.Errorf("pick during playback reached the controller: turns=%d state=%s", g.board.Turns(), g.ctrl.State())
	}

	// The swap alone holds the display for 500ms.
	ticks := settle(t, g)
	if ticks < ticksFor(500*time.Millisecond, 30)-2 {
		t.Errorf("playback took %d ticks, expected at least the swap delay", ticks)
	}

	snap := g.Snapshot()
	if !reflect.DeepEqual(snap.Board, g.board.Snapshot()) {
		t.Errorf("display after playback:\n%s\nexpected:\n%s", snap.Board, g.board.Snapshot())
	}
	if snap.Turns != 1 || snap.Selected {
		t.Errorf("after turn: Turns=%d Selected=%v", snap.Turns, snap.Selected)
	}
}

func TestPauseHoldsPlayback(t *testing.T) {
	g := newTestGame(t, Variants[0], 3)
	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionSelect))

	g.Step(frame(core.ActionPause))
	pending := g.Snapshot().Pending
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Pending != pending || g.Snapshot().Phase != PhasePaused {
		t.Errorf("paused playback advanced: pending %d -> %d", pending, g.Snapshot().Pending)
	}

	g.Step(frame(core.ActionPause))
	settle(t, g)
}

func TestMouseClickPicksCell(t *testing.T) {
	g := newTestGame(t, Variants[0], 5)
	target := match3.C(2, 6)
	sx, sy := g.cellScreen(target)

	g.Step(click(sx+2, sy))
	snap := g.Snapshot()
	if !snap.Selected || snap.Selection != target {
		t.Fatalf("click selected %v (%v), expected %v", snap.Selection, snap.Selected, target)
	}
	if snap.Cursor != target {
		t.Errorf("cursor should follow the click, got %v", snap.Cursor)
	}

	// Clicking outside the board is ignored.
	g.Step(click(0, 0))
	if snap := g.Snapshot(); !snap.Selected || snap.Selection != target {
		t.Error("off-board click should not change the selection")
	}
}

func TestScreenToWorldHitsEveryCell(t *testing.T) {
	g := newTestGame(t, Variants[0], 1)

	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			c := match3.C(x, y)
			sx, sy := g.cellScreen(c)
			for dx := 0; dx < cellCols; dx++ {
				if got := g.board.WorldToGrid(g.screenToWorld(sx+dx, sy)); got != c {
					t.Errorf("screen (%d,%d) maps to %v, expected %v", sx+dx, sy, got, c)
				}
			}
		}
	}

	left := g.board.WorldToGrid(g.screenToWorld(g.cells.X-1, g.cells.Y))
	if g.board.ValidatePosition(left) {
		t.Errorf("border column maps onto the board at %v", left)
	}
}

func TestCursorClamps(t *testing.T) {
	g := newTestGame(t, Variants[1], 1)

	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionLeft, core.ActionDown))
	}
	if c := g.Snapshot().Cursor; c != match3.C(0, 0) {
		t.Errorf("cursor = %v, expected (0,0)", c)
	}
	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionRight, core.ActionUp))
	}
	if c := g.Snapshot().Cursor; c != match3.C(5, 5) {
		t.Errorf("cursor = %v, expected (5,5)", c)
	}
}

func TestGameDeterminism(t *testing.T) {
	script := []core.InputFrame{
		frame(core.ActionSelect),
		frame(core.ActionUp),
		frame(core.ActionSelect),
	}

	run := func() Snapshot {
		g := newTestGame(t, Variants[0], 42)
		for i := 0; i < 3; i++ {
			for _, in := range script {
				g.Step(in)
			}
			settle(t, g)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input diverged:\n%s\n---\n%s", a.Board, b.Board)
	}
	if a.Turns != 3 {
		t.Errorf("Turns = %d, expected 3", a.Turns)
	}
}

func TestRestartBuildsNewBoard(t *testing.T) {
	g := newTestGame(t, Variants[0], 9)
	g.Step(frame(core.ActionSelect))

	g.Step(frame(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Selected || snap.Turns != 0 || !snap.Board.Full() {
		t.Errorf("restart should give a fresh board, got %+v", snap)
	}
	if snap.Status != "New board" {
		t.Errorf("Status = %q", snap.Status)
	}
}

func TestInvalidConfigFallsBackToDefault(t *testing.T) {
	cfg := config.DefaultArmorCrushConfig()
	cfg.Tokens = nil
	g := NewWithSettings(Variants[0], Settings{Config: cfg})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})

	if g.board.Width() != 8 || len(g.tokens) == 0 {
		t.Errorf("fallback board = %dx%d with %d kinds", g.board.Width(), g.board.Height(), len(g.tokens))
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, Variants[0], 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "ArmorCrush 8x8") {
		t.Error("render should show the title")
	}
	if !strings.Contains(out, "Turn 0") {
		t.Error("render should show the turn counter")
	}

	sx, sy := g.cellScreen(g.cursor)
	if screen.Get(sx, sy) != '[' || screen.Get(sx+2, sy) != ']' {
		t.Errorf("cursor brackets missing, row = %q", screen.Row(sy))
	}

	kind := g.display.Kind(g.cursor)
	tt, _ := g.tokens.Type(kind)
	if cell := screen.GetCell(sx+1, sy); cell.Rune != tt.Glyph || cell.Color != tt.Color {
		t.Errorf("cursor cell = %+v, expected %q in %v", cell, tt.Glyph, tt.Color)
	}
}

func TestRenderDebugOverlay(t *testing.T) {
	g := newTestGame(t, Variants[0], 1)
	g.Step(frame(core.ActionDebug))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "cursor (4,4) world (4.5,4.5)") {
		t.Errorf("debug line missing:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithSettings(Variants[0], Settings{Config: config.DefaultArmorCrushConfig()})
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 30, Seed: 1})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small window should show a message")
	}
	if g.Snapshot().Phase != PhaseTooSmall {
		t.Errorf("Phase = %s", g.Snapshot().Phase)
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, Variants[0], 9)
	before := g.Snapshot().Board.String()

	g.Resize(20, 10)
	if g.Snapshot().Phase != PhaseTooSmall {
		t.Errorf("Phase = %s, expected %s", g.Snapshot().Phase, PhaseTooSmall)
	}

	g.Resize(100, 30)
	if g.Snapshot().Phase != PhaseIdle {
		t.Errorf("Phase = %s, expected %s", g.Snapshot().Phase, PhaseIdle)
	}
	if after := g.Snapshot().Board.String(); after != before {
		t.Errorf("board changed on resize:\n%s\nexpected\n%s", after, before)
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		d    time.Duration
		rate int
		want int
	}{
		{0, 30, 0},
		{500 * time.Millisecond, 30, 15},
		{100 * time.Millisecond, 30, 3},
		{100 * time.Millisecond, 60, 6},
		{10 * time.Millisecond, 30, 1},
		{time.Second, 0, 0},
	}
	for _, tc := range tests {
		if got := ticksFor(tc.d, tc.rate); got != tc.want {
			t.Errorf("ticksFor(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.want)
		}
	}
}
