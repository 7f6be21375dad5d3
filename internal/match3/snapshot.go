package match3

import "strings"

// Snapshot is a detached copy of board contents. Cells are row-major with
// row 0 at the bottom. Snapshots never alias board storage.
type Snapshot struct {
	Width  int
	Height int
	Cells  []Slot[Token]
}

// Snapshot copies the current board contents.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Width:  b.Width(),
		Height: b.Height(),
		Cells:  append([]Slot[Token](nil), b.grid.cells...),
	}
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	s.Cells = append([]Slot[Token](nil), s.Cells...)
	return s
}

func (s Snapshot) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// At returns the slot at c. Out-of-range coordinates report an empty slot.
func (s Snapshot) At(c Coord) Slot[Token] {
	if !s.inBounds(c) {
		return Slot[Token]{}
	}
	return s.Cells[c.Y*s.Width+c.X]
}

// Kind returns the kind at c, or NoKind for an empty cell.
func (s Snapshot) Kind(c Coord) Kind {
	slot := s.At(c)
	if !slot.Present {
		return NoKind
	}
	return slot.Value.Kind
}

// Rows returns the kinds as rows[y][x], bottom row first.
// The result is accepted by Board.Load.
func (s Snapshot) Rows() [][]Kind {
	rows := make([][]Kind, s.Height)
	for y := range rows {
		rows[y] = make([]Kind, s.Width)
		for x := range rows[y] {
			rows[y][x] = s.Kind(C(x, y))
		}
	}
	return rows
}

// Full returns true if no cell is empty.
func (s Snapshot) Full() bool {
	for _, c := range s.Cells {
		if !c.Present {
			return false
		}
	}
	return true
}

// Apply updates s in place as if the board had emitted e.
// Replaying a turn's emissions onto the snapshot taken before the turn
// yields the snapshot taken after it.
func (s *Snapshot) Apply(e Event) {
	set := func(c Coord, v Slot[Token]) {
		if s.inBounds(c) {
			s.Cells[c.Y*s.Width+c.X] = v
		}
	}

	switch ev := e.(type) {
	case SwapStarted:
		a, b := s.At(ev.A), s.At(ev.B)
		set(ev.A, b)
		set(ev.B, a)
	case TokenDestroyed:
		set(ev.Pos, None[Token]())
	case TokenFell:
		set(ev.To, Some(ev.Token))
		set(ev.From, None[Token]())
	case TokenCreated:
		set(ev.Pos, Some(ev.Token))
	}
}

// String renders one line per row, top row first, using one letter per
// kind and '.' for empty cells.
func (s Snapshot) String() string {
	var sb strings.Builder
	for y := s.Height - 1; y >= 0; y-- {
		for x := 0; x < s.Width; x++ {
			sb.WriteString(s.Kind(C(x, y)).String())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
