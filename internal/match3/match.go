package match3

// MatchSet is a deduplicated set of coordinates in detection order.
// The zero value is an empty set.
type MatchSet struct {
	coords []Coord
	seen   map[Coord]struct{}
}

// NewMatchSet builds a set from coords, dropping duplicates.
func NewMatchSet(coords ...Coord) MatchSet {
	var m MatchSet
	for _, c := range coords {
		m.add(c)
	}
	return m
}

func (m *MatchSet) add(c Coord) {
	if m.seen == nil {
		m.seen = make(map[Coord]struct{})
	}
	if _, ok := m.seen[c]; ok {
		return
	}
	m.seen[c] = struct{}{}
	m.coords = append(m.coords, c)
}

// Len returns the number of distinct coordinates.
func (m MatchSet) Len() int { return len(m.coords) }

// Empty returns true if no run was found.
func (m MatchSet) Empty() bool { return len(m.coords) == 0 }

// Contains reports membership of c.
func (m MatchSet) Contains(c Coord) bool {
	_, ok := m.seen[c]
	return ok
}

// Coords returns a copy of the coordinates in detection order.
func (m MatchSet) Coords() []Coord {
	return append([]Coord(nil), m.coords...)
}

// DetectMatches scans every row left to right, then every column bottom to
// top, with a sliding window of three cells. Each window whose cells are
// all occupied by matching tokens contributes its coordinates. Longer runs
// are covered by overlapping windows. The board is not modified.
func (b *Board) DetectMatches() MatchSet {
	var m MatchSet
	w, h := b.Width(), b.Height()

	for y := 0; y < h; y++ {
		for x := 0; x+2 < w; x++ {
			b.matchWindow(&m, C(x, y), C(x+1, y), C(x+2, y))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y+2 < h; y++ {
			b.matchWindow(&m, C(x, y), C(x, y+1), C(x, y+2))
		}
	}
	return m
}

func (b *Board) matchWindow(m *MatchSet, p0, p1, p2 Coord) {
	s0, s1, s2 := b.mustGet(p0), b.mustGet(p1), b.mustGet(p2)
	if !s0.Present || !s1.Present || !s2.Present {
		return
	}
	if s0.Value.Matches(s1.Value) && s1.Value.Matches(s2.Value) {
		m.add(p0)
		m.add(p1)
		m.add(p2)
	}
}

// ResolveExplosions emits one MatchResult carrying the whole set, then
// clears each matched cell and emits TokenDestroyed for it. An empty set
// emits an empty MatchResult and changes nothing.
func (b *Board) ResolveExplosions(m MatchSet) {
	b.emit(MatchResult{Matches: m.Coords()})
	for _, c := range m.coords {
		s := b.mustGet(c)
		if !s.Present {
			continue
		}
		b.mustSet(c, None[Token]())
		b.emit(TokenDestroyed{Pos: c, Token: s.Value})
	}
}
