package match3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	kA Kind = iota
	kB
	kC
	kX = NoKind
)

func testTokens() TokenSet {
	return TokenSet{{Name: "a", Glyph: 'a'}, {Name: "b", Glyph: 'b'}, {Name: "c", Glyph: 'c'}}
}

// newTestBoard builds a board from rows listed bottom row first.
func newTestBoard(t *testing.T, rows [][]Kind, opts ...Option) *Board {
	t.Helper()
	require.NotEmpty(t, rows)
	b, err := NewBoard(BoardConfig{
		Width:    len(rows[0]),
		Height:   len(rows),
		CellSize: 1,
		Tokens:   testTokens(),
	}, opts...)
	require.NoError(t, err)
	require.NoError(t, b.Load(rows))
	return b
}

func subscribeQueue(b *Board) *Queue {
	q := NewQueue()
	b.Subscribe(q)
	return q
}

func eventsOf(q *Queue) []Event {
	var out []Event
	for _, e := range q.Drain() {
		out = append(out, e.Event)
	}
	return out
}
