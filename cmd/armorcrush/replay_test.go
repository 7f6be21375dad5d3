package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L0weN/ArmorCrush/internal/config"
	"github.com/L0weN/ArmorCrush/internal/match3"
)

func runTestReplay(t *testing.T, opts replayOptions) string {
	t.Helper()
	var buf bytes.Buffer
	err := replay(context.Background(), &buf, config.DefaultArmorCrushConfig(), opts, log.New(io.Discard))
	require.NoError(t, err)
	return buf.String()
}

func mustLayout(t *testing.T, text string) [][]match3.Kind {
	t.Helper()
	rows, err := parseLayout(text)
	require.NoError(t, err)
	return rows
}

func TestReplaySwapWithoutMatch(t *testing.T) {
	out := runTestReplay(t, replayOptions{
		Layout: mustLayout(t, "ABC\nBAB\nABA"),
		Picks:  []match3.Coord{match3.C(2, 0), match3.C(2, 2)},
	})

	assert.Contains(t, out, "pick (2,0): selected")
	assert.Contains(t, out, "pick (2,2): resolved")
	assert.Contains(t, out, "swap (2,0) <-> (2,2)")
	assert.Contains(t, out, "no match")
	assert.NotContains(t, out, "destroy")
	assert.True(t, strings.HasSuffix(out, "after 1 turns:\nABA\nBAB\nABC\n"), out)
}

func TestReplaySwapWithMatch(t *testing.T) {
	out := runTestReplay(t, replayOptions{
		Seed:   5,
		Layout: mustLayout(t, "BBA\nAAB"),
		Picks:  []match3.Coord{match3.C(2, 0), match3.C(2, 1)},
	})

	assert.Contains(t, out, "match x6")
	assert.Equal(t, 6, strings.Count(out, "destroy "))
	assert.Equal(t, 6, strings.Count(out, "create "))
	assert.Contains(t, out, "+500ms")

	final := out[strings.Index(out, "after 1 turns:"):]
	assert.NotContains(t, final, ".")
}

func TestReplayIsDeterministic(t *testing.T) {
	opts := replayOptions{
		Seed:  42,
		Board: config.BoardSmall,
		Picks: []match3.Coord{match3.C(0, 0), match3.C(5, 5), match3.C(1, 1), match3.C(1, 2)},
	}

	first := runTestReplay(t, opts)
	second := runTestReplay(t, opts)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "board 6x6")
}

func TestReplayIgnoresOffBoardPick(t *testing.T) {
	out := runTestReplay(t, replayOptions{
		Layout: mustLayout(t, "ABC\nBAB\nABA"),
		Picks:  []match3.Coord{match3.C(9, 9)},
	})
	assert.Contains(t, out, "pick (9,9): ignored")
	assert.Contains(t, out, "after 0 turns:")
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" 3, 4")
	require.NoError(t, err)
	assert.Equal(t, match3.C(3, 4), c)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := parseCoord(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseLayout(t *testing.T) {
	rows, err := parseLayout("\nAB.\nCBA\n")
	require.NoError(t, err)
	assert.Equal(t, [][]match3.Kind{
		{0, 1, match3.NoKind},
		{2, 1, 0},
	}, rows)

	_, err = parseLayout("AB\nABC")
	assert.Error(t, err)

	_, err = parseLayout("a1")
	assert.Error(t, err)

	_, err = parseLayout("  \n")
	assert.Error(t, err)
}

func TestReplayRejectsLayoutWithUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := replay(context.Background(), &buf, config.DefaultArmorCrushConfig(), replayOptions{
		Layout: mustLayout(t, "ZZZ"),
	}, log.New(io.Discard))
	assert.ErrorIs(t, err, match3.ErrLayoutMismatch)
}
