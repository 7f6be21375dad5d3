package match3

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// BoardConfig is the set-once configuration of a board.
type BoardConfig struct {
	Width    int
	Height   int
	CellSize float64
	Origin   Vec2
	Tokens   TokenSet
}

// ValidateConfig checks dimensions, cell size and token set.
func ValidateConfig(cfg BoardConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.CellSize <= 0 {
		return fmt.Errorf("%w: %dx%d cell size %g", ErrInvalidDimensions, cfg.Width, cfg.Height, cfg.CellSize)
	}
	return cfg.Tokens.Validate()
}

// Option configures a Board.
type Option func(*Board)

// WithRandom sets the source used to pick new token kinds.
func WithRandom(src Source) Option {
	return func(b *Board) {
		if src != nil {
			b.rng = src
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithPacing sets the delays attached to emitted events.
func WithPacing(p Pacing) Option {
	return func(b *Board) {
		b.pacing = p
	}
}

// TurnResult summarizes one resolved turn.
type TurnResult struct {
	A       Coord
	B       Coord
	Matches MatchSet
	Fell    int
	Created int
}

// Matched returns the number of cleared cells.
func (r TurnResult) Matched() int {
	return r.Matches.Len()
}

// Board owns a grid of tokens and the operations that make up a turn.
// A Board is not safe for concurrent use; all calls must come from one
// goroutine.
type Board struct {
	grid      *Grid[Token]
	tokens    TokenSet
	rng       Source
	logger    *log.Logger
	pacing    Pacing
	observers bus

	serial    uint64
	turns     int
	resolving bool
}

// NewBoard validates cfg and creates a board with every cell empty.
// Call Populate or Load before play.
func NewBoard(cfg BoardConfig, opts ...Option) (*Board, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	grid, err := NewGrid[Token](cfg.Width, cfg.Height, cfg.CellSize, cfg.Origin)
	if err != nil {
		return nil, err
	}

	b := &Board{
		grid:   grid,
		tokens: append(TokenSet(nil), cfg.Tokens...),
		rng:    NewSource(1),
		logger: log.New(io.Discard),
		pacing: DefaultPacing(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.Width() }

// Height returns the number of rows.
func (b *Board) Height() int { return b.grid.Height() }

// CellSize returns the world-space edge length of one cell.
func (b *Board) CellSize() float64 { return b.grid.CellSize() }

// Origin returns the world-space anchor of the board.
func (b *Board) Origin() Vec2 { return b.grid.Origin() }

// Tokens returns the configured token types.
func (b *Board) Tokens() TokenSet { return b.tokens }

// Turns returns how many turns have been resolved.
func (b *Board) Turns() int { return b.turns }

// Resolving returns true while a turn is in flight.
func (b *Board) Resolving() bool { return b.resolving }

// WorldToGrid maps a world point onto a (possibly out-of-range) cell.
func (b *Board) WorldToGrid(p Vec2) Coord { return b.grid.WorldToGrid(p) }

// GridToWorldCenter returns the world-space center of cell c.
func (b *Board) GridToWorldCenter(c Coord) Vec2 { return b.grid.GridToWorldCenter(c) }

// Subscribe registers an observer for every subsequent emission.
// The returned cancel function unregisters it and may be called repeatedly.
func (b *Board) Subscribe(o Observer) (cancel func()) {
	return b.observers.subscribe(o)
}

func (b *Board) emit(e Event) {
	b.observers.publish(e, b.pacing)
}

// ValidatePosition returns true if c lies on the board.
func (b *Board) ValidatePosition(c Coord) bool {
	return b.grid.InBounds(c)
}

// IsEmpty returns true if the cell at c holds no token.
// It panics if c is out of range; callers check ValidatePosition first.
func (b *Board) IsEmpty(c Coord) bool {
	return !b.mustGet(c).Present
}

// At returns the token at c and whether the cell is occupied.
// Out-of-range coordinates report an empty cell.
func (b *Board) At(c Coord) (Token, bool) {
	s, err := b.grid.Get(c)
	if err != nil {
		return Token{}, false
	}
	return s.Value, s.Present
}

func (b *Board) mustGet(c Coord) Slot[Token] {
	s, err := b.grid.Get(c)
	if err != nil {
		panic(err)
	}
	return s
}

func (b *Board) mustSet(c Coord, s Slot[Token]) {
	if err := b.grid.Set(c, s); err != nil {
		panic(err)
	}
}

func (b *Board) newToken(k Kind) Token {
	b.serial++
	return Token{Kind: k, Serial: b.serial}
}

func (b *Board) randomKind() Kind {
	return Kind(b.rng.Intn(len(b.tokens)))
}

// Populate fills every empty cell with a random token, in the same order
// as Refill. It returns the number of tokens created.
func (b *Board) Populate() int {
	return b.Refill()
}

// Load replaces the board contents with a fixed layout. rows[y][x] is the
// kind at (x,y), so rows[0] is the bottom row. NoKind leaves a cell empty.
// Load emits no events; observers should take a Snapshot afterwards.
func (b *Board) Load(rows [][]Kind) error {
	if len(rows) != b.Height() {
		return fmt.Errorf("%w: %d rows for height %d", ErrLayoutMismatch, len(rows), b.Height())
	}
	for y, row := range rows {
		if len(row) != b.Width() {
			return fmt.Errorf("%w: row %d has %d cells for width %d", ErrLayoutMismatch, y, len(row), b.Width())
		}
		for _, k := range row {
			if k != NoKind && (k < 0 || int(k) >= len(b.tokens)) {
				return fmt.Errorf("%w: kind %d not in token set of %d", ErrLayoutMismatch, int(k), len(b.tokens))
			}
		}
	}

	for y, row := range rows {
		for x, k := range row {
			slot := None[Token]()
			if k != NoKind {
				slot = Some(b.newToken(k))
			}
			b.mustSet(C(x, y), slot)
		}
	}
	return nil
}

// LoadTopDown is Load with rows listed as printed: rows[0] is the top row.
func (b *Board) LoadTopDown(rows [][]Kind) error {
	flipped := make([][]Kind, len(rows))
	for i, row := range rows {
		flipped[len(rows)-1-i] = row
	}
	return b.Load(flipped)
}

// Swap exchanges the tokens at a and c. Both cells must be on the board
// and occupied; otherwise nothing changes and an error is returned.
// No adjacency is required.
func (b *Board) Swap(a, c Coord) error {
	for _, p := range []Coord{a, c} {
		if !b.ValidatePosition(p) {
			return b.grid.rangeError(p)
		}
		if b.IsEmpty(p) {
			return fmt.Errorf("%w: %s", ErrEmptyCell, p)
		}
	}

	sa, sc := b.mustGet(a), b.mustGet(c)
	b.mustSet(a, sc)
	b.mustSet(c, sa)
	b.emit(SwapStarted{A: a, B: c})
	return nil
}

// ResolveTurn runs one complete turn: swap, a single detection pass,
// explosion, collapse and refill. The swap is kept even when nothing
// matches, and cascades are not re-checked. Calling ResolveTurn from an
// observer while a turn is in flight returns ErrTurnInProgress.
func (b *Board) ResolveTurn(a, c Coord) (TurnResult, error) {
	if b.resolving {
		return TurnResult{}, ErrTurnInProgress
	}
	b.resolving = true
	defer func() { b.resolving = false }()

	if err := b.Swap(a, c); err != nil {
		return TurnResult{}, err
	}

	matches := b.DetectMatches()
	b.ResolveExplosions(matches)
	fell := b.Collapse()
	created := b.Refill()
	b.turns++

	b.logger.Debug("turn resolved",
		"turn", b.turns,
		"a", a,
		"b", c,
		"matches", matches.Len(),
		"fell", fell,
		"created", created,
	)

	return TurnResult{
		A:       a,
		B:       c,
		Matches: matches,
		Fell:    fell,
		Created: created,
	}, nil
}
