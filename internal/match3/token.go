package match3

import (
	"fmt"

	"github.com/L0weN/ArmorCrush/internal/core"
)

// Kind is a token's type tag: an index into the board's TokenSet.
type Kind int

// NoKind marks an empty cell in layouts and snapshots.
const NoKind Kind = -1

// Token is an immutable occupant of one grid cell.
// Serial identifies the token instance for presentation tracking and
// plays no part in matching.
type Token struct {
	Kind   Kind
	Serial uint64
}

// Matches returns true if both tokens share the same type tag.
func (t Token) Matches(other Token) bool {
	return t.Kind == other.Kind
}

// String returns a string representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s#%d", t.Kind, t.Serial)
}

// String renders the kind as a single letter (A, B, C, ...).
func (k Kind) String() string {
	if k < 0 {
		return "."
	}
	if k < 26 {
		return string(rune('A' + k))
	}
	return fmt.Sprintf("K%d", int(k))
}

// TokenType is per-kind display metadata.
type TokenType struct {
	Name  string
	Glyph rune
	Color core.Color
}

// TokenSet is the ordered list of token types available to a board.
// A token's Kind indexes into this list.
type TokenSet []TokenType

// Validate returns ErrMisconfiguredTokenSet if the set is empty.
func (s TokenSet) Validate() error {
	if len(s) == 0 {
		return ErrMisconfiguredTokenSet
	}
	return nil
}

// Type returns the metadata for kind k.
func (s TokenSet) Type(k Kind) (TokenType, bool) {
	if k < 0 || int(k) >= len(s) {
		return TokenType{}, false
	}
	return s[k], true
}

// Kinds returns every kind in the set, in order.
func (s TokenSet) Kinds() []Kind {
	kinds := make([]Kind, len(s))
	for i := range s {
		kinds[i] = Kind(i)
	}
	return kinds
}

// DefaultTokenSet returns the five armor pieces used by the classic board.
func DefaultTokenSet() TokenSet {
	return TokenSet{
		{Name: "helmet", Glyph: '▲', Color: core.ColorRed},
		{Name: "shield", Glyph: '■', Color: core.ColorBlue},
		{Name: "gauntlet", Glyph: '●', Color: core.ColorGreen},
		{Name: "greave", Glyph: '◆', Color: core.ColorYellow},
		{Name: "cuirass", Glyph: '♦', Color: core.ColorMagenta},
	}
}
