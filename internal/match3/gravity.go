package match3

// Collapse lets tokens fall into empty cells below them. Columns are
// handled independently; within a column each empty cell, scanned bottom
// to top, is filled by the nearest occupied cell above it. Afterwards every
// column's tokens are contiguous from row 0. Returns the number of moves.
func (b *Board) Collapse() int {
	moves := 0
	w, h := b.Width(), b.Height()

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			dst := C(x, y)
			if b.mustGet(dst).Present {
				continue
			}
			for above := y + 1; above < h; above++ {
				src := C(x, above)
				s := b.mustGet(src)
				if !s.Present {
					continue
				}
				b.mustSet(dst, s)
				b.mustSet(src, None[Token]())
				b.emit(TokenFell{From: src, To: dst, Token: s.Value})
				moves++
				break
			}
		}
	}
	return moves
}

// Refill places a new random token in every empty cell, column by column
// and bottom to top within a column. Returns the number of tokens created.
func (b *Board) Refill() int {
	created := 0
	w, h := b.Width(), b.Height()

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := C(x, y)
			if b.mustGet(c).Present {
				continue
			}
			t := b.newToken(b.randomKind())
			b.mustSet(c, Some(t))
			b.emit(TokenCreated{Pos: c, Token: t})
			created++
		}
	}
	return created
}
