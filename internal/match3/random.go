package match3

import "math/rand"

// Source picks token kinds. Intn returns a uniformly distributed int in [0, n).
// *rand.Rand satisfies Source.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded math/rand source for deterministic boards.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo n. Intended for tests and replays.
type SequenceSource struct {
	Values []int
	pos    int
}

// Intn returns the next value in the sequence modulo n.
func (s *SequenceSource) Intn(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
