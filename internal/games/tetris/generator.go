package tetris

import "math/rand"

// Generator produces the stream of pieces the engine spawns.
type Generator interface {
	Next() Piece
}

// RandomGenerator draws every kind with equal probability.
// A fixed seed yields a fixed sequence.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a uniform generator seeded with seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a fresh piece in spawn orientation.
func (g *RandomGenerator) Next() Piece {
	return NewPiece(Kind(g.rng.Intn(KindCount)))
}

// SequenceGenerator replays a fixed list of kinds, cycling when exhausted.
// Used for scripted games and tests.
type SequenceGenerator struct {
	kinds []Kind
	pos   int
}

// NewSequenceGenerator returns a generator cycling through kinds.
// An empty list yields only I pieces.
func NewSequenceGenerator(kinds ...Kind) *SequenceGenerator {
	if len(kinds) == 0 {
		kinds = []Kind{KindI}
	}
	return &SequenceGenerator{kinds: kinds}
}

// Next returns the next kind in the sequence.
func (g *SequenceGenerator) Next() Piece {
	k := g.kinds[g.pos%len(g.kinds)]
	g.pos++
	return NewPiece(k)
}
