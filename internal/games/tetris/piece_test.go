package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/config"
)

func TestCatalogue(t *testing.T) {
	tests := []struct {
		kind Kind
		rows []string
	}{
		{KindI, []string{"####"}},
		{KindO, []string{"##", "##"}},
		{KindT, []string{"###", ".#."}},
		{KindL, []string{"###", "#.."}},
		{KindJ, []string{"###", "..#"}},
		{KindS, []string{".##", "##."}},
		{KindZ, []string{"##.", ".##"}},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := NewPiece(tc.kind)
			assert.Equal(t, tc.kind, p.Kind)
			assert.True(t, p.Shape.Equal(shapeOf(tc.rows...)), "shape %v", p.Shape)
			assert.Equal(t, 4, p.Shape.Cells())
		})
	}
}

func TestValidSpawnFitsEveryPiece(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Board.Width = 7
	cfg.Board.Height = 6
	cfg.Spawn.X = cfg.Board.Width - config.MaxPieceWidth
	cfg.Spawn.Y = cfg.Board.Height - config.MaxPieceHeight
	require.NoError(t, cfg.Validate())

	rules := RulesFromConfig(cfg)
	board := NewBoard(rules.Width, rules.Height)
	for k := Kind(0); k < KindCount; k++ {
		p := NewPiece(k)
		assert.LessOrEqual(t, p.Shape.Cols(), config.MaxPieceWidth, k.String())
		assert.LessOrEqual(t, p.Shape.Rows(), config.MaxPieceHeight, k.String())
		assert.True(t, board.Fits(p.Shape, rules.Spawn), "%s fits at the spawn point", k)
	}
}

func TestRotationClosure(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			orig := NewPiece(k).Shape
			s := orig
			for i := 0; i < 4; i++ {
				s = s.RotateClockwise()
				assert.Equal(t, 4, s.Cells(), "rotation %d must keep the cell count", i+1)
			}
			assert.True(t, s.Equal(orig), "four rotations must return the original shape")
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	// T: ### / .#.  ->  .# / ## / .#
	got := NewPiece(KindT).Shape.RotateClockwise()
	assert.True(t, got.Equal(shapeOf(".#", "##", ".#")), "got %v", got)

	// I turns vertical
	i := NewPiece(KindI).Shape.RotateClockwise()
	assert.Equal(t, 4, i.Rows())
	assert.Equal(t, 1, i.Cols())
}

func TestRotateDoesNotAlias(t *testing.T) {
	orig := NewPiece(KindL).Shape
	before := orig.Clone()

	rotated := orig.RotateClockwise()
	rotated[0][0] = !rotated[0][0]

	assert.True(t, orig.Equal(before), "rotation must not modify or share the input")
}

func TestNewPieceDoesNotShareCatalogue(t *testing.T) {
	p := NewPiece(KindO)
	p.Shape[0][0] = false

	assert.True(t, NewPiece(KindO).Shape[0][0], "catalogue must not be mutated through a piece")
}

func TestKindColorsDistinct(t *testing.T) {
	seen := map[any]Kind{}
	for k := Kind(0); k < KindCount; k++ {
		c := k.Color()
		prev, dup := seen[c]
		require.False(t, dup, "%s and %s share a color", prev, k)
		seen[c] = k
	}
}

func TestRandomGeneratorDeterministic(t *testing.T) {
	a := NewRandomGenerator(42)
	b := NewRandomGenerator(42)

	counts := make(map[Kind]int)
	for i := 0; i < 700; i++ {
		pa, pb := a.Next(), b.Next()
		require.Equal(t, pa.Kind, pb.Kind, "draw %d diverged", i)
		require.GreaterOrEqual(t, int(pa.Kind), 0)
		require.Less(t, int(pa.Kind), KindCount)
		counts[pa.Kind]++
	}
	assert.Len(t, counts, KindCount, "every kind should appear in 700 draws")
}

func TestSequenceGeneratorCycles(t *testing.T) {
	g := NewSequenceGenerator(KindT, KindS)
	var got []Kind
	for i := 0; i < 5; i++ {
		got = append(got, g.Next().Kind)
	}
	assert.Equal(t, []Kind{KindT, KindS, KindT, KindS, KindT}, got)

	assert.Equal(t, KindI, NewSequenceGenerator().Next().Kind)
}
