package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveAlgebraicAndUCI(t *testing.T) {
	e2, _ := ParseSquare("e2")
	e4, _ := ParseSquare("e4")
	m := NewMove(e2, e4, Piece{Type: Pawn, Color: White}, NoPiece, NoPiece, NewFlags(FlagDoubleAdvance), nil)
	assert.Equal(t, "e2-e4", m.Algebraic())
	assert.Equal(t, "e2e4", m.UCI())
}

func TestMoveAlgebraicCapture(t *testing.T) {
	e4, _ := ParseSquare("e4")
	d5, _ := ParseSquare("d5")
	m := NewMove(e4, d5, Piece{Type: Pawn, Color: White}, Piece{Type: Pawn, Color: Black}, NoPiece, NewFlags(FlagCapture), nil)
	assert.Equal(t, "e4xd5", m.Algebraic())
}

func TestMoveAlgebraicPromotion(t *testing.T) {
	e7, _ := ParseSquare("e7")
	e8, _ := ParseSquare("e8")
	m := NewMove(e7, e8, Piece{Type: Pawn, Color: White}, NoPiece, Piece{Type: Queen, Color: White}, NewFlags(FlagPromotion), nil)
	assert.Equal(t, "e7-e8=Q", m.Algebraic())
	assert.Equal(t, "e7e8q", m.UCI())
}

func TestIsWildcardSAN(t *testing.T) {
	assert.True(t, IsWildcardSAN("--"))
	assert.True(t, IsWildcardSAN("*"))
	assert.False(t, IsWildcardSAN("Nf3"))
}

func TestAttacksTableKnightSymmetry(t *testing.T) {
	for _, o := range PieceOffsets[Knight] {
		idx := o + 119
		assert.NotEqual(t, uint16(0), ATTACKS[idx]&(1<<shiftKnight))
	}
}

func TestRaysTableRookDirection(t *testing.T) {
	idx := 3*1 + 119 // three squares to the right (+1 direction)
	assert.Equal(t, -1, RAYS[idx])
}
