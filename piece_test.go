package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorOpposite(t *testing.T) {
	assert.Equal(t, Black, White.Opposite())
	assert.Equal(t, White, Black.Opposite())
}

func TestPieceSymbol(t *testing.T) {
	assert.Equal(t, byte('P'), Piece{Type: Pawn, Color: White}.Symbol())
	assert.Equal(t, byte('p'), Piece{Type: Pawn, Color: Black}.Symbol())
	assert.Equal(t, byte('K'), Piece{Type: King, Color: White}.Symbol())
	assert.Equal(t, byte(' '), NoPiece.Symbol())
}

func TestForSymbol(t *testing.T) {
	p, ok := ForSymbol('Q')
	assert.True(t, ok)
	assert.Equal(t, Piece{Type: Queen, Color: White}, p)

	p, ok = ForSymbol('n')
	assert.True(t, ok)
	assert.Equal(t, Piece{Type: Knight, Color: Black}, p)

	_, ok = ForSymbol('x')
	assert.False(t, ok)
}

func TestPromoPiecesFor(t *testing.T) {
	assert.Equal(t, WhitePromoPieces, PromoPiecesFor(White))
	assert.Equal(t, BlackPromoPieces, PromoPiecesFor(Black))
	assert.Len(t, PromoPiecesFor(White), 4)
}
