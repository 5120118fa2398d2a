package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareCorners(t *testing.T) {
	assert.Equal(t, Square(0), NewSquare(0, 0))
	assert.Equal(t, "a8", NewSquare(0, 0).String())
	assert.Equal(t, "h8", NewSquare(7, 0).String())
	assert.Equal(t, "a1", NewSquare(0, 7).String())
	assert.Equal(t, "h1", NewSquare(7, 7).String())
	assert.Equal(t, Square(112), NewSquare(0, 7))
	assert.Equal(t, Square(119), NewSquare(7, 7))
}

func TestSquareOffBoard(t *testing.T) {
	assert.False(t, NewSquare(7, 7).OffBoard())
	assert.True(t, Square(8).OffBoard())
	assert.True(t, Square(120).OffBoard())
}

func TestSquareParse(t *testing.T) {
	sq, err := ParseSquare("e4")
	require.NoError(t, err)
	assert.Equal(t, "e4", sq.String())
	assert.Equal(t, 4, sq.File())
	assert.Equal(t, 4, sq.DisplayRank())

	_, err = ParseSquare("z9")
	assert.Error(t, err)
}

func TestNoSquareString(t *testing.T) {
	assert.Equal(t, "-", NoSquare.String())
}
