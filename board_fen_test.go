package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardLoadFenRoundTrip(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "")
	require.True(t, b.LoadFen(DefaultFEN))
	assert.Equal(t, DefaultFEN, b.ToFen())
}

func TestBoardLoadFenRejectsInvalid(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), DefaultFEN)
	ok := b.LoadFen("not a fen")
	assert.False(t, ok)
	assert.Equal(t, DefaultFEN, b.ToFen())
}

func TestBoardToFenTracksEnPassant(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	assert.Equal(t, FEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"), b.ToFen())
}

func TestBoardCastlingFieldString(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, "-", b.castlingFieldString())
}
