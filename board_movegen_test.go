package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(fen FEN) *Board {
	return NewBoard(nil, nil, DefaultRulesConfig(), fen)
}

func TestGenerateMovesStartingPosition(t *testing.T) {
	b := newTestBoard(DefaultFEN)
	legal := b.GenerateMoves(MoveGenOptions{OnlyLegal: true})
	assert.Len(t, legal, 20)
}

func TestGenerateMovesOnlyForSquare(t *testing.T) {
	b := newTestBoard(DefaultFEN)
	e2, _ := ParseSquare("e2")
	legal := b.GenerateMoves(MoveGenOptions{OnlyLegal: true, OnlyForSquare: &e2})
	assert.Len(t, legal, 2)
}

func TestGenerateMovesEmitsBlockedCandidatesWhenNotFilteringLegal(t *testing.T) {
	b := newTestBoard(DefaultFEN)
	all := b.GenerateMoves(MoveGenOptions{})
	foundBlocked := false
	for _, m := range all {
		if m.Flags.Contains(FlagMoveBlocked) {
			foundBlocked = true
			break
		}
	}
	assert.True(t, foundBlocked, "expected at least one MOVE_BLOCKED candidate from the back rank pieces")
}

func TestGenerateMovesCastlingBlockedAtStart(t *testing.T) {
	b := newTestBoard(DefaultFEN)
	all := b.GenerateMoves(MoveGenOptions{})
	var castles []*Move
	for _, m := range all {
		if m.Flags.Contains(FlagKSideCastle) || m.Flags.Contains(FlagQSideCastle) {
			castles = append(castles, m)
		}
	}
	require.NotEmpty(t, castles)
	for _, m := range castles {
		assert.True(t, m.Flags.Contains(FlagMoveBlocked))
		assert.False(t, m.Legal)
	}
}

func TestGenerateMovesCastlingLegalWhenClear(t *testing.T) {
	b := newTestBoard("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	legal := b.GenerateMoves(MoveGenOptions{OnlyLegal: true})
	foundKingside := false
	for _, m := range legal {
		if m.Flags.Contains(FlagKSideCastle) {
			foundKingside = true
		}
	}
	assert.True(t, foundKingside)
}

func TestGenerateMovesCastlingIllegalThroughCheck(t *testing.T) {
	// Black rook on f8 covers f1, the king's transit square.
	b := newTestBoard("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	b.PlacePiece(NewSquare(5, 0), Piece{Type: Rook, Color: Black})
	b.invalidateMoveCache()
	all := b.GenerateMoves(MoveGenOptions{})
	for _, m := range all {
		if m.Flags.Contains(FlagKSideCastle) {
			assert.True(t, m.Flags.Contains(FlagMoveIllegal))
		}
	}
}

func TestGenerateMovesEnPassant(t *testing.T) {
	b := newTestBoard("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	legal := b.GenerateMoves(MoveGenOptions{OnlyLegal: true})
	found := false
	for _, m := range legal {
		if m.Flags.Contains(FlagEnPassant) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerateMovesPromotion(t *testing.T) {
	b := newTestBoard("8/4P3/8/8/8/4k3/8/4K3 w - - 0 1")
	e7, _ := ParseSquare("e7")
	legal := b.GenerateMoves(MoveGenOptions{OnlyLegal: true, OnlyForSquare: &e7})
	assert.Len(t, legal, 4)
}

func TestIsInCheckmateFoolsMate(t *testing.T) {
	b := newTestBoard("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.True(t, b.IsInCheckmate())
}

func TestIsInStalemate(t *testing.T) {
	b := newTestBoard("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	assert.True(t, b.IsInStalemate())
	assert.False(t, b.IsInCheckmate())
}
