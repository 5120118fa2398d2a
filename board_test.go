package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardLoadsDefaultPosition(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), DefaultFEN)
	assert.Equal(t, White, b.Turn)
	assert.Equal(t, NewSquare(4, 7), b.KingPos[White])
	assert.Equal(t, NewSquare(4, 0), b.KingPos[Black])
}

func TestPlacePieceRejectsSecondKing(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	err := b.PlacePiece(NewSquare(0, 0), Piece{Type: King, Color: White})
	assert.Error(t, err)
}

func TestCommitMoveUpdatesCastlingRightsOnRookCapture(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	h1, _ := ParseSquare("h1")
	h8, _ := ParseSquare("h8")
	m := NewMove(h1, h8, Piece{Type: Rook, Color: White}, Piece{Type: Rook, Color: Black}, NoPiece, NewFlags(FlagCapture), nil)
	b.commitMove(m, true)
	assert.False(t, b.CastlingRights[White].Contains(CastleKingside))
	assert.False(t, b.CastlingRights[Black].Contains(CastleKingside))
}

func TestCommitAndUndoMoveRestoresState(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), DefaultFEN)
	before := b.ToFen()
	e2, _ := ParseSquare("e2")
	e4, _ := ParseSquare("e4")
	m, err := GenerateFromAlgebraic(e2, e4, b)
	require.NoError(t, err)

	turn := newTurn(b, m, "")
	b.commitMove(m, true)
	assert.NotEqual(t, before, b.ToFen())

	b.commitUndoMoves([]*Turn{turn})
	assert.Equal(t, before, b.ToFen())
}

func TestIsAttackedByRookAlongRank(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	e1, _ := ParseSquare("e1")
	attacked, _ := b.IsAttacked(White, e1, false)
	assert.True(t, attacked)
}

func TestIsAttackedBlockedByIntervening(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	c1, _ := ParseSquare("c1")
	b.PlacePiece(c1, Piece{Type: Bishop, Color: White})
	b.invalidateMoveCache()
	// g1 is beyond the bishop on the rook's rank, and out of the king's
	// one-step reach, so nothing white attacks it.
	attacked, _ := b.IsAttacked(White, NewSquare(6, 7), false)
	assert.False(t, attacked)
}

func TestHasInsufficientMaterialBareKings(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.True(t, b.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialKingAndBishop(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4k3/8/8/8/8/8/8/3BK3 w - - 0 1")
	assert.True(t, b.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialOneBishopEachSide(t *testing.T) {
	// A single bishop per side, both standing on dark squares (f8 and c1),
	// can never force checkmate.
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1")
	assert.True(t, b.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialFalseWithRook(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.False(t, b.HasInsufficientMaterial())
}

func TestValidateRejectsBothKingsInCheck(t *testing.T) {
	// White rook a8 checks the black king along the back rank; the black
	// queen on e2 checks the white king down the e-file.
	b := NewBoard(nil, nil, DefaultRulesConfig(), "R3k3/8/8/8/8/8/4q3/4K3 w - - 0 1")
	err := b.Validate(ValidateOptions{IgnoreTurn: true})
	assert.Error(t, err)
}

func TestEndResultFiftyMoveDrawUnderStrictRules(t *testing.T) {
	rules := RulesConfig{Rules: "traditional", UseStrictRules: true}
	b := NewBoard(nil, nil, rules, "4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	res, ok := b.EndResult()
	require.True(t, ok)
	assert.Equal(t, "1/2-1/2", res.Header)
}

func TestEndResultSeventyFiveMoveUnconditional(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4k3/8/8/8/8/8/8/4K3 w - - 150 90")
	res, ok := b.EndResult()
	require.True(t, ok)
	assert.Equal(t, "1/2-1/2", res.Header)
}

func TestEndResultNoneAtStartingPosition(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), DefaultFEN)
	_, ok := b.EndResult()
	assert.False(t, ok)
}

// TestCurrentPositionFENIncludesCastlingRights pins down the repetition
// key's field width: a king shuffle that restores the original piece
// placement but loses castling rights must not collapse to the same
// PosCount key as the original position, since a position-FEN omitting
// fields 2..4 (side to move, castling, en passant) would make it
// indistinguishable from one where those rights are still intact.
func TestCurrentPositionFENIncludesCastlingRights(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	initialPos := b.currentPositionFEN()
	require.Equal(t, 1, b.PosCount[initialPos])

	e1, _ := ParseSquare("e1")
	e2, _ := ParseSquare("e2")
	e8, _ := ParseSquare("e8")
	e7, _ := ParseSquare("e7")
	m1, err := GenerateFromAlgebraic(e1, e2, b)
	require.NoError(t, err)
	b.commitMove(m1, true)

	m, err := GenerateFromAlgebraic(e8, e7, b)
	require.NoError(t, err)
	b.commitMove(m, true)

	m2, err := GenerateFromAlgebraic(e2, e1, b)
	require.NoError(t, err)
	b.commitMove(m2, true)

	m, err = GenerateFromAlgebraic(e7, e8, b)
	require.NoError(t, err)
	b.commitMove(m, true)

	finalPos := b.currentPositionFEN()
	assert.NotEqual(t, initialPos, finalPos, "losing castling rights must change the repetition key even though the king returned to e1")
	assert.Equal(t, 1, b.PosCount[initialPos], "the original position must not be double-counted by the round trip")
	assert.Equal(t, 1, b.PosCount[finalPos])
}

// TestEndResultFivefoldRepetitionDraw exercises the actual draw path: the
// same full position (including castling rights and side to move)
// recurring five times must report a draw regardless of strict-rules
// mode, via genuinely repeating king shuffles rather than any single
// irreversible move.
func TestEndResultFivefoldRepetitionDraw(t *testing.T) {
	b := NewBoard(nil, nil, DefaultRulesConfig(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	_, ok := b.EndResult()
	require.False(t, ok)

	e1, _ := ParseSquare("e1")
	e2, _ := ParseSquare("e2")
	e8, _ := ParseSquare("e8")
	e7, _ := ParseSquare("e7")

	for i := 0; i < 4; i++ {
		m, err := GenerateFromAlgebraic(e1, e2, b)
		require.NoError(t, err)
		b.commitMove(m, true)

		m, err = GenerateFromAlgebraic(e8, e7, b)
		require.NoError(t, err)
		b.commitMove(m, true)

		m, err = GenerateFromAlgebraic(e2, e1, b)
		require.NoError(t, err)
		b.commitMove(m, true)

		m, err = GenerateFromAlgebraic(e7, e8, b)
		require.NoError(t, err)
		b.commitMove(m, true)
	}

	res, ok := b.EndResult()
	require.True(t, ok)
	assert.Equal(t, "1/2-1/2", res.Header)
}
