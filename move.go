// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

import (
	"strings"
)

// Move is a single attempted move: origin, destination, the piece moved,
// any captured/promotion piece, its attribute Flags, and lazily-rendered
// textual forms.
type Move struct {
	Orig           Square
	Dest           Square
	MovedPiece     Piece
	CapturedPiece  Piece
	PromotionPiece Piece
	Flags          Flags
	Legal          bool
	Wildcard       bool
	Detail         map[string]any

	algebraic string
	uci       string
	san       string
	sanKnown  bool
	fen       FEN
	fenKnown  bool
}

// NewMove constructs a Move and computes its algebraic/UCI renderings.
func NewMove(orig, dest Square, moved, captured, promotion Piece, flags Flags, detail map[string]any) *Move {
	m := &Move{
		Orig:           orig,
		Dest:           dest,
		MovedPiece:     moved,
		CapturedPiece:  captured,
		PromotionPiece: promotion,
		Flags:          flags,
		Detail:         detail,
	}
	m.algebraic = m.buildAlgebraic()
	m.uci = m.buildUCI()
	return m
}

func (m *Move) buildAlgebraic() string {
	sep := "-"
	if m.Flags.Contains(FlagCapture) || m.Flags.Contains(FlagEnPassant) {
		sep = "x"
	}
	s := m.Orig.String() + sep + m.Dest.String()
	if !m.PromotionPiece.IsEmpty() {
		s += "=" + string(symbolTable[m.PromotionPiece.Type])
	}
	return s
}

func (m *Move) buildUCI() string {
	s := m.Orig.String() + m.Dest.String()
	if !m.PromotionPiece.IsEmpty() {
		s += strings.ToLower(string(symbolTable[m.PromotionPiece.Type]))
	}
	return s
}

// Algebraic returns the "e2-e4" / "e7xf8=Q" style rendering.
func (m *Move) Algebraic() string { return m.algebraic }

// UCI returns the "e2e4" / "e7f8q" style rendering.
func (m *Move) UCI() string { return m.uci }

// FEN returns the FEN of the position after m, if it was computed via
// Board.GenerateMoves(IncludeFEN: true) or explicitly set.
func (m *Move) FEN() (FEN, bool) { return m.fen, m.fenKnown }

func (m *Move) setFEN(f FEN) {
	m.fen = f
	m.fenKnown = true
}

// SAN returns the move's Standard Algebraic Notation, computing and
// caching it against board on first use.
func (m *Move) SAN(board *Board) string {
	if m.sanKnown {
		return m.san
	}
	m.san = board.toSAN(m)
	m.sanKnown = true
	return m.san
}

// cachedSAN returns the already-computed SAN, or "" if none is cached.
func (m *Move) cachedSAN() (string, bool) {
	return m.san, m.sanKnown
}

// WildcardMoves is the set of SAN tokens treated as "any legal move" when
// replaying a recorded line.
var WildcardMoves = map[string]bool{
	"--":  true,
	"..":  true,
	"...": true,
	"*":   true,
}

// IsWildcardSAN reports whether san is a wildcard token.
func IsWildcardSAN(san string) bool {
	return WildcardMoves[san]
}

// UP and DOWN are the 0x88 deltas for a single rank step toward rank 8
// and rank 1 respectively.
const (
	UP   = -16
	DOWN = 16
)

// PawnOffsets holds, per color, [straightAdvance, doubleAdvance,
// leftCapture, rightCapture] 0x88 deltas.
var PawnOffsets = map[Color][4]int{
	White: {-16, -32, -17, -15},
	Black: {16, 32, 17, 15},
}

// PieceOffsets holds the ray/step deltas for non-pawn pieces.
var PieceOffsets = map[PieceType][]int{
	Knight: {-18, -33, -31, -14, 18, 33, 31, 14},
	Bishop: {-17, -15, 17, 15},
	Rook:   {-16, -1, 1, 16},
	Queen:  {-17, -16, -15, -1, 1, 15, 16, 17},
	King:   {-17, -16, -15, -1, 1, 15, 16, 17},
}

const (
	shiftPawn = iota
	shiftKnight
	shiftBishop
	shiftRook
	shiftQueen
	shiftKing
)

// SHIFTS maps a PieceType to its bit position within an ATTACKS entry.
var SHIFTS = map[PieceType]uint{
	Pawn:   shiftPawn,
	Knight: shiftKnight,
	Bishop: shiftBishop,
	Rook:   shiftRook,
	Queen:  shiftQueen,
	King:   shiftKing,
}

// ATTACKS and RAYS are 240-entry tables indexed by (from - to + 119).
// ATTACKS[idx] is a bitmask of piece-type bits (1<<SHIFTS[type]) that can
// geometrically reach across that 0x88 delta; RAYS[idx] is the 0x88 step
// a sliding piece must walk from the attacker toward the victim.
var ATTACKS [240]uint16
var RAYS [240]int

func isSliding(t PieceType) bool {
	return t == Bishop || t == Rook || t == Queen
}

func init() {
	setAttack := func(offset int, shift uint) {
		idx := offset + 119
		if idx < 0 || idx >= 240 {
			return
		}
		ATTACKS[idx] |= 1 << shift
	}
	setRay := func(offset, step int) {
		idx := offset + 119
		if idx < 0 || idx >= 240 {
			return
		}
		RAYS[idx] = -step
	}

	// Pawns: single-step diagonal captures, both colors' directions.
	for _, o := range []int{-17, -15, 15, 17} {
		setAttack(o, shiftPawn)
	}

	// Knights: fixed jumps, non-sliding.
	for _, o := range PieceOffsets[Knight] {
		setAttack(o, shiftKnight)
	}

	// Kings: one step in each of the 8 directions, non-sliding.
	for _, dir := range PieceOffsets[King] {
		setAttack(dir, shiftKing)
	}

	// Bishops, rooks and queens: sliding rays.
	slide := func(dirs []int, shift uint) {
		for _, dir := range dirs {
			for step := 1; step < 8; step++ {
				o := dir * step
				setAttack(o, shift)
				setRay(o, dir)
			}
		}
	}
	slide(PieceOffsets[Bishop], shiftBishop)
	slide(PieceOffsets[Rook], shiftRook)
	slide(PieceOffsets[Queen], shiftQueen)
}

// GenerateFromAlgebraic resolves an origin/destination pair against
// board's legal moves, returning the unambiguous Move or an error.
func GenerateFromAlgebraic(orig, dest Square, board *Board) (*Move, error) {
	moves := board.GenerateMoves(MoveGenOptions{OnlyForSquare: &orig, OnlyLegal: true})
	for _, m := range moves {
		if m.Dest == dest {
			return m, nil
		}
	}
	return nil, newMoveError("no legal move from %s to %s", orig, dest)
}

// GenerateFromSan resolves a SAN token against board's legal moves,
// returning the unambiguous Move or an error. A wildcard token yields the
// first legal move with Wildcard set, or an error when there is no legal
// move.
func GenerateFromSan(san string, board *Board) (*Move, error) {
	moves := board.GenerateMoves(MoveGenOptions{OnlyLegal: true, IncludeSAN: true})
	if IsWildcardSAN(san) {
		if len(moves) == 0 {
			return nil, newMoveError("wildcard move %q has no legal reply", san)
		}
		wc := moves[0]
		wc.Wildcard = true
		return wc, nil
	}
	trimmed := strings.TrimRight(san, "+#")
	for _, m := range moves {
		if strings.TrimRight(m.SAN(board), "+#") == trimmed {
			return m, nil
		}
	}
	return nil, newMoveError("no legal move matches SAN %q", san)
}
