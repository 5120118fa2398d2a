// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

// MoveGenOptions controls Board.GenerateMoves. OnlyForSquare restricts
// the origin square (nil means unrestricted — the zero Square, a8,
// would otherwise be indistinguishable from "unset"). OnlyLegal filters
// out moves that are blocked, illegal, or leave the mover's own king in
// check. IncludeSAN and IncludeFEN eagerly compute and cache those
// renderings on each surviving legal move. Detailed populates
// Move.Detail["attackers"] with the list of opponent squares that attack
// the destination square once the move is played. SkipCheckmate skips the
// (expensive) checkmate-flag computation when only the check flag is
// needed.
type MoveGenOptions struct {
	OnlyForSquare *Square
	OnlyLegal     bool
	IncludeSAN    bool
	IncludeFEN    bool
	Detailed      bool
	SkipCheckmate bool
}

// moveCache holds the unrestricted pseudo-legal move list — including
// MOVE_BLOCKED/MOVE_ILLEGAL entries kept for UI callers — for the
// board's current position. It is invalidated on any mutation.
type moveCache struct {
	pseudoLegal []*Move
}

func promoRankFor(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

func homeRankFor(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// GenerateMoves returns the moves matching opts. Pseudo-legal generation
// is cached per board mutation; legality filtering and SAN/FEN
// annotation are computed fresh against opts on every call.
func (b *Board) GenerateMoves(opts MoveGenOptions) []*Move {
	if b.cache == nil {
		b.cache = &moveCache{pseudoLegal: b.generatePseudoLegal()}
	}
	var result []*Move
	for _, m := range b.cache.pseudoLegal {
		if opts.OnlyForSquare != nil && m.Orig != *opts.OnlyForSquare {
			continue
		}
		if m.Flags.Contains(FlagMoveBlocked) || m.Flags.Contains(FlagMoveIllegal) {
			m.Legal = false
		} else if b.wouldLeaveKingInCheck(m, b.Turn) {
			m.Flags.Add(FlagPinned)
			m.Legal = false
		} else {
			m.Legal = true
		}
		if opts.OnlyLegal && !m.Legal {
			continue
		}
		if m.Legal && (opts.IncludeFEN || opts.IncludeSAN || opts.Detailed) {
			b.annotateMove(m, opts)
		}
		result = append(result, m)
	}
	return result
}

// annotateMove fills in the check/checkmate flags and, when requested,
// the cached FEN/SAN renderings and the per-move attacker list for the
// legal move m.
func (b *Board) annotateMove(m *Move, opts MoveGenOptions) {
	mb := b.resetMockBoard()
	mb.commitMove(m, false)
	opponent := m.MovedPiece.Color.Opposite()
	inCheck, _ := mb.IsAttacked(m.MovedPiece.Color, mb.KingPos[opponent], false)
	if inCheck {
		m.Flags.Add(FlagCheck)
		if !opts.SkipCheckmate && len(mb.GenerateMoves(MoveGenOptions{OnlyLegal: true})) == 0 {
			m.Flags.Add(FlagCheckmate)
		}
	}
	if opts.IncludeFEN {
		m.setFEN(mb.toFen(false))
	}
	if opts.Detailed {
		_, attackers := mb.IsAttacked(opponent, m.Dest, true)
		if m.Detail == nil {
			m.Detail = make(map[string]any)
		}
		m.Detail["attackers"] = attackers
	}
	if opts.IncludeSAN {
		m.san = b.toSAN(m)
		m.sanKnown = true
	}
}

func (b *Board) generatePseudoLegal() []*Move {
	var moves []*Move
	color := b.Turn
	for sq := Square(0); sq < 128; sq++ {
		if sq.OffBoard() {
			continue
		}
		p := b.Squares[sq]
		if p.IsEmpty() || p.Color != color {
			continue
		}
		switch p.Type {
		case Pawn:
			moves = append(moves, b.pawnMoves(sq, p)...)
		case Knight, King:
			moves = append(moves, b.stepMoves(sq, p)...)
		case Bishop, Rook, Queen:
			moves = append(moves, b.slideMoves(sq, p)...)
		}
	}
	moves = append(moves, b.castlingMoves(color)...)
	return moves
}

// pawnMoves implements spec §4.F move-generation algorithm step 2's pawn
// case: straight advance (NORMAL or MOVE_BLOCKED), double advance from
// the home rank (also MOVE_BLOCKED if the single-advance square or the
// double-advance square is occupied), diagonal captures (CAPTURE or
// EN_PASSANT), each replicated per promotion piece on the back rank.
func (b *Board) pawnMoves(sq Square, p Piece) []*Move {
	var moves []*Move
	offs := PawnOffsets[p.Color]
	promoRank := promoRankFor(p.Color)

	straight := sq + Square(offs[0])
	singleBlocked := false
	if straight.Valid() {
		if b.Squares[straight].IsEmpty() {
			moves = append(moves, b.pawnAdvance(sq, straight, p, promoRank, NewFlags(FlagNormal))...)
		} else {
			singleBlocked = true
			moves = append(moves, NewMove(sq, straight, p, NoPiece, NoPiece, NewFlags(FlagMoveBlocked), nil))
		}
		if sq.Rank() == homeRankFor(p.Color) {
			dbl := sq + Square(offs[1])
			if dbl.Valid() {
				if !singleBlocked && b.Squares[dbl].IsEmpty() {
					moves = append(moves, NewMove(sq, dbl, p, NoPiece, NoPiece, NewFlags(FlagNormal, FlagDoubleAdvance), nil))
				} else {
					moves = append(moves, NewMove(sq, dbl, p, NoPiece, NoPiece, NewFlags(FlagMoveBlocked, FlagDoubleAdvance), nil))
				}
			}
		}
	}

	for _, co := range []int{offs[2], offs[3]} {
		dest := sq + Square(co)
		if !dest.Valid() {
			continue
		}
		if b.EnPassantSqr.Valid() && dest == b.EnPassantSqr {
			capSq := dest - Square(offs[0])
			captured := b.Squares[capSq]
			moves = append(moves, NewMove(sq, dest, p, captured, NoPiece, NewFlags(FlagCapture, FlagEnPassant), nil))
			continue
		}
		target := b.Squares[dest]
		if !target.IsEmpty() && target.Color != p.Color {
			moves = append(moves, b.pawnAdvance(sq, dest, p, promoRank, NewFlags(FlagCapture), target)...)
		}
	}
	return moves
}

// pawnAdvance builds either a single quiet/capture move, or one move per
// promotion piece when dest lands on the back rank. captured, if given,
// is the piece taken (NoPiece for a quiet advance).
func (b *Board) pawnAdvance(orig, dest Square, p Piece, promoRank int, flags Flags, captured ...Piece) []*Move {
	cap := NoPiece
	if len(captured) > 0 {
		cap = captured[0]
	}
	if dest.Rank() != promoRank {
		return []*Move{NewMove(orig, dest, p, cap, NoPiece, flags, nil)}
	}
	var moves []*Move
	for _, promo := range PromoPiecesFor(p.Color) {
		f := flags.Copy()
		f.Add(FlagPromotion)
		moves = append(moves, NewMove(orig, dest, p, cap, promo, f, nil))
	}
	return moves
}

// stepMoves generates knight/king moves: a single step per offset, with
// an own-piece landing square recorded as MOVE_BLOCKED rather than
// dropped, so UI callers can still see it.
func (b *Board) stepMoves(sq Square, p Piece) []*Move {
	var moves []*Move
	for _, o := range PieceOffsets[p.Type] {
		dest := sq + Square(o)
		if !dest.Valid() {
			continue
		}
		target := b.Squares[dest]
		switch {
		case target.IsEmpty():
			moves = append(moves, NewMove(sq, dest, p, NoPiece, NoPiece, NewFlags(FlagNormal), nil))
		case target.Color != p.Color:
			moves = append(moves, NewMove(sq, dest, p, target, NoPiece, NewFlags(FlagCapture), nil))
		default:
			moves = append(moves, NewMove(sq, dest, p, NoPiece, NoPiece, NewFlags(FlagMoveBlocked), nil))
		}
	}
	return moves
}

// slideMoves generates bishop/rook/queen rays. Once a ray is blocked (by
// a capture or an own piece), the remaining squares along that ray are
// still emitted, flagged MOVE_BLOCKED, so UI callers can render the full
// ray.
func (b *Board) slideMoves(sq Square, p Piece) []*Move {
	var moves []*Move
	for _, dir := range PieceOffsets[p.Type] {
		blocked := false
		for step := 1; step < 8; step++ {
			dest := sq + Square(dir*step)
			if !dest.Valid() {
				break
			}
			if blocked {
				moves = append(moves, NewMove(sq, dest, p, NoPiece, NoPiece, NewFlags(FlagMoveBlocked), nil))
				continue
			}
			target := b.Squares[dest]
			switch {
			case target.IsEmpty():
				moves = append(moves, NewMove(sq, dest, p, NoPiece, NoPiece, NewFlags(FlagNormal), nil))
			case target.Color != p.Color:
				moves = append(moves, NewMove(sq, dest, p, target, NoPiece, NewFlags(FlagCapture), nil))
				blocked = true
			default:
				moves = append(moves, NewMove(sq, dest, p, NoPiece, NoPiece, NewFlags(FlagMoveBlocked), nil))
				blocked = true
			}
		}
	}
	return moves
}

// castlingMoves always emits a candidate move for each retained right,
// flagging it MOVE_BLOCKED (intermediate squares occupied) or
// MOVE_ILLEGAL (king in check, or the transit/destination square is
// attacked) rather than omitting it, per spec §4.F step 2.
func (b *Board) castlingMoves(color Color) []*Move {
	var moves []*Move
	kingSq := b.KingPos[color]
	if !kingSq.Valid() {
		return nil
	}
	opp := color.Opposite()
	rights := b.CastlingRights[color]
	homeRank := 7
	if color == Black {
		homeRank = 0
	}
	kingInCheck, _ := b.IsAttacked(opp, kingSq, false)
	kingPiece := b.Squares[kingSq]

	if rights.Contains(CastleKingside) {
		pass := NewSquare(5, homeRank)
		land := NewSquare(6, homeRank)
		if !b.Squares[pass].IsEmpty() || !b.Squares[land].IsEmpty() {
			moves = append(moves, NewMove(kingSq, land, kingPiece, NoPiece, NoPiece, NewFlags(FlagMoveBlocked, FlagKSideCastle), nil))
		} else {
			attPass, _ := b.IsAttacked(opp, pass, false)
			attLand, _ := b.IsAttacked(opp, land, false)
			flags := NewFlags(FlagKSideCastle)
			if kingInCheck || attPass || attLand {
				flags.Add(FlagMoveIllegal)
			}
			moves = append(moves, NewMove(kingSq, land, kingPiece, NoPiece, NoPiece, flags, nil))
		}
	}
	if rights.Contains(CastleQueenside) {
		dFile := NewSquare(3, homeRank)
		cFile := NewSquare(2, homeRank)
		bFile := NewSquare(1, homeRank)
		if !b.Squares[dFile].IsEmpty() || !b.Squares[cFile].IsEmpty() || !b.Squares[bFile].IsEmpty() {
			moves = append(moves, NewMove(kingSq, cFile, kingPiece, NoPiece, NoPiece, NewFlags(FlagMoveBlocked, FlagQSideCastle), nil))
		} else {
			attD, _ := b.IsAttacked(opp, dFile, false)
			attC, _ := b.IsAttacked(opp, cFile, false)
			flags := NewFlags(FlagQSideCastle)
			if kingInCheck || attD || attC {
				flags.Add(FlagMoveIllegal)
			}
			moves = append(moves, NewMove(kingSq, cFile, kingPiece, NoPiece, NoPiece, flags, nil))
		}
	}
	return moves
}
