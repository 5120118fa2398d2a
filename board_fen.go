// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

import "strconv"

// toFen renders the board's live state as a FEN string. When onlyPosition
// is true, only the piece-placement field is produced.
func (b *Board) toFen(onlyPosition bool) FEN {
	var sb []byte
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Squares[NewSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb = append(sb, byte('0'+empty))
				empty = 0
			}
			sb = append(sb, p.Symbol())
		}
		if empty > 0 {
			sb = append(sb, byte('0'+empty))
		}
		if rank != 7 {
			sb = append(sb, '/')
		}
	}
	if onlyPosition {
		return FEN(sb)
	}

	sb = append(sb, ' ')
	if b.Turn == White {
		sb = append(sb, 'w')
	} else {
		sb = append(sb, 'b')
	}

	sb = append(sb, ' ')
	castling := b.castlingFieldString()
	sb = append(sb, castling...)

	sb = append(sb, ' ')
	if b.EnPassantSqr.Valid() {
		sb = append(sb, b.EnPassantSqr.String()...)
	} else {
		sb = append(sb, '-')
	}

	sb = append(sb, ' ')
	sb = append(sb, strconv.Itoa(b.HalfMoveCount)...)
	sb = append(sb, ' ')
	sb = append(sb, strconv.Itoa(b.TurnNum)...)

	return FEN(sb)
}

func (b *Board) castlingFieldString() string {
	s := ""
	if b.CastlingRights[White].Contains(CastleKingside) {
		s += "K"
	}
	if b.CastlingRights[White].Contains(CastleQueenside) {
		s += "Q"
	}
	if b.CastlingRights[Black].Contains(CastleKingside) {
		s += "k"
	}
	if b.CastlingRights[Black].Contains(CastleQueenside) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// ToFen renders the board's live state as a full 6-field FEN string.
func (b *Board) ToFen() FEN {
	return b.toFen(false)
}
