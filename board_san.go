// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

import "strconv"

// toSAN renders m in Standard Algebraic Notation against the board
// position it was generated from. Disambiguation and check/mate suffixes
// depend on m's already-computed Flags (set by Board.annotateMove before
// this is invoked), per spec §4.D.
func (b *Board) toSAN(m *Move) string {
	var s string
	switch {
	case m.Flags.Contains(FlagKSideCastle):
		s = "O-O"
	case m.Flags.Contains(FlagQSideCastle):
		s = "O-O-O"
	case m.MovedPiece.Type == Pawn:
		if m.Flags.Contains(FlagCapture) {
			s = string(rune('a'+m.Orig.File())) + "x" + m.Dest.String()
		} else {
			s = m.Dest.String()
		}
		if m.Flags.Contains(FlagPromotion) {
			s += "=" + string(symbolTable[m.PromotionPiece.Type])
		}
	default:
		s = string(symbolTable[m.MovedPiece.Type])
		s += b.disambiguateMove(m)
		if m.Flags.Contains(FlagCapture) {
			s += "x"
		}
		s += m.Dest.String()
	}
	switch {
	case m.Flags.Contains(FlagCheckmate):
		s += "#"
	case m.Flags.Contains(FlagCheck):
		s += "+"
	}
	return s
}

// disambiguateMove returns the file, rank, or full-square prefix needed
// to distinguish m from other legal moves of the same piece type to the
// same destination, or "" if none is needed.
func (b *Board) disambiguateMove(m *Move) string {
	if m.MovedPiece.Type == Pawn || m.MovedPiece.Type == King {
		return ""
	}
	others := b.GenerateMoves(MoveGenOptions{OnlyLegal: true})
	var conflicts []Square
	for _, o := range others {
		if o == m {
			continue
		}
		if o.Dest == m.Dest && o.MovedPiece.Type == m.MovedPiece.Type &&
			o.MovedPiece.Color == m.MovedPiece.Color && o.Orig != m.Orig {
			conflicts = append(conflicts, o.Orig)
		}
	}
	if len(conflicts) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, c := range conflicts {
		if c.File() == m.Orig.File() {
			sameFile = true
		}
		if c.Rank() == m.Orig.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(rune('a' + m.Orig.File()))
	case !sameRank:
		return strconv.Itoa(m.Orig.DisplayRank())
	default:
		return m.Orig.String()
	}
}
