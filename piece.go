// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

// Color identifies one of the two sides in a chess game.
type Color int8

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType identifies the kind of a chess piece, independent of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a value type carrying both the piece type and its color. The
// zero value (NoPieceType, White) is the distinguished "empty" piece that
// occupies both off-board and vacant squares.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the distinguished empty piece value.
var NoPiece = Piece{Type: NoPieceType}

// IsEmpty reports whether p represents an empty (or off-board) square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// symbolTable maps a PieceType to its uppercase FEN letter.
var symbolTable = [...]byte{
	NoPieceType: ' ',
	Pawn:        'P',
	Knight:      'N',
	Bishop:      'B',
	Rook:        'R',
	Queen:       'Q',
	King:        'K',
}

// Symbol returns the FEN letter for p: uppercase for white, lowercase for
// black. Returns a space for NoPiece.
func (p Piece) Symbol() byte {
	ch := symbolTable[p.Type]
	if ch == ' ' {
		return ch
	}
	if p.Color == Black {
		return ch + ('a' - 'A')
	}
	return ch
}

func (p Piece) String() string {
	return string(p.Symbol())
}

// ForSymbol returns the piece matching the given FEN letter. Symbol
// matching is case sensitive: uppercase letters are white, lowercase are
// black. The second return value is false for any character outside
// "PRNBQKprnbqk".
func ForSymbol(ch byte) (Piece, bool) {
	var color Color
	upper := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
		upper = ch - ('a' - 'A')
	} else {
		color = White
	}
	for t, sym := range symbolTable {
		if PieceType(t) == NoPieceType {
			continue
		}
		if sym == upper {
			return Piece{Type: PieceType(t), Color: color}, true
		}
	}
	return NoPiece, false
}

// WhitePromoPieces enumerates the pieces a white pawn may promote to, in
// the canonical order queen, rook, bishop, knight.
var WhitePromoPieces = []Piece{
	{Type: Queen, Color: White},
	{Type: Rook, Color: White},
	{Type: Bishop, Color: White},
	{Type: Knight, Color: White},
}

// BlackPromoPieces is the black-side counterpart of WhitePromoPieces.
var BlackPromoPieces = []Piece{
	{Type: Queen, Color: Black},
	{Type: Rook, Color: Black},
	{Type: Bishop, Color: Black},
	{Type: Knight, Color: Black},
}

// PromoPiecesFor returns the promotion piece list for the given color.
func PromoPiecesFor(c Color) []Piece {
	if c == White {
		return WhitePromoPieces
	}
	return BlackPromoPieces
}
