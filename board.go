// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

import "fmt"

// original rook corners, used to track castling-rights loss.
var (
	whiteKRookSq = NewSquare(7, 7) // h1
	whiteQRookSq = NewSquare(0, 7) // a1
	blackKRookSq = NewSquare(7, 0) // h8
	blackQRookSq = NewSquare(0, 0) // a8
	whiteKingSq  = NewSquare(4, 7) // e1
	blackKingSq  = NewSquare(4, 0) // e8
)

// Board is the mutable chess state machine described in spec §4.F: the
// piece array, castling rights, king positions, en passant square,
// move/ply/turn counters, repetition table, committed-move history and
// variation/continuation children.
type Board struct {
	Squares        [128]Piece
	CastlingRights [2]Flags
	KingPos        [2]Square
	EnPassantSqr   Square
	Turn           Color
	HalfMoveCount  int
	PlyNum         int
	TurnNum        int

	History           []*Turn
	SelectedTurnIndex int
	PosCount          map[FEN]int

	// ID is this board's index within the owning Game's Variations
	// slice. ParentBoardID/ParentBranchTurnIndex are back-references by
	// ID rather than pointer, per the ownership design in spec §9.
	ID                    int
	ParentBoardID         int
	ParentBranchTurnIndex int
	Continuation          bool
	IsMock                bool

	game   *Game
	rules  RulesConfig
	logger Logger

	mockBoard *Board
	cache     *moveCache
}

const noParentBoardID = -1

// newBlankBoard allocates a Board in its construction-time state (spec
// §4.F Construction): empty squares, full castling rights, white to move,
// no history selected.
func newBlankBoard() *Board {
	b := &Board{
		EnPassantSqr:          NoSquare,
		Turn:                  White,
		TurnNum:               1,
		SelectedTurnIndex:      -1,
		PosCount:              make(map[FEN]int),
		ParentBoardID:         noParentBoardID,
		ParentBranchTurnIndex: -1,
		logger:                NewNopLogger(),
		rules:                 DefaultRulesConfig(),
	}
	for i := range b.Squares {
		b.Squares[i] = NoPiece
	}
	b.CastlingRights[White] = NewFlags(CastleKingside, CastleQueenside)
	b.CastlingRights[Black] = NewFlags(CastleKingside, CastleQueenside)
	b.KingPos[White] = NoSquare
	b.KingPos[Black] = NoSquare
	return b
}

// NewBoard builds an empty, non-mock board registered with game. If fen
// is non-empty, LoadFen is invoked immediately.
func NewBoard(game *Game, logger Logger, rules RulesConfig, fen FEN) *Board {
	b := newBlankBoard()
	if logger != nil {
		b.logger = logger
	}
	b.rules = rules
	b.game = game
	if game != nil {
		game.registerBoard(b)
	}
	if fen != "" {
		b.LoadFen(fen)
	}
	return b
}

// LoadFen validates and parses fen into the board. On failure the board
// is left unmodified and false is returned.
func (b *Board) LoadFen(fen FEN) bool {
	result := fen.Validate(false, b.rules.rulesOrDefault())
	if !result.IsValid {
		b.logger.Error("LoadFen: invalid FEN", "fen", string(fen), "code", result.ErrorCode, "message", result.ErrorMessage)
		return false
	}

	fields := splitFenFields(string(fen))
	placement, side, castling, ep, halfMove, fullMove := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	for i := range b.Squares {
		b.Squares[i] = NoPiece
	}
	b.History = nil
	b.SelectedTurnIndex = -1
	b.PosCount = make(map[FEN]int)
	b.invalidateMoveCache()
	b.KingPos[White] = NoSquare
	b.KingPos[Black] = NoSquare

	rank := 0
	for _, row := range splitRows(placement) {
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, _ := ForSymbol(byte(ch))
			sq := NewSquare(file, rank)
			b.Squares[sq] = p
			if p.Type == King {
				b.KingPos[p.Color] = sq
			}
			file++
		}
		rank++
	}

	if side == "w" {
		b.Turn = White
	} else {
		b.Turn = Black
	}

	b.CastlingRights[White].Clear()
	b.CastlingRights[Black].Clear()
	for _, ch := range castling {
		switch ch {
		case 'K':
			b.CastlingRights[White].Add(CastleKingside)
		case 'Q':
			b.CastlingRights[White].Add(CastleQueenside)
		case 'k':
			b.CastlingRights[Black].Add(CastleKingside)
		case 'q':
			b.CastlingRights[Black].Add(CastleQueenside)
		}
	}

	if ep == "-" {
		b.EnPassantSqr = NoSquare
	} else {
		sq, err := ParseSquare(ep)
		if err != nil {
			b.EnPassantSqr = NoSquare
		} else {
			b.EnPassantSqr = sq
		}
	}

	b.HalfMoveCount = atoiOr(halfMove, 0)
	b.TurnNum = atoiOr(fullMove, 1)
	b.PlyNum = 2*(b.TurnNum-1) + int(b.Turn)

	b.PosCount[fen.PositionFEN()] = 1

	return true
}

// PlacePiece sets sq to p, tracking king positions. Placing a second king
// of the same color is rejected.
func (b *Board) PlacePiece(sq Square, p Piece) error {
	if !sq.Valid() {
		return fmt.Errorf("chesscore: square %v is off-board", sq)
	}
	if p.Type == King && b.KingPos[p.Color].Valid() && b.KingPos[p.Color] != sq {
		b.logger.Error("PlacePiece: rejected second king", "color", p.Color.String())
		return fmt.Errorf("chesscore: %s already has a king on the board", p.Color)
	}
	b.Squares[sq] = p
	if p.Type == King {
		b.KingPos[p.Color] = sq
	}
	b.invalidateMoveCache()
	return nil
}

// RemovePiece clears sq and returns the piece that was there (NoPiece if
// none).
func (b *Board) RemovePiece(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	p := b.Squares[sq]
	b.Squares[sq] = NoPiece
	if p.Type == King && b.KingPos[p.Color] == sq {
		b.KingPos[p.Color] = NoSquare
	}
	b.invalidateMoveCache()
	return p
}

// currentPositionFEN renders the position-only FEN (fields 1..4) of the
// live position, used as the repetition-counting key.
func (b *Board) currentPositionFEN() FEN {
	return b.toFen(false).PositionFEN()
}

func (b *Board) updateCastlingRightsForSquare(sq Square, color Color) {
	switch {
	case color == White && sq == whiteKRookSq:
		b.CastlingRights[White].Remove(CastleKingside, true)
	case color == White && sq == whiteQRookSq:
		b.CastlingRights[White].Remove(CastleQueenside, true)
	case color == Black && sq == blackKRookSq:
		b.CastlingRights[Black].Remove(CastleKingside, true)
	case color == Black && sq == blackQRookSq:
		b.CastlingRights[Black].Remove(CastleQueenside, true)
	}
}

// commitMove applies move's effect to the board's live fields only
// (squares, castling rights, king positions, en passant square, turn,
// ply/turn numbers, half-move clock, and — when updatePosCount is true —
// the repetition table). It never touches History; callers that are
// recording a real move append a Turn themselves. Returns the piece that
// was removed from the board (NoPiece if none), matching spec §4.F.
func (b *Board) commitMove(move *Move, updatePosCount bool) Piece {
	moved := b.Squares[move.Orig]
	removed := b.Squares[move.Dest]

	b.Squares[move.Dest] = moved
	b.Squares[move.Orig] = NoPiece

	if move.Flags.Contains(FlagEnPassant) {
		capSq := move.Dest - Square(PawnOffsets[moved.Color][0])
		removed = b.Squares[capSq]
		b.Squares[capSq] = NoPiece
	}

	if move.Flags.Contains(FlagPromotion) {
		b.Squares[move.Dest] = move.PromotionPiece
	}

	if moved.Type == King {
		b.KingPos[moved.Color] = move.Dest
		b.CastlingRights[moved.Color].Clear()
		if move.Flags.Contains(FlagKSideCastle) {
			rookFrom, rookTo := move.Dest+1, move.Dest-1
			b.Squares[rookTo] = b.Squares[rookFrom]
			b.Squares[rookFrom] = NoPiece
		} else if move.Flags.Contains(FlagQSideCastle) {
			rookFrom, rookTo := move.Dest-2, move.Dest+1
			b.Squares[rookTo] = b.Squares[rookFrom]
			b.Squares[rookFrom] = NoPiece
		}
	}

	b.updateCastlingRightsForSquare(move.Orig, moved.Color)
	if !removed.IsEmpty() {
		b.updateCastlingRightsForSquare(move.Dest, removed.Color)
	}

	if move.Flags.Contains(FlagDoubleAdvance) {
		b.EnPassantSqr = move.Orig + Square(PawnOffsets[moved.Color][0])
	} else {
		b.EnPassantSqr = NoSquare
	}

	b.Turn = b.Turn.Opposite()
	b.PlyNum++
	b.TurnNum = b.PlyNum/2 + 1
	b.invalidateMoveCache()

	irreversible := moved.Type == Pawn || move.Flags.Contains(FlagCapture) || move.Flags.Contains(FlagEnPassant)
	if irreversible {
		b.HalfMoveCount = 0
		if updatePosCount {
			b.PosCount = make(map[FEN]int)
		}
	} else {
		b.HalfMoveCount++
	}
	if updatePosCount {
		pos := b.currentPositionFEN()
		b.PosCount[pos] = b.PosCount[pos] + 1
	}

	return removed
}

// commitUndoMoves reverts turns (given in chronological order) from the
// live board. It restores scalar state from the first turn's snapshot
// (the state immediately before that turn was played), then replays the
// squares-level undo in reverse order. PosCount is intentionally left
// untouched (spec §9 open question 1: navigation, not history mutation).
func (b *Board) commitUndoMoves(turns []*Turn) {
	if len(turns) == 0 {
		return
	}

	first := turns[0]
	b.CastlingRights = first.CastlingRights
	b.KingPos = first.KingPos
	b.Turn = first.ColorToMove
	b.EnPassantSqr = first.EnPassantSqr
	b.TurnNum = first.TurnNum
	b.PlyNum = first.PlyNum
	b.HalfMoveCount = first.HalfMoveClock

	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		m := t.Move
		b.Squares[m.Orig] = m.MovedPiece
		if m.Flags.Contains(FlagEnPassant) {
			b.Squares[m.Dest] = NoPiece
			capSq := m.Dest - Square(PawnOffsets[m.MovedPiece.Color][0])
			b.Squares[capSq] = m.CapturedPiece
		} else {
			b.Squares[m.Dest] = m.CapturedPiece
		}
		if m.MovedPiece.Type == King {
			if m.Flags.Contains(FlagKSideCastle) {
				rookFrom, rookTo := m.Dest+1, m.Dest-1
				b.Squares[rookFrom] = b.Squares[rookTo]
				b.Squares[rookTo] = NoPiece
			} else if m.Flags.Contains(FlagQSideCastle) {
				rookFrom, rookTo := m.Dest-2, m.Dest+1
				b.Squares[rookFrom] = b.Squares[rookTo]
				b.Squares[rookTo] = NoPiece
			}
		}
	}
	b.invalidateMoveCache()
}

// SelectTurn navigates to the given history index, committing or
// undoing one turn at a time from the current selection. It does not
// mutate PosCount (navigation, not history mutation). Returns false if
// index is out of range.
func (b *Board) SelectTurn(index int) bool {
	if index < -1 || index >= len(b.History) {
		return false
	}
	for b.SelectedTurnIndex < index {
		b.SelectedTurnIndex++
		b.commitMove(b.History[b.SelectedTurnIndex].Move, false)
	}
	for b.SelectedTurnIndex > index {
		b.commitUndoMoves([]*Turn{b.History[b.SelectedTurnIndex]})
		b.SelectedTurnIndex--
	}
	return true
}

// resetMockBoard refreshes (and lazily allocates) the scratch board used
// for legality checks, copying only the live scalar/array state.
func (b *Board) resetMockBoard() *Board {
	if b.mockBoard == nil {
		b.mockBoard = &Board{IsMock: true, logger: b.logger, ParentBoardID: noParentBoardID}
	}
	mb := b.mockBoard
	mb.Squares = b.Squares
	mb.CastlingRights = b.CastlingRights
	mb.KingPos = b.KingPos
	mb.EnPassantSqr = b.EnPassantSqr
	mb.Turn = b.Turn
	mb.HalfMoveCount = b.HalfMoveCount
	mb.PlyNum = b.PlyNum
	mb.TurnNum = b.TurnNum
	mb.mockBoard = nil
	mb.cache = nil
	return mb
}

// wouldLeaveKingInCheck plays move on a mock board and reports whether
// mover's king ends up attacked.
func (b *Board) wouldLeaveKingInCheck(move *Move, mover Color) bool {
	mb := b.resetMockBoard()
	mb.commitMove(move, false)
	inCheck, _ := mb.IsAttacked(mover.Opposite(), mb.KingPos[mover], false)
	return inCheck
}

// IsAttacked reports whether any attacker-colored piece attacks target,
// using the ATTACKS/RAYS tables built in move.go. When detailed is true
// the full list of attacking squares is also returned.
func (b *Board) IsAttacked(attacker Color, target Square, detailed bool) (bool, []Square) {
	if !target.Valid() {
		return false, nil
	}
	var attackers []Square
	for sq := Square(0); sq < 128; sq++ {
		if sq.OffBoard() {
			continue
		}
		p := b.Squares[sq]
		if p.IsEmpty() || p.Color != attacker {
			continue
		}
		idx := int(sq) - int(target) + 119
		if idx < 0 || idx >= 240 {
			continue
		}
		shift, ok := SHIFTS[p.Type]
		if !ok || ATTACKS[idx]&(1<<shift) == 0 {
			continue
		}
		if p.Type == Pawn {
			if attacker == White && !(sq.Rank() > target.Rank()) {
				continue
			}
			if attacker == Black && !(sq.Rank() < target.Rank()) {
				continue
			}
		}
		if isSliding(p.Type) {
			ray := RAYS[idx]
			blocked := false
			for s := sq + Square(ray); s != target; s += Square(ray) {
				if !s.Valid() {
					blocked = true
					break
				}
				if !b.Squares[s].IsEmpty() {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
		}
		attackers = append(attackers, sq)
		if !detailed {
			return true, nil
		}
	}
	return len(attackers) > 0, attackers
}

// HasInsufficientMaterial reports whether neither side has enough
// material to deliver checkmate.
func (b *Board) HasInsufficientMaterial() bool {
	var total int
	var minorCount int
	var bishopSquares []Square
	for sq := Square(0); sq < 128; sq++ {
		if sq.OffBoard() {
			continue
		}
		p := b.Squares[sq]
		if p.IsEmpty() || p.Type == King {
			continue
		}
		total++
		switch p.Type {
		case Bishop:
			minorCount++
			bishopSquares = append(bishopSquares, sq)
		case Knight:
			minorCount++
		default:
			return false
		}
	}
	if total == 0 {
		return true
	}
	if total == 1 && minorCount == 1 {
		return true
	}
	if total == len(bishopSquares) && total > 0 {
		sum := 0
		for _, sq := range bishopSquares {
			sum += squareColorValue(sq)
		}
		return sum == total || sum == -total
	}
	return false
}

// squareColorValue returns +1 for a light square and -1 for a dark
// square, used to test same-colored-bishop insufficient material.
func squareColorValue(sq Square) int {
	if (sq.File()+sq.Rank())%2 == 0 {
		return 1
	}
	return -1
}

// ValidateOptions controls Board.Validate's strictness.
type ValidateOptions struct {
	FixMinor   bool
	IgnoreTurn bool
}

// Validate checks the board for structural consistency (spec §4.F Board
// validation): piece/pawn/king counts, castling-right consistency, and
// that only the side to move (unless IgnoreTurn) is in check.
func (b *Board) Validate(opts ValidateOptions) error {
	var pawns, officers [2]int
	var kings [2]int
	for sq := Square(0); sq < 128; sq++ {
		if sq.OffBoard() {
			continue
		}
		p := b.Squares[sq]
		if p.IsEmpty() {
			continue
		}
		switch p.Type {
		case Pawn:
			pawns[p.Color]++
		case King:
			kings[p.Color]++
		default:
			officers[p.Color]++
		}
	}

	for _, c := range []Color{White, Black} {
		if kings[c] != 1 {
			return fmt.Errorf("chesscore: %s must have exactly one king", c)
		}
		if pawns[c] > 8 {
			return fmt.Errorf("chesscore: %s has too many pawns", c)
		}
		if pawns[c]+officers[c]+1 > 16 {
			return fmt.Errorf("chesscore: %s has too many pieces", c)
		}
	}

	for _, c := range []Color{White, Black} {
		homeKing := whiteKingSq
		kRook, qRook := whiteKRookSq, whiteQRookSq
		if c == Black {
			homeKing, kRook, qRook = blackKingSq, blackKRookSq, blackQRookSq
		}
		if b.CastlingRights[c].Contains(CastleKingside) {
			if b.KingPos[c] != homeKing || b.Squares[kRook] != (Piece{Type: Rook, Color: c}) {
				if opts.FixMinor {
					b.CastlingRights[c].Remove(CastleKingside, true)
				} else {
					return fmt.Errorf("chesscore: %s kingside castling rights are inconsistent with piece placement", c)
				}
			}
		}
		if b.CastlingRights[c].Contains(CastleQueenside) {
			if b.KingPos[c] != homeKing || b.Squares[qRook] != (Piece{Type: Rook, Color: c}) {
				if opts.FixMinor {
					b.CastlingRights[c].Remove(CastleQueenside, true)
				} else {
					return fmt.Errorf("chesscore: %s queenside castling rights are inconsistent with piece placement", c)
				}
			}
		}
	}

	whiteInCheck, _ := b.IsAttacked(Black, b.KingPos[White], false)
	blackInCheck, _ := b.IsAttacked(White, b.KingPos[Black], false)
	if whiteInCheck && blackInCheck {
		return fmt.Errorf("chesscore: both kings cannot be in check simultaneously")
	}
	if !opts.IgnoreTurn {
		if b.Turn == White && blackInCheck {
			return fmt.Errorf("chesscore: side not to move (black) cannot be in check")
		}
		if b.Turn == Black && whiteInCheck {
			return fmt.Errorf("chesscore: side not to move (white) cannot be in check")
		}
	}

	return nil
}

// ResultPair holds the per-color terminal-state label ("win", "loss",
// "draw").
type ResultPair struct {
	W string
	B string
}

// EndResult classifies the terminal state of the current position.
type EndResult struct {
	Result ResultPair
	Header string
}

func checkmateEndResult(winner Color) *EndResult {
	if winner == White {
		return &EndResult{Result: ResultPair{W: "win", B: "loss"}, Header: "1-0"}
	}
	return &EndResult{Result: ResultPair{W: "loss", B: "win"}, Header: "0-1"}
}

func drawEndResult() *EndResult {
	return &EndResult{Result: ResultPair{W: "draw", B: "draw"}, Header: "1/2-1/2"}
}

// EndResult classifies the terminal state of the position (not the
// game), in priority order: checkmate, stalemate, 75-move rule,
// 50-move rule (only under strict rules), fivefold repetition,
// threefold repetition (only under strict rules).
func (b *Board) EndResult() (*EndResult, bool) {
	legal := b.GenerateMoves(MoveGenOptions{OnlyLegal: true})
	if len(legal) == 0 {
		inCheck, _ := b.IsAttacked(b.Turn.Opposite(), b.KingPos[b.Turn], false)
		if inCheck {
			return checkmateEndResult(b.Turn.Opposite()), true
		}
		return drawEndResult(), true
	}

	if b.HalfMoveCount >= 150 {
		return drawEndResult(), true
	}
	if b.rules.UseStrictRules && b.HalfMoveCount >= 100 {
		return drawEndResult(), true
	}

	pos := b.currentPositionFEN()
	if b.PosCount[pos] >= 5 {
		return drawEndResult(), true
	}
	if b.rules.UseStrictRules && b.PosCount[pos] >= 3 {
		return drawEndResult(), true
	}

	return nil, false
}

// IsInCheckmate reports whether the side to move has been checkmated.
// Per spec §9 open question 3, this is "no *legal* replies while in
// check", not the length of the unfiltered pseudo-legal list.
func (b *Board) IsInCheckmate() bool {
	if len(b.GenerateMoves(MoveGenOptions{OnlyLegal: true})) != 0 {
		return false
	}
	inCheck, _ := b.IsAttacked(b.Turn.Opposite(), b.KingPos[b.Turn], false)
	return inCheck
}

// IsInStalemate reports whether the side to move has no legal moves and
// is not in check.
func (b *Board) IsInStalemate() bool {
	if len(b.GenerateMoves(MoveGenOptions{OnlyLegal: true})) != 0 {
		return false
	}
	inCheck, _ := b.IsAttacked(b.Turn.Opposite(), b.KingPos[b.Turn], false)
	return !inCheck
}

func (b *Board) invalidateMoveCache() {
	b.cache = nil
}

func atoiOr(s string, fallback int) int {
	n := 0
	neg := false
	any := false
	for i, ch := range s {
		if i == 0 && ch == '-' {
			neg = true
			continue
		}
		if ch < '0' || ch > '9' {
			return fallback
		}
		any = true
		n = n*10 + int(ch-'0')
	}
	if !any {
		return fallback
	}
	if neg {
		return -n
	}
	return n
}

func splitFenFields(s string) []string {
	var fields []string
	start := -1
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	for len(fields) < 6 {
		fields = append(fields, "")
	}
	return fields
}

func splitRows(placement string) []string {
	var rows []string
	start := 0
	for i := 0; i <= len(placement); i++ {
		if i == len(placement) || placement[i] == '/' {
			rows = append(rows, placement[start:i])
			start = i + 1
		}
	}
	return rows
}
