// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

import "fmt"

// TurnMeta carries optional per-turn metadata that the core stores but
// never interprets.
type TurnMeta struct {
	MoveTime      int64
	MoveTimeDelta int64
	Comment       string
	PuzzleSolution bool
}

// Turn is a committed Move plus the snapshot of board state immediately
// before it was played, enough to undo the move and to branch alternate
// lines from it. Child boards are referenced by stable integer ID into
// the owning Game's Variations slice rather than by pointer, so the
// parent/child graph has a single owner (the Game) and no reference
// cycles (spec §9).
type Turn struct {
	Move *Move

	// Pre-move snapshot.
	CastlingRights [2]Flags
	KingPos        [2]Square
	ColorToMove    Color
	EnPassantSqr   Square
	TurnNum        int
	PlyNum         int
	HalfMoveClock  int

	// FEN is the full FEN of the position after the move was committed.
	FEN FEN

	ID string

	Annotations []Annotation
	Meta        TurnMeta

	// Variations holds board IDs of alternate moves that replace this
	// turn. Continuations holds board IDs of alternate lines that extend
	// this turn instead.
	Variations    []int
	Continuations []int
}

// newTurn builds a Turn from the pre-move board snapshot and the move
// about to be committed against it. priorUCI is the UCI of the move
// immediately preceding this one in the same line, or "" if this is the
// first move.
func newTurn(b *Board, move *Move, priorUCI string) *Turn {
	t := &Turn{
		Move:          move,
		CastlingRights: [2]Flags{b.CastlingRights[White].Copy(), b.CastlingRights[Black].Copy()},
		KingPos:        b.KingPos,
		ColorToMove:    b.Turn,
		EnPassantSqr:   b.EnPassantSqr,
		TurnNum:        b.TurnNum,
		PlyNum:         b.PlyNum,
		HalfMoveClock:  b.HalfMoveCount,
	}
	t.ID = fmt.Sprintf("%d:%s:%s", t.PlyNum, priorUCI, move.UCI())
	return t
}
