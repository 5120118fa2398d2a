// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

// MoveOptions configures Board.makeMove / Game.MakeMove. SkipPosCount
// defaults false so the zero value tracks repetition (the common case);
// set it true to commit a move without updating PosCount. Comment, MoveTime and
// MoveTimeDelta populate the resulting Turn's metadata; if MoveTime is
// zero and the owning Game has a Clock, the clock is consulted instead.
type MoveOptions struct {
	SkipPosCount  bool
	Comment       string
	MoveTime      int64
	MoveTimeDelta int64
}

func copyPosCount(src map[FEN]int) map[FEN]int {
	dst := make(map[FEN]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// currentTurn returns the Turn at SelectedTurnIndex, or nil before any
// move has been selected.
func (b *Board) currentTurn() *Turn {
	if b.SelectedTurnIndex < 0 || b.SelectedTurnIndex >= len(b.History) {
		return nil
	}
	return b.History[b.SelectedTurnIndex]
}

// isNewMove classifies move against the board's existing history ahead
// of the current selection, per spec §4.F: it may exactly match the next
// recorded turn, match a continuation of the current turn, match a
// variation of the next turn, or be genuinely new.
func (b *Board) isNewMove(move *Move) (isNew bool, contIdx, varIdx int) {
	if b.SelectedTurnIndex+1 >= len(b.History) {
		return true, -1, -1
	}
	next := b.History[b.SelectedTurnIndex+1]
	if move.Wildcard || next.Move.SAN(b) == move.SAN(b) {
		return false, -1, -1
	}

	if cur := b.currentTurn(); cur != nil && b.game != nil {
		for i, id := range cur.Continuations {
			child := b.game.boardByID(id)
			if child != nil && len(child.History) > 0 && child.History[0].Move.Algebraic() == move.Algebraic() {
				return false, i, -1
			}
		}
	}
	if b.game != nil {
		for i, id := range next.Variations {
			child := b.game.boardByID(id)
			if child == nil || len(child.History) == 0 {
				continue
			}
			first := child.History[0].Move
			if first.Algebraic() == move.Algebraic() || first.Wildcard {
				return false, -1, i
			}
		}
	}
	return true, -1, -1
}

// branchFromParent deep-copies parent's live state into a fresh Board
// registered with the same Game. Unless continuation is set, the single
// turn at parent.SelectedTurnIndex is undone on the copy, so the new
// board starts at the position immediately before that turn — ready to
// hold an alternate move as a sibling variation.
func (b *Board) branchFromParent(parent *Board, continuation bool) *Board {
	nb := newBlankBoard()
	nb.Squares = parent.Squares
	nb.CastlingRights = parent.CastlingRights
	nb.KingPos = parent.KingPos
	nb.EnPassantSqr = parent.EnPassantSqr
	nb.Turn = parent.Turn
	nb.HalfMoveCount = parent.HalfMoveCount
	nb.PlyNum = parent.PlyNum
	nb.TurnNum = parent.TurnNum
	nb.PosCount = copyPosCount(parent.PosCount)
	nb.game = parent.game
	nb.logger = parent.logger
	nb.rules = parent.rules

	if !continuation && parent.SelectedTurnIndex >= 0 && parent.SelectedTurnIndex < len(parent.History) {
		nb.commitUndoMoves([]*Turn{parent.History[parent.SelectedTurnIndex]})
	}

	nb.History = nil
	nb.SelectedTurnIndex = -1
	nb.ParentBoardID = parent.ID
	nb.ParentBranchTurnIndex = parent.SelectedTurnIndex
	nb.Continuation = continuation

	if parent.game != nil {
		parent.game.registerBoard(nb)
	}
	return nb
}

// makeMove is the user-facing move entry point (spec §4.F). When the
// board is mid-history, it either advances along the existing line,
// enters a matching variation/continuation, or branches a new variation
// board and recurses into it. Otherwise it commits move as the new end
// of history.
func (b *Board) makeMove(move *Move, opts MoveOptions) bool {
	if b.SelectedTurnIndex+1 < len(b.History) {
		isNew, contIdx, varIdx := b.isNewMove(move)
		switch {
		case !isNew && contIdx < 0 && varIdx < 0:
			b.SelectedTurnIndex++
			b.commitMove(b.History[b.SelectedTurnIndex].Move, false)
			return true
		case varIdx >= 0:
			b.SelectedTurnIndex++
			b.commitMove(b.History[b.SelectedTurnIndex].Move, false)
			if b.game != nil {
				b.game.EnterVariation(varIdx)
			}
			return true
		case contIdx >= 0:
			if b.game != nil {
				b.game.EnterContinuation(contIdx)
			}
			return true
		default:
			b.SelectedTurnIndex++
			b.commitMove(b.History[b.SelectedTurnIndex].Move, false)
			branch := b.branchFromParent(b, false)
			if cur := b.currentTurn(); cur != nil {
				cur.Variations = append(cur.Variations, branch.ID)
			}
			if b.game != nil {
				b.game.setCurrentBoard(branch)
			}
			return branch.makeMove(move, opts)
		}
	}

	priorUCI := ""
	if b.SelectedTurnIndex >= 0 {
		priorUCI = b.History[b.SelectedTurnIndex].Move.UCI()
	}
	turn := newTurn(b, move, priorUCI)
	b.commitMove(move, !opts.SkipPosCount)
	turn.FEN = b.toFen(false)
	turn.Meta.Comment = opts.Comment
	turn.Meta.MoveTime = opts.MoveTime
	turn.Meta.MoveTimeDelta = opts.MoveTimeDelta
	if turn.Meta.MoveTime == 0 && b.game != nil && b.game.clock != nil {
		turn.Meta.MoveTime = b.game.clock()
	}
	b.History = append(b.History, turn)
	b.SelectedTurnIndex++
	return true
}
