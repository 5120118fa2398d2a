// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

// Game owns every Board in a session's variation tree (spec §4.G, §9):
// Variations[0] is the root, and CurrentBoard is whichever Board is
// presently active. Boards reference each other and their owning Game
// only by integer ID, so Game is the sole owner in the object graph.
type Game struct {
	Variations   []*Board
	CurrentBoard *Board
	SetupFEN     FEN

	logger Logger
	rules  RulesConfig
	clock  Clock
}

// NewGame builds a Game with a single root Board loaded from the
// standard starting position. A nil logger falls back to NewNopLogger.
func NewGame(logger Logger, rules RulesConfig, clock Clock) *Game {
	if logger == nil {
		logger = NewNopLogger()
	}
	g := &Game{logger: logger, rules: rules, clock: clock}
	root := NewBoard(g, logger, rules, DefaultFEN)
	g.CurrentBoard = root
	return g
}

func (g *Game) registerBoard(b *Board) {
	b.ID = len(g.Variations)
	b.game = g
	g.Variations = append(g.Variations, b)
}

func (g *Game) boardByID(id int) *Board {
	if id < 0 || id >= len(g.Variations) {
		return nil
	}
	return g.Variations[id]
}

func (g *Game) setCurrentBoard(b *Board) {
	g.CurrentBoard = b
}

// LoadFen replaces the root board with a fresh one loaded from fen,
// discarding all variations, and marks SetupFEN when fen differs from
// the standard starting position.
func (g *Game) LoadFen(fen FEN) bool {
	root := newBlankBoard()
	root.logger = g.logger
	root.rules = g.rules
	if !root.LoadFen(fen) {
		return false
	}
	g.Variations = nil
	g.registerBoard(root)
	g.CurrentBoard = root
	g.SetupFEN = ""
	if fen != DefaultFEN {
		g.SetupFEN = fen
	}
	return true
}

// MakeMove delegates to the current board, switching CurrentBoard to a
// newly branched sub-board if the move opens a new variation.
func (g *Game) MakeMove(move *Move, opts MoveOptions) bool {
	return g.CurrentBoard.makeMove(move, opts)
}

// MakeMoveFromAlgebraic resolves orig/dest against the current board's
// legal moves before delegating to MakeMove.
func (g *Game) MakeMoveFromAlgebraic(orig, dest Square, opts MoveOptions) (bool, error) {
	m, err := GenerateFromAlgebraic(orig, dest, g.CurrentBoard)
	if err != nil {
		return false, err
	}
	return g.MakeMove(m, opts), nil
}

// MakeMoveFromSan resolves a SAN token against the current board's legal
// moves before delegating to MakeMove.
func (g *Game) MakeMoveFromSan(san string, opts MoveOptions) (bool, error) {
	m, err := GenerateFromSan(san, g.CurrentBoard)
	if err != nil {
		return false, err
	}
	return g.MakeMove(m, opts), nil
}

// EnterVariation sets CurrentBoard to the i-th variation child of the
// current turn. Returns false if i is out of range or there is no
// current turn.
func (g *Game) EnterVariation(i int) bool {
	cur := g.CurrentBoard.currentTurn()
	if cur == nil || i < 0 || i >= len(cur.Variations) {
		return false
	}
	child := g.boardByID(cur.Variations[i])
	if child == nil {
		return false
	}
	g.CurrentBoard = child
	return true
}

// EnterContinuation sets CurrentBoard to the i-th continuation child of
// the current turn.
func (g *Game) EnterContinuation(i int) bool {
	cur := g.CurrentBoard.currentTurn()
	if cur == nil || i < 0 || i >= len(cur.Continuations) {
		return false
	}
	child := g.boardByID(cur.Continuations[i])
	if child == nil {
		return false
	}
	g.CurrentBoard = child
	return true
}

// ReturnFromVariation sets CurrentBoard to the current board's parent,
// leaving the parent's selection at the branch point.
func (g *Game) ReturnFromVariation() bool {
	cur := g.CurrentBoard
	if cur.ParentBoardID == noParentBoardID {
		return false
	}
	parent := g.boardByID(cur.ParentBoardID)
	if parent == nil {
		return false
	}
	parent.SelectedTurnIndex = cur.ParentBranchTurnIndex
	g.CurrentBoard = parent
	return true
}

// ReturnFromContinuation sets CurrentBoard to the current board's
// parent, leaving the parent's selection one turn past the branch point.
func (g *Game) ReturnFromContinuation() bool {
	cur := g.CurrentBoard
	if cur.ParentBoardID == noParentBoardID {
		return false
	}
	parent := g.boardByID(cur.ParentBoardID)
	if parent == nil {
		return false
	}
	parent.SelectedTurnIndex = cur.ParentBranchTurnIndex + 1
	g.CurrentBoard = parent
	return true
}

// SelectTurn navigates the target board (boardID defaults to
// CurrentBoard) to index.
func (g *Game) SelectTurn(index int, boardID ...int) bool {
	target := g.CurrentBoard
	if len(boardID) > 0 {
		b := g.boardByID(boardID[0])
		if b == nil {
			return false
		}
		target = b
	}
	return target.SelectTurn(index)
}

// MoveHistoryToNewVariation detaches CurrentBoard's history after its
// selection into a new non-continuation child board, optionally
// attaching it as a variation of attachTo.
func (g *Game) MoveHistoryToNewVariation(attachTo *Turn) *Board {
	return g.detachHistory(false, attachTo)
}

// MoveHistoryToNewContinuation detaches CurrentBoard's history after its
// selection into a new continuation child board of the current turn.
func (g *Game) MoveHistoryToNewContinuation() *Board {
	return g.detachHistory(true, nil)
}

func (g *Game) detachHistory(continuation bool, attachTo *Turn) *Board {
	cb := g.CurrentBoard
	idx := cb.SelectedTurnIndex
	if idx+1 > len(cb.History) {
		idx = len(cb.History) - 1
	}
	detached := append([]*Turn(nil), cb.History[idx+1:]...)
	cb.History = cb.History[:idx+1]

	nb := cb.branchFromParent(cb, continuation)
	for _, t := range detached {
		nb.commitMove(t.Move, false)
	}
	nb.History = detached
	nb.SelectedTurnIndex = len(detached) - 1

	if continuation {
		if cur := cb.currentTurn(); cur != nil {
			cur.Continuations = append(cur.Continuations, nb.ID)
		}
	} else if attachTo != nil {
		attachTo.Variations = append(attachTo.Variations, nb.ID)
	}
	return nb
}

// GetMoveHistory walks from CurrentBoard up through parent board IDs to
// the root, then assembles the line from the root down to CurrentBoard's
// selection. With no
// filter it returns the Turns themselves; "id" or "san" return the
// corresponding string for each turn.
func (g *Game) GetMoveHistory(filter ...string) []any {
	turns := g.collectMoveHistory()
	out := make([]any, len(turns))
	mode := ""
	if len(filter) > 0 {
		mode = filter[0]
	}
	for i, t := range turns {
		switch mode {
		case "id":
			out[i] = t.ID
		case "san":
			out[i] = t.Move.SAN(g.CurrentBoard)
		default:
			out[i] = t
		}
	}
	return out
}

func (g *Game) collectMoveHistory() []*Turn {
	var chain []*Board
	for b := g.CurrentBoard; b != nil; {
		chain = append(chain, b)
		if b.ParentBoardID == noParentBoardID {
			break
		}
		b = g.boardByID(b.ParentBoardID)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	var turns []*Turn
	for i, b := range chain {
		upto := b.SelectedTurnIndex
		if i < len(chain)-1 {
			upto = chain[i+1].ParentBranchTurnIndex
			if !chain[i+1].Continuation {
				upto--
			}
		}
		if upto < 0 {
			continue
		}
		if upto >= len(b.History) {
			upto = len(b.History) - 1
		}
		turns = append(turns, b.History[:upto+1]...)
	}
	return turns
}

// GetCapturedPieces collects the pieces of the opposite color to color
// that were captured along the current line.
func (g *Game) GetCapturedPieces(color Color) []Piece {
	var captured []Piece
	for _, t := range g.collectMoveHistory() {
		cp := t.Move.CapturedPiece
		if !cp.IsEmpty() && cp.Color == color.Opposite() {
			captured = append(captured, cp)
		}
	}
	return captured
}
