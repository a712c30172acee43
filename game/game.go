/*
Package game provides the thin move-by-move orchestration loop the board and
check packages deliberately leave out: a Game owns the current Position,
keeps its legal move list current, and classifies terminal states and draws
by insufficient material.

PushMove rotates the position after every ApplyMove, so each turn's legal
move list is always computed from whoever is about to move next. There is
no Zobrist-keyed repetition map or threefold-repetition check here:
Position.Halfmoves already covers the 50-move-rule half of that
bookkeeping, and full repetition tracking is out of scope.
*/
package game

import (
	"errors"

	"sidechess.dev/engine/board"
	"sidechess.dev/engine/check"
)

// ErrIllegalMove is returned by PushMove when the given move is not a
// member of the current position's legal move list.
var ErrIllegalMove = errors.New("game: illegal move")

// Outcome classifies why a game ended.
type Outcome int

const (
	Undetermined Outcome = iota
	Checkmate
	Stalemate
	DrawInsufficientMaterial
)

// Game tracks one position across a sequence of played moves, along with
// the legal move list and terminal state for whoever is to move next.
type Game struct {
	position   board.Position
	legalMoves []board.Move
	outcome    Outcome
}

// NewGame returns a Game initialized to the standard starting position.
func NewGame() *Game {
	g := &Game{position: board.Position{}}
	g.position.Init()
	g.refresh()
	return g
}

// NewGameFromPosition returns a Game seeded with an arbitrary starting
// position, p's own mover becoming Ours.
func NewGameFromPosition(p board.Position) *Game {
	g := &Game{position: p}
	g.refresh()
	return g
}

// Position returns the current position, in its own side-relative terms
// (Ours is always whoever is to move next).
func (g *Game) Position() board.Position { return g.position }

// LegalMoves returns the legal moves available to the side to move, in the
// current position's own square terms.
func (g *Game) LegalMoves() []board.Move { return g.legalMoves }

// Outcome reports why the game ended, or Undetermined if it hasn't.
func (g *Game) Outcome() Outcome { return g.outcome }

// IsMoveLegal reports whether m is a member of the current legal move list.
func (g *Game) IsMoveLegal(m board.Move) bool {
	for _, lm := range g.legalMoves {
		if lm == m {
			return true
		}
	}
	return false
}

// PushMove applies m, which must already be legal in the current position,
// and advances the game to the next side's turn. It returns ErrIllegalMove
// without mutating the game if m is not legal.
func (g *Game) PushMove(m board.Move) error {
	if !g.IsMoveLegal(m) {
		return ErrIllegalMove
	}

	board.ApplyMove(&g.position, m)
	g.position = g.position.Rotate()
	g.refresh()
	return nil
}

// refresh recomputes the legal move list and terminal outcome for whoever
// is to move in the current position.
func (g *Game) refresh() {
	g.legalMoves = check.LegalMoves(g.position)

	switch {
	case len(g.legalMoves) > 0:
		g.outcome = Undetermined
	case check.InCheck(g.position):
		g.outcome = Checkmate
	default:
		g.outcome = Stalemate
	}

	if g.outcome == Undetermined && g.IsInsufficientMaterial() {
		g.outcome = DrawInsufficientMaterial
	}
}

// pieceWeights assigns each piece kind a material value: pawn 1, knight 3,
// bishop 3, rook 5, queen 9.
var pieceWeights = [5]int{1, 3, 3, 5, 9}

// darkSquares masks every dark square on the board, used to tell whether
// two same-side or opposing bishops share a color complex.
const darkSquares board.Bitboard = 0xAA55AA55AA55AA55

// IsInsufficientMaterial reports whether neither side has enough material
// left to deliver checkmate by any sequence of legal moves:
//   - both sides have a bare king,
//   - one side has a king and a single minor piece against a bare king,
//   - both sides have a king and a bishop, the bishops on the same color, or
//   - both sides have a king and a knight.
func (g *Game) IsInsufficientMaterial() bool {
	material := g.materialValue()

	if material == 0 {
		return true
	}
	if material == pieceWeights[board.Knight] && g.noPawns() {
		// A single minor (knight or bishop) against a bare king.
		return true
	}
	if material == 2*pieceWeights[board.Knight] && g.noPawns() {
		wb := g.position.PieceBitboard(board.Ours, board.Bishop)
		tb := g.position.PieceBitboard(board.Theirs, board.Bishop)
		if wb != 0 && tb != 0 && sameColorComplex(wb, tb) {
			return true
		}
		wn := g.position.PieceBitboard(board.Ours, board.Knight)
		tn := g.position.PieceBitboard(board.Theirs, board.Knight)
		if wn != 0 && tn != 0 {
			return true
		}
	}
	return false
}

func sameColorComplex(a, b board.Bitboard) bool {
	return (a&darkSquares != 0) == (b&darkSquares != 0)
}

func (g *Game) noPawns() bool {
	return g.position.PieceBitboard(board.Ours, board.Pawn) == 0 &&
		g.position.PieceBitboard(board.Theirs, board.Pawn) == 0
}

func (g *Game) materialValue() int {
	material := 0
	for k := board.Pawn; k <= board.Queen; k++ {
		ours := g.position.PieceBitboard(board.Ours, k).CountBits()
		theirs := g.position.PieceBitboard(board.Theirs, k).CountBits()
		material += (ours + theirs) * pieceWeights[k]
	}
	return material
}
