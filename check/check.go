/*
Package check supplies the king-in-check oracle and terminal game state
detection that the board package's move generator deliberately leaves out:
GenerateMoves only ever produces pseudo-legal moves (spec §4.5).

original_source/src/moves.c declares build_attack_map as a stub ("[TODO]")
that was meant to return the opponent's raw attack map for exactly this
purpose; this package is the real implementation of that intended shape.
*/
package check

import "sidechess.dev/engine/board"

var bishopDirs = []int{board.DirNE, board.DirSE, board.DirSW, board.DirNW}
var rookDirs = []int{board.DirN, board.DirE, board.DirS, board.DirW}
var queenDirs = []int{
	board.DirN, board.DirE, board.DirS, board.DirW,
	board.DirNE, board.DirSE, board.DirSW, board.DirNW,
}

// AttackedSquares returns every square attacked by Theirs (the side not to
// move) against the canonical position p, where p's mover is Ours. Unlike
// board.GenerateMoves, the returned set is not restricted to empty or
// enemy-occupied destinations: a square defended by one of Theirs' own
// pieces still counts as attacked, since that is what matters for
// determining whether a king may legally step there.
func AttackedSquares(p board.Position) board.Bitboard {
	var attacked board.Bitboard
	occupied := p.Occupied()

	attacked |= theirsPawnAttacks(p)

	knights := p.PieceBitboard(board.Theirs, board.Knight)
	for {
		sq := board.IterFirst(&knights)
		if sq == board.InvalidSquare {
			break
		}
		attacked |= board.KnightAttacks[sq]
	}

	kingSq := p.King[board.Theirs]
	if kingSq.Valid() {
		attacked |= board.KingAttacks[kingSq]
	}

	attacked |= slidingAttacksFor(p, board.Bishop, bishopDirs, occupied)
	attacked |= slidingAttacksFor(p, board.Rook, rookDirs, occupied)
	attacked |= slidingAttacksFor(p, board.Queen, queenDirs, occupied)

	return attacked
}

// theirsPawnAttacks returns the squares Theirs' pawns attack. Theirs
// physically sits on the high-rank side of the canonical position and
// advances toward rank 1, so its pawns capture diagonally toward rank-1,
// the mirror (in rank only) of board.PawnAttacks, which tabulates Ours'
// rank+1 captures.
func theirsPawnAttacks(p board.Position) board.Bitboard {
	var attacked board.Bitboard
	pawns := p.PieceBitboard(board.Theirs, board.Pawn) & pawnOccupiableMask
	for {
		sq := board.IterFirst(&pawns)
		if sq == board.InvalidSquare {
			break
		}
		r, f := sq.Rank()-1, sq.File()
		if r < 0 {
			continue
		}
		if f > 0 {
			attacked = attacked.Set(board.CalculateSquare(r, f-1))
		}
		if f < 7 {
			attacked = attacked.Set(board.CalculateSquare(r, f+1))
		}
	}
	return attacked
}

// pawnOccupiableMask mirrors board's own pawnMask (ranks 2-7): pawns never
// legitimately occupy rank 1 or rank 8.
const pawnOccupiableMask board.Bitboard = 0x00FFFFFFFFFFFF00

func slidingAttacksFor(p board.Position, kind board.PieceKind, dirs []int, occupied board.Bitboard) board.Bitboard {
	var attacked board.Bitboard
	pieces := p.PieceBitboard(board.Theirs, kind)
	for {
		sq := board.IterFirst(&pieces)
		if sq == board.InvalidSquare {
			break
		}
		// Pass ours=0 so the slider's attack set isn't pruned by its own
		// occupants: a square defended by a friendly piece still counts
		// as attacked for check-detection purposes.
		attacked |= board.SlidingAttacks(sq, dirs, occupied, 0)
	}
	return attacked
}

// InCheck reports whether Ours' king square is attacked by Theirs in the
// canonical position p.
func InCheck(p board.Position) bool {
	return AttackedSquares(p).Has(p.King[board.Ours])
}

// Result classifies a position's terminal status.
type Result int

const (
	Ongoing Result = iota
	Checkmate
	Stalemate
)

// State derives p's terminal status: it is Ongoing unless Ours has zero
// legal moves, in which case it is Checkmate (Ours is in check) or
// Stalemate (Ours is not). Legality is established by copying the
// position, making each pseudo-legal move, and discarding it if it leaves
// the mover's own king attacked.
func State(p board.Position) Result {
	if len(LegalMoves(p)) > 0 {
		return Ongoing
	}
	if InCheck(p) {
		return Checkmate
	}
	return Stalemate
}

// LegalMoves filters p's pseudo-legal moves (board.GenerateMoves) down to
// those that don't leave Ours' own king attacked afterward, via
// copy-make-and-test. Castling additionally requires the king not already
// be in check and not cross an attacked square on its way. Returned moves
// are in p's own (side-relative) square terms, exactly as
// board.GenerateMoves produced them.
func LegalMoves(p board.Position) []board.Move {
	list := board.GenerateMoves(&p)
	legal := make([]board.Move, 0, list.Len())
	for _, m := range list.Slice() {
		if m.Flags.IsCastle() && !castleIsLegal(p, m) {
			continue
		}
		next := p
		board.ApplyMove(&next, m)
		if !InCheck(next) {
			legal = append(legal, m)
		}
	}
	return legal
}

// castleIsLegal reports whether the king's home square and transit square
// are both free of attack; the destination square is covered separately by
// the caller's post-move InCheck test.
func castleIsLegal(p board.Position, m board.Move) bool {
	attacked := AttackedSquares(p)
	if attacked.Has(m.From) {
		return false
	}
	transit := board.CalculateSquare(m.From.Rank(), (m.From.File()+m.To.File())/2)
	return !attacked.Has(transit)
}
