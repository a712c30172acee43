/*
Package notation renders the engine core's side-relative internals into the
human- and protocol-facing strings the board package itself stays free of:
FEN output, an ASCII board diagram, and long algebraic move strings.
*/
package notation

import (
	"strconv"
	"strings"

	"sidechess.dev/engine/board"
)

// pieceLetters maps a board.PieceKind to its FEN/SAN letter, uppercase.
var pieceLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// absolute un-rotates p into White-as-Ours terms: if p.Color is White, p is
// already absolute (FromFEN never rotates a White-to-move position); if
// Black, rotating once undoes the rotation FromFEN applied during parsing.
// Rotate is an involution (spec §8), so this is exact either way.
func absolute(p board.Position) board.Position {
	if p.Color == board.Black {
		return p.Rotate()
	}
	return p
}

// FEN renders p as a standard six-field Forsyth-Edwards Notation string,
// the inverse of board.FromFEN.
func FEN(p board.Position) string {
	q := absolute(p)

	var b strings.Builder
	writePlacement(&b, q)
	b.WriteByte(' ')
	if p.Color == board.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')
	writeCastling(&b, q)
	b.WriteByte(' ')
	writeEnPassant(&b, q, p.Color)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(p.Halfmoves)))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(p.Fullmoves)))

	return b.String()
}

// writePlacement scans q (absolute, White == Ours) rank 8 down to rank 1,
// file a up to file h, run-length-encoding empty squares as digits.
func writePlacement(b *strings.Builder, q board.Position) {
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := board.CalculateSquare(rank, file)
			letter, ok := letterAt(q, sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(letter)
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
}

// letterAt returns the FEN letter of whatever occupies sq in q, uppercase
// for White (Ours) and lowercase for Black (Theirs).
func letterAt(q board.Position, sq board.Square) (byte, bool) {
	kind, ok := q.PieceKindAt(sq)
	if !ok {
		return 0, false
	}
	letter := pieceLetters[kind]
	if q.Whose[board.Theirs].Has(sq) {
		letter |= 0x20 // fold to lowercase
	}
	return letter, true
}

func writeCastling(b *strings.Builder, q board.Position) {
	none := true
	if q.HasCastling(board.Ours, board.Kingside) {
		b.WriteByte('K')
		none = false
	}
	if q.HasCastling(board.Ours, board.Queenside) {
		b.WriteByte('Q')
		none = false
	}
	if q.HasCastling(board.Theirs, board.Kingside) {
		b.WriteByte('k')
		none = false
	}
	if q.HasCastling(board.Theirs, board.Queenside) {
		b.WriteByte('q')
		none = false
	}
	if none {
		b.WriteByte('-')
	}
}

// writeEnPassant emits the pending en-passant target, if any, in absolute
// terms. ApplyMove stores the flag under the future capturer's role
// (Theirs, at call time, before the position rotates to hand the move
// over); after n rotations that role has flipped n times. q is already
// unrotated back to absolute (White == Ours), which took one rotation
// exactly when mover is Black — so the flag sits under Ours in q when
// mover is White (zero rotations, no flip) and under Theirs when mover is
// Black (one rotation, one flip).
func writeEnPassant(b *strings.Builder, q board.Position, mover board.Color) {
	side := board.Ours
	if mover == board.Black {
		side = board.Theirs
	}
	target := q.EnPassant(side)
	if !target.Valid() {
		b.WriteByte('-')
		return
	}
	b.WriteString(target.String())
}

// Board renders p as an ASCII diagram, rank 8 at the top, with rank labels
// down each side and a file header.
func Board(p board.Position) string {
	q := absolute(p)

	var b strings.Builder
	b.WriteString("  a b c d e f g h\n")
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		b.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := board.CalculateSquare(rank, file)
			letter, ok := letterAt(q, sq)
			if !ok {
				letter = '.'
			}
			b.WriteByte(letter)
			b.WriteByte(' ')
		}
		b.WriteByte(byte('1' + rank))
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h")

	return b.String()
}

// UCI renders m as a long algebraic move string (e2e4, e7e8q), the format
// engines exchange over the UCI protocol. It prints m's own From/To square
// labels verbatim; if m came from a rotated (Black-to-move) Position, the
// caller is responsible for un-rotating the squares first, the same way
// FEN and Board un-rotate the position itself.
func UCI(m board.Move) string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(m.From.String())
	b.WriteString(m.To.String())
	if m.Flags.IsPromotion() {
		switch m.Flags.PromotionPiece() {
		case board.Knight:
			b.WriteByte('n')
		case board.Bishop:
			b.WriteByte('b')
		case board.Rook:
			b.WriteByte('r')
		case board.Queen:
			b.WriteByte('q')
		}
	}
	return b.String()
}
