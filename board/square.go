/*
square.go defines the Square type and the conversions between a square index,
its (rank, file) coordinates, and its algebraic-notation string.
*/

package board

// Square is an index in [0, 63] identifying one of the 64 squares of a
// chessboard, encoded as rank*8+file with rank 0 = the first rank and file 0
// = the a-file.
type Square int

// InvalidSquare is the sentinel returned wherever "no such square" needs to
// be represented (an empty bitboard scanned for a bit, a missing en passant
// target, and so on).
const InvalidSquare Square = 64

// Named squares used by the generator and by tests. Only the ones actually
// referenced elsewhere are spelled out; the rest are reachable via
// CalculateSquare.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A8 Square = 56 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// CalculateSquare returns the square at the given rank and file.
//
// Precondition: 0 <= r < 8 and 0 <= f < 8.
func CalculateSquare(r, f int) Square {
	return Square(r*8 + f)
}

// Rank returns the rank (0-7) of s.
func (s Square) Rank() int { return int(s) / 8 }

// File returns the file (0-7) of s.
func (s Square) File() int { return int(s) % 8 }

// Valid reports whether s is a real board square.
func (s Square) Valid() bool { return s >= A1 && s < InvalidSquare }

// ToBitboard returns the singleton bitboard containing s, or the empty
// bitboard if s is not a valid square.
func (s Square) ToBitboard() Bitboard {
	if !s.Valid() {
		return 0
	}
	return Bitboard(1) << uint(s)
}

var squareStrings = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns the algebraic notation of s ("e4"), or "-" for
// InvalidSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return squareStrings[s]
}

// SquareFromString parses algebraic notation ("a1".."h8") into a Square.
// Returns InvalidSquare and false if str is not exactly two characters long
// or names a square outside the board.
func SquareFromString(str string) (Square, bool) {
	if len(str) != 2 {
		return InvalidSquare, false
	}
	file := str[0]
	rank := str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return InvalidSquare, false
	}
	return CalculateSquare(int(rank-'1'), int(file-'a')), true
}
