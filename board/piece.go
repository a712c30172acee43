/*
piece.go declares the small enumerations used throughout the package: piece
kinds, the relative Side (Ours/Theirs), the absolute Color, and castling
rights. Keeping these as named integer types, rather than plain ints, avoids
a "magic numbers" antipattern: a bare int passed where a Side or PieceKind
is expected compiles either way, but only the named type makes the mistake
visible at the call site.
*/

package board

// PieceKind identifies the kind of a chess piece, independent of color.
// It indexes the Position.Pieces array and the precomputed attack tables.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	// PieceNone marks the absence of a piece on a square.
	PieceNone PieceKind = -1
)

// numPieceBitboards is the number of PieceKind values that get their own
// bitboard in Position.Pieces. King is excluded: kings are tracked as a
// single square per side instead (spec.md §3).
const numPieceBitboards = 5

// pieceLetters maps a PieceKind to its FEN/SAN letter, uppercase.
var pieceLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Side is relative to whichever player the generator is currently acting
// for. Ours is always the side to move; Theirs is the opponent. This is
// distinct from Color, which is absolute and only flips the interpretation
// at the edges (FEN parsing, hashing, printing).
type Side int

const (
	Ours Side = iota
	Theirs
)

// Other returns the opposing relative side.
func (s Side) Other() Side { return s ^ 1 }

// Color is the absolute side to move, independent of rotation.
type Color int

const (
	White Color = iota
	Black
)

// Opposite returns the other absolute color.
func (c Color) Opposite() Color { return c ^ 1 }

// CastlingRight names one of the two rook-side castling options. Combined
// with a Side it selects one of the four bits of Position.Castling.
type CastlingRight int

const (
	Kingside CastlingRight = iota
	Queenside
)

// castlingMasks[side][right] gives the bit of the castling nibble that
// tracks that (side, right) combination, matching the layout mandated by
// spec.md §3: Ours-Kingside, Ours-Queenside, Theirs-Kingside,
// Theirs-Queenside from bit 3 down to bit 0.
var castlingMasks = [2][2]uint8{
	Ours:   {Kingside: 0b1000, Queenside: 0b0100},
	Theirs: {Kingside: 0b0010, Queenside: 0b0001},
}
