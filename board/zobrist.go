package board

import "time"

// ZobristTable holds the pseudo-random numbers used by HashPosition: one
// per (absolute color, piece kind, square), one per (absolute color,
// castling right), and one for side to move. Built once by HashInit and
// treated as immutable afterwards (spec §4.6, §5).
type ZobristTable struct {
	Piece    [2][6][64]uint64
	Castling [2][2]uint64
	Color    uint64
}

// zobrist is the process-wide table. Zero until HashInit runs.
var zobrist ZobristTable

// xorshift64 is the PRNG mandated by spec §4.6: shifts 13, 7, 17.
type xorshift64 struct{ state uint64 }

func newXorshift64(seed uint64) *xorshift64 {
	if seed == 0 {
		seed = 1 // the all-zero state is a fixed point of xorshift
	}
	return &xorshift64{state: seed}
}

func (x *xorshift64) next() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// HashInit fills the package's Zobrist table from a wall-clock-seeded
// xorshift64 stream. Must run once before any call to HashPosition;
// calling it again reseeds from the current wall-clock second, so a call
// in a later second yields a different, still-valid table, while a call
// within the same second rebuilds the same table.
func HashInit() {
	rng := newXorshift64(uint64(time.Now().Unix()))
	for side := 0; side < 2; side++ {
		for kind := 0; kind < 6; kind++ {
			for sq := 0; sq < 64; sq++ {
				zobrist.Piece[side][kind][sq] = rng.next()
			}
		}
	}
	for side := 0; side < 2; side++ {
		for right := 0; right < 2; right++ {
			zobrist.Castling[side][right] = rng.next()
		}
	}
	zobrist.Color = rng.next()
}

// HashPosition returns p's Zobrist signature, normalized to White's
// perspective with side-to-move folded in (spec §4.6): if p.Color is
// Black, the color PRN is XORed in and the piece/castling contributions
// are computed against a rotated copy, so that White's men are always
// hashed by their true absolute squares regardless of which side p's
// Ours/Theirs labels currently refer to.
func HashPosition(p Position) uint64 {
	var hash uint64
	if p.Color == Black {
		hash ^= zobrist.Color
		p = p.Rotate()
	}

	for _, abs := range [2]struct {
		color Color
		side  Side
	}{{White, Ours}, {Black, Theirs}} {
		for kind := Pawn; kind <= Queen; kind++ {
			bb := p.PieceBitboard(abs.side, kind)
			for {
				sq := IterFirst(&bb)
				if sq == InvalidSquare {
					break
				}
				hash ^= zobrist.Piece[abs.color][kind][sq]
			}
		}
		hash ^= zobrist.Piece[abs.color][King][p.King[abs.side]]

		for _, right := range [2]CastlingRight{Kingside, Queenside} {
			if p.HasCastling(abs.side, right) {
				hash ^= zobrist.Castling[abs.color][right]
			}
		}
	}

	return hash
}
