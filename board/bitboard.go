/*
bitboard.go implements the 64-bit set representation of chess squares and
its primitive operations: set/reset, population count, bit-scan, iteration,
and the 180° rotation used to swap perspective between moves.
*/

package board

// Bitboard is a 64-bit set of squares. Bit s is set iff square s is a
// member. Bit 0 = a1, bit 7 = h1, bit 56 = a8, bit 63 = h8.
type Bitboard uint64

// Divide-and-conquer masks used by CountBits and Rotate.
const (
	dq1 Bitboard = 0x5555555555555555
	dq2 Bitboard = 0x3333333333333333
	dq3 Bitboard = 0x0F0F0F0F0F0F0F0F
	dq4 Bitboard = 0x00FF00FF00FF00FF
	dq5 Bitboard = 0x0000FFFF0000FFFF
	dq6 Bitboard = 0x00000000FFFFFFFF
)

// Set returns b with square s added. s ≥ 64 is a no-op.
func (b Bitboard) Set(s Square) Bitboard {
	if s >= InvalidSquare {
		return b
	}
	return b | s.ToBitboard()
}

// Reset returns b with square s removed. s ≥ 64 is a no-op.
func (b Bitboard) Reset(s Square) Bitboard {
	if s >= InvalidSquare {
		return b
	}
	return b &^ s.ToBitboard()
}

// Has reports whether square s is a member of b.
func (b Bitboard) Has(s Square) bool {
	return s.Valid() && b&s.ToBitboard() != 0
}

// ToSquare returns the unique member of b, or InvalidSquare if b is empty.
//
// Precondition: CountBits(b) <= 1.
func (b Bitboard) ToSquare() Square {
	return b.BSF()
}

// CountBits returns the number of set bits in b, via the classic
// divide-and-conquer popcount.
func (b Bitboard) CountBits() int {
	b = (b & dq1) + ((b >> 1) & dq1)
	b = (b & dq2) + ((b >> 2) & dq2)
	b = (b & dq3) + ((b >> 4) & dq3)
	b = (b & dq4) + ((b >> 8) & dq4)
	b = (b & dq5) + ((b >> 16) & dq5)
	b = (b & dq6) + ((b >> 32) & dq6)
	return int(b)
}

// debruijn64 and bsfTable implement a De Bruijn bit-scan, used by BSF and
// ToSquare to find the index of the lowest set bit in O(1).
const debruijn64 = Bitboard(0x03f79d71b4cb0a89)

var bsfTable = [64]int{
	0, 1, 48, 2, 57, 49, 28, 3,
	61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22,
	45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16,
	54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10,
	25, 14, 19, 9, 13, 8, 7, 6,
}

// BSF returns the index of the least-significant set bit, or InvalidSquare
// if b is empty.
func (b Bitboard) BSF() Square {
	if b == 0 {
		return InvalidSquare
	}
	return Square(bsfTable[((b&-b)*debruijn64)>>58])
}

// BSR returns the index of the most-significant set bit, or InvalidSquare
// if b is empty.
func (b Bitboard) BSR() Square {
	if b == 0 {
		return InvalidSquare
	}
	var s Square
	if b > 0xFFFFFFFF {
		b >>= 32
		s += 32
	}
	if b > 0xFFFF {
		b >>= 16
		s += 16
	}
	if b > 0xFF {
		b >>= 8
		s += 8
	}
	if b > 0xF {
		b >>= 4
		s += 4
	}
	if b > 0x3 {
		b >>= 2
		s += 2
	}
	if b > 0x1 {
		s += 1
	}
	return s
}

// IterFirst reads the lowest set bit of *b, clears it in *b, and returns its
// square — or InvalidSquare once *b is empty.
func IterFirst(b *Bitboard) Square {
	if *b == 0 {
		return InvalidSquare
	}
	s := b.BSF()
	*b &= *b - 1
	return s
}

// IterLast reads the highest set bit of *b, clears it in *b, and returns its
// square — or InvalidSquare once *b is empty.
func IterLast(b *Bitboard) Square {
	if *b == 0 {
		return InvalidSquare
	}
	s := b.BSR()
	*b = b.Reset(s)
	return s
}

// Rotate reverses all 64 bits of b: bit i moves to bit 63-i. This is
// exactly the 180° rotation of the board (a1<->h8, e4<->d5, and so on),
// implemented via the classic six-step divide-and-conquer bit-swap.
func (b Bitboard) Rotate() Bitboard {
	b = ((b & dq1) << 1) | ((b >> 1) & dq1)
	b = ((b & dq2) << 2) | ((b >> 2) & dq2)
	b = ((b & dq3) << 4) | ((b >> 4) & dq3)
	b = ((b & dq4) << 8) | ((b >> 8) & dq4)
	b = ((b & dq5) << 16) | ((b >> 16) & dq5)
	b = ((b & dq6) << 32) | ((b >> 32) & dq6)
	return b
}
