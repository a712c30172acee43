package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardSetResetHas(t *testing.T) {
	var b Bitboard
	b = b.Set(E4)
	assert.True(t, b.Has(E4))
	assert.False(t, b.Has(D5))
	b = b.Reset(E4)
	assert.False(t, b.Has(E4))
}

func TestBitboardCountBitsBsfBsr(t *testing.T) {
	// spec.md §8 scenario 4.
	b := Bitboard(0b11010011)
	assert.Equal(t, 5, b.CountBits())
	assert.Equal(t, Square(0), b.BSF())
	assert.Equal(t, Square(7), b.BSR())
}

func TestBitboardCountBitsAccumulates(t *testing.T) {
	var b Bitboard
	for i := 0; i < 64; i++ {
		b = b.Set(Square(i))
		assert.Equal(t, i+1, b.CountBits())
	}
}

func TestBitboardBsfBsrEverySingleBit(t *testing.T) {
	for i := 0; i < 64; i++ {
		b := Square(i).ToBitboard()
		assert.Equal(t, Square(i), b.BSF())
		assert.Equal(t, Square(i), b.BSR())
	}
}

func TestBitboardBsfBsrEmpty(t *testing.T) {
	assert.Equal(t, InvalidSquare, Bitboard(0).BSF())
	assert.Equal(t, InvalidSquare, Bitboard(0).BSR())
}

func TestBitboardRotate(t *testing.T) {
	// spec.md §8 scenario 3.
	assert.Equal(t, Bitboard(0xB3D5F7B3D5F7B3D5), Bitboard(0xABCDEFABCDEFABCD).Rotate())
}

func TestBitboardRotateIsInvolution(t *testing.T) {
	// spec.md §8: bitboard_rotate(bitboard_rotate(b)) == b, for all b.
	cases := []Bitboard{0, ^Bitboard(0), 0xABCDEFABCDEFABCD, E4.ToBitboard(), A1.ToBitboard(), H8.ToBitboard()}
	for _, b := range cases {
		assert.Equal(t, b, b.Rotate().Rotate())
	}
}

func TestBitboardRotateCornerSwap(t *testing.T) {
	assert.Equal(t, H8.ToBitboard(), A1.ToBitboard().Rotate())
	assert.Equal(t, A1.ToBitboard(), H8.ToBitboard().Rotate())
	assert.Equal(t, D1.ToBitboard(), E8.ToBitboard().Rotate())
}

func TestIterFirstIterLast(t *testing.T) {
	b := E4.ToBitboard() | A1.ToBitboard() | H8.ToBitboard()
	first := IterFirst(&b)
	assert.Equal(t, A1, first)
	last := IterLast(&b)
	assert.Equal(t, H8, last)
	remaining := IterFirst(&b)
	assert.Equal(t, E4, remaining)
	assert.Equal(t, InvalidSquare, IterFirst(&b))
}

const D5 Square = 32 + 3
