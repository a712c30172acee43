package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSquare(t *testing.T) {
	assert.Equal(t, E4, CalculateSquare(3, 4))
	assert.Equal(t, A1, CalculateSquare(0, 0))
	assert.Equal(t, H8, CalculateSquare(7, 7))
}

func TestSquareRankFile(t *testing.T) {
	assert.Equal(t, 2, H3.Rank())
	assert.Equal(t, 7, H3.File())
}

func TestSquareToBitboardPopcount(t *testing.T) {
	// spec.md §8: square_to_bitboard(s) has popcount 1 iff s < 64; else 0.
	for s := Square(0); s < 64; s++ {
		assert.Equal(t, 1, s.ToBitboard().CountBits(), "square %d", s)
	}
	assert.Equal(t, 0, InvalidSquare.ToBitboard().CountBits())
	assert.Equal(t, 0, Square(200).ToBitboard().CountBits())
}

func TestSquareStringRoundTrip(t *testing.T) {
	// spec.md §8 scenario 5.
	sq, ok := SquareFromString("h3")
	assert.True(t, ok)
	assert.Equal(t, Square(23), sq)
	assert.Equal(t, "a3", Square(16).String())
}

func TestSquareFromStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "a", "a12", "i1", "a9", "z9"} {
		_, ok := SquareFromString(s)
		assert.False(t, ok, "expected %q to be rejected", s)
	}
}

const (
	H3 Square = 16 + 7
	E4 Square = 24 + 4
)
